package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Encode bool
	Parse  bool
	Tokens bool
}

var d *debug

func init() {
	d = &debug{}
	d.Encode = boolEnv("EDN_DEBUG_ENCODE")
	d.Parse = boolEnv("EDN_DEBUG_PARSE")
	d.Tokens = boolEnv("EDN_DEBUG_TOKENS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Encode() bool {
	return d.Encode
}
func Parse() bool {
	return d.Parse
}
func Tokens() bool {
	return d.Tokens
}
