package debug

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/signadot/edn-format/go-edn/encode"
	"github.com/signadot/edn-format/go-edn/value"
)

// EDN formats a value as EDN text when printed.
type EDN struct{ value.Value }

func (e EDN) String() string {
	s, err := encode.EncodeString(e.Value)
	if err != nil {
		return fmt.Sprintf("[raw value.Value] %#v", e.Value)
	}
	return s
}

// Logf writes to stderr. Values are rendered as EDN and encoder
// configurations as JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case encode.Config:
			d, err := json.Marshal(x)
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case value.Value:
			args[i] = EDN{x}.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
