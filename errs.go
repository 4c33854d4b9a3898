package edn

import "errors"

var (
	ErrJSON  = errors.New("json input error")
	ErrYAML  = errors.New("yaml input error")
	ErrPatch = errors.New("json patch error")
)
