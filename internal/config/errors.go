package config

import "errors"

// ErrMissingArguments is returned when the query or the filename is absent.
var ErrMissingArguments = errors.New("not enough arguments: expected <query> <filename>")
