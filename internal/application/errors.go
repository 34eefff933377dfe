package application

import (
	"errors"
	"fmt"
	"io/fs"
)

// FileReadError reports that the target file could not be loaded.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	cause := e.Err
	var pathErr *fs.PathError
	if errors.As(cause, &pathErr) {
		cause = pathErr.Err
	}
	return fmt.Sprintf("read %s: %v", e.Path, cause)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}
