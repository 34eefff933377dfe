package storage

import (
	"errors"
	"os"
	"unicode/utf8"
)

var (
	// ErrInvalidEncoding indicates the file contents are not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")
)

// Loader provides the full text of a named file.
type Loader interface {
	Load(path string) (string, error)
}

// FileLoader reads files from the local filesystem.
type FileLoader struct{}

// NewFileLoader returns a Loader backed by the local filesystem.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load reads the whole file into memory and checks that it is UTF-8 text.
func (l *FileLoader) Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}
	return string(data), nil
}
