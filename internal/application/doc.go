// Package application wires a resolved configuration to the contents loader
// and the search engine, and writes matching lines to the output stream. It
// keeps the main package focused on CLI parsing and exit codes.
package application
