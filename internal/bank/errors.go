package bank

import (
	"errors"
	"fmt"
)

// ErrEmptyBank is returned by Sample when no question is eligible.
var ErrEmptyBank = errors.New("no question available")

// Errors wrapped by LoadError to classify the failure.
var (
	ErrMissingColumn = errors.New("missing required column")
	ErrInvalidAnswer = errors.New("invalid respuesta_correcta")
	ErrInvalidRow    = errors.New("invalid row")
	ErrUnsupported   = errors.New("unsupported bank format")
)

// LoadError reports why a question bank could not be loaded.
type LoadError struct {
	Path string
	// Row is the 1-based data row (header excluded), 0 when not row specific.
	Row int
	// Column names the offending column, if any.
	Column string
	Err    error
}

func (e *LoadError) Error() string {
	switch {
	case e.Row > 0 && e.Column != "":
		return fmt.Sprintf("load bank %s: row %d, column %q: %v", e.Path, e.Row, e.Column, e.Err)
	case e.Row > 0:
		return fmt.Sprintf("load bank %s: row %d: %v", e.Path, e.Row, e.Err)
	case e.Column != "":
		return fmt.Sprintf("load bank %s: column %q: %v", e.Path, e.Column, e.Err)
	}
	return fmt.Sprintf("load bank %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
