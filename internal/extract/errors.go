package extract

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates a MIME type outside the supported set.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ExtractionError indicates a file of a supported format that could not be
// parsed.
type ExtractionError struct {
	Format string
	Cause  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s file: %v", e.Format, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
