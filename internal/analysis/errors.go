package analysis

import "fmt"

// ErrUnsupportedCategory indicates a suggestion category outside the
// enumerated set. Category validation is the caller's responsibility;
// this error fails fast rather than degrading to a default list.
type ErrUnsupportedCategory struct {
	Category string
}

func (e *ErrUnsupportedCategory) Error() string {
	return fmt.Sprintf("unsupported suggestion category: %q", e.Category)
}
