package selector

import "fmt"

// DuplicatePartError reports a second attempt to add a selector part that
// is permitted at most once per builder (element, id or pseudo-element).
type DuplicatePartError struct {
	Category Category
}

func (e *DuplicatePartError) Error() string {
	return fmt.Sprintf("duplicate selector part: %s may appear only once", e.Category)
}

// OrderError reports a part appended out of the fixed category order: a
// part of an earlier category showed up after a part of a later one.
type OrderError struct {
	Earlier  Category // category already in the sequence
	Appended Category // category of the offending part
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("selector part out of order: %s may not follow %s", e.Appended, e.Earlier)
}
