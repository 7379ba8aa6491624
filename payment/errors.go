package payment

import "errors"

var (
	// ErrProcessingInProgress is returned by the commit guard when an order
	// creation is already in flight for the session. The caller surfaces it
	// to the user; it must not retry automatically.
	ErrProcessingInProgress = errors.New("order processing already in progress")

	// ErrStorage wraps persistence failures reported by the order store.
	ErrStorage = errors.New("order storage failure")
)

// FieldErrors collects validation failures keyed by field name, preserving
// the order in which they were recorded. The first error is the one shown
// to block submission; the full map stays available for form-level display.
type FieldErrors struct {
	byField map[string]string
	order   []string
}

// Add records a message for a field. Later messages for the same field are
// ignored so the first failing check per field wins.
func (e *FieldErrors) Add(field, message string) {
	if e.byField == nil {
		e.byField = map[string]string{}
	}
	if _, ok := e.byField[field]; ok {
		return
	}
	e.byField[field] = message
	e.order = append(e.order, field)
}

// Empty reports whether no errors were recorded.
func (e *FieldErrors) Empty() bool {
	return e == nil || len(e.order) == 0
}

// First returns the message of the first recorded error, or "".
func (e *FieldErrors) First() string {
	if e.Empty() {
		return ""
	}
	return e.byField[e.order[0]]
}

// FirstField returns the field name of the first recorded error, or "".
func (e *FieldErrors) FirstField() string {
	if e.Empty() {
		return ""
	}
	return e.order[0]
}

// Field returns the message recorded for a field, or "".
func (e *FieldErrors) Field(name string) string {
	if e == nil {
		return ""
	}
	return e.byField[name]
}

// Map returns a copy of all recorded errors keyed by field.
func (e *FieldErrors) Map() map[string]string {
	out := make(map[string]string, len(e.byField))
	for k, v := range e.byField {
		out[k] = v
	}
	return out
}

// Error implements error, reporting only the first blocking message.
func (e *FieldErrors) Error() string {
	return e.First()
}
