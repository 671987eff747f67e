package model

import "strconv"

// Field names one searchable column of a Record.
type Field int

const (
	FieldEmployee Field = iota + 1
	FieldTask
	FieldMinutes
	FieldDate
	FieldNotes
)

func (f Field) String() string {
	switch f {
	case FieldEmployee:
		return "employee"
	case FieldTask:
		return "task"
	case FieldMinutes:
		return "minutes"
	case FieldDate:
		return "date"
	case FieldNotes:
		return "notes"
	default:
		return "field(" + strconv.Itoa(int(f)) + ")"
	}
}

// FreeText reports whether filters on f use substring containment rather
// than exact matching.
func (f Field) FreeText() bool {
	return f == FieldEmployee || f == FieldTask || f == FieldNotes
}

// Value is a concrete value of one Field, as offered in a distinct-value menu
// and passed back to the store as a filter.
type Value struct {
	Field   Field
	Text    string
	Minutes int
	Date    Date
	// Exact makes a free-text filter match the whole value instead of a
	// substring. Dates and minutes always match exactly.
	Exact bool
}

// TextValue builds a Value for one of the free-text fields.
func TextValue(f Field, s string) Value {
	return Value{Field: f, Text: s}
}

// MinutesValue builds a Value for the minutes field.
func MinutesValue(m int) Value {
	return Value{Field: FieldMinutes, Minutes: m}
}

// DateValue builds a Value for the task date field.
func DateValue(d Date) Value {
	return Value{Field: FieldDate, Date: d}
}

// Exactly returns v marked for whole-value matching.
func (v Value) Exactly() Value {
	v.Exact = true
	return v
}

// String formats the value the way it is shown to the user.
func (v Value) String() string {
	switch v.Field {
	case FieldMinutes:
		return strconv.Itoa(v.Minutes)
	case FieldDate:
		return v.Date.String()
	default:
		return v.Text
	}
}
