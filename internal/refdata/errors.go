package refdata

import "fmt"

type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrLookup matches every lookup failure of this package via errors.Is.
	ErrLookup = constError("reference data lookup failed")

	// ErrMissingKeyColumn is returned when a table header lacks its key column.
	ErrMissingKeyColumn = constError("key column not found in header")

	// ErrEmptyTable is returned for tables without a header row.
	ErrEmptyTable = constError("reference table is empty")
)

// LookupFailure identifies the row a failed lookup was aimed at.
type LookupFailure struct {
	Dataset   string
	KeyColumn string
	KeyValue  string
}

func (f LookupFailure) String() string {
	return fmt.Sprintf("%s[%s=%s]", f.Dataset, f.KeyColumn, f.KeyValue)
}

// RowNotFound is returned when no row has the requested key.
type RowNotFound struct {
	LookupFailure
}

func (e *RowNotFound) Error() string {
	return fmt.Sprintf("row not found: %s", e.LookupFailure)
}

// Is reports whether target is ErrLookup.
func (e *RowNotFound) Is(target error) bool { return target == ErrLookup }

// FieldNotPopulated is returned when the row exists but the requested cell
// is empty.
type FieldNotPopulated struct {
	LookupFailure
	DataColumn string
}

func (e *FieldNotPopulated) Error() string {
	return fmt.Sprintf("field %q not populated: %s", e.DataColumn, e.LookupFailure)
}

// Is reports whether target is ErrLookup.
func (e *FieldNotPopulated) Is(target error) bool { return target == ErrLookup }

// ExpectedIntGotFloat is returned by Row.Int for non-integral values.
type ExpectedIntGotFloat struct {
	LookupFailure
	DataColumn string
	Value      float64
}

func (e *ExpectedIntGotFloat) Error() string {
	return fmt.Sprintf("field %q: expected integer, got %g: %s", e.DataColumn, e.Value, e.LookupFailure)
}

// Is reports whether target is ErrLookup.
func (e *ExpectedIntGotFloat) Is(target error) bool { return target == ErrLookup }

// ColumnNotFound is returned when the table has no such column.
type ColumnNotFound struct {
	LookupFailure
	DataColumn string
}

func (e *ColumnNotFound) Error() string {
	return fmt.Sprintf("column %q not found: %s", e.DataColumn, e.LookupFailure)
}

// Is reports whether target is ErrLookup.
func (e *ColumnNotFound) Is(target error) bool { return target == ErrLookup }

// NonFiniteValue is returned by Row.Float for NaN or infinite cells.
type NonFiniteValue struct {
	LookupFailure
	DataColumn string
	Value      float64
}

func (e *NonFiniteValue) Error() string {
	return fmt.Sprintf("field %q holds %g: %s", e.DataColumn, e.Value, e.LookupFailure)
}

// Is reports whether target is ErrLookup.
func (e *NonFiniteValue) Is(target error) bool { return target == ErrLookup }
