package fromrow

import (
	"errors"
	"fmt"
)

// Row is a single result row addressed by column name. It is the capability
// this package consumes from a database driver (or any tabular source): a
// read-only set of named, typed column values.
//
// Decode stores the value of the named column into dest, which must be a
// non-nil pointer, following the same convention as [database/sql.Rows.Scan].
// Implementations must be stateless across calls; the binder may decode the
// same row any number of times, in any order.
//
// A failed decode returns a [*DecodeError] naming the column. A missing
// column wraps [ErrNoColumn].
type Row interface {
	Decode(column string, dest any) error
}

// ErrNoColumn reports that a row has no column with the requested name.
// Column matching is exact; names are never case-folded or normalized.
var ErrNoColumn = errors.New("no such column")

// DecodeError reports that a column could not be decoded into the requested
// destination type, or does not exist in the row.
type DecodeError struct {
	Column string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode column %q: %v", e.Column, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DecodeColumn decodes the named column of r as a V. It is the typed face of
// [Row.Decode] and is what the field strategies call internally.
func DecodeColumn[V any](r Row, column string) (V, error) {
	var v V
	if err := r.Decode(column, &v); err != nil {
		return v, err
	}
	return v, nil
}

// MapRow is an in-memory [Row] backed by a column→value map. It serves
// non-SQL sources and tests; [ScanRow] also produces one from a
// database/sql result row.
//
// Values are converted to the destination type with the same rules
// database/sql applies during Scan (see Decode).
type MapRow map[string]any

// Decode implements [Row]. Destinations implementing [database/sql.Scanner]
// receive the stored value verbatim; otherwise the value is assigned with
// checked conversions ([]byte→string, numeric widenings, named types,
// pointer destinations, NULL→nil).
func (m MapRow) Decode(column string, dest any) error {
	v, ok := m[column]
	if !ok {
		return &DecodeError{Column: column, Err: ErrNoColumn}
	}
	if err := decodeValue(dest, v); err != nil {
		return &DecodeError{Column: column, Err: err}
	}
	return nil
}
