package fromrow

import "fmt"

// BindError is returned by [Schema.Bind] when a field fails to bind. It names
// the effective column of the first failing field in declaration order and
// wraps the cause: a [*DecodeError] for decode failures or a [*ConvertError]
// for rejected TryConvert conversions.
//
// Fields after the failing one are never decoded, and no partial record is
// returned.
type BindError struct {
	Column string
	Err    error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("fromrow: %v", e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

// ConvertError reports that a column decoded successfully as the intermediate
// type but the fallible conversion rejected the value. Column is the same
// column the decode read from.
type ConvertError struct {
	Column string
	Err    error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("convert column %q: %v", e.Column, e.Err)
}

func (e *ConvertError) Unwrap() error { return e.Err }
