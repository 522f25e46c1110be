package fromrow

// Schema binds rows to records of type T. It is built once per record type,
// either explicitly with [NewSchema] or from struct tags with [Derive], and
// is immutable afterwards: any number of goroutines may bind different rows
// through the same Schema without coordination.
type Schema[T any] struct {
	fields []Field[T]
}

// NewSchema builds a schema from the given fields. Field order is the decode
// order; binding walks the fields left to right.
//
// The schema does not reject duplicate effective column names (a rename
// colliding with a sibling, or a flattened record overlapping an outer
// field's column). Each field decodes its column independently, so
// duplicates read the same column more than once; relying on that is
// implementation-defined.
func NewSchema[T any](fields ...Field[T]) *Schema[T] {
	return &Schema[T]{fields: append([]Field[T](nil), fields...)}
}

// Bind constructs a T from r. The first field that fails aborts the bind and
// is reported as a [*BindError]; later fields are not decoded and no partial
// record is returned. r is only read, never retained.
func (s *Schema[T]) Bind(r Row) (T, error) {
	var t T
	for i := range s.fields {
		if err := s.fields[i].bind(&t, r); err != nil {
			var zero T
			return zero, err
		}
	}
	return t, nil
}

// MustBind is the strict form of [Bind] for rows the caller has already
// guaranteed to match the schema. It panics with the failing column and
// cause if the bind fails; use Bind when a mismatch is an expected
// possibility.
func (s *Schema[T]) MustBind(r Row) T {
	t, err := s.Bind(r)
	if err != nil {
		panic(err)
	}
	return t
}

// Columns returns the effective column names the schema reads, in
// declaration order, with flattened records expanded in place.
func (s *Schema[T]) Columns() []string {
	out := make([]string, 0, len(s.fields))
	for i := range s.fields {
		out = append(out, s.fields[i].columns...)
	}
	return out
}
