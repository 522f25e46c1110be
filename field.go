package fromrow

// Field binds one declared field of a record T from a [Row]. Values are
// created by the strategy constructors [Column], [Convert], [TryConvert],
// and [Flatten], and are immutable once built.
type Field[T any] struct {
	columns []string
	bind    func(*T, Row) error
}

// FieldOption adjusts how a declared field resolves. The only option is
// [WithColumn].
type FieldOption func(*fieldDecl)

type fieldDecl struct {
	name   string
	rename string
}

// WithColumn renames the column a field reads from. Without it, the field
// reads the column named exactly like the declared field.
func WithColumn(column string) FieldOption {
	return func(d *fieldDecl) { d.rename = column }
}

// effectiveColumn resolves a declared field name and its options to the
// column the field reads from: the explicit rename if present, else the
// field's own name, verbatim.
func effectiveColumn(name string, opts []FieldOption) string {
	d := fieldDecl{name: name}
	for _, o := range opts {
		o(&d)
	}
	if d.rename != "" {
		return d.rename
	}
	return d.name
}

// Column declares a field decoded directly from its column as a V and stored
// with set. name is the declared field name; pass [WithColumn] to read a
// differently named column.
func Column[T, V any](name string, set func(*T, V), opts ...FieldOption) Field[T] {
	col := effectiveColumn(name, opts)
	return Field[T]{
		columns: []string{col},
		bind: func(t *T, r Row) error {
			v, err := DecodeColumn[V](r, col)
			if err != nil {
				return &BindError{Column: col, Err: err}
			}
			set(t, v)
			return nil
		},
	}
}

// Convert declares a field decoded from its column as an intermediate C and
// then passed through the infallible conversion conv before being stored.
func Convert[T, C, V any](name string, conv func(C) V, set func(*T, V), opts ...FieldOption) Field[T] {
	col := effectiveColumn(name, opts)
	return Field[T]{
		columns: []string{col},
		bind: func(t *T, r Row) error {
			c, err := DecodeColumn[C](r, col)
			if err != nil {
				return &BindError{Column: col, Err: err}
			}
			set(t, conv(c))
			return nil
		},
	}
}

// TryConvert declares a field decoded from its column as an intermediate C
// and then passed through the fallible conversion conv. A rejected value
// surfaces as a [*ConvertError] attributed to the same column.
func TryConvert[T, C, V any](name string, conv func(C) (V, error), set func(*T, V), opts ...FieldOption) Field[T] {
	col := effectiveColumn(name, opts)
	return Field[T]{
		columns: []string{col},
		bind: func(t *T, r Row) error {
			c, err := DecodeColumn[C](r, col)
			if err != nil {
				return &BindError{Column: col, Err: err}
			}
			v, err := conv(c)
			if err != nil {
				return &BindError{Column: col, Err: &ConvertError{Column: col, Err: err}}
			}
			set(t, v)
			return nil
		},
	}
}

// Flatten declares a field holding a nested record bound by its own schema
// from the same row. The nested fields read the row's flat column namespace;
// there is no column-name transformation, and a nested failure propagates
// unchanged, attributed to the nested field's own column.
func Flatten[T, N any](nested *Schema[N], set func(*T, N)) Field[T] {
	return Field[T]{
		columns: nested.Columns(),
		bind: func(t *T, r Row) error {
			n, err := nested.Bind(r)
			if err != nil {
				return err
			}
			set(t, n)
			return nil
		},
	}
}
