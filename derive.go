package fromrow

import (
	"fmt"
	"reflect"
	"sync"
)

// Derive builds the [Schema] for a struct type T from its `db` tags and
// caches it, so repeated calls for the same T return the same schema. It is
// the tag-driven alternative to spelling fields out with [NewSchema].
//
// Tag grammar per field:
//
//	db:"name"      read column "name" instead of the field name
//	db:",flatten"  bind a nested struct from the same row (flat namespace)
//	db:"-"         skip the field
//
// Untagged fields read the column named exactly like the field, verbatim:
// matching is case-sensitive and unnormalized. Anonymous embedded structs
// without a tag are flattened. Unexported non-anonymous fields are skipped.
//
// Derive panics if T is not a struct type.
func Derive[T any]() *Schema[T] {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if derefPtr(rt).Kind() != reflect.Struct {
		panic(fmt.Sprintf("fromrow: Derive requires a struct type, got %s", rt))
	}
	if v, ok := deriveCache.Load(rt); ok {
		return v.(*Schema[T])
	}

	steps := buildFieldIndex(rt)
	fields := make([]Field[T], 0, len(steps))
	for _, st := range steps {
		st := st
		fields = append(fields, Field[T]{
			columns: []string{st.column},
			bind: func(t *T, r Row) error {
				fv := fieldByPathAlloc(reflect.ValueOf(t).Elem(), st.fpath)
				if err := r.Decode(st.column, fv.Addr().Interface()); err != nil {
					return &BindError{Column: st.column, Err: err}
				}
				return nil
			},
		})
	}

	s := NewSchema[T](fields...)
	actual, _ := deriveCache.LoadOrStore(rt, s)
	return actual.(*Schema[T])
}

var deriveCache sync.Map // reflect.Type -> *Schema[T]

// derivedField maps one column to a field index path in the record struct.
// Flattened structs contribute their leaves directly, so every step reads
// from the shared flat column namespace.
type derivedField struct {
	column string
	fpath  []int
}

func buildFieldIndex(rt reflect.Type) []derivedField {
	var out []derivedField

	var walk func(t reflect.Type, base []int)
	walk = func(t reflect.Type, base []int) {
		t = derefPtr(t)
		n := t.NumField()
		for i := 0; i < n; i++ {
			sf := t.Field(i)
			if sf.PkgPath != "" && !sf.Anonymous { // unexported, non-anonymous
				continue
			}
			tag := sf.Tag.Get("db")
			name, flatten, omit := parseTag(tag)
			if omit {
				continue
			}
			path := append(append([]int(nil), base...), i)

			if flatten || (sf.Anonymous && tag == "") {
				if isStruct(sf.Type) {
					walk(sf.Type, path)
					continue
				}
			}
			if name == "" {
				name = sf.Name
			}
			out = append(out, derivedField{column: name, fpath: path})
		}
	}
	walk(rt, nil)
	return out
}

// parseTag supports: "-", "col", ",flatten", "col,flatten", "flatten,col".
func parseTag(tag string) (name string, flatten bool, omit bool) {
	if tag == "-" {
		return "", false, true
	}
	if tag == "" {
		return "", false, false
	}
	start := 0
	for i := 0; i <= len(tag); i++ {
		if i == len(tag) || tag[i] == ',' {
			part := tag[start:i]
			if part == "flatten" {
				flatten = true
			} else if part != "" && name == "" {
				name = part
			}
			start = i + 1
		}
	}
	return name, flatten, false
}

func isStruct(t reflect.Type) bool { return derefPtr(t).Kind() == reflect.Struct }

func derefPtr(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// fieldByPathAlloc walks fpath, allocating nil pointers so the final field is
// addressable.
func fieldByPathAlloc(root reflect.Value, fpath []int) reflect.Value {
	v := root
	for _, i := range fpath {
		if v.Kind() == reflect.Ptr {
			if v.IsNil() {
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(i)
	}
	return v
}
