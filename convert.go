package fromrow

import (
	"database/sql"
	"fmt"
	"math"
	"reflect"
)

// decodeValue assigns a column value src to dest, which must be a non-nil
// pointer. Conversions mirror what database/sql performs during Scan:
// sql.Scanner destinations first, then exact/assignable types, []byte→string,
// checked numeric conversions, and named types over those kinds. Pointer
// destinations are allocated; NULL sets nilable destinations to nil and
// fails for value destinations.
func decodeValue(dest, src any) error {
	if dest == nil {
		return fmt.Errorf("destination must be a non-nil pointer, got nil")
	}
	if sc, ok := dest.(sql.Scanner); ok {
		return sc.Scan(src)
	}
	dv := reflect.ValueOf(dest)
	if dv.Kind() != reflect.Ptr || dv.IsNil() {
		return fmt.Errorf("destination must be a non-nil pointer, got %T", dest)
	}
	return assignValue(dv.Elem(), src)
}

func assignValue(dst reflect.Value, src any) error {
	if src == nil {
		switch dst.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		return fmt.Errorf("cannot decode NULL into %s", dst.Type())
	}

	sv := reflect.ValueOf(src)

	if sv.Type().AssignableTo(dst.Type()) {
		if b, ok := src.([]byte); ok && dst.Kind() == reflect.Slice {
			// Driver-owned memory; copy.
			dst.SetBytes(append([]byte(nil), b...))
			return nil
		}
		dst.Set(sv)
		return nil
	}

	if dst.Kind() == reflect.Ptr {
		p := reflect.New(dst.Type().Elem())
		if err := assignValue(p.Elem(), src); err != nil {
			return err
		}
		dst.Set(p)
		return nil
	}

	if b, ok := src.([]byte); ok && dst.Kind() == reflect.String {
		dst.SetString(string(b))
		return nil
	}

	switch dst.Kind() {
	case reflect.String:
		if sv.Kind() == reflect.String {
			dst.SetString(sv.String())
			return nil
		}
	case reflect.Bool:
		if sv.Kind() == reflect.Bool {
			dst.SetBool(sv.Bool())
			return nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch sv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n := sv.Int()
			if dst.OverflowInt(n) {
				return fmt.Errorf("value %d overflows %s", n, dst.Type())
			}
			dst.SetInt(n)
			return nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			u := sv.Uint()
			if u > math.MaxInt64 || dst.OverflowInt(int64(u)) {
				return fmt.Errorf("value %d overflows %s", u, dst.Type())
			}
			dst.SetInt(int64(u))
			return nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		switch sv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n := sv.Int()
			if n < 0 || dst.OverflowUint(uint64(n)) {
				return fmt.Errorf("value %d overflows %s", n, dst.Type())
			}
			dst.SetUint(uint64(n))
			return nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			u := sv.Uint()
			if dst.OverflowUint(u) {
				return fmt.Errorf("value %d overflows %s", u, dst.Type())
			}
			dst.SetUint(u)
			return nil
		}
	case reflect.Float32, reflect.Float64:
		switch sv.Kind() {
		case reflect.Float32, reflect.Float64:
			f := sv.Float()
			if dst.OverflowFloat(f) {
				return fmt.Errorf("value %v overflows %s", f, dst.Type())
			}
			dst.SetFloat(f)
			return nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			dst.SetFloat(float64(sv.Int()))
			return nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			dst.SetFloat(float64(sv.Uint()))
			return nil
		}
	}

	return fmt.Errorf("cannot decode %T into %s", src, dst.Type())
}
