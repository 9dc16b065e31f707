package property

import (
	"fmt"
	"reflect"
	"strings"
)

// Reader extracts named field values from arbitrary objects: structs
// (honoring json tags), string-keyed maps and pointers to either.
type Reader struct{}

// NewReader creates a reflection-based property reader.
func NewReader() *Reader {
	return &Reader{}
}

// Value returns the value of the named field on object.
func (r *Reader) Value(object any, field string) (any, error) {
	v := reflect.ValueOf(object)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, fmt.Errorf("cannot read field %q from nil pointer", field)
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("cannot read field %q from map with %s keys", field, v.Type().Key())
		}
		mv := v.MapIndex(reflect.ValueOf(field).Convert(v.Type().Key()))
		if !mv.IsValid() {
			return nil, fmt.Errorf("field %q not found", field)
		}
		return mv.Interface(), nil

	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			if fieldName(sf) == field || strings.EqualFold(sf.Name, field) {
				return v.Field(i).Interface(), nil
			}
		}
		return nil, fmt.Errorf("field %q not found on %s", field, t)

	default:
		return nil, fmt.Errorf("cannot read field %q from %T", field, object)
	}
}

// fieldName resolves the effective name of a struct field, preferring its
// json tag over the Go identifier.
func fieldName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "" || tag == "-" {
		return sf.Name
	}
	if name := strings.Split(tag, ",")[0]; name != "" {
		return name
	}
	return sf.Name
}
