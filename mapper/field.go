package mapper

import (
	"reflect"
	"strings"
	"sync"
)

// field represents a cached struct field.
type field struct {
	name string
	idx  []int
}

// fieldCache caches a map of field names to their properties for a given struct type.
var fieldCache sync.Map

// cachedFields returns the settable fields of t keyed by their property
// name. It skips unexported fields and fields tagged with `jast:"-"`.
func cachedFields(t reflect.Type) map[string]field {
	if f, ok := fieldCache.Load(t); ok {
		return f.(map[string]field)
	}

	fields := make(map[string]field)
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous || !sf.IsExported() {
			continue
		}

		tag := sf.Tag.Get("jast")
		if tag == "-" {
			continue
		}

		f := field{name: sf.Name, idx: sf.Index}
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			f.name = name
		}
		fields[f.name] = f
	}

	fieldCache.Store(t, fields)
	return fields
}

// findField looks up key exactly, then case-insensitively.
func findField(fields map[string]field, key string) (field, bool) {
	if f, ok := fields[key]; ok {
		return f, true
	}
	for name, f := range fields {
		if strings.EqualFold(name, key) {
			return f, true
		}
	}
	return field{}, false
}
