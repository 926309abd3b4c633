package mapper

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/KimNorgaard/go-jast/ast"
	"github.com/KimNorgaard/go-jast/token"
)

// Build converts a Go value into a syntax tree, the inverse of Map.
// Map keys are emitted in sorted order, struct fields in declaration order.
// Struct fields honor the `jast` tag, including the omitempty option.
func Build(v any) (ast.Node, error) {
	return build(reflect.ValueOf(v))
}

func null() ast.Node { return &ast.Primary{Value: token.Null()} }

// isEmptyValue reports whether the value v is empty.
// It is equivalent to the `encoding/json` definition of empty:
// false, 0, a nil pointer, a nil interface value, and any empty array,
// slice, map, or string.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}

func build(v reflect.Value) (ast.Node, error) {
	// Follow pointers and interfaces to find the concrete value.
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return null(), nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Invalid:
		return null(), nil
	case reflect.String:
		return &ast.Primary{Value: token.String(v.String())}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &ast.Primary{Value: token.Number(float64(v.Int()))}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return &ast.Primary{Value: token.Number(float64(v.Uint()))}, nil
	case reflect.Float32, reflect.Float64:
		return &ast.Primary{Value: token.Number(v.Float())}, nil
	case reflect.Bool:
		return &ast.Primary{Value: token.Bool(v.Bool())}, nil

	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return null(), nil
		}
		elements := make([]ast.Node, v.Len())
		for i := 0; i < v.Len(); i++ {
			el, err := build(v.Index(i))
			if err != nil {
				return nil, err
			}
			elements[i] = el
		}
		return &ast.List{Open: token.Punct(token.LBRACK), Elements: elements, Close: token.Punct(token.RBRACK)}, nil

	case reflect.Map:
		if v.IsNil() {
			return null(), nil
		}
		if v.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("jast: map key type must be a string, got %s", v.Type().Key())
		}
		sorted := treemap.NewWithStringComparator()
		iter := v.MapRange()
		for iter.Next() {
			sorted.Put(iter.Key().String(), iter.Value())
		}
		obj := newObject(v.Len())
		it := sorted.Iterator()
		for it.Next() {
			value, err := build(it.Value().(reflect.Value))
			if err != nil {
				return nil, err
			}
			obj.Properties = append(obj.Properties, newProperty(it.Key().(string), value))
		}
		return obj, nil

	case reflect.Struct:
		t := v.Type()
		obj := newObject(v.NumField())
		for i := 0; i < v.NumField(); i++ {
			sf := t.Field(i)
			if sf.Anonymous || !sf.IsExported() {
				continue
			}
			tag := sf.Tag.Get("jast")
			if tag == "-" {
				continue
			}
			name, opts, _ := strings.Cut(tag, ",")
			if name == "" {
				name = sf.Name
			}
			if opts == "omitempty" && isEmptyValue(v.Field(i)) {
				continue
			}
			value, err := build(v.Field(i))
			if err != nil {
				return nil, err
			}
			obj.Properties = append(obj.Properties, newProperty(name, value))
		}
		return obj, nil

	default:
		return nil, fmt.Errorf("jast: unsupported type for building: %s", v.Type())
	}
}

func newObject(capacity int) *ast.Object {
	return &ast.Object{
		Open:       token.Punct(token.LBRACE),
		Properties: make([]*ast.Property, 0, capacity),
		Close:      token.Punct(token.RBRACE),
	}
}

func newProperty(key string, value ast.Node) *ast.Property {
	return &ast.Property{Key: token.Ident(key), Colon: token.Punct(token.COLON), Value: value}
}
