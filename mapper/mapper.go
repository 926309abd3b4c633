// Package mapper stores a syntax tree into Go values.
package mapper

import (
	"fmt"
	"math"
	"reflect"

	"github.com/KimNorgaard/go-jast/ast"
	"github.com/KimNorgaard/go-jast/token"
)

// Map walks the tree rooted at node and populates the Go value pointed to by v.
//
// Objects map to structs (matched by `jast` tag or field name, falling
// back to a case-insensitive match) and to maps with string keys; lists map
// to slices and arrays; numbers map to any integer or float kind as long as
// the value fits; null sets the zero value. Into an interface value, Map
// stores map[string]any, []any, string, float64, bool or nil.
func Map(node ast.Node, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("jast: Map(non-pointer %T or nil)", v)
	}
	return mapValue(node, rv.Elem())
}

// Value returns the generic Go representation of the tree rooted at node.
func Value(node ast.Node) (any, error) {
	var v any
	if err := Map(node, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func mapValue(node ast.Node, rv reflect.Value) error {
	if !rv.CanSet() {
		return fmt.Errorf("jast: cannot set value of type %s", rv.Type())
	}

	if p, ok := node.(*ast.Primary); ok && p.Value.IsNull() {
		rv.Set(reflect.Zero(rv.Type()))
		return nil
	}

	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return mapValue(node, rv.Elem())
	case reflect.Interface:
		if rv.NumMethod() != 0 {
			return fmt.Errorf("jast: cannot unmarshal into non-empty interface %s", rv.Type())
		}
		return mapInterface(node, rv)
	}

	switch n := node.(type) {
	case *ast.Primary:
		return mapPrimary(n.Value, rv)
	case *ast.List:
		return mapList(n, rv)
	case *ast.Object:
		switch rv.Kind() {
		case reflect.Map:
			return mapMap(n, rv)
		case reflect.Struct:
			return mapStruct(n, rv)
		default:
			return fmt.Errorf("jast: cannot unmarshal object into Go value of type %s", rv.Type())
		}
	default:
		return fmt.Errorf("jast: cannot unmarshal %T into Go value of type %s", n, rv.Type())
	}
}

func mapPrimary(lit token.Literal, rv reflect.Value) error {
	switch lit.Kind() {
	case token.StringKind:
		if rv.Kind() != reflect.String {
			return fmt.Errorf("jast: cannot unmarshal string into Go value of type %s", rv.Type())
		}
		s, _ := lit.Str()
		rv.SetString(s)
		return nil

	case token.BoolKind:
		if rv.Kind() != reflect.Bool {
			return fmt.Errorf("jast: cannot unmarshal boolean into Go value of type %s", rv.Type())
		}
		b, _ := lit.Boolean()
		rv.SetBool(b)
		return nil

	case token.NumberKind:
		f, _ := lit.Float()
		return mapNumber(f, rv)
	}
	return fmt.Errorf("jast: cannot unmarshal %s into Go value of type %s", lit.Kind(), rv.Type())
}

func mapNumber(f float64, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		if rv.OverflowFloat(f) {
			return fmt.Errorf("jast: number %v overflows Go value of type %s", f, rv.Type())
		}
		rv.SetFloat(f)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 || rv.OverflowInt(int64(f)) {
			return fmt.Errorf("jast: number %v overflows Go value of type %s", f, rv.Type())
		}
		rv.SetInt(int64(f))
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 || rv.OverflowUint(uint64(f)) {
			return fmt.Errorf("jast: number %v overflows Go value of type %s", f, rv.Type())
		}
		rv.SetUint(uint64(f))
		return nil
	default:
		return fmt.Errorf("jast: cannot unmarshal number into Go value of type %s", rv.Type())
	}
}

func mapList(l *ast.List, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Slice:
		newSlice := reflect.MakeSlice(rv.Type(), len(l.Elements), len(l.Elements))
		for i, el := range l.Elements {
			if err := mapValue(el, newSlice.Index(i)); err != nil {
				return err
			}
		}
		rv.Set(newSlice)
		return nil
	case reflect.Array:
		if rv.Len() != len(l.Elements) {
			return fmt.Errorf("jast: cannot unmarshal list of length %d into Go array of length %d", len(l.Elements), rv.Len())
		}
		for i, el := range l.Elements {
			if err := mapValue(el, rv.Index(i)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("jast: cannot unmarshal list into Go value of type %s", rv.Type())
	}
}

func mapMap(obj *ast.Object, rv reflect.Value) error {
	mapType := rv.Type()
	if mapType.Key().Kind() != reflect.String {
		return fmt.Errorf("jast: cannot unmarshal object into map with non-string key type %s", mapType.Key())
	}

	if rv.IsNil() {
		rv.Set(reflect.MakeMapWithSize(mapType, len(obj.Properties)))
	}
	elemType := mapType.Elem()

	for _, prop := range obj.Properties {
		newVal := reflect.New(elemType).Elem()
		if err := mapValue(prop.Value, newVal); err != nil {
			return err
		}
		rv.SetMapIndex(reflect.ValueOf(prop.KeyText()).Convert(mapType.Key()), newVal)
	}
	return nil
}

func mapStruct(obj *ast.Object, rv reflect.Value) error {
	fields := cachedFields(rv.Type())
	for _, prop := range obj.Properties {
		f, ok := findField(fields, prop.KeyText())
		if !ok {
			continue // Ignore unknown fields
		}
		if err := mapValue(prop.Value, rv.FieldByIndex(f.idx)); err != nil {
			return fmt.Errorf("%w (field %q)", err, prop.KeyText())
		}
	}
	return nil
}

func mapInterface(node ast.Node, rv reflect.Value) error {
	var v any
	switch n := node.(type) {
	case *ast.Primary:
		switch n.Value.Kind() {
		case token.StringKind:
			v, _ = n.Value.Str()
		case token.NumberKind:
			v, _ = n.Value.Float()
		case token.BoolKind:
			v, _ = n.Value.Boolean()
		}
	case *ast.List:
		var s []any
		if err := mapValue(n, reflect.ValueOf(&s).Elem()); err != nil {
			return err
		}
		v = s
	case *ast.Object:
		m := make(map[string]any, len(n.Properties))
		if err := mapValue(n, reflect.ValueOf(&m).Elem()); err != nil {
			return err
		}
		v = m
	default:
		return fmt.Errorf("jast: cannot unmarshal %T into Go value of type %s", n, rv.Type())
	}
	if v == nil {
		rv.Set(reflect.Zero(rv.Type()))
		return nil
	}
	rv.Set(reflect.ValueOf(v))
	return nil
}
