package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// starValue converts a Go value for REPL inspection. Structs become
// dicts of their exported fields, so token and syntax-tree values read
// naturally in the REPL.
func starValue(v any) starlark.Value {
	switch v := v.(type) {
	case nil:
		return starlark.None
	case bool:
		return starlark.Bool(v)
	case string:
		return starlark.String(v)
	case []byte:
		return starlark.Bytes(v)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {

	case reflect.Bool:
		return starlark.Bool(rv.Bool())

	case reflect.String:
		return starlark.String(rv.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(rv.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(rv.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(rv.Float())

	case reflect.Slice, reflect.Array:
		return starList(rv)

	case reflect.Map:
		return starMap(rv)

	case reflect.Struct:
		return starStruct(rv)

	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return starlark.None
		}
		return starValue(rv.Elem().Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", rv.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}

func starList(rv reflect.Value) starlark.Value {
	elems := make([]starlark.Value, rv.Len())
	for i := range elems {
		elems[i] = starValue(rv.Index(i).Interface())
	}
	return starlark.NewList(elems)
}

func starMap(rv reflect.Value) starlark.Value {
	d := starlark.NewDict(rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		d.SetKey(
			starValue(iter.Key().Interface()),
			starValue(iter.Value().Interface()),
		)
	}
	return d
}

func starStruct(rv reflect.Value) starlark.Value {
	typ := rv.Type()
	d := starlark.NewDict(typ.NumField())
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		d.SetKey(
			starlark.String(field.Name),
			starValue(rv.Field(i).Interface()),
		)
	}
	return d
}
