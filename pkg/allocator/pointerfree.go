package allocator

import (
	"reflect"
	"sync"
)

var pointerFreeCache sync.Map // reflect.Type -> bool

// pointerFree reports whether T can live in memory the garbage collector does
// not scan: no pointers, strings, slices, maps, channels, funcs or interfaces
// anywhere in its layout.
func pointerFree[T any]() bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if v, ok := pointerFreeCache.Load(t); ok {
		return v.(bool)
	}
	ok := typePointerFree(t)
	pointerFreeCache.Store(t, ok)
	return ok
}

func typePointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || typePointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !typePointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	}
	return false
}
