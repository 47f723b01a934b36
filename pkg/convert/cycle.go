package convert

import "reflect"

// maxWalkDepth bounds HasCycle. Values nested deeper than this are reported as cyclic.
const maxWalkDepth = 256

type walkKey struct {
	ptr uintptr
	typ reflect.Type
}

// HasCycle reports whether v refers back to itself through pointers, maps, slices or
// interfaces, or is nested too deeply to print safely. fmt recurses without bound on
// such values.
func HasCycle(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	if !mayRefer(rv.Type()) {
		return false
	}
	return walk(rv, make(map[walkKey]struct{}), 0)
}

func walk(v reflect.Value, path map[walkKey]struct{}, depth int) bool {
	if depth > maxWalkDepth {
		return true
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice:
		if v.IsNil() || (v.Kind() == reflect.Slice && v.Len() == 0) {
			return false
		}
		key := walkKey{ptr: v.Pointer(), typ: v.Type()}
		if _, seen := path[key]; seen {
			return true
		}
		path[key] = struct{}{}
		defer delete(path, key)
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return false
		}
		return walk(v.Elem(), path, depth+1)
	case reflect.Map:
		if !mayRefer(v.Type().Key()) && !mayRefer(v.Type().Elem()) {
			return false
		}
		iter := v.MapRange()
		for iter.Next() {
			if walk(iter.Key(), path, depth+1) || walk(iter.Value(), path, depth+1) {
				return true
			}
		}
	case reflect.Slice, reflect.Array:
		if !mayRefer(v.Type().Elem()) {
			return false
		}
		for i := 0; i < v.Len(); i++ {
			if walk(v.Index(i), path, depth+1) {
				return true
			}
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if walk(v.Field(i), path, depth+1) {
				return true
			}
		}
	}
	return false
}

// mayRefer reports whether values of t can hold references to other values.
func mayRefer(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return true
	case reflect.Array:
		return mayRefer(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if mayRefer(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
