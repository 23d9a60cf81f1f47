package nostl

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// render writes elems as [e0, e1, ...]. Numbers and booleans print bare,
// strings in double quotes, pointers in hexadecimal and anything else
// wrapped as { e }.
func render[T any](elems []T, tr *traits) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		writeElem(&b, any(elems[i]), tr.kind)
	}
	b.WriteByte(']')
	return b.String()
}

func writeElem(b *strings.Builder, v any, kind reflect.Kind) {
	switch kind {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		fmt.Fprint(b, v)
	case reflect.String:
		b.WriteByte('"')
		b.WriteString(reflect.ValueOf(v).String())
		b.WriteByte('"')
	case reflect.Pointer, reflect.UnsafePointer, reflect.Uintptr:
		b.WriteString("0x")
		b.WriteString(strconv.FormatUint(uint64(pointerValue(v)), 16))
	default:
		fmt.Fprintf(b, "{ %v }", v)
	}
}

func pointerValue(v any) uintptr {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Uintptr {
		return uintptr(rv.Uint())
	}
	return rv.Pointer()
}
