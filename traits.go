package nostl

import (
	"reflect"
	"sync"
)

// Cloner is implemented by element types whose copies must not share state
// with the original. Copy construction, copy assignment, PushBackCopy and
// fills call Clone once per produced element.
type Cloner[T any] interface {
	Clone() T
}

// Destroyer is implemented (on the value or its pointer) by element types
// that hold resources. Destroy runs exactly once for every live element the
// container destroys: on PopBack, Erase, Clear, Set, truncating Resize,
// reassignment and Release.
type Destroyer interface {
	Destroy()
}

// traits describes how a container must handle an element type.
type traits struct {
	// scalar types hold no Go pointers and no lifecycle hooks, so their
	// slots may live in manual memory and move with memmove.
	scalar  bool
	destroy bool
	clone   bool
	kind    reflect.Kind
	size    int
}

var traitsCache sync.Map // reflect.Type -> *traits

var destroyerType = reflect.TypeFor[Destroyer]()

func traitsOf[T any]() *traits {
	t := reflect.TypeFor[T]()
	if tr, ok := traitsCache.Load(t); ok {
		return tr.(*traits)
	}
	cloner := reflect.TypeFor[Cloner[T]]()
	tr := &traits{
		destroy: t.Implements(destroyerType) || reflect.PointerTo(t).Implements(destroyerType),
		clone:   t.Implements(cloner) || reflect.PointerTo(t).Implements(cloner),
		kind:    t.Kind(),
		size:    int(t.Size()),
	}
	tr.scalar = pointerFree(t) && !tr.destroy && !tr.clone
	actual, _ := traitsCache.LoadOrStore(t, tr)
	return actual.(*traits)
}

// IsScalar reports whether T can be copied and moved as raw memory: it
// contains no Go pointers and implements neither Cloner nor Destroyer.
func IsScalar[T any]() bool {
	return traitsOf[T]().scalar
}

func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func destroyValue[T any](p *T) {
	if d, ok := any(p).(Destroyer); ok {
		d.Destroy()
		return
	}
	if d, ok := any(*p).(Destroyer); ok && !isNilPointer(d) {
		d.Destroy()
	}
}

func cloneValue[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok && !isNilPointer(c) {
		return c.Clone()
	}
	if c, ok := any(&v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
