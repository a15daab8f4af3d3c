package foreach

import (
	"fmt"
	"reflect"
)

// String renders v for diagnostics. A memory view of bytes or runes renders
// as its text; other element types render as the view's type and length. A
// sequence view defers to the sequence's own String, or its Go type.
func (v View[T]) String() string {
	if v.seq != nil {
		if s, ok := v.seq.(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprintf("%T", v.seq)
	}
	switch m := any(v.mem).(type) {
	case []byte:
		return string(m)
	case []rune:
		return string(m)
	}
	return fmt.Sprintf("foreach.View[%s][%d]", reflect.TypeFor[T](), len(v.mem))
}
