package nostl

import (
	"fmt"
	"strings"
	"testing"
	"unsafe"
)

type celsius float64

type label struct{ name string }

func (l label) String() string { return "label:" + l.name }

func TestRender(t *testing.T) {
	x := 1
	tests := []struct {
		name string
		got  fmt.Stringer
		want string
	}{
		{"ints", NewOf([]int{1, 2, 3}), "[1, 2, 3]"},
		{"empty", New[int](), "[]"},
		{"single", NewOf([]uint8{7}), "[7]"},
		{"floats", NewOf([]float64{1.5, -2}), "[1.5, -2]"},
		{"named float", NewOf([]celsius{36.6}), "[36.6]"},
		{"bools", NewOf([]bool{true, false}), "[true, false]"},
		{"strings", NewOf([]string{"a", "b c"}), `["a", "b c"]`},
		{"nil pointer", NewOf([]*int{nil}), "[0x0]"},
		{"pointer", NewOf([]*int{&x}), fmt.Sprintf("[%#x]", uintptr(unsafe.Pointer(&x)))},
		{"stringer", NewOf([]label{{"a"}}), "[{ label:a }]"},
		{"complex", NewOf([]complex64{1 + 2i}), "[{ (1+2i) }]"},
		{"array", NewArrayOf(2, []int{4}), "[4, 0]"},
	}

	for _, tt := range tests {
		if got := tt.got.String(); got != tt.want {
			t.Errorf("%s: String() = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestRenderLarge(t *testing.T) {
	v := New[int]()
	defer v.Release()
	for i := range 1000 {
		v.PushBack(i)
	}
	s := v.String()
	if !strings.HasPrefix(s, "[0, 1, 2") || !strings.HasSuffix(s, "998, 999]") {
		t.Errorf("String() = %.20s...%s", s, s[len(s)-20:])
	}
	if strings.Count(s, ", ") != 999 {
		t.Errorf("separators = %d, want 999", strings.Count(s, ", "))
	}
}
