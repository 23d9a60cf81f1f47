package nostl

import (
	"fmt"
	"runtime"
	"slices"
	"testing"
)

// BenchmarkPushBack compares amortized append against the builtin slice.
func BenchmarkPushBack(b *testing.B) {
	for _, n := range []int{16, 1024, 65536} {
		b.Run(fmt.Sprintf("Vector_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				v := New[int]()
				for j := 0; j < n; j++ {
					v.PushBack(j)
				}
				v.Release()
			}
		})

		b.Run(fmt.Sprintf("VectorRestrictive_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				v := New[int](WithGrowthPolicy(GrowthRestrictive))
				for j := 0; j < n; j++ {
					v.PushBack(j)
				}
				v.Release()
			}
		})

		b.Run(fmt.Sprintf("Builtin_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var s []int
				for j := 0; j < n; j++ {
					s = append(s, j)
				}
				_ = s
			}
		})
	}
}

// BenchmarkStructElements exercises the per-element path against the
// memmove path.
func BenchmarkStructElements(b *testing.B) {
	type scalarStruct struct {
		ID   int64
		Data [56]byte
	}
	type pointerStruct struct {
		ID   int64
		Name string
	}

	b.Run("Scalar/Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := New[scalarStruct]()
			for j := 0; j < 256; j++ {
				v.PushBack(scalarStruct{ID: int64(j)})
			}
			v.Release()
		}
	})

	b.Run("Scalar/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var s []scalarStruct
			for j := 0; j < 256; j++ {
				s = append(s, scalarStruct{ID: int64(j)})
			}
			_ = s
		}
	})

	b.Run("Pointer/Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := New[pointerStruct]()
			for j := 0; j < 256; j++ {
				v.PushBack(pointerStruct{ID: int64(j), Name: "x"})
			}
			v.Release()
		}
	})
}

// BenchmarkErase measures the linear shift of erasing from the front.
func BenchmarkErase(b *testing.B) {
	src := make([]int, 4096)

	b.Run("Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := FromSlice(src)
			for v.Len() > 0 {
				v.Erase(0)
			}
			v.Release()
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s := slices.Clone(src)
			for len(s) > 0 {
				s = slices.Delete(s, 0, 1)
			}
		}
	})
}

// BenchmarkClone compares deep copies.
func BenchmarkClone(b *testing.B) {
	v := FromSlice(make([]int64, 1<<16))
	defer v.Release()
	s := v.ToSlice()

	b.Run("Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v.Clone().Release()
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = slices.Clone(s)
		}
	})
}

// BenchmarkNoGCPressure keeps a large scalar vector outside the Go heap.
func BenchmarkNoGCPressure(b *testing.B) {
	b.Run("Vector", func(b *testing.B) {
		v := NewFilled(1<<20, int64(1))
		defer v.Release()
		runtime.GC()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			runtime.GC()
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		s := slices.Repeat([]int64{1}, 1<<20)
		runtime.GC()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			runtime.GC()
		}
		runtime.KeepAlive(s)
	})
}

func BenchmarkArrayFill(b *testing.B) {
	a := NewArray[int32](4096)
	defer a.Release()
	for i := 0; i < b.N; i++ {
		a.Fill(int32(i))
	}
}
