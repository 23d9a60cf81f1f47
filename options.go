package nostl

import (
	"github.com/pavanmanishd/nostl/rawmem"
)

// Option configures a container at construction.
type Option func(*options)

type options struct {
	initialCapacity int
	policy          GrowthPolicy
	alloc           rawmem.Allocator
}

// WithInitialCapacity sets the capacity a Vector allocates up front.
// Values below 1 select DefaultInitialCapacity.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = DefaultInitialCapacity
		}
		o.initialCapacity = n
	}
}

// WithGrowthPolicy sets the expansion policy of a Vector.
func WithGrowthPolicy(p GrowthPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// withAllocator places scalar element blocks in a instead of rawmem.Default.
func withAllocator(a rawmem.Allocator) Option {
	return func(o *options) {
		o.alloc = a
	}
}

func buildOptions(opts []Option) options {
	o := options{initialCapacity: DefaultInitialCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
