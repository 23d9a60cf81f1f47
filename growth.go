package nostl

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

// GrowthPolicy is a set of flags selecting how a Vector expands when an
// append finds it full.
type GrowthPolicy uint8

const (
	// GrowthNormal grows small vectors by 1.5x and large ones by 1.1x.
	GrowthNormal GrowthPolicy = 0
	// GrowthRestrictive forces the 1.1x factor regardless of size.
	GrowthRestrictive GrowthPolicy = 1 << 0
)

const (
	// DefaultInitialCapacity is the capacity a Vector allocates up front.
	DefaultInitialCapacity = 2

	// LargeCapacity is the capacity from which growth drops to 1.1x.
	LargeCapacity = 1000
)

// Has reports whether every flag in f is set in p.
func (p GrowthPolicy) Has(f GrowthPolicy) bool {
	return p&f == f
}

func (p GrowthPolicy) String() string {
	if p == GrowthNormal {
		return "normal"
	}
	var flags []string
	if p.Has(GrowthRestrictive) {
		flags = append(flags, "restrictive")
	}
	if rest := p &^ GrowthRestrictive; rest != 0 {
		flags = append(flags, "unknown")
	}
	return strings.Join(flags, "|")
}

// NextCapacity returns the capacity a full vector of the given capacity grows
// to: ceil(capacity*1.1) when policy is restrictive or capacity is at least
// LargeCapacity, ceil(capacity*1.5) otherwise. The result is always greater
// than capacity, so an empty block grows to one slot.
func NextCapacity(capacity int, policy GrowthPolicy) int {
	var next int
	if policy.Has(GrowthRestrictive) || capacity >= LargeCapacity {
		if capacity > (math.MaxInt-9)/11 {
			assertf(ErrInvalidCapacity, "capacity %d cannot grow", capacity)
		}
		next = (capacity*11 + 9) / 10
	} else {
		next = (capacity*3 + 1) / 2
	}
	if next <= capacity {
		next = capacity + 1
	}
	return next
}

// ParseGrowthPolicy returns the policy named by s: "normal" (or empty) or
// "restrictive".
func ParseGrowthPolicy(s string) (GrowthPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return GrowthNormal, nil
	case "restrictive":
		return GrowthRestrictive, nil
	}
	return GrowthNormal, errors.Newf("unknown growth policy %q", s)
}
