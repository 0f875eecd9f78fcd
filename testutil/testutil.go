package testutil

import (
	"math/rand"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Indices returns n pseudo-random indices in [0, capacity).
// Duplicates are possible.
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Indices(n, capacity int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(capacity)
	}
	return out
}

// Oracle is a reference bit set backed by a roaring bitmap.
// The zero value is empty and ready to use. It is not thread-safe.
type Oracle struct {
	bm *roaring.Bitmap
}

// NewOracle returns an oracle holding the given indices.
func NewOracle(indices ...int) *Oracle {
	o := &Oracle{}
	for _, i := range indices {
		o.Set(i)
	}
	return o
}

func (o *Oracle) bitmap() *roaring.Bitmap {
	if o.bm == nil {
		o.bm = roaring.New()
	}
	return o.bm
}

// Set adds index i.
func (o *Oracle) Set(i int) {
	o.bitmap().Add(uint32(i))
}

// Unset removes index i.
func (o *Oracle) Unset(i int) {
	o.bitmap().Remove(uint32(i))
}

// SetRange adds every index in [start, end).
func (o *Oracle) SetRange(start, end int) {
	o.bitmap().AddRange(uint64(start), uint64(end))
}

// Contains reports whether index i is present.
func (o *Oracle) Contains(i int) bool {
	return o.bitmap().Contains(uint32(i))
}

// Union adds every index of other.
func (o *Oracle) Union(other *Oracle) {
	o.bitmap().Or(other.bitmap())
}

// Difference removes every index of other.
func (o *Oracle) Difference(other *Oracle) {
	o.bitmap().AndNot(other.bitmap())
}

// Cardinality returns the number of indices present.
func (o *Oracle) Cardinality() int {
	return int(o.bitmap().GetCardinality())
}

// IsEmpty reports whether no index is present.
func (o *Oracle) IsEmpty() bool {
	return o.bitmap().IsEmpty()
}

// Indices returns the present indices in increasing order.
func (o *Oracle) Indices() []int {
	vals := o.bitmap().ToArray()
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = int(v)
	}
	return out
}

// Clone returns an independent copy.
func (o *Oracle) Clone() *Oracle {
	return &Oracle{bm: o.bitmap().Clone()}
}

// Matches reports whether isSet agrees with the oracle on every index in [0, capacity).
func (o *Oracle) Matches(isSet func(int) bool, capacity int) bool {
	for i := 0; i < capacity; i++ {
		if isSet(i) != o.Contains(i) {
			return false
		}
	}
	return true
}

// Mismatches returns the indices in [0, capacity) where isSet and the oracle disagree.
func (o *Oracle) Mismatches(isSet func(int) bool, capacity int) []int {
	var out []int
	for i := 0; i < capacity; i++ {
		if isSet(i) != o.Contains(i) {
			out = append(out, i)
		}
	}
	return out
}
