package tetris

import "math/rand/v2"

// Randomizer produces the sequence of upcoming variants.
// Next never runs dry: implementations refill before returning.
type Randomizer interface {
	// Next removes and returns the front of the sequence.
	Next() Variant
	// Peek returns up to n upcoming variants without consuming them.
	Peek(n int) []Variant
}

// lookahead is the minimum number of queued variants every randomizer
// keeps, which bounds the preview length.
const lookahead = variantCount

// Bag is the 7-bag randomizer. The queue is refilled with a shuffled
// permutation of all seven variants whenever fewer than seven remain, so a
// variant never comes back before the other six have been dealt from its
// bag.
type Bag struct {
	rng   *rand.Rand
	queue []Variant
}

// NewBag creates a bag randomizer drawing from rng.
func NewBag(rng *rand.Rand) *Bag {
	b := &Bag{rng: rng}
	b.fill()
	return b
}

func (b *Bag) fill() {
	for len(b.queue) < lookahead {
		bag := Variants
		b.rng.Shuffle(len(bag), func(i, j int) {
			bag[i], bag[j] = bag[j], bag[i]
		})
		b.queue = append(b.queue, bag[:]...)
	}
}

// Next returns the next variant.
func (b *Bag) Next() Variant {
	v := b.queue[0]
	b.queue = b.queue[1:]
	b.fill()
	return v
}

// Peek returns up to n upcoming variants.
func (b *Bag) Peek(n int) []Variant {
	return peek(b.queue, n)
}

// Len returns the number of variants currently queued.
func (b *Bag) Len() int {
	return len(b.queue)
}

// Uniform draws every variant independently with equal probability.
type Uniform struct {
	rng   *rand.Rand
	queue []Variant
}

// NewUniform creates a uniform randomizer drawing from rng.
func NewUniform(rng *rand.Rand) *Uniform {
	u := &Uniform{rng: rng}
	u.fill()
	return u
}

func (u *Uniform) fill() {
	for len(u.queue) < lookahead {
		u.queue = append(u.queue, Variants[u.rng.IntN(variantCount)])
	}
}

// Next returns the next variant.
func (u *Uniform) Next() Variant {
	v := u.queue[0]
	u.queue = u.queue[1:]
	u.fill()
	return v
}

// Peek returns up to n upcoming variants.
func (u *Uniform) Peek(n int) []Variant {
	return peek(u.queue, n)
}

// Sequence deals a fixed list of variants in order, starting over when it
// reaches the end. It is useful for puzzles, replays and tests.
type Sequence struct {
	variants []Variant
	pos      int
}

// NewSequence creates a randomizer that cycles through variants.
// It panics if variants is empty.
func NewSequence(variants ...Variant) *Sequence {
	if len(variants) == 0 {
		panic("tetris: empty sequence")
	}
	return &Sequence{variants: variants}
}

// Next returns the next variant.
func (s *Sequence) Next() Variant {
	v := s.variants[s.pos]
	s.pos = (s.pos + 1) % len(s.variants)
	return v
}

// Peek returns the next n variants.
func (s *Sequence) Peek(n int) []Variant {
	out := make([]Variant, 0, max(n, 0))
	for i := range max(n, 0) {
		out = append(out, s.variants[(s.pos+i)%len(s.variants)])
	}
	return out
}

func peek(queue []Variant, n int) []Variant {
	n = min(max(n, 0), len(queue))
	out := make([]Variant, n)
	copy(out, queue)
	return out
}

// newRand returns a PCG-backed source. A zero seed picks one at random.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
