package rng

// BitStream wraps an MT19937 generator to hand out one fair ±1 value per
// call, refilling a 32-bit reservoir from the generator on exhaustion. This
// is modeled as a value owned by the caller (the teacher's design notes
// call this out explicitly for the cellular-automaton RNG too, in
// pkg/core/rng.go's RNG wrapper) rather than as process-wide state, so that
// concurrent Sample calls — e.g. the worker pool in cmd/seed-sweep — don't
// share a reservoir.
type BitStream struct {
	gen    *MT19937
	word   uint32
	offset int // next bit to consume, in [0, 32]
}

// NewBitStream wraps gen in a fresh, exhausted reservoir — the first Next()
// call draws a word immediately.
func NewBitStream(gen *MT19937) *BitStream {
	return &BitStream{gen: gen, offset: 32}
}

// Reseed reseeds the underlying generator and marks the reservoir exhausted.
// This is mandatory per spec.md §4.3: without forcing a fresh word, bits left
// over from before the seed boundary would keep being consumed, breaking the
// determinism CFTP depends on.
func (b *BitStream) Reseed(seed uint32) {
	b.gen.Seed(seed)
	b.offset = 32
}

// Next returns +1 if the current bit of the reservoir word is set, else -1,
// and advances the cursor, drawing a new word first if the reservoir is
// exhausted.
func (b *BitStream) Next() int {
	if b.offset == 32 {
		b.word = b.gen.Uint32()
		b.offset = 0
	}
	bit := (b.word >> uint(b.offset)) & 1
	b.offset++
	if bit == 1 {
		return 1
	}
	return -1
}
