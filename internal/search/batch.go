package search

// batch is a run of consecutive candidates of one length, stored back to back in a single buffer.
type batch struct {
	data   []byte
	ends   []int
	length uint
}

func newBatch(size int) *batch {
	return &batch{ends: make([]int, 0, size)}
}

func (b *batch) reset(length uint) {
	b.data = b.data[:0]
	b.ends = b.ends[:0]
	b.length = length
}

// add appends the candidate made of the given encoded symbols.
func (b *batch) add(symbols [][]byte) {
	for _, symbol := range symbols {
		b.data = append(b.data, symbol...)
	}

	b.ends = append(b.ends, len(b.data))
}

func (b *batch) len() int {
	return len(b.ends)
}

func (b *batch) full() bool {
	return len(b.ends) == cap(b.ends)
}

// at returns the i-th candidate. The slice is only valid until the batch is reset.
func (b *batch) at(i int) []byte {
	start := 0
	if i > 0 {
		start = b.ends[i-1]
	}

	return b.data[start:b.ends[i]]
}
