package hasher

// Bin maps v into one of length bins spanning [0, maxValue). Values at or above
// maxValue, +Inf and NaN go to the last bin; negative values go to bin 0.
func Bin(length int, maxValue, v float64) int {
	if !(v < maxValue) {
		return length - 1
	}
	if v <= 0 {
		return 0
	}

	j := int(float64(length) * v / maxValue)
	if j >= length {
		return length - 1
	}
	return j
}

// Histogram accumulates invariant samples for learning a discretization.
type Histogram struct {
	counts   []int
	maxValue float64
}

// NewHistogram creates a histogram with length bins over [0, maxValue).
func NewHistogram(length int, maxValue float64) *Histogram {
	return &Histogram{
		counts:   make([]int, length),
		maxValue: maxValue,
	}
}

// Add records one sample.
func (h *Histogram) Add(v float64) {
	h.counts[Bin(len(h.counts), h.maxValue, v)]++
}

// AddAll records every sample in vs.
func (h *Histogram) AddAll(vs []float64) {
	for _, v := range vs {
		h.Add(v)
	}
}

// Merge adds the counts of other, which must have the same shape.
func (h *Histogram) Merge(other *Histogram) {
	for i, c := range other.counts {
		h.counts[i] += c
	}
}

// Counts returns the bin counts. The slice is owned by the histogram.
func (h *Histogram) Counts() []int {
	return h.counts
}

// MaxValue returns the upper bound of the binned range.
func (h *Histogram) MaxValue() float64 {
	return h.maxValue
}

// Total returns the number of samples.
func (h *Histogram) Total() int {
	return total(h.counts)
}

// LastBinFraction returns the share of samples in the last bin, or 0 when empty.
// A large share means maxValue is too small for the data.
func (h *Histogram) LastBinFraction() float64 {
	n := h.Total()
	if n == 0 {
		return 0
	}
	return float64(h.counts[len(h.counts)-1]) / float64(n)
}

func total(counts []int) int {
	n := 0
	for _, c := range counts {
		n += c
	}
	return n
}
