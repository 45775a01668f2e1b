package stochastic

import "math"

// Series is a realized sample path: a fixed-length ordered sequence of
// real values. A Series is never mutated after it is produced.
type Series []float64

func (s Series) Clone() Series {
	c := make(Series, len(s))
	copy(c, s)
	return c
}

func (s Series) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s Series) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s {
		sum += v
	}
	return sum / float64(len(s))
}

// Variance returns the sample variance (n-1 denominator).
func (s Series) Variance() float64 {
	if len(s) < 2 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, v := range s {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(s)-1)
}

func (s Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

func (s Series) Min() float64 {
	if len(s) == 0 {
		return math.NaN()
	}
	min := s[0]
	for _, v := range s[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

func (s Series) Max() float64 {
	if len(s) == 0 {
		return math.NaN()
	}
	max := s[0]
	for _, v := range s[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Diff returns the first difference y[t] - y[t-1], one element shorter
// than the input.
func (s Series) Diff() Series {
	if len(s) < 2 {
		return Series{}
	}
	out := make(Series, len(s)-1)
	for t := 1; t < len(s); t++ {
		out[t-1] = s[t] - s[t-1]
	}
	return out
}

// CumSum returns the running sum of the series.
func (s Series) CumSum() Series {
	out := make(Series, len(s))
	sum := 0.0
	for i, v := range s {
		sum += v
		out[i] = sum
	}
	return out
}
