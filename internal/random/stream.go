// Package random provides a seeded pseudo-random stream whose output is
// bit-compatible with the seeded System.Random generator of the .NET runtime
// (Knuth's subtractive method), so catalogs generated by .NET tooling for the
// same seed reproduce exactly.
//
// A Stream is a plain value: it holds no global state and is not safe for
// concurrent use. Construct one per logical sequence.
package random

import "math"

const (
	mbig  = math.MaxInt32
	mseed = 161803398
)

// Stream is a deterministic sequence of draws keyed by an int32 seed.
type Stream struct {
	seedArray [56]int32
	inext     int
	inextp    int
}

// New returns a stream positioned at the start of the sequence for seed.
func New(seed int32) *Stream {
	s := &Stream{}

	subtraction := int32(mbig)
	if seed != math.MinInt32 {
		subtraction = seed
		if subtraction < 0 {
			subtraction = -subtraction
		}
	}

	mj := mseed - subtraction
	s.seedArray[55] = mj
	mk := int32(1)
	ii := 0
	for i := 1; i < 55; i++ {
		if ii += 21; ii >= 55 {
			ii -= 55
		}
		s.seedArray[ii] = mk
		mk = mj - mk
		if mk < 0 {
			mk += mbig
		}
		mj = s.seedArray[ii]
	}

	for k := 1; k < 5; k++ {
		for i := 1; i < 56; i++ {
			n := i + 30
			if n >= 55 {
				n -= 55
			}
			s.seedArray[i] -= s.seedArray[1+n]
			if s.seedArray[i] < 0 {
				s.seedArray[i] += mbig
			}
		}
	}

	s.inext = 0
	s.inextp = 21
	return s
}

// Next returns the next raw draw in [0, math.MaxInt32).
func (s *Stream) Next() int32 {
	locINext := s.inext + 1
	if locINext >= 56 {
		locINext = 1
	}
	locINextp := s.inextp + 1
	if locINextp >= 56 {
		locINextp = 1
	}

	v := s.seedArray[locINext] - s.seedArray[locINextp]
	if v == mbig {
		v--
	}
	if v < 0 {
		v += mbig
	}

	s.seedArray[locINext] = v
	s.inext = locINext
	s.inextp = locINextp
	return v
}

// Float64 returns a draw in [0.0, 1.0).
func (s *Stream) Float64() float64 {
	return float64(s.Next()) * (1.0 / mbig)
}

// IntN returns a draw in [0, n). It panics if n <= 0.
func (s *Stream) IntN(n int) int {
	if n <= 0 {
		panic("random: invalid argument to IntN")
	}
	return int(s.Float64() * float64(n))
}

// IntRange returns a draw in [lo, hi). It panics if hi <= lo or the range
// exceeds math.MaxInt32.
func (s *Stream) IntRange(lo, hi int) int {
	span := int64(hi) - int64(lo)
	if span <= 0 || span > mbig {
		panic("random: invalid argument to IntRange")
	}
	return int(s.Float64()*float64(span)) + lo
}

// Pick returns a uniformly drawn element of words. It panics on an empty slice.
func (s *Stream) Pick(words []string) string {
	return words[s.IntN(len(words))]
}
