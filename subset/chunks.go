package subset

// Range is a half-open interval [Lo, Hi) of subset counters assigned to
// one worker. Workers walk their range independently and publish one
// partial accumulator each; the caller combines partials in Range order
// so the final reduction is deterministic for a fixed chunk layout.
type Range struct {
	Lo uint64 // first counter in the chunk (inclusive)
	Hi uint64 // one past the last counter (exclusive)
}

// Len returns the number of counters in the range.
func (r Range) Len() uint64 { return r.Hi - r.Lo }

// Partition splits [0, total) into at most chunks contiguous ranges of
// near-equal length. The layout depends only on (total, chunks):
// re-running with the same arguments yields the same boundaries, which
// keeps floating-point reductions bit-reproducible per worker count.
// chunks < 1 is treated as 1; empty ranges are never produced.
// Complexity: O(chunks).
func Partition(total uint64, chunks int) []Range {
	if chunks < 1 {
		chunks = 1
	}
	if total == 0 {
		return nil
	}
	if uint64(chunks) > total {
		chunks = int(total)
	}
	out := make([]Range, 0, chunks)
	size := total / uint64(chunks)
	rem := total % uint64(chunks)
	lo := uint64(0)
	for i := 0; i < chunks; i++ {
		hi := lo + size
		if uint64(i) < rem {
			hi++ // spread the remainder over the leading chunks
		}
		out = append(out, Range{Lo: lo, Hi: hi})
		lo = hi
	}
	return out
}
