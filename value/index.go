package value

// NormalizeIndex resolves a possibly-negative index i against a
// collection of the given length into [0, length). It reports ok
// false when the resolved index still falls outside that range; the
// caller is responsible for raising the length-specific diagnostic
// (901 for lists, 902 for strings).
func NormalizeIndex(i, length int) (idx int, ok bool) {
	if i < 0 {
		i += length
	}
	if i < 0 || i >= length {
		return 0, false
	}
	return i, true
}

// SliceBounds is a resolved, clamped [start, stop) range with a step,
// ready to drive an iteration loop. NormalizeSlice reports an empty
// result via its empty bool; for a nonzero step the empty bounds also
// have Start == Stop. For step 0 it returns the zero SliceBounds
// (Step 0) together with empty == true.
type SliceBounds struct {
	Start, Stop, Step int
}

// NormalizeSlice fills in Python-style slice defaults and resolves a
// [start:stop:step] slice against a collection of the given length.
// start, stop and step are nil for the "None" (omitted) sentinel.
// Step 0 yields an empty result.
func NormalizeSlice(length int, start, stop, step *int) (bounds SliceBounds, empty bool) {
	st := 1
	if step != nil {
		st = *step
	}
	if st == 0 {
		return SliceBounds{}, true
	}

	var lo, hi int
	if st > 0 {
		lo, hi = 0, length
	} else {
		lo, hi = -1, length-1
	}

	resolve := func(v int) int {
		if v < 0 {
			v += length
		}
		return v
	}
	clamp := func(v int) int {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}

	var startV, stopV int
	if start == nil {
		if st > 0 {
			startV = 0
		} else {
			startV = length - 1
		}
	} else {
		startV = clamp(resolve(*start))
	}
	if stop == nil {
		if st > 0 {
			stopV = length
		} else {
			stopV = -1
		}
	} else {
		stopV = clamp(resolve(*stop))
	}

	if st > 0 && startV >= stopV {
		return SliceBounds{Start: startV, Stop: startV, Step: st}, true
	}
	if st < 0 && startV <= stopV {
		return SliceBounds{Start: startV, Stop: startV, Step: st}, true
	}
	return SliceBounds{Start: startV, Stop: stopV, Step: st}, false
}
