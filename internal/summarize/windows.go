package summarize

// windows slides a fixed-size window with overlap over the id sequence.
// Windows never extend past the end; the final window may be short. Callers
// apply this per chapter so windows never cross chapter boundaries.
func windows(ids []int, size, overlap int) [][]int {
	if len(ids) == 0 || size <= 0 {
		return nil
	}
	step := size - overlap
	if step < 1 {
		step = 1
	}

	var out [][]int
	for start := 0; start < len(ids); start += step {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		w := make([]int, end-start)
		copy(w, ids[start:end])
		out = append(out, w)
		if end == len(ids) {
			break
		}
	}
	return out
}
