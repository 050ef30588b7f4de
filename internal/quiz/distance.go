package quiz

// EditDistance returns the Levenshtein distance between a and b: the minimum
// number of single-character insertions, deletions and substitutions needed to
// turn a into b. Characters are Unicode code points.
//
// Only two rows of the DP table are kept, each as long as the shorter input,
// so memory stays linear for long verses.
func EditDistance(a, b string) int {
	long, short := []rune(a), []rune(b)
	if len(short) > len(long) {
		long, short = short, long
	}
	if len(short) == 0 {
		return len(long)
	}

	// prev and cur share one arena; cur[i] is the distance between
	// long[:j] and short[:i].
	width := len(short) + 1
	arena := make([]int, 2*width)
	prev, cur := arena[:width], arena[width:]
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(long); j++ {
		cur[0] = j
		for i := 1; i < width; i++ {
			if long[j-1] == short[i-1] {
				cur[i] = prev[i-1]
				continue
			}
			cur[i] = 1 + min(
				prev[i-1], // substitution
				cur[i-1],  // insertion
				prev[i],   // deletion
			)
		}
		prev, cur = cur, prev
	}

	return prev[width-1]
}
