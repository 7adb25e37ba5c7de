package match

// matcher holds the state for one similarity computation: the two
// rune sequences being compared and an index of every rune's
// positions in b.
type matcher struct {
	a, b []rune
	b2j  map[rune][]int
}

func newMatcher(a, b string) *matcher {
	m := &matcher{a: []rune(a), b: []rune(b)}
	m.b2j = make(map[rune][]int, len(m.b))
	for j, r := range m.b {
		m.b2j[r] = append(m.b2j[r], j)
	}
	return m
}

// longestMatch finds the longest block common to a[alo:ahi] and
// b[blo:bhi]. Ties go to the block starting earliest in a, then
// earliest in b.
func (m *matcher) longestMatch(alo, ahi, blo, bhi int) (besti, bestj, size int) {
	besti, bestj = alo, blo

	// j2len[j] is the length of the common block ending at a[i] and
	// b[j], carried over from the previous row.
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		next := make(map[int]int)
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > size {
				besti, bestj, size = i-k+1, j-k+1, k
			}
		}
		j2len = next
	}

	return besti, bestj, size
}

// matchedTotal counts the runes covered by all matching blocks
// between a[alo:ahi] and b[blo:bhi]: the longest common block plus,
// recursively, the blocks to its left and right.
func (m *matcher) matchedTotal(alo, ahi, blo, bhi int) int {
	i, j, k := m.longestMatch(alo, ahi, blo, bhi)
	if k == 0 {
		return 0
	}
	return k + m.matchedTotal(alo, i, blo, j) + m.matchedTotal(i+k, ahi, j+k, bhi)
}

// Ratio computes a character-level similarity between two strings as
// twice the number of characters in matching blocks divided by the
// total length of both strings.
//
// The result is in [0, 1], symmetric in its arguments, 1 exactly when
// the strings are equal, and 1 for two empty strings.
func Ratio(a, b string) float64 {
	// Block selection is order-sensitive for some tie patterns, so
	// fix a canonical argument order to keep the measure symmetric.
	if len(a) > len(b) || (len(a) == len(b) && a > b) {
		a, b = b, a
	}

	m := newMatcher(a, b)
	total := len(m.a) + len(m.b)
	if total == 0 {
		return 1
	}

	matched := m.matchedTotal(0, len(m.a), 0, len(m.b))
	return 2 * float64(matched) / float64(total)
}
