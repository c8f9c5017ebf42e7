package grid

// MinRailLetters is the number of populated letters below which an alphabet
// rail is not worth showing.
const MinRailLetters = 10

// DefaultAlphabet is the rail used for title-sorted libraries: "#" for
// anything that does not start with a letter, then A to Z.
var DefaultAlphabet = []string{
	"#", "A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
}

// Rail is the per-letter index of an item sequence.
type Rail struct {
	alphabet []string
	counts   map[string]int
	first    map[string]int
}

// BuildRail counts the items in each letter bucket and remembers the first
// index of each. Every letter of alphabet gets a count, zero when absent;
// buckets outside the alphabet are counted too but never listed.
func BuildRail(items []Item, alphabet []string) *Rail {
	r := &Rail{
		alphabet: alphabet,
		counts:   make(map[string]int, len(alphabet)),
		first:    make(map[string]int, len(alphabet)),
	}
	for _, letter := range alphabet {
		r.counts[letter] = 0
	}
	for i, item := range items {
		b := item.LetterBucket()
		if _, seen := r.first[b]; !seen {
			r.first[b] = i
		}
		r.counts[b]++
	}
	return r
}

// Alphabet returns the letters the rail was built for, in rail order.
func (r *Rail) Alphabet() []string {
	return r.alphabet
}

// Count returns the number of items in letter's bucket.
func (r *Rail) Count(letter string) int {
	return r.counts[letter]
}

// Counts returns a copy of the per-letter counts.
func (r *Rail) Counts() map[string]int {
	out := make(map[string]int, len(r.counts))
	for k, v := range r.counts {
		out[k] = v
	}
	return out
}

// FirstIndex returns the first item index in letter's bucket, or -1.
func (r *Rail) FirstIndex(letter string) int {
	if i, ok := r.first[letter]; ok {
		return i
	}
	return -1
}

// Populated returns the alphabet letters with at least one item, in order.
func (r *Rail) Populated() []string {
	var out []string
	for _, letter := range r.alphabet {
		if r.counts[letter] > 0 {
			out = append(out, letter)
		}
	}
	return out
}

// Meaningful reports whether enough letters are populated for the rail to
// help navigation.
func (r *Rail) Meaningful() bool {
	return len(r.Populated()) >= MinRailLetters
}

// ActiveLetter returns the bucket of the item in the middle of the visible
// range, or "" when the range is empty.
func ActiveLetter(items []Item, vr VisibleRange) string {
	if vr.Len() <= 0 || vr.Start < 0 || vr.End > len(items) {
		return ""
	}
	return items[vr.Start+(vr.End-vr.Start)/2].LetterBucket()
}
