package grid

import "strconv"

type testItem struct {
	id     string
	letter string
}

func (t testItem) ItemID() string       { return t.id }
func (t testItem) LetterBucket() string { return t.letter }

// makeItems returns n items with ids "0".."n-1", all in bucket "A".
func makeItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = testItem{id: strconv.Itoa(i), letter: "A"}
	}
	return items
}

func openIDs(ids ...string) func(string) bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return func(id string) bool { return set[id] }
}
