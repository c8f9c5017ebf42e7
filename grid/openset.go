package grid

// OpenPolicy controls how many items may be expanded at once.
type OpenPolicy int

const (
	// SingleOpen allows at most one open item. Opening another replaces it.
	SingleOpen OpenPolicy = iota
	// MultiOpen allows any number of open items.
	MultiOpen
)

// String returns the config name of the policy.
func (p OpenPolicy) String() string {
	if p == MultiOpen {
		return "multi"
	}
	return "single"
}

// ParseOpenPolicy maps a config value to a policy, defaulting to SingleOpen.
func ParseOpenPolicy(s string) OpenPolicy {
	if s == "multi" {
		return MultiOpen
	}
	return SingleOpen
}

// OpenSet holds the ids of the currently expanded items.
type OpenSet struct {
	policy  OpenPolicy
	ids     map[string]struct{}
	order   []string
	version uint64
}

// NewOpenSet creates an empty open set with the given policy.
func NewOpenSet(policy OpenPolicy) *OpenSet {
	return &OpenSet{
		policy: policy,
		ids:    make(map[string]struct{}),
	}
}

// Policy returns the open policy.
func (s *OpenSet) Policy() OpenPolicy {
	return s.policy
}

// SetPolicy changes the policy. Switching to SingleOpen keeps only the most
// recently opened id.
func (s *OpenSet) SetPolicy(policy OpenPolicy) {
	s.policy = policy
	if policy == SingleOpen && len(s.order) > 1 {
		keep := s.order[len(s.order)-1]
		s.reset()
		s.add(keep)
	}
}

// Has reports whether id is open.
func (s *OpenSet) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of open ids.
func (s *OpenSet) Len() int {
	return len(s.order)
}

// IDs returns the open ids in the order they were opened.
func (s *OpenSet) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Version increases on every mutation. Used to memoize derived layouts.
func (s *OpenSet) Version() uint64 {
	return s.version
}

// Toggle opens id if it is closed and closes it if it is open. Under
// SingleOpen, opening replaces whatever was open before.
func (s *OpenSet) Toggle(id string) {
	if s.Has(id) {
		s.remove(id)
		return
	}
	if s.policy == SingleOpen {
		s.reset()
	}
	s.add(id)
}

// Clear closes everything.
func (s *OpenSet) Clear() {
	if len(s.order) == 0 {
		return
	}
	s.reset()
}

// Prune removes every id for which present returns false.
// Returns true if anything was removed.
func (s *OpenSet) Prune(present func(id string) bool) bool {
	removed := false
	for _, id := range s.IDs() {
		if !present(id) {
			s.remove(id)
			removed = true
		}
	}
	return removed
}

func (s *OpenSet) add(id string) {
	s.ids[id] = struct{}{}
	s.order = append(s.order, id)
	s.version++
}

func (s *OpenSet) remove(id string) {
	delete(s.ids, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.version++
}

func (s *OpenSet) reset() {
	s.ids = make(map[string]struct{})
	s.order = s.order[:0]
	s.version++
}
