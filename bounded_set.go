package kahuna

import "strings"

// boundedRecencySet is a capacity-limited set of strings that remembers
// insertion order. Adding past capacity evicts the oldest member. Re-adding
// an existing member is a no-op and keeps its original position.
type boundedRecencySet struct {
	capacity int
	index    map[string]struct{}
	order    []string
}

func newBoundedRecencySet(capacity int) *boundedRecencySet {
	return &boundedRecencySet{
		capacity: capacity,
		index:    make(map[string]struct{}),
	}
}

// parseBoundedRecencySet rebuilds a set from its comma-joined form. Input
// holding more than capacity members is truncated oldest-first as insertion
// proceeds. An empty input yields an empty set.
func parseBoundedRecencySet(serialized string, capacity int) *boundedRecencySet {
	set := newBoundedRecencySet(capacity)
	if serialized == "" {
		return set
	}
	for _, token := range strings.Split(serialized, ",") {
		set.Add(token)
	}
	return set
}

func (s *boundedRecencySet) Add(item string) {
	if _, exists := s.index[item]; exists {
		return
	}
	s.index[item] = struct{}{}
	s.order = append(s.order, item)
	if len(s.order) > s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.index, oldest)
	}
}

func (s *boundedRecencySet) Contains(item string) bool {
	_, exists := s.index[item]
	return exists
}

func (s *boundedRecencySet) Len() int {
	return len(s.order)
}

// Serialize joins the members with "," in insertion order.
func (s *boundedRecencySet) Serialize() string {
	return strings.Join(s.order, ",")
}
