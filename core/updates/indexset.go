package updates

import (
	"encoding/json"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// IndexSet is a set of section or row indexes.
// The zero value is an empty set. Iteration through Sorted is always ascending.
type IndexSet struct {
	set mapset.Set[int]
}

// NewIndexSet returns a set holding the given indexes.
func NewIndexSet(indexes ...int) IndexSet {
	return IndexSet{set: mapset.NewThreadUnsafeSet(indexes...)}
}

// Len returns the number of indexes in the set.
func (s IndexSet) Len() int {
	if s.set == nil {
		return 0
	}
	return s.set.Cardinality()
}

// IsEmpty reports whether the set holds no index.
func (s IndexSet) IsEmpty() bool {
	return s.Len() == 0
}

// Contains reports whether index is in the set.
func (s IndexSet) Contains(index int) bool {
	if s.set == nil {
		return false
	}
	return s.set.Contains(index)
}

// Sorted returns the indexes in ascending order.
func (s IndexSet) Sorted() []int {
	if s.set == nil {
		return []int{}
	}
	out := s.set.ToSlice()
	slices.Sort(out)
	return out
}

// Clone returns an independent copy of the set.
func (s IndexSet) Clone() IndexSet {
	if s.set == nil {
		return NewIndexSet()
	}
	return IndexSet{set: s.set.Clone()}
}

// Union returns a new set holding the indexes of both sets.
func (s IndexSet) Union(other IndexSet) IndexSet {
	out := s.Clone()
	if other.set != nil {
		out.set.Append(other.set.ToSlice()...)
	}
	return out
}

// Shift returns a new set with by added to every index.
func (s IndexSet) Shift(by int) IndexSet {
	out := NewIndexSet()
	for _, i := range s.Sorted() {
		out.set.Add(i + by)
	}
	return out
}

// Equal reports whether both sets hold the same indexes.
// A zero set equals an empty one.
func (s IndexSet) Equal(other IndexSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	if s.Len() == 0 {
		return true
	}
	return s.set.Equal(other.set)
}

// insert and remove mutate the set in place. Only call them on a set owned by the caller.
func (s *IndexSet) insert(index int) {
	if s.set == nil {
		s.set = mapset.NewThreadUnsafeSet[int]()
	}
	s.set.Add(index)
}

func (s *IndexSet) remove(index int) {
	if s.set != nil {
		s.set.Remove(index)
	}
}

// MarshalJSON encodes the set as a sorted array.
func (s IndexSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes an array of indexes. Duplicates collapse.
func (s *IndexSet) UnmarshalJSON(data []byte) error {
	var indexes []int
	if err := json.Unmarshal(data, &indexes); err != nil {
		return err
	}
	*s = NewIndexSet(indexes...)
	return nil
}
