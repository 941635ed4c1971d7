package regexlib

import (
	"sort"
	"strconv"
	"strings"
)

// PosSet is an immutable set of positions (or NFA state ids) kept as a
// sorted slice, so that equal sets always produce the same Key.
type PosSet struct {
	members []int
}

func NewPosSet(members ...int) PosSet {
	if len(members) == 0 {
		return PosSet{}
	}
	m := append([]int(nil), members...)
	sort.Ints(m)
	// dedup in place
	out := m[:1]
	for _, v := range m[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return PosSet{members: out}
}

func (s PosSet) Len() int    { return len(s.members) }
func (s PosSet) Empty() bool { return len(s.members) == 0 }

func (s PosSet) Has(p int) bool {
	i := sort.SearchInts(s.members, p)
	return i < len(s.members) && s.members[i] == p
}

// Members returns the positions in ascending order. The slice is a copy.
func (s PosSet) Members() []int {
	return append([]int(nil), s.members...)
}

// Union returns a new set; neither operand is modified.
func (s PosSet) Union(o PosSet) PosSet {
	if s.Empty() {
		return o
	}
	if o.Empty() {
		return s
	}
	merged := make([]int, 0, len(s.members)+len(o.members))
	i, j := 0, 0
	for i < len(s.members) && j < len(o.members) {
		a, b := s.members[i], o.members[j]
		switch {
		case a < b:
			merged = append(merged, a)
			i++
		case b < a:
			merged = append(merged, b)
			j++
		default:
			merged = append(merged, a)
			i++
			j++
		}
	}
	merged = append(merged, s.members[i:]...)
	merged = append(merged, o.members[j:]...)
	return PosSet{members: merged}
}

func (s PosSet) Equal(o PosSet) bool {
	if len(s.members) != len(o.members) {
		return false
	}
	for i, v := range s.members {
		if o.members[i] != v {
			return false
		}
	}
	return true
}

// Key is a canonical string form used for exact-equality state lookup.
func (s PosSet) Key() string {
	var b strings.Builder
	for i, v := range s.members {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

func (s PosSet) String() string {
	return "{" + s.Key() + "}"
}
