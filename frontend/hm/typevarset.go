package hm

import (
	"slices"
	"sort"
	"strings"

	"github.com/xtgo/set"
)

// TypeVarSet is a sorted slice of type variables without duplicates.
//
// Set operations are done in place on a fresh concatenation of both
// operands, so receivers are never modified.
type TypeVarSet []TypeVar

func (s TypeVarSet) Len() int           { return len(s) }
func (s TypeVarSet) Less(i, j int) bool { return s[i] < s[j] }
func (s TypeVarSet) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

func (s TypeVarSet) Union(other TypeVarSet) TypeVarSet {
	if len(other) == 0 {
		return s
	}
	if len(s) == 0 {
		return other
	}
	data := append(slices.Clone(s), other...)
	return data[:set.Union(data, len(s))]
}

func (s TypeVarSet) Contains(v TypeVar) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= v })
	return i < len(s) && s[i] == v
}

func (s TypeVarSet) String() string {
	names := make([]string, len(s))
	for i, v := range s {
		names[i] = string(v)
	}
	return "{" + strings.Join(names, ", ") + "}"
}
