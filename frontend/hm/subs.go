package hm

import (
	"maps"
	"slices"
	"strings"
)

// Subs maps type variables to the types they stand for.
//
// A Subs is never modified once returned: Compose and friends build new maps.
type Subs map[TypeVar]Type

// Singleton returns the substitution binding only v to t
func Singleton(v TypeVar, t Type) Subs {
	return Subs{v: t}
}

// Apply applies s to t
func (s Subs) Apply(t Type) Type {
	if len(s) == 0 {
		return t
	}
	return t.Apply(s)
}

// Get returns the type bound to v, if any
func (s Subs) Get(v TypeVar) (Type, bool) {
	t, ok := s[v]
	return t, ok
}

// Compose returns s1 ∘ s2: s1 is applied to every type in the range of s2,
// and s1's own bindings win where both bind the same variable.
//
// Applying the result is the same as applying s2 and then s1.
func Compose(s1, s2 Subs) Subs {
	result := make(Subs, len(s1)+len(s2))
	for v, t := range s2 {
		result[v] = s1.Apply(t)
	}
	maps.Copy(result, s1)
	return result
}

// String renders the substitution with its variables in order
func (s Subs) String() string {
	vars := slices.Sorted(maps.Keys(s))
	sb := strings.Builder{}
	sb.WriteString("{")
	for i, v := range vars {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(string(v))
		sb.WriteString(": ")
		sb.WriteString(s[v].String())
	}
	sb.WriteString("}")
	return sb.String()
}
