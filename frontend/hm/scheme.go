package hm

import (
	"strings"
)

// Scheme is a type together with the type variables it is polymorphic over
type Scheme struct {
	Vars []TypeVar
	Type Type
}

func NewScheme(vars []TypeVar, t Type) *Scheme {
	return &Scheme{Vars: vars, Type: t}
}

// Mono returns a scheme with no quantified variables
func Mono(t Type) *Scheme {
	return &Scheme{Type: t}
}

// IsMono reports whether the scheme quantifies no variables
func (s *Scheme) IsMono() bool { return len(s.Vars) == 0 }

// Apply applies subs to the body of the scheme, leaving quantified variables alone
func (s *Scheme) Apply(subs Subs) *Scheme {
	if len(subs) == 0 {
		return s
	}
	if s.IsMono() {
		return &Scheme{Type: subs.Apply(s.Type)}
	}
	filtered := make(Subs, len(subs))
	for v, t := range subs {
		filtered[v] = t
	}
	for _, v := range s.Vars {
		delete(filtered, v)
	}
	return &Scheme{Vars: s.Vars, Type: filtered.Apply(s.Type)}
}

func (s *Scheme) String() string {
	if s.IsMono() {
		return s.Type.String()
	}
	names := make([]string, len(s.Vars))
	for i, v := range s.Vars {
		names[i] = string(v)
	}
	return "forall " + strings.Join(names, " ") + ". " + s.Type.String()
}
