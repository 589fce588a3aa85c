// Package ref identifies a property by its owning type and name.
//
// A reference is written "Owner::Name", for example
// "warehouse.Customer::Email". The owner may be package qualified with "."
// or "/", but a reference holds exactly one "::" separator.
package ref

import (
	"errors"
	"fmt"
	"strings"
)

// Separator divides the owner and the property name.
const Separator = "::"

// ErrMalformed is returned when a reference string cannot be parsed.
var ErrMalformed = errors.New("malformed property reference")

// Property is a comparable (owner, name) pair. It is safe to use as a map key.
type Property struct {
	Owner string
	Name  string
}

// New builds a Property from its parts.
func New(owner, name string) (Property, error) {
	if owner == "" || name == "" {
		return Property{}, fmt.Errorf("%w: %q", ErrMalformed, owner+Separator+name)
	}

	return Property{Owner: owner, Name: name}, nil
}

// Parse parses "Owner::Name".
func Parse(s string) (Property, error) {
	idx := strings.Index(s, Separator)
	if idx < 0 {
		return Property{}, fmt.Errorf("%w: %q: missing %q", ErrMalformed, s, Separator)
	}

	if strings.Contains(s[idx+len(Separator):], Separator) {
		return Property{}, fmt.Errorf("%w: %q: more than one %q", ErrMalformed, s, Separator)
	}

	owner := strings.TrimSpace(s[:idx])
	name := strings.TrimSpace(s[idx+len(Separator):])

	if owner == "" || name == "" {
		return Property{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	return Property{Owner: owner, Name: name}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Property {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return p
}

// String renders the reference as "Owner::Name".
func (p Property) String() string {
	return p.Owner + Separator + p.Name
}

// IsZero reports whether p is the zero reference.
func (p Property) IsZero() bool {
	return p.Owner == "" && p.Name == ""
}
