package rules

import (
	"automapper/ref"
)

// Rule is an explicit instruction for producing one destination property.
//
// When both From and Resolver are set, From takes precedence whenever the
// source is of the From owner type; the resolver covers any other source.
// Converter only applies together with From.
type Rule struct {
	For       ref.Property
	From      *ref.Property
	Converter TypeConverter
	Resolver  ValueResolver
}

// HasSource reports whether the rule reads a source property.
func (r *Rule) HasSource() bool {
	return r.From != nil
}

// AppliesTo reports whether the rule's source property belongs to the
// given source type. Rules without a source property apply to any source.
func (r *Rule) AppliesTo(sourceType string) bool {
	return r.From == nil || r.From.Owner == sourceType
}

// String renders the rule for logs and diagnostics.
func (r *Rule) String() string {
	switch {
	case r.From != nil && r.Converter != nil:
		return r.For.String() + " <- convert(" + r.From.String() + ")"
	case r.From != nil:
		return r.For.String() + " <- " + r.From.String()
	case r.Resolver != nil:
		return r.For.String() + " <- resolve(source)"
	default:
		return r.For.String() + " <- (none)"
	}
}
