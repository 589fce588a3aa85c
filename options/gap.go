package options

// GapCategory selects which resolution gaps are recorded in a mapping report.
type GapCategory int

const (
	GapMissingSource      GapCategory = 1 << iota // no rule and no same-named source property, or rule source property missing
	GapUnresolvedType                             // destination property has no usable declared type
	GapTypeMismatch                               // mapped value cannot be assigned to the destination property
	GapSourceTypeMismatch                         // rule source owner differs from the mapped source type
	GapRuleWithoutSource                          // rule has neither a source property nor a resolver
	GapNonObjectSource                            // object destination mapped from a non-object source

	GapAll  GapCategory = (1 << iota) - 1 // all categories combined
	GapNone GapCategory = 0                // no categories selected
)

// Has reports whether c includes every bit of other.
func (c GapCategory) Has(other GapCategory) bool {
	return c&other == other
}

// Code returns the diagnostic code of a single category.
func (c GapCategory) Code() string {
	switch c {
	case GapMissingSource:
		return "missing_source"
	case GapUnresolvedType:
		return "unresolved_type"
	case GapTypeMismatch:
		return "type_mismatch"
	case GapSourceTypeMismatch:
		return "source_type_mismatch"
	case GapRuleWithoutSource:
		return "rule_without_source"
	case GapNonObjectSource:
		return "non_object_source"
	default:
		return "unknown"
	}
}
