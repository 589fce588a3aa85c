package profile

import (
	"errors"
	"fmt"

	"automapper/catalog"
	"automapper/internal/diagnostic"
	"automapper/internal/match"
	"automapper/ref"
)

var (
	// ErrRuleWithoutSource is returned for a rule with neither from nor resolver.
	ErrRuleWithoutSource = errors.New("rule needs from or resolver")
	// ErrConverterAndResolver is returned for a rule carrying both.
	ErrConverterAndResolver = errors.New("rule cannot have both converter and resolver")
)

const maxSuggestions = 3

// Validate checks a profile for structural errors. With a non-nil catalog
// it also checks that every referenced type and property exists.
func Validate(p *Profile, caps Capabilities, cat *catalog.Catalog) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if p == nil {
		res.AddError("profile_is_nil", "profile is nil", "", "")
		return res
	}

	if p.Version != SupportedVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported profile version %q", p.Version), "", "")
	}

	if _, err := Config(p); err != nil {
		res.AddError("invalid_options", err.Error(), "", "")
	}

	if cat != nil {
		for _, name := range p.Types {
			validateTypeName(res, cat, name, "")
		}
	}

	shorthand := make(map[string]struct{}, len(p.OneToOne))
	for dst := range p.OneToOne {
		shorthand[dst] = struct{}{}
	}

	seen := map[string]struct{}{}

	for _, spec := range p.Rules {
		if _, ok := seen[spec.For]; ok && spec.For != "" {
			res.AddError("duplicate_rule", fmt.Sprintf("duplicate rule for %q", spec.For), "", spec.For)
		}

		seen[spec.For] = struct{}{}

		if _, ok := shorthand[spec.For]; ok {
			res.AddWarning("shadowed_shorthand", "rule replaces the 121 entry", "", spec.For)
		}
	}

	for _, spec := range p.AllRules() {
		validateRule(res, p, caps, cat, spec)
	}

	return res
}

func validateRule(res *diagnostic.Diagnostics, p *Profile, caps Capabilities, cat *catalog.Catalog, spec RuleSpec) {
	if spec.For == "" {
		res.AddError("missing_for", "rule must specify for", "", "")
		return
	}

	dst, dstErr := ref.Parse(spec.For)
	if dstErr != nil {
		res.AddError("invalid_reference", dstErr.Error(), "", spec.For)
	}

	var (
		src    ref.Property
		srcErr error
		pair   string
	)

	if spec.From != "" {
		src, srcErr = ref.Parse(spec.From)
		if srcErr != nil {
			res.AddError("invalid_reference", srcErr.Error(), "", spec.From)
		}
	}

	if dstErr == nil && srcErr == nil && spec.From != "" {
		pair = src.Owner + "->" + dst.Owner
	}

	switch {
	case spec.From == "" && spec.Resolver == nil:
		res.AddError("rule_without_source", ErrRuleWithoutSource.Error(), pair, spec.For)
	case spec.Converter != nil && spec.Resolver != nil:
		res.AddError("converter_and_resolver", ErrConverterAndResolver.Error(), pair, spec.For)
	case spec.Converter != nil && spec.From == "":
		res.AddError("converter_without_source", "converter requires from", pair, spec.For)
	}

	if spec.Converter != nil {
		validateConverter(res, caps, *spec.Converter, pair, spec.For)
	}

	if spec.Resolver != nil {
		if _, err := caps.Resolver(*spec.Resolver); err != nil {
			code := "invalid_cel"
			var suggestions []string

			if errors.Is(err, ErrUnknownResolver) {
				code = "unknown_resolver"
				suggestions = match.Suggest(spec.Resolver.Name, caps.ResolverNames(), maxSuggestions)
			}

			res.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticError,
				Code:        code,
				Message:     err.Error(),
				Pair:        pair,
				Property:    spec.For,
				Suggestions: suggestions,
			})
		}
	}

	if len(p.Types) > 0 {
		if dstErr == nil && !p.Types.Contains(dst.Owner) {
			res.AddWarning("undeclared_type", fmt.Sprintf("type %q is not listed in types", dst.Owner), pair, spec.For)
		}

		if spec.From != "" && srcErr == nil && !p.Types.Contains(src.Owner) {
			res.AddWarning("undeclared_type", fmt.Sprintf("type %q is not listed in types", src.Owner), pair, spec.From)
		}
	}

	if cat == nil {
		return
	}

	if dstErr == nil {
		validateProperty(res, cat, dst, pair)
	}

	if spec.From != "" && srcErr == nil {
		validateProperty(res, cat, src, pair)
	}
}

func validateConverter(res *diagnostic.Diagnostics, caps Capabilities, spec ConverterSpec, pair, property string) {
	if spec.Name == ConverterChain {
		if len(spec.Chain) == 0 {
			res.AddError("empty_chain", "chain converter needs at least one converter", pair, property)
		}

		for _, sub := range spec.Chain {
			validateConverter(res, caps, sub, pair, property)
		}

		return
	}

	if _, err := caps.Converter(spec); err != nil {
		res.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticError,
			Code:        "unknown_converter",
			Message:     err.Error(),
			Pair:        pair,
			Property:    property,
			Suggestions: match.Suggest(spec.Name, caps.ConverterNames(), maxSuggestions),
		})
	}
}

func validateTypeName(res *diagnostic.Diagnostics, cat *catalog.Catalog, name, pair string) (*catalog.Descriptor, bool) {
	desc, ok := cat.Lookup(name)
	if ok {
		return desc, true
	}

	res.Add(diagnostic.Diagnostic{
		Severity:    diagnostic.DiagnosticError,
		Code:        "type_not_found",
		Message:     fmt.Sprintf("type %q not found", name),
		Pair:        pair,
		Property:    name,
		Suggestions: match.Suggest(name, catalogNames(cat), maxSuggestions),
	})

	return nil, false
}

func validateProperty(res *diagnostic.Diagnostics, cat *catalog.Catalog, prop ref.Property, pair string) {
	desc, ok := validateTypeName(res, cat, prop.Owner, pair)
	if !ok {
		return
	}

	if _, ok := desc.Property(prop.Name); ok {
		return
	}

	res.Add(diagnostic.Diagnostic{
		Severity:    diagnostic.DiagnosticError,
		Code:        "property_not_found",
		Message:     fmt.Sprintf("property %q not found in %s", prop.Name, prop.Owner),
		Pair:        pair,
		Property:    prop.String(),
		Suggestions: match.Suggest(prop.Name, desc.PropertyNames(), maxSuggestions),
	})
}

func catalogNames(cat *catalog.Catalog) []string {
	descs := cat.Descriptors()
	names := make([]string, len(descs))

	for i, d := range descs {
		names[i] = d.Name
	}

	return names
}
