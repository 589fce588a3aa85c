package profile

import (
	"fmt"
	"strings"

	"automapper/engine"
	"automapper/options"
	"automapper/primitive"
	"automapper/ref"
	"automapper/rules"
)

// Apply registers every rule of p on b. It stops at the first rule that
// cannot be built; run Validate first for a complete report.
func Apply(p *Profile, b *rules.Builder, caps Capabilities) error {
	for _, spec := range p.AllRules() {
		if err := applyRule(spec, b, caps); err != nil {
			return fmt.Errorf("rule %s: %w", spec.For, err)
		}
	}

	return nil
}

func applyRule(spec RuleSpec, b *rules.Builder, caps Capabilities) error {
	var (
		conv rules.TypeConverter
		res  rules.ValueResolver
		err  error
	)

	if spec.Converter != nil {
		if conv, err = caps.Converter(*spec.Converter); err != nil {
			return err
		}
	}

	if spec.Resolver != nil {
		if res, err = caps.Resolver(*spec.Resolver); err != nil {
			return err
		}
	}

	switch {
	case spec.From == "" && res != nil:
		return b.WithResolver(spec.For, res)
	case spec.From == "":
		return ErrRuleWithoutSource
	case conv != nil && res != nil:
		return ErrConverterAndResolver
	case conv != nil:
		return b.WithConverter(spec.For, spec.From, conv)
	case res != nil:
		for _, r := range []string{spec.For, spec.From} {
			if _, err := ref.Parse(r); err != nil {
				return err
			}
		}

		b.ForMember(spec.For).FromMember(spec.From).ResolveUsing(res)

		return nil
	default:
		return b.Direct(spec.For, spec.From)
	}
}

// Build applies p to a fresh builder and freezes it.
func Build(p *Profile, caps Capabilities) (*rules.Registry, error) {
	b := rules.NewBuilder()
	if err := Apply(p, b, caps); err != nil {
		return nil, err
	}

	return b.Build()
}

// Config returns the mapper configuration described by p.
func Config(p *Profile) (options.Config, error) {
	cfg := options.Default()
	if p.Options == nil {
		return cfg, nil
	}

	o := p.Options
	if o.MaxDepth != 0 {
		cfg.MaxDepth = o.MaxDepth
	}

	if o.Concurrency != 0 {
		cfg.Concurrency = o.Concurrency
	}

	cfg.Strict = o.Strict

	if len(o.Gaps) > 0 {
		gaps, err := parseGaps(o.Gaps)
		if err != nil {
			return cfg, err
		}

		cfg.Gaps = gaps
	}

	if len(o.Conversions) > 0 {
		conv, err := parseConversions(o.Conversions)
		if err != nil {
			return cfg, err
		}

		cfg.Conversions = conv
	}

	return cfg, cfg.Validate()
}

// Options returns the engine options described by p.
func Options(p *Profile) ([]engine.Option, error) {
	cfg, err := Config(p)
	if err != nil {
		return nil, err
	}

	return []engine.Option{engine.WithConfig(cfg)}, nil
}

var gapCategories = []options.GapCategory{
	options.GapMissingSource,
	options.GapUnresolvedType,
	options.GapTypeMismatch,
	options.GapSourceTypeMismatch,
	options.GapRuleWithoutSource,
	options.GapNonObjectSource,
}

func parseGaps(codes []string) (options.GapCategory, error) {
	out := options.GapNone

	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code == "all" {
			out |= options.GapAll
			continue
		}

		found := false
		for _, c := range gapCategories {
			if c.Code() == code {
				out |= c
				found = true

				break
			}
		}

		if !found {
			return 0, fmt.Errorf("%w: unknown gap code %q", options.ErrInvalidConfig, code)
		}
	}

	return out, nil
}

func parseConversions(names []string) (primitive.CategoryEnum, error) {
	var out primitive.CategoryEnum

	for _, name := range names {
		switch strings.TrimSpace(name) {
		case ConversionSafeNumber:
			out |= primitive.CategorySafeNumber
		case ConversionUnsafeNumber:
			out |= primitive.CategoryUnsafeNumber
		case ConversionAll:
			out |= primitive.CategoryAll
		case ConversionNone:
		default:
			return 0, fmt.Errorf("%w: unknown conversion %q", options.ErrInvalidConfig, name)
		}
	}

	return out, nil
}
