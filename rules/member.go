package rules

import (
	"fmt"

	"automapper/ref"
)

// MemberConfig is the fluent surface for a single destination property.
//
//	b.ForMember("view.Order::Total").ResolveUsing(totalResolver)
//	b.ForMember("view.Order::Tags").FromMember("store.Order::Labels").Using(converters.Join(", "))
//
// Errors are deferred to Builder.Build.
type MemberConfig struct {
	b    *Builder
	rule *Rule

	// stored is the rule registered through this config, if any.
	stored *Rule
}

// SourceConfig follows FromMember and optionally attaches a converter.
type SourceConfig struct {
	b    *Builder
	rule *Rule
}

// ForMember starts a rule for forMember.
func (b *Builder) ForMember(forMember string) *MemberConfig {
	dst, err := ref.Parse(forMember)
	if err != nil {
		b.fail(err)
		return &MemberConfig{b: b}
	}

	return &MemberConfig{b: b, rule: &Rule{For: dst}}
}

// FromMember reads the destination value from fromMember.
func (m *MemberConfig) FromMember(fromMember string) *SourceConfig {
	if m.rule == nil {
		return &SourceConfig{b: m.b}
	}

	src, err := ref.Parse(fromMember)
	if err != nil {
		m.b.fail(err)
		return &SourceConfig{b: m.b}
	}

	rule := &Rule{For: m.rule.For, From: &src}
	if m.stored != nil {
		rule.Resolver = m.stored.Resolver
	}

	m.b.put(rule)
	m.stored = rule

	return &SourceConfig{b: m.b, rule: rule}
}

// ResolveUsing computes the destination value with r. When FromMember was
// called on the same config, r is kept next to the source as its fallback.
func (m *MemberConfig) ResolveUsing(r ValueResolver) {
	if m.rule == nil {
		return
	}

	if r == nil {
		m.b.fail(fmt.Errorf("%s: %w", m.rule.For, ErrNilResolver))
		return
	}

	if m.stored != nil {
		m.b.mu.Lock()
		defer m.b.mu.Unlock()

		m.stored.Resolver = r

		return
	}

	rule := &Rule{For: m.rule.For, Resolver: r}
	m.b.put(rule)
	m.stored = rule
}

// Using passes the source value through c before assignment.
func (s *SourceConfig) Using(c TypeConverter) {
	if s.rule == nil {
		return
	}

	if c == nil {
		s.b.fail(ErrNilConverter)
		return
	}

	s.b.mu.Lock()
	defer s.b.mu.Unlock()

	s.rule.Converter = c
}

// ResolveUsing attaches r as the fallback used when the mapped source is not
// of the FromMember owner type.
func (s *SourceConfig) ResolveUsing(r ValueResolver) {
	if s.rule == nil {
		return
	}

	if r == nil {
		s.b.fail(ErrNilResolver)
		return
	}

	s.b.mu.Lock()
	defer s.b.mu.Unlock()

	s.rule.Resolver = r
}
