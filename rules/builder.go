package rules

import (
	"errors"
	"fmt"
	"sync"

	"automapper/ref"
)

var (
	// ErrNilConverter is returned when a converter rule is registered with a nil converter.
	ErrNilConverter = errors.New("nil type converter")
	// ErrNilResolver is returned when a resolver rule is registered with a nil resolver.
	ErrNilResolver = errors.New("nil value resolver")
)

// Builder collects rules at configuration time. It is safe for concurrent
// use, but a Registry built from it never observes later changes.
type Builder struct {
	mu    sync.Mutex
	rules map[ref.Property]*Rule
	errs  []error
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{rules: make(map[ref.Property]*Rule)}
}

// Direct maps forMember from fromMember by convention-aware recursion.
func (b *Builder) Direct(forMember, fromMember string) error {
	rule, err := newSourceRule(forMember, fromMember)
	if err != nil {
		return err
	}

	b.put(rule)

	return nil
}

// WithConverter maps forMember from fromMember through c.
func (b *Builder) WithConverter(forMember, fromMember string, c TypeConverter) error {
	if c == nil {
		return fmt.Errorf("%s: %w", forMember, ErrNilConverter)
	}

	rule, err := newSourceRule(forMember, fromMember)
	if err != nil {
		return err
	}

	rule.Converter = c
	b.put(rule)

	return nil
}

// WithResolver maps forMember from r.Resolve(source).
func (b *Builder) WithResolver(forMember string, r ValueResolver) error {
	if r == nil {
		return fmt.Errorf("%s: %w", forMember, ErrNilResolver)
	}

	dst, err := ref.Parse(forMember)
	if err != nil {
		return err
	}

	b.put(&Rule{For: dst, Resolver: r})

	return nil
}

// Len returns the number of registered destination properties.
func (b *Builder) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.rules)
}

// Build freezes the current rules into a Registry. Errors collected by the
// fluent ForMember surface are returned joined.
func (b *Builder) Build() (*Registry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}

	snapshot := make(map[ref.Property]*Rule, len(b.rules))
	for k, r := range b.rules {
		cp := *r
		snapshot[k] = &cp
	}

	return &Registry{rules: snapshot}, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Registry {
	reg, err := b.Build()
	if err != nil {
		panic(err)
	}

	return reg
}

func (b *Builder) put(r *Rule) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.rules[r.For] = r
}

func (b *Builder) fail(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.errs = append(b.errs, err)
}

func newSourceRule(forMember, fromMember string) (*Rule, error) {
	dst, err := ref.Parse(forMember)
	if err != nil {
		return nil, err
	}

	src, err := ref.Parse(fromMember)
	if err != nil {
		return nil, err
	}

	return &Rule{For: dst, From: &src}, nil
}
