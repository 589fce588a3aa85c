package engine

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"golang.org/x/exp/slog"

	"automapper/catalog"
	"automapper/options"
	"automapper/primitive"
	"automapper/rules"
)

var (
	// ErrCyclicGraph is returned when a pointer, map or slice is met again on
	// the path currently being mapped.
	ErrCyclicGraph = errors.New("cyclic object graph")
	// ErrMaxDepth is returned when nesting exceeds the configured depth.
	ErrMaxDepth = errors.New("maximum mapping depth exceeded")
)

// Mapper maps values using a rule registry and a type catalog.
type Mapper struct {
	rules   *rules.Registry
	catalog *catalog.Catalog
	meta    catalog.TypeMetadata
	cfg     options.Config
	logger  *slog.Logger
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithLogger sets the logger. Gaps and applied rules are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mapper) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg options.Config) Option {
	return func(m *Mapper) { m.cfg = cfg }
}

// WithMaxDepth bounds nesting depth.
func WithMaxDepth(depth int) Option {
	return func(m *Mapper) { m.cfg.MaxDepth = depth }
}

// WithConcurrency maps object array elements on up to n goroutines.
func WithConcurrency(n int) Option {
	return func(m *Mapper) { m.cfg.Concurrency = n }
}

// WithStrict makes Map return a *GapError when any gap was recorded.
func WithStrict(strict bool) Option {
	return func(m *Mapper) { m.cfg.Strict = strict }
}

// WithGapCategories selects which gaps are recorded.
func WithGapCategories(c options.GapCategory) Option {
	return func(m *Mapper) { m.cfg.Gaps = c }
}

// WithConversions selects the scalar conversions allowed on assignment.
func WithConversions(c primitive.CategoryEnum) Option {
	return func(m *Mapper) { m.cfg.Conversions = c }
}

// WithTypeMetadata overrides where declared property types come from.
func WithTypeMetadata(meta catalog.TypeMetadata) Option {
	return func(m *Mapper) {
		if meta != nil {
			m.meta = meta
		}
	}
}

// New builds a Mapper. A nil registry maps by convention only; a nil
// catalog is replaced by an empty one.
func New(reg *rules.Registry, cat *catalog.Catalog, opts ...Option) (*Mapper, error) {
	if reg == nil {
		reg = rules.Empty()
	}

	if cat == nil {
		cat = catalog.New()
	}

	m := &Mapper{
		rules:   reg,
		catalog: cat,
		meta:    cat,
		cfg:     options.Default(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(m)
	}

	if err := m.cfg.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// MustNew is like New but panics on error.
func MustNew(reg *rules.Registry, cat *catalog.Catalog, opts ...Option) *Mapper {
	m, err := New(reg, cat, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// Config returns the effective configuration.
func (m *Mapper) Config() options.Config {
	return m.cfg
}

// Catalog returns the type catalog the mapper describes types with.
func (m *Mapper) Catalog() *catalog.Catalog {
	return m.catalog
}

// Map populates dst from src and returns the result. See the package
// documentation for the dispatch order.
func (m *Mapper) Map(dst, src any) (any, error) {
	c := m.newCall(m.cfg.Strict)

	out, err := c.mapValue(nil, nil, dst, src)
	if err != nil {
		return nil, err
	}

	if m.cfg.Strict && c.rec.len() > 0 {
		return out, &GapError{Gaps: c.rec.gaps()}
	}

	return out, nil
}

// MapWithReport is Map that also lists every recorded gap. It never
// returns a *GapError.
func (m *Mapper) MapWithReport(dst, src any) (Result, error) {
	c := m.newCall(true)

	out, err := c.mapValue(nil, nil, dst, src)
	if err != nil {
		return Result{}, err
	}

	return Result{Value: out, Gaps: c.rec.gaps()}, nil
}

// To maps src into a fresh *T.
func To[T any](m *Mapper, src any) (*T, error) {
	out, err := m.Map(new(T), src)
	if err != nil {
		return nil, err
	}

	switch v := out.(type) {
	case nil:
		return nil, nil
	case *T:
		return v, nil
	case T:
		return &v, nil
	default:
		return nil, fmt.Errorf("engine: mapped %T, want *%s", out, reflect.TypeFor[T]())
	}
}

func (m *Mapper) newCall(record bool) *call {
	c := &call{m: m}
	if record {
		c.rec = newRecorder(m.cfg.Gaps, m.logger)
	}

	return c
}
