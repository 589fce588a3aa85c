package catalog

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sync"

	"automapper/internal/common"
	"automapper/primitive"
)

var (
	// ErrNotStruct is returned when a non-struct type is registered.
	ErrNotStruct = errors.New("catalog: not a struct type")
	// ErrEmptyName is returned when a type is registered under an empty name.
	ErrEmptyName = errors.New("catalog: empty type name")
	// ErrConflictingRegistration indicates a type or name already bound differently.
	ErrConflictingRegistration = errors.New("catalog: conflicting type registration")
)

// TypeName refers to a catalog type by name. Passed as a mapping destination
// it asks for a fresh instance of that type.
type TypeName string

// TypeMetadata answers which declared type a destination property has.
type TypeMetadata interface {
	DeclaredType(p *Property) (string, bool)
}

// Catalog maps names to struct descriptors. Unregistered struct types are
// described on first use under their default name. It is safe for
// concurrent use.
type Catalog struct {
	mu     sync.RWMutex
	byName map[string]*Descriptor
	byType map[reflect.Type]*Descriptor
}

// New creates an empty Catalog.
func New() *Catalog {
	return &Catalog{
		byName: make(map[string]*Descriptor),
		byType: make(map[reflect.Type]*Descriptor),
	}
}

// Register binds the struct type of sample to name. sample may be a struct
// value, a pointer to one, or a reflect.Type. Registering the same pair
// twice is a no-op.
func (c *Catalog) Register(name string, sample any) error {
	if name == "" {
		return ErrEmptyName
	}

	t, err := structType(sample)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if d, ok := c.byType[t]; ok {
		if d.Name == name {
			return nil
		}

		return fmt.Errorf("%w: %s already registered as %q", ErrConflictingRegistration, t, d.Name)
	}

	if d, ok := c.byName[name]; ok {
		return fmt.Errorf("%w: name %q already bound to %s", ErrConflictingRegistration, name, d.Type)
	}

	c.store(&Descriptor{Name: name, Type: t})

	return nil
}

// MustRegister is like Register but panics on error.
func (c *Catalog) MustRegister(name string, sample any) {
	if err := c.Register(name, sample); err != nil {
		panic(err)
	}
}

// Describe returns the descriptor of a struct type or pointer to struct type.
func (c *Catalog) Describe(t reflect.Type) (*Descriptor, error) {
	st, err := structType(t)
	if err != nil {
		return nil, err
	}

	d := c.entry(st)
	d.init(c)

	return d, nil
}

// DescribeValue returns the descriptor of v's struct type.
func (c *Catalog) DescribeValue(v any) (*Descriptor, error) {
	if v == nil {
		return nil, ErrNotStruct
	}

	return c.Describe(reflect.TypeOf(v))
}

// Lookup finds a descriptor by catalog name.
func (c *Catalog) Lookup(name string) (*Descriptor, bool) {
	c.mu.RLock()
	d, ok := c.byName[name]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	d.init(c)

	return d, true
}

// NameOf returns the catalog name of a struct type, describing it if needed.
func (c *Catalog) NameOf(t reflect.Type) (string, bool) {
	st, err := structType(t)
	if err != nil {
		return "", false
	}

	return c.entry(st).Name, true
}

// DeclaredType implements TypeMetadata.
func (c *Catalog) DeclaredType(p *Property) (string, bool) {
	if p == nil || p.Declared == "" {
		return "", false
	}

	return p.Declared, true
}

// Descriptors returns every known descriptor ordered by name.
func (c *Catalog) Descriptors() []*Descriptor {
	c.mu.RLock()
	names := slices.Sorted(maps.Keys(c.byName))
	out := make([]*Descriptor, 0, len(names))
	for _, n := range names {
		out = append(out, c.byName[n])
	}
	c.mu.RUnlock()

	for _, d := range out {
		d.init(c)
	}

	return out
}

// entry returns the descriptor shell for t, creating it under its default
// name. Properties are filled in later by Descriptor.init so that
// self-referencing types never recurse here.
func (c *Catalog) entry(t reflect.Type) *Descriptor {
	c.mu.RLock()
	d, ok := c.byType[t]
	c.mu.RUnlock()

	if ok {
		return d
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if d, ok := c.byType[t]; ok {
		return d
	}

	name := defaultName(t)
	if other, taken := c.byName[name]; taken && other.Type != t {
		name = t.PkgPath() + "." + t.Name()
	}

	d = &Descriptor{Name: name, Type: t}
	c.store(d)

	return d
}

func (c *Catalog) store(d *Descriptor) {
	c.byName[d.Name] = d
	c.byType[d.Type] = d
}

// declaredFor infers the declared type name of a field type.
func (c *Catalog) declaredFor(t reflect.Type) string {
	base := deref(t)

	if k := primitive.FromReflectType(base); k.IsScalar() {
		return k.DeclaredName()
	}

	switch base.Kind() {
	case reflect.Struct:
		return c.entry(base).Name
	case reflect.Slice, reflect.Array:
		elem := deref(base.Elem())
		if k := primitive.FromReflectType(elem); k.IsScalar() {
			return k.DeclaredName() + primitive.ArraySuffix
		}

		if elem.Kind() == reflect.Struct {
			return c.entry(elem).Name + primitive.ArraySuffix
		}

		return primitive.NameArray
	case reflect.Map:
		return primitive.NameArray
	default:
		return ""
	}
}

// defaultName is "pkg.Type", using the last element of the import path.
func defaultName(t reflect.Type) string {
	if t.Name() == "" {
		return t.String()
	}

	alias := common.PkgAlias(t.PkgPath())
	if alias == "" {
		return t.Name()
	}

	return alias + "." + t.Name()
}

func structType(sample any) (reflect.Type, error) {
	var t reflect.Type

	switch s := sample.(type) {
	case nil:
		return nil, ErrNotStruct
	case reflect.Type:
		t = s
	default:
		t = reflect.TypeOf(sample)
	}

	if t == nil {
		return nil, ErrNotStruct
	}

	t = deref(t)
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, t)
	}

	return t, nil
}

func deref(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}
