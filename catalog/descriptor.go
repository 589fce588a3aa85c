package catalog

import (
	"reflect"
	"strings"
	"sync"

	"automapper/ref"
)

// TagKey is the struct tag consulted for declared types.
const TagKey = "automap"

// Descriptor describes one struct type.
type Descriptor struct {
	Name string
	Type reflect.Type

	once       sync.Once
	properties []*Property
	byName     map[string]*Property
}

// Properties returns the exported, mappable fields in declaration order.
func (d *Descriptor) Properties() []*Property {
	return d.properties
}

// Property looks a property up by exact name.
func (d *Descriptor) Property(name string) (*Property, bool) {
	p, ok := d.byName[name]
	return p, ok
}

// PropertyNames returns the property names in declaration order.
func (d *Descriptor) PropertyNames() []string {
	names := make([]string, len(d.properties))
	for i, p := range d.properties {
		names[i] = p.Name
	}

	return names
}

// New returns a pointer to a fresh zero value of the type.
func (d *Descriptor) New() reflect.Value {
	return reflect.New(d.Type)
}

func (d *Descriptor) init(c *Catalog) {
	d.once.Do(func() {
		d.byName = make(map[string]*Property)

		for _, f := range reflect.VisibleFields(d.Type) {
			if f.Anonymous || !f.IsExported() || throughPointer(d.Type, f.Index) {
				continue
			}

			tag, hasTag := f.Tag.Lookup(TagKey)
			tag = strings.TrimSpace(tag)
			if tag == "-" {
				continue
			}

			declared := tag
			if !hasTag || tag == "" {
				declared = c.declaredFor(f.Type)
			}

			p := &Property{
				Ref:      ref.Property{Owner: d.Name, Name: f.Name},
				Name:     f.Name,
				Declared: declared,
				Type:     f.Type,
				index:    f.Index,
			}

			d.properties = append(d.properties, p)
			d.byName[p.Name] = p
		}
	})
}

// throughPointer reports whether a promoted field is reached through an
// embedded pointer, which may be nil at access time.
func throughPointer(t reflect.Type, index []int) bool {
	for _, i := range index[:len(index)-1] {
		f := t.Field(i)
		if f.Type.Kind() == reflect.Pointer {
			return true
		}

		t = f.Type
	}

	return false
}

// Property is a settable, typed field of a described struct.
type Property struct {
	Ref      ref.Property
	Name     string
	Declared string
	Type     reflect.Type

	index []int
}

// Get reads the property from a struct value.
func (p *Property) Get(obj reflect.Value) reflect.Value {
	return obj.FieldByIndex(p.index)
}

// Set writes v into the property of an addressable struct value. v must be
// assignable to the property type.
func (p *Property) Set(obj reflect.Value, v reflect.Value) {
	obj.FieldByIndex(p.index).Set(v)
}

// Field returns the addressable field of obj.
func (p *Property) Field(obj reflect.Value) reflect.Value {
	return obj.FieldByIndex(p.index)
}
