package rules

// TypeConverter transforms the raw value read from a source property before
// it is written to the destination property.
type TypeConverter interface {
	Convert(value any) (any, error)
}

// ValueResolver computes a destination value from the entire source object.
type ValueResolver interface {
	Resolve(source any) (any, error)
}

// ConverterFunc adapts a function to TypeConverter.
type ConverterFunc func(value any) (any, error)

// Convert calls f(value).
func (f ConverterFunc) Convert(value any) (any, error) { return f(value) }

// ResolverFunc adapts a function to ValueResolver.
type ResolverFunc func(source any) (any, error)

// Resolve calls f(source).
func (f ResolverFunc) Resolve(source any) (any, error) { return f(source) }
