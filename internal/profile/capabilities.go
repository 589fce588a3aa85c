package profile

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"automapper/converters"
	"automapper/resolvers/celresolver"
	"automapper/rules"
)

var (
	// ErrUnknownConverter is returned for converter names with no capability.
	ErrUnknownConverter = errors.New("unknown converter")
	// ErrUnknownResolver is returned for resolver names with no capability.
	ErrUnknownResolver = errors.New("unknown resolver")
)

// Capabilities are the named converters and resolvers a profile may use in
// addition to the stock ones. A name registered here shadows a stock
// converter of the same name.
type Capabilities struct {
	Converters map[string]rules.TypeConverter
	Resolvers  map[string]rules.ValueResolver
}

func stockConverter(name string) (rules.TypeConverter, bool) {
	switch name {
	case ConverterCount:
		return converters.Count, true
	case ConverterUUID:
		return converters.UUID, true
	case ConverterUUIDString:
		return converters.UUIDString, true
	default:
		return nil, false
	}
}

// ConverterNames lists every converter name usable with these capabilities.
func (c Capabilities) ConverterNames() []string {
	names := []string{ConverterCount, ConverterJoin, ConverterUUID, ConverterUUIDString, ConverterChain}
	names = append(names, slices.Collect(maps.Keys(c.Converters))...)
	slices.Sort(names)

	return slices.Compact(names)
}

// ResolverNames lists every resolver name usable with these capabilities.
func (c Capabilities) ResolverNames() []string {
	names := append([]string{ResolverCEL}, slices.Collect(maps.Keys(c.Resolvers))...)
	slices.Sort(names)

	return slices.Compact(names)
}

// Converter builds the converter a spec refers to.
func (c Capabilities) Converter(spec ConverterSpec) (rules.TypeConverter, error) {
	if conv, ok := c.Converters[spec.Name]; ok {
		return conv, nil
	}

	switch spec.Name {
	case ConverterJoin:
		return converters.Join(spec.Arg), nil
	case ConverterChain:
		chain := make([]rules.TypeConverter, 0, len(spec.Chain))
		for _, sub := range spec.Chain {
			conv, err := c.Converter(sub)
			if err != nil {
				return nil, err
			}

			chain = append(chain, conv)
		}

		return converters.Chain(chain...), nil
	}

	if conv, ok := stockConverter(spec.Name); ok {
		return conv, nil
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownConverter, spec.Name)
}

// Resolver builds the resolver a spec refers to. CEL expressions are
// compiled here.
func (c Capabilities) Resolver(spec ResolverSpec) (rules.ValueResolver, error) {
	if spec.Name == ResolverCEL {
		return celresolver.New(spec.CEL)
	}

	if r, ok := c.Resolvers[spec.Name]; ok {
		return r, nil
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownResolver, spec.Name)
}
