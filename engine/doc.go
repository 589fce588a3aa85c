// Package engine copies data from a source value into a destination shape.
//
// The single entry point is Mapper.Map(dst, src). It dispatches on the shape
// of dst, in this order:
//
//  1. src is absent (nil, or a nil pointer, map, slice, interface, func or
//     chan): the result is nil whatever dst is.
//  2. dst is a *catalog.Property: the value is mapped into that property's
//     declared type.
//  3. dst is a reflect.Type, or a nil pointer to a struct: a fresh instance
//     of the struct is populated from src.
//  4. dst is a pointer to a struct (or a struct value, mapped into a copy):
//     object-to-object mapping.
//  5. dst is a slice, array or map: src is shallow-copied if it is a slice,
//     array or map, otherwise an empty []any is returned.
//  6. dst is a catalog.TypeName known to the catalog: like 3.
//  7. anything else: src is returned if it is a scalar, otherwise nil.
//
// Object-to-object mapping returns src itself when both sides have the same
// struct type. Otherwise every destination property is filled
// independently: a registered rule wins, else a same-named source property
// is mapped through the destination's declared type, else the property is
// left untouched.
//
// Resolution gaps (no rule, no source property, unusable declared type,
// unassignable value) never fail a mapping. MapWithReport lists them, and
// options.Strict turns them into a *GapError. Errors returned by type
// converters and value resolvers are passed through unchanged.
//
// A Mapper is safe for concurrent use once built.
package engine
