// Package catalog describes the struct types taking part in mapping.
//
// Every struct type gets a Descriptor: a catalog name (registered
// explicitly, or "pkg.Type" by default) and one Property per exported
// field. A Property carries its declared type name, which tells the mapping
// engine how to convert an arbitrary source value into it:
//
//   - a composite type name, e.g. "warehouse.Address"
//   - a scalar name: int, bool, float or string
//   - an element type followed by "[]", e.g. "warehouse.Address[]"
//   - "array" for slices, arrays and maps of anything else
//
// The declared type is inferred from the Go field type unless the field
// carries an `automap:"<type>"` tag; `automap:"-"` hides the field.
//
// Properties read and write through precomputed field indexes, so the
// engine never looks fields up by name at assignment time.
package catalog
