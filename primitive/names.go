package primitive

import "strings"

// Declared type names understood by the mapping engine.
const (
	NameInt    = "int"
	NameFloat  = "float"
	NameBool   = "bool"
	NameString = "string"
	NameArray  = "array"

	// ArraySuffix marks "array of the preceding element type", as in "Address[]".
	ArraySuffix = "[]"
)

// IsScalarTypeName reports whether name is one of the scalar type names:
// int, integer, bool, boolean, float, double, real or string. Case is ignored.
func IsScalarTypeName(name string) bool {
	switch strings.ToLower(name) {
	case "int", "integer", "bool", "boolean", "float", "double", "real", "string":
		return true
	default:
		return false
	}
}

// IsArrayTypeName reports whether name denotes an array of unspecified elements.
func IsArrayTypeName(name string) bool {
	return strings.ToLower(name) == NameArray
}

// ElementTypeName strips the element suffix from "Elem[]".
func ElementTypeName(name string) (string, bool) {
	if !strings.HasSuffix(name, ArraySuffix) {
		return "", false
	}

	return strings.TrimSuffix(name, ArraySuffix), true
}
