// Package match ranks property names by similarity.
//
// It is used to attach suggestions to missing-source gaps: when a
// destination property has no same-named source property, the closest
// source names are reported so a rule can be registered for them.
//
// Key functions:
//   - Normalize: case-folds and strips separators
//   - Distance / Similarity: Levenshtein edit distance over runes
//   - Rank / Suggest: ordered candidate names for a target
package match
