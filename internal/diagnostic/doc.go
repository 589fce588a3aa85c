// Package diagnostic provides structured errors, warnings and notes
// produced while validating mapping profiles and while mapping values.
//
// Key capabilities:
//   - Resolution gaps reported as warnings with a stable code
//   - Profile validation errors
//   - "Did you mean" suggestions attached to a diagnostic
package diagnostic
