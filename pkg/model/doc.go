// Package model holds the reference record validated by the service and the
// CLI: Basic, a name, a positive count and a non-empty list of Items.
//
// The field checks are declared once in declaredFields and shared by Validate,
// ValidateConcurrent and Report, so all three report the same messages in the
// same order: string parameter, integer parameter, list parameter.
package model
