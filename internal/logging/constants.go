// Package logging holds the standardized structured-logging field
// names used across the application, so log output stays consistent
// and easy to filter.
package logging

const (
	FieldSubscription = "subscription"
	FieldCycle        = "cycle"
	FieldCurrency     = "currency"
	FieldCategory     = "category"
	FieldPreset       = "preset"
	FieldCount        = "count"
	FieldFile         = "file_path"
	FieldError        = "error"
	FieldStatus       = "status"
	FieldReference    = "reference_date"
)
