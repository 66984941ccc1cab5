package domain

import "fmt"

// ValidationError reports a malformed or missing required field on a
// TaxReturn. It is surfaced to the caller, never silently defaulted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid tax return: %s: %s", e.Field, e.Reason)
}

// UnsupportedJurisdictionError reports a state code missing from the
// registry. Returning zero for an unknown jurisdiction would silently
// understate liability, so this is always an error.
type UnsupportedJurisdictionError struct {
	Code string
}

func (e *UnsupportedJurisdictionError) Error() string {
	return fmt.Sprintf("unsupported jurisdiction: %q", e.Code)
}

// ConfigurationError reports a missing or inconsistent rule table, such as a
// tax year with no loaded TaxYearConfig. No computation can proceed past it.
type ConfigurationError struct {
	Detail string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Detail
}
