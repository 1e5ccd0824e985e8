package models

// Severity is the expiry urgency bucket for a stored credential.
type Severity string

const (
	// SeverityCritical means the password is already past its expiry date.
	SeverityCritical Severity = "Critical"
	// SeverityHigh means the password expires within 7 days.
	SeverityHigh Severity = "High"
	// SeverityMedium means the password expires within 14 days.
	SeverityMedium Severity = "Medium"
	// SeverityLow means the password expires within 30 days.
	SeverityLow Severity = "Low"
	// SeveritySafe means the expiry date is more than 30 days away.
	SeveritySafe Severity = "Safe"
)

// ExpiryWindow is a named date-range filter over credential expiry dates,
// matching the filter dropdown of the desktop shell.
type ExpiryWindow string

const (
	WindowAll     ExpiryWindow = "All Passwords"
	WindowExpired ExpiryWindow = "Expired Passwords"
	Window7Days   ExpiryWindow = "Expiring in 7 Days"
	Window14Days  ExpiryWindow = "Expiring in 14 Days"
	Window30Days  ExpiryWindow = "Expiring in 30 Days"
	Window60Days  ExpiryWindow = "Expiring in 60 Days"
	Window90Days  ExpiryWindow = "Expiring in 90 Days"
)
