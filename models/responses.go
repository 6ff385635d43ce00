package models

// APIResponse is the envelope every HTTP response is wrapped in.
//
// Status is true for successful operations and false otherwise; Message is
// always a human-readable summary. Data carries the payload on success and
// Error carries sanitized failure detail. Internal fault detail never leaves
// the server through this envelope.
type APIResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   any    `json:"error,omitempty"`
}

// RegisterResult is the payload returned by a successful registration.
//
// Warnings reports non-fatal step failures (OTP email delivery, optional
// plate claim) that did not prevent account creation. Callers must treat a
// non-empty Warnings list as "account created, follow-up needed" rather
// than as an error.
type RegisterResult struct {
	User     User             `json:"user"`
	Plate    *PlateAssignment `json:"plate,omitempty"`
	Warnings []string         `json:"warnings,omitempty"`
}

// AuthResult is the payload returned by verify-otp and login: the public
// user fields plus a freshly issued session token.
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
