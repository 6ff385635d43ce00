package models

// RegisterRequest is the body of POST /auth/register.
//
// PlateNumber is optional: when present, the service attempts a best-effort
// plate claim after the account is created.
type RegisterRequest struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Language    string `json:"language"`
	CountryIso  string `json:"countryIso"`
	CountryName string `json:"countryName"`
	PlateNumber string `json:"plateNumber,omitempty"`
}

// VerifyOtpRequest is the body of POST /auth/verify-otp.
type VerifyOtpRequest struct {
	Email string `json:"email"`
	Otp   string `json:"otp"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest is the body of POST /auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// DeleteAccountRequest is the body of DELETE /auth/account. The current
// password is re-verified before the cascading deletion runs.
type DeleteAccountRequest struct {
	Password string `json:"password"`
}

// AssignPlateRequest is the body of POST /plates/assign.
type AssignPlateRequest struct {
	PlateNumber string `json:"plateNumber"`
}

// AddVehicleRequest is the body of POST /vehicles/add.
type AddVehicleRequest struct {
	LicensePlate string `json:"licensePlate"`
	CountryIso   string `json:"countryIso"`
	VehicleType  string `json:"vehicleType,omitempty"`
}
