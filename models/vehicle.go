package models

import "time"

// Vehicle is a registered vehicle record owned by exactly one user. The
// (license_plate, country_iso) pair is unique across all rows; the database
// constraint is the authoritative guard against concurrent registration.
type Vehicle struct {
	// ID is the internal unique identifier of the vehicle.
	ID int64 `json:"id"`

	// UserID references the owning user account.
	UserID int64 `json:"userId"`

	// LicensePlate is the normalized (trimmed, upper-cased) plate string.
	LicensePlate string `json:"licensePlate"`

	// CountryIso is the ISO 3166-1 alpha-2 code of the registering country.
	CountryIso string `json:"countryIso"`

	// VehicleType is an optional free-form classification (e.g. "Car").
	VehicleType string `json:"vehicleType,omitempty"`

	// CreatedAt is the timestamp the vehicle was registered.
	CreatedAt time.Time `json:"createdAt"`

	// ModifiedAt is the timestamp of the last mutation.
	ModifiedAt time.Time `json:"modifiedAt"`
}

// TableName returns the name of the database table
// associated with the Vehicle model.
func (v Vehicle) TableName() string {
	return "vehicles"
}
