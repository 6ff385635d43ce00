package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrOtpNotFound is returned when a user holds no unredeemed passcode
	// records, or when a redemption targets a record that does not exist.
	ErrOtpNotFound = errors.New("otp code was not found")

	// ErrOtpAlreadyRedeemed is returned when a redemption targets a passcode
	// record whose redeemed flag has already been flipped. The flag moves
	// false to true exactly once; the guarded UPDATE enforces that under
	// concurrent redemption attempts.
	ErrOtpAlreadyRedeemed = errors.New("otp code is already redeemed")

	// ErrPlateAlreadyTaken is returned when a plate claim collides with an
	// existing assignment of the same normalized plate number to another user.
	ErrPlateAlreadyTaken = errors.New("license plate is already taken")

	// ErrUserAlreadyHasPlate is returned when a user who already owns a plate
	// assignment attempts to claim a second one.
	ErrUserAlreadyHasPlate = errors.New("user already has a license plate")

	// ErrPlateNotFound is returned when a plate lookup matches no assignment.
	ErrPlateNotFound = errors.New("license plate was not found")

	// ErrVehicleAlreadyRegistered is returned when a vehicle registration
	// collides with an existing row for the same (plate, country) pair.
	ErrVehicleAlreadyRegistered = errors.New("vehicle is already registered")

	// ErrVehicleNotFound is returned when a vehicle lookup matches no rows.
	ErrVehicleNotFound = errors.New("vehicle was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
