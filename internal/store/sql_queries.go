package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/centraplate/registry/models"
)

const (
	createUser = `INSERT INTO users (display_name, email, password_hash, role, language, country_iso, country_name)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, display_name, email, password_hash, role, language, country_iso, country_name, created_at, modified_at;`

	findUserByEmail = `SELECT id, display_name, email, password_hash, role, language, country_iso, country_name, created_at, modified_at,
        EXISTS (SELECT 1 FROM user_otps o WHERE o.user_id = users.id AND o.redeemed) AS is_verified
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, display_name, email, password_hash, role, language, country_iso, country_name, created_at, modified_at,
        EXISTS (SELECT 1 FROM user_otps o WHERE o.user_id = users.id AND o.redeemed) AS is_verified
    FROM users
    WHERE id = $1;`

	findAllUsers = `SELECT id, display_name, email, password_hash, role, language, country_iso, country_name, created_at, modified_at,
        EXISTS (SELECT 1 FROM user_otps o WHERE o.user_id = users.id AND o.redeemed) AS is_verified
    FROM users
    ORDER BY id;`

	updatePasswordHash = `UPDATE users
    SET password_hash = $1, modified_at = NOW()
    WHERE id = $2;`

	deleteUser = `DELETE FROM users
    WHERE id = $1;`

	issueOtp = `INSERT INTO user_otps (user_id, code, expires_at)
    VALUES ($1, $2, $3)
    RETURNING id, user_id, code, expires_at, redeemed, created_at;`

	latestUnredeemedOtp = `SELECT id, user_id, code, expires_at, redeemed, created_at
    FROM user_otps
    WHERE user_id = $1 AND NOT redeemed
    ORDER BY created_at DESC, id DESC
    LIMIT 1;`

	// The redeemed flag flips exactly once: the predicate on the current
	// value makes concurrent redemptions race on RowsAffected, not on a
	// read-then-write in application code.
	redeemOtp = `UPDATE user_otps
    SET redeemed = TRUE
    WHERE id = $1 AND NOT redeemed;`

	isUserVerified = `SELECT EXISTS (
        SELECT 1 FROM user_otps WHERE user_id = $1 AND redeemed
    );`

	purgeExpiredOtps = `DELETE FROM user_otps
    WHERE NOT redeemed AND expires_at <= $1;`

	claimPlate = `INSERT INTO license_plates (user_id, plate_number)
    VALUES ($1, $2)
    RETURNING id, user_id, plate_number, created_at;`

	findPlateByNumber = `SELECT id, user_id, plate_number, created_at
    FROM license_plates
    WHERE plate_number = $1;`

	findPlateByUser = `SELECT id, user_id, plate_number, created_at
    FROM license_plates
    WHERE user_id = $1;`

	findAllPlates = `SELECT p.id, p.user_id, p.plate_number, p.created_at, u.display_name, u.email,
        EXISTS (SELECT 1 FROM user_otps o WHERE o.user_id = u.id AND o.redeemed) AS is_verified
    FROM license_plates p
    JOIN users u ON u.id = p.user_id
    ORDER BY p.id;`

	createVehicle = `INSERT INTO vehicles (user_id, license_plate, country_iso, vehicle_type)
    VALUES ($1, $2, $3, $4)
    RETURNING id, user_id, license_plate, country_iso, vehicle_type, created_at, modified_at;`

	findVehiclesByUser = `SELECT id, user_id, license_plate, country_iso, vehicle_type, created_at, modified_at
    FROM vehicles
    WHERE user_id = $1
    ORDER BY id;`

	findAllVehicles = `SELECT id, user_id, license_plate, country_iso, vehicle_type, created_at, modified_at
    FROM vehicles
    ORDER BY id;`
)

// buildUserUpdateQuery dynamically builds the partial profile UPDATE. Only
// non-nil fields of the update enter the SET clause; modified_at is always
// refreshed. The updated row is returned with the derived verification flag.
func buildUserUpdateQuery(userID int64, update models.UserUpdate) (string, []any, error) {
	builder := sq.Update("users").
		Set("modified_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID}).
		Suffix(`RETURNING id, display_name, email, password_hash, role, language, country_iso, country_name, created_at, modified_at,
        EXISTS (SELECT 1 FROM user_otps o WHERE o.user_id = users.id AND o.redeemed) AS is_verified`).
		PlaceholderFormat(sq.Dollar)

	if update.DisplayName != nil {
		builder = builder.Set("display_name", *update.DisplayName)
	}
	if update.Language != nil {
		builder = builder.Set("language", *update.Language)
	}
	if update.CountryIso != nil {
		builder = builder.Set("country_iso", *update.CountryIso)
	}
	if update.CountryName != nil {
		builder = builder.Set("country_name", *update.CountryName)
	}

	return builder.ToSql()
}

// buildVehiclesByPlateQuery builds the vehicle lookup: the country filter is
// optional, so the WHERE clause is assembled dynamically.
func buildVehiclesByPlateQuery(licensePlate string, countryIso string) (string, []any, error) {
	builder := sq.Select("id", "user_id", "license_plate", "country_iso", "vehicle_type", "created_at", "modified_at").
		From("vehicles").
		Where(sq.Eq{"license_plate": licensePlate}).
		OrderBy("id").
		PlaceholderFormat(sq.Dollar)

	if countryIso != "" {
		builder = builder.Where(sq.Eq{"country_iso": countryIso})
	}

	return builder.ToSql()
}
