package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/centraplate/registry/internal/logger"
	"github.com/centraplate/registry/models"
	"github.com/jackc/pgerrcode"
)

// otpRepository is the PostgreSQL-backed implementation of [OtpRepository].
// The "user_otps" table is an append-only ledger; the only mutation is the
// one-way redeemed flag.
type otpRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOtpRepository constructs an [OtpRepository] backed by the provided
// database connection and logger.
func NewOtpRepository(db *DB, logger *logger.Logger) OtpRepository {
	logger.Debug().Msg("creating otp repository")
	return &otpRepository{
		db:     db,
		logger: logger,
	}
}

// IssueOtp appends a new passcode record to the ledger and returns it with
// server-assigned fields. Earlier unredeemed records stay valid; issuing does
// not invalidate them.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *otpRepository) IssueOtp(ctx context.Context, record models.OtpRecord) (models.OtpRecord, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, issueOtp, record.UserID, record.Code, record.ExpiresAt)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*otpRepository.IssueOtp").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.OtpRecord{}, ErrUserNotFound
		default:
			return models.OtpRecord{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&record.ID, &record.UserID, &record.Code, &record.ExpiresAt, &record.Redeemed, &record.CreatedAt); err != nil {
		log.Err(err).Str("func", "*otpRepository.IssueOtp").Msg("error: scanning error")
		return models.OtpRecord{}, errors.Join(ErrScanningRow, err)
	}

	return record, nil
}

// LatestUnredeemedOtp returns the most recently issued passcode record of the
// user that has not been redeemed yet. Expiry is not filtered here: the
// caller decides how to treat an expired code.
//
// Error handling:
//   - Empty result set → [ErrOtpNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *otpRepository) LatestUnredeemedOtp(ctx context.Context, userID int64) (models.OtpRecord, error) {
	log := logger.FromContext(ctx)

	var record models.OtpRecord
	row := r.db.QueryRowContext(ctx, latestUnredeemedOtp, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*otpRepository.LatestUnredeemedOtp").Msg("error: row is nil")
		return models.OtpRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&record.ID, &record.UserID, &record.Code, &record.ExpiresAt, &record.Redeemed, &record.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.OtpRecord{}, ErrOtpNotFound
		}
		log.Err(err).Str("func", "*otpRepository.LatestUnredeemedOtp").Msg("error: scanning error")
		return models.OtpRecord{}, errors.Join(ErrScanningRow, err)
	}

	return record, nil
}

// RedeemOtp flips the redeemed flag of the given record. The UPDATE is
// guarded on the current flag value, so of two concurrent redemptions exactly
// one observes an affected row; the loser gets [ErrOtpAlreadyRedeemed].
//
// Error handling:
//   - Zero affected rows → [ErrOtpAlreadyRedeemed].
//   - Any driver-level error → wrapped as "unexpected DB error".
func (r *otpRepository) RedeemOtp(ctx context.Context, otpID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, redeemOtp, otpID)
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.RedeemOtp").Msg("error: statement failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Join(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrOtpAlreadyRedeemed
	}

	return nil
}

// PurgeExpiredOtps deletes unredeemed passcodes whose validity window closed
// before now and returns the number of removed records. Redeemed records are
// kept: they are the proof of verification.
func (r *otpRepository) PurgeExpiredOtps(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, purgeExpiredOtps, now)
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.PurgeExpiredOtps").Msg("error: statement failed")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Join(ErrExecutingStatement, err)
	}

	return affected, nil
}

// IsUserVerified reports whether the user has redeemed at least one passcode.
func (r *otpRepository) IsUserVerified(ctx context.Context, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var verified bool
	row := r.db.QueryRowContext(ctx, isUserVerified, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*otpRepository.IsUserVerified").Msg("error: row is nil")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&verified); err != nil {
		log.Err(err).Str("func", "*otpRepository.IsUserVerified").Msg("error: scanning error")
		return false, errors.Join(ErrScanningRow, err)
	}

	return verified, nil
}
