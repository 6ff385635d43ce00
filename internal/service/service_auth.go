package service

import (
	"context"
	"fmt"
	"time"

	"github.com/centraplate/registry/internal/config"
	"github.com/centraplate/registry/internal/logger"
	"github.com/centraplate/registry/internal/mailer"
	"github.com/centraplate/registry/internal/store"
	"github.com/centraplate/registry/internal/utils"
	"github.com/centraplate/registry/models"
)

// authService is the concrete implementation of AuthService.
// It orchestrates the user repositories, the passcode ledger, the outbound
// mailer and the JWT token lifecycle.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// otpRepository is the one-time passcode ledger.
	otpRepository store.OtpRepository

	// plateRepository handles the optional plate claim during registration.
	plateRepository store.PlateRepository

	// mailer delivers passcodes over the email side channel. Delivery
	// failures surface as warnings, never as registration failures.
	mailer mailer.Mailer

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the cost factor applied when hashing passwords.
	bcryptCost int

	// otpCodeLength is the number of digits in a generated passcode.
	otpCodeLength int

	// otpTTL bounds the validity window of a freshly issued passcode.
	otpTTL time.Duration

	// now is the clock source; replaceable in tests.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repositories
// and mailer, populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(storages *store.Storages, sender mailer.Mailer, cfg config.StructuredConfig, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  storages.UserRepository,
		otpRepository:   storages.OtpRepository,
		plateRepository: storages.PlateRepository,
		mailer:          sender,
		tokenSignKey:    cfg.Auth.TokenSignKey,
		tokenIssuer:     cfg.Auth.TokenIssuer,
		tokenDuration:   cfg.Auth.TokenDuration,
		bcryptCost:      cfg.Auth.BcryptCost,
		otpCodeLength:   cfg.Otp.CodeLength,
		otpTTL:          cfg.Otp.TTL,
		now:             time.Now,
		logger:          logger,
	}
}

// Register creates a new unverified account.
//
// Required fields are displayName, email and password. The password is
// hashed with bcrypt before the user row is created; a duplicate email
// surfaces as store.ErrEmailAlreadyExists.
//
// After the row exists, two best-effort steps run: a passcode is issued and
// mailed, and — when PlateNumber was supplied — a plate claim is attempted.
// Failures of these steps never undo the registration; they are reported in
// RegisterResult.Warnings.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResult, error) {
	log := logger.FromContext(ctx)

	if req.DisplayName == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid registration data provided")
		return models.RegisterResult{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.RegisterResult{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		DisplayName:  req.DisplayName,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
		Language:     req.Language,
		CountryIso:   req.CountryIso,
		CountryName:  req.CountryName,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.RegisterResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	result := models.RegisterResult{User: user}

	if err = a.issueAndSendOtp(ctx, user); err != nil {
		log.Err(err).Int64("userID", user.ID).Msg("otp delivery failed during registration")
		result.Warnings = append(result.Warnings, "verification code could not be delivered")
	}

	if req.PlateNumber != "" {
		assignment, claimErr := a.plateRepository.ClaimPlate(ctx, user.ID, models.NormalizePlate(req.PlateNumber))
		if claimErr != nil {
			log.Err(claimErr).Int64("userID", user.ID).Msg("optional plate claim failed during registration")
			result.Warnings = append(result.Warnings, "license plate could not be assigned")
		} else {
			result.Plate = &assignment
		}
	}

	return result, nil
}

// issueAndSendOtp generates a fresh passcode, appends it to the ledger and
// mails it to the user.
func (a *authService) issueAndSendOtp(ctx context.Context, user models.User) error {
	code, err := utils.GenerateOtpCode(a.otpCodeLength)
	if err != nil {
		return fmt.Errorf("otp generation failed: %w", err)
	}

	record, err := a.otpRepository.IssueOtp(ctx, models.OtpRecord{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: a.now().Add(a.otpTTL),
	})
	if err != nil {
		return fmt.Errorf("otp persistence failed: %w", err)
	}

	body := fmt.Sprintf("Hello %s,\n\nYour verification code is %s. It expires in %d minutes.",
		user.DisplayName, record.Code, int(a.otpTTL.Minutes()))
	if err = a.mailer.Send(ctx, user.Email, "Verify your account", body); err != nil {
		return fmt.Errorf("otp email send failed: %w", err)
	}

	return nil
}

// VerifyOtp redeems the latest unredeemed passcode of the account registered
// under email and issues a session token on success.
//
// Failure order: unknown email → store.ErrUserNotFound; already verified →
// ErrAlreadyVerified; no outstanding code → store.ErrOtpNotFound; code
// mismatch → ErrInvalidOtpCode; past expiry → ErrOtpExpired; lost redemption
// race → store.ErrOtpAlreadyRedeemed.
func (a *authService) VerifyOtp(ctx context.Context, email string, code string) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if email == "" || code == "" {
		return models.AuthResult{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if user.IsVerified {
		return models.AuthResult{}, ErrAlreadyVerified
	}

	record, err := a.otpRepository.LatestUnredeemedOtp(ctx, user.ID)
	if err != nil {
		log.Err(err).Int64("userID", user.ID).Msg("otp lookup failed")
		return models.AuthResult{}, fmt.Errorf("otp lookup failed: %w", err)
	}

	if record.Code != code {
		return models.AuthResult{}, ErrInvalidOtpCode
	}
	if record.Expired(a.now()) {
		return models.AuthResult{}, ErrOtpExpired
	}

	if err = a.otpRepository.RedeemOtp(ctx, record.ID); err != nil {
		log.Err(err).Int64("otpID", record.ID).Msg("otp redemption failed")
		return models.AuthResult{}, fmt.Errorf("otp redemption failed: %w", err)
	}
	user.IsVerified = true

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		return models.AuthResult{}, err
	}

	return models.AuthResult{User: user, Token: token.SignedString}, nil
}

// Login authenticates a verified account and issues a session token.
//
// An unknown email still burns a bcrypt comparison against a fixed dummy
// hash so the response time does not reveal account existence; the caller
// then sees the same ErrInvalidCredentials as for a wrong password. An
// unverified account is rejected with ErrNotVerified before the password is
// checked.
func (a *authService) Login(ctx context.Context, email string, password string) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.AuthResult{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		utils.BurnPasswordCheck(password)
		log.Err(err).Str("email", email).Msg("login for unknown email")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	if !user.IsVerified {
		return models.AuthResult{}, ErrNotVerified
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		log.Warn().Int64("userID", user.ID).Msg("login with wrong password")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		return models.AuthResult{}, err
	}

	return models.AuthResult{User: user, Token: token.SignedString}, nil
}

// Profile returns the caller's own identity record.
func (a *authService) Profile(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// UpdateProfile applies a partial mutation to the caller's own record.
// Absent fields keep their prior values.
func (a *authService) UpdateProfile(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.Empty() {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.UpdateUser(ctx, userID, update)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return user, nil
}

// ChangePassword re-verifies the current password, then stores the bcrypt
// hash of the new one.
func (a *authService) ChangePassword(ctx context.Context, userID int64, currentPassword string, newPassword string) error {
	log := logger.FromContext(ctx)

	if currentPassword == "" || newPassword == "" {
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, currentPassword) {
		return ErrWrongPassword
	}

	newHash, err := utils.HashPassword(newPassword, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = a.userRepository.UpdatePasswordHash(ctx, userID, newHash); err != nil {
		log.Err(err).Int64("userID", userID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

// DeleteAccount re-verifies the current password, then removes the caller's
// account. Passcodes, the plate assignment and vehicles go with it.
func (a *authService) DeleteAccount(ctx context.Context, userID int64, password string) error {
	log := logger.FromContext(ctx)

	if password == "" {
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		return ErrWrongPassword
	}

	if err = a.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("userID", userID).Msg("account deletion failed")
		return fmt.Errorf("account deletion failed: %w", err)
	}

	log.Info().Int64("userID", userID).Msg("account deleted")
	return nil
}

// AllUsers returns the full account listing. Admin only.
func (a *authService) AllUsers(ctx context.Context, callerRole string) ([]models.User, error) {
	if callerRole != models.RoleAdmin {
		return nil, ErrAdminOnly
	}

	users, err := a.userRepository.FindAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the account role as the "role" claim,
// and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
