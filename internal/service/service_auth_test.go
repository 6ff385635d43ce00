package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/centraplate/registry/internal/logger"
	"github.com/centraplate/registry/internal/mock"
	"github.com/centraplate/registry/internal/store"
	"github.com/centraplate/registry/internal/utils"
	"github.com/centraplate/registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testClock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// newTestAuthSvc builds an authService with mocked collaborators, a fixed
// clock and a cheap bcrypt cost.
func newTestAuthSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*authService,
	*mock.MockUserRepository,
	*mock.MockOtpRepository,
	*mock.MockPlateRepository,
	*mock.MockMailer,
) {
	t.Helper()
	mockUsers := mock.NewMockUserRepository(ctrl)
	mockOtps := mock.NewMockOtpRepository(ctrl)
	mockPlates := mock.NewMockPlateRepository(ctrl)
	mockMailer := mock.NewMockMailer(ctrl)

	svc := &authService{
		userRepository:  mockUsers,
		otpRepository:   mockOtps,
		plateRepository: mockPlates,
		mailer:          mockMailer,
		tokenSignKey:    "test-sign-key",
		tokenIssuer:     "plate-registry",
		tokenDuration:   time.Hour,
		bcryptCost:      bcrypt.MinCost,
		otpCodeLength:   models.DefaultOtpLength,
		otpTTL:          10 * time.Minute,
		now:             func() time.Time { return testClock },
		logger:          logger.Nop(),
	}

	return svc, mockUsers, mockOtps, mockPlates, mockMailer
}

func testPasswordHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockOtps, _, mockMailer := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.RegisterRequest{
		DisplayName: "Alice",
		Email:       "a@x.com",
		Password:    "pw123",
		CountryIso:  "US",
		CountryName: "United States",
		Language:    "en",
	}

	gomock.InOrder(
		mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, req.Email, u.Email)
				assert.Equal(t, models.RoleUser, u.Role)
				assert.NotEqual(t, req.Password, u.PasswordHash, "raw password must never reach the store")
				assert.True(t, utils.CheckPassword(u.PasswordHash, req.Password))
				u.ID = 1
				return u, nil
			},
		),
		mockOtps.EXPECT().IssueOtp(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, rec models.OtpRecord) (models.OtpRecord, error) {
				assert.Equal(t, int64(1), rec.UserID)
				assert.Len(t, rec.Code, models.DefaultOtpLength)
				for _, r := range rec.Code {
					assert.Contains(t, models.OtpAlphabet, string(r))
				}
				assert.Equal(t, testClock.Add(10*time.Minute), rec.ExpiresAt)
				rec.ID = 11
				return rec, nil
			},
		),
		mockMailer.EXPECT().Send(ctx, req.Email, gomock.Any(), gomock.Any()).Return(nil),
	)

	result, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.User.ID)
	assert.Nil(t, result.Plate)
	assert.Empty(t, result.Warnings)
}

func TestAuthService_Register_WithPlate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockOtps, mockPlates, mockMailer := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.RegisterRequest{
		DisplayName: "Alice",
		Email:       "a@x.com",
		Password:    "pw123",
		PlateNumber: " ab123c ",
	}

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			u.ID = 1
			return u, nil
		},
	)
	mockOtps.EXPECT().IssueOtp(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rec models.OtpRecord) (models.OtpRecord, error) { return rec, nil },
	)
	mockMailer.EXPECT().Send(ctx, req.Email, gomock.Any(), gomock.Any()).Return(nil)
	// the plate is normalized before it reaches the store
	mockPlates.EXPECT().ClaimPlate(ctx, int64(1), "AB123C").Return(
		models.PlateAssignment{ID: 2, UserID: 1, PlateNumber: "AB123C"}, nil,
	)

	result, err := svc.Register(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, result.Plate)
	assert.Equal(t, "AB123C", result.Plate.PlateNumber)
	assert.Empty(t, result.Warnings)
}

func TestAuthService_Register_PlateClaimFailureIsWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockOtps, mockPlates, mockMailer := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.RegisterRequest{
		DisplayName: "Alice",
		Email:       "a@x.com",
		Password:    "pw123",
		PlateNumber: "AB123C",
	}

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			u.ID = 1
			return u, nil
		},
	)
	mockOtps.EXPECT().IssueOtp(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rec models.OtpRecord) (models.OtpRecord, error) { return rec, nil },
	)
	mockMailer.EXPECT().Send(ctx, req.Email, gomock.Any(), gomock.Any()).Return(nil)
	mockPlates.EXPECT().ClaimPlate(ctx, int64(1), "AB123C").Return(
		models.PlateAssignment{}, store.ErrPlateAlreadyTaken,
	)

	result, err := svc.Register(ctx, req)
	require.NoError(t, err, "optional plate claim failure must not fail registration")
	assert.Nil(t, result.Plate)
	assert.Len(t, result.Warnings, 1)
}

func TestAuthService_Register_MailFailureIsWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockOtps, _, mockMailer := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.RegisterRequest{DisplayName: "Alice", Email: "a@x.com", Password: "pw123"}

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			u.ID = 1
			return u, nil
		},
	)
	mockOtps.EXPECT().IssueOtp(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rec models.OtpRecord) (models.OtpRecord, error) { return rec, nil },
	)
	mockMailer.EXPECT().Send(ctx, req.Email, gomock.Any(), gomock.Any()).Return(errors.New("smtp relay down"))

	result, err := svc.Register(ctx, req)
	require.NoError(t, err, "mail delivery failure must not fail registration")
	assert.Len(t, result.Warnings, 1)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(ctx, models.RegisterRequest{DisplayName: "Alice", Email: "a@x.com", Password: "pw123"})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── VerifyOtp ────────────────────────────────────────────────────────────────

func TestAuthService_VerifyOtp_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockOtps, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: 1, Email: "a@x.com", Role: models.RoleUser, IsVerified: false}
	record := models.OtpRecord{ID: 11, UserID: 1, Code: "017834", ExpiresAt: testClock.Add(5 * time.Minute)}

	gomock.InOrder(
		mockUsers.EXPECT().FindUserByEmail(ctx, "a@x.com").Return(user, nil),
		mockOtps.EXPECT().LatestUnredeemedOtp(ctx, int64(1)).Return(record, nil),
		mockOtps.EXPECT().RedeemOtp(ctx, int64(11)).Return(nil),
	)

	result, err := svc.VerifyOtp(ctx, "a@x.com", "017834")
	require.NoError(t, err)
	assert.True(t, result.User.IsVerified)
	assert.NotEmpty(t, result.Token)

	// the issued token parses back to the same subject and role
	token, err := svc.ParseToken(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), token.UserID)
	assert.Equal(t, models.RoleUser, token.Role)
}

func TestAuthService_VerifyOtp_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByEmail(ctx, "nobody@x.com").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.VerifyOtp(ctx, "nobody@x.com", "017834")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestAuthService_VerifyOtp_AlreadyVerified(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByEmail(ctx, "a@x.com").Return(models.User{ID: 1, IsVerified: true}, nil)

	_, err := svc.VerifyOtp(ctx, "a@x.com", "017834")
	assert.ErrorIs(t, err, ErrAlreadyVerified)
}

func TestAuthService_VerifyOtp_WrongCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockOtps, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByEmail(ctx, "a@x.com").Return(models.User{ID: 1}, nil)
	mockOtps.EXPECT().LatestUnredeemedOtp(ctx, int64(1)).Return(
		models.OtpRecord{ID: 11, UserID: 1, Code: "017834", ExpiresAt: testClock.Add(5 * time.Minute)}, nil,
	)

	_, err := svc.VerifyOtp(ctx, "a@x.com", "999999")
	assert.ErrorIs(t, err, ErrInvalidOtpCode)
}

func TestAuthService_VerifyOtp_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockOtps, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByEmail(ctx, "a@x.com").Return(models.User{ID: 1}, nil)
	// code matches but the validity window has passed
	mockOtps.EXPECT().LatestUnredeemedOtp(ctx, int64(1)).Return(
		models.OtpRecord{ID: 11, UserID: 1, Code: "017834", ExpiresAt: testClock.Add(-time.Minute)}, nil,
	)

	_, err := svc.VerifyOtp(ctx, "a@x.com", "017834")
	assert.ErrorIs(t, err, ErrOtpExpired)
}

func TestAuthService_VerifyOtp_NoOutstandingCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockOtps, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByEmail(ctx, "a@x.com").Return(models.User{ID: 1}, nil)
	mockOtps.EXPECT().LatestUnredeemedOtp(ctx, int64(1)).Return(models.OtpRecord{}, store.ErrOtpNotFound)

	_, err := svc.VerifyOtp(ctx, "a@x.com", "017834")
	assert.ErrorIs(t, err, store.ErrOtpNotFound)
}

func TestAuthService_VerifyOtp_LostRedemptionRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockOtps, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByEmail(ctx, "a@x.com").Return(models.User{ID: 1}, nil)
	mockOtps.EXPECT().LatestUnredeemedOtp(ctx, int64(1)).Return(
		models.OtpRecord{ID: 11, UserID: 1, Code: "017834", ExpiresAt: testClock.Add(5 * time.Minute)}, nil,
	)
	mockOtps.EXPECT().RedeemOtp(ctx, int64(11)).Return(store.ErrOtpAlreadyRedeemed)

	_, err := svc.VerifyOtp(ctx, "a@x.com", "017834")
	assert.ErrorIs(t, err, store.ErrOtpAlreadyRedeemed)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{
		ID:           1,
		Email:        "a@x.com",
		PasswordHash: testPasswordHash(t, "pw123"),
		Role:         models.RoleUser,
		IsVerified:   true,
	}

	mockUsers.EXPECT().FindUserByEmail(ctx, "a@x.com").Return(user, nil)

	result, err := svc.Login(ctx, "a@x.com", "pw123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)

	token, err := svc.ParseToken(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), token.UserID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByEmail(ctx, "nobody@x.com").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(ctx, "nobody@x.com", "pw123")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "unknown email must look exactly like a wrong password")
}

func TestAuthService_Login_Unverified(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{
		ID:           1,
		Email:        "a@x.com",
		PasswordHash: testPasswordHash(t, "pw123"),
		IsVerified:   false,
	}
	mockUsers.EXPECT().FindUserByEmail(ctx, "a@x.com").Return(user, nil)

	// correct password, still forbidden
	_, err := svc.Login(ctx, "a@x.com", "pw123")
	assert.ErrorIs(t, err, ErrNotVerified)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{
		ID:           1,
		Email:        "a@x.com",
		PasswordHash: testPasswordHash(t, "pw123"),
		IsVerified:   true,
	}
	mockUsers.EXPECT().FindUserByEmail(ctx, "a@x.com").Return(user, nil)

	_, err := svc.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// ── Profile / UpdateProfile ──────────────────────────────────────────────────

func TestAuthService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{ID: 1, Email: "a@x.com"}, nil)

	user, err := svc.Profile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
}

func TestAuthService_UpdateProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	name := "Alice B"
	update := models.UserUpdate{DisplayName: &name}
	mockUsers.EXPECT().UpdateUser(ctx, int64(1), update).Return(models.User{ID: 1, DisplayName: name}, nil)

	user, err := svc.UpdateProfile(ctx, 1, update)
	require.NoError(t, err)
	assert.Equal(t, name, user.DisplayName)
}

func TestAuthService_UpdateProfile_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.UpdateProfile(context.Background(), 1, models.UserUpdate{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── ChangePassword / DeleteAccount ───────────────────────────────────────────

func TestAuthService_ChangePassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: 1, PasswordHash: testPasswordHash(t, "old-pw")}

	gomock.InOrder(
		mockUsers.EXPECT().FindUserByID(ctx, int64(1)).Return(user, nil),
		mockUsers.EXPECT().UpdatePasswordHash(ctx, int64(1), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, hash string) error {
				assert.True(t, utils.CheckPassword(hash, "new-pw"))
				return nil
			},
		),
	)

	require.NoError(t, svc.ChangePassword(ctx, 1, "old-pw", "new-pw"))
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByID(ctx, int64(1)).Return(
		models.User{ID: 1, PasswordHash: testPasswordHash(t, "old-pw")}, nil,
	)

	err := svc.ChangePassword(ctx, 1, "not-the-password", "new-pw")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_DeleteAccount_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockUsers.EXPECT().FindUserByID(ctx, int64(1)).Return(
			models.User{ID: 1, PasswordHash: testPasswordHash(t, "pw123")}, nil,
		),
		mockUsers.EXPECT().DeleteUser(ctx, int64(1)).Return(nil),
	)

	require.NoError(t, svc.DeleteAccount(ctx, 1, "pw123"))
}

func TestAuthService_DeleteAccount_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// DeleteUser must never be called on a failed password re-check
	mockUsers.EXPECT().FindUserByID(ctx, int64(1)).Return(
		models.User{ID: 1, PasswordHash: testPasswordHash(t, "pw123")}, nil,
	)

	err := svc.DeleteAccount(ctx, 1, "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

// ── AllUsers ─────────────────────────────────────────────────────────────────

func TestAuthService_AllUsers_AdminOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.AllUsers(context.Background(), models.RoleUser)
	assert.ErrorIs(t, err, ErrAdminOnly)
}

func TestAuthService_AllUsers_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindAllUsers(ctx).Return([]models.User{{ID: 1}, {ID: 2}}, nil)

	users, err := svc.AllUsers(ctx, models.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{ID: 1, Role: models.RoleUser})
	require.NoError(t, err)

	other := *svc
	other.tokenSignKey = "different-key"
	_, err = other.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
