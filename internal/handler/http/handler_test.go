package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/centraplate/registry/internal/logger"
	"github.com/centraplate/registry/internal/service"
	"github.com/centraplate/registry/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn       func(ctx context.Context, req models.RegisterRequest) (models.RegisterResult, error)
	verifyOtpFn      func(ctx context.Context, email string, code string) (models.AuthResult, error)
	loginFn          func(ctx context.Context, email string, password string) (models.AuthResult, error)
	profileFn        func(ctx context.Context, userID int64) (models.User, error)
	updateProfileFn  func(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	changePasswordFn func(ctx context.Context, userID int64, currentPassword string, newPassword string) error
	deleteAccountFn  func(ctx context.Context, userID int64, password string) error
	allUsersFn       func(ctx context.Context, callerRole string) ([]models.User, error)
	createTokenFn    func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResult, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) VerifyOtp(ctx context.Context, email string, code string) (models.AuthResult, error) {
	return m.verifyOtpFn(ctx, email, code)
}

func (m *mockAuthService) Login(ctx context.Context, email string, password string) (models.AuthResult, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) Profile(ctx context.Context, userID int64) (models.User, error) {
	return m.profileFn(ctx, userID)
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	return m.updateProfileFn(ctx, userID, update)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID int64, currentPassword string, newPassword string) error {
	return m.changePasswordFn(ctx, userID, currentPassword, newPassword)
}

func (m *mockAuthService) DeleteAccount(ctx context.Context, userID int64, password string) error {
	return m.deleteAccountFn(ctx, userID, password)
}

func (m *mockAuthService) AllUsers(ctx context.Context, callerRole string) ([]models.User, error) {
	return m.allUsersFn(ctx, callerRole)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockPlateService implements service.PlateService for unit tests.
type mockPlateService struct {
	assignFn    func(ctx context.Context, userID int64, plateNumber string) (models.PlateAssignment, error)
	searchFn    func(ctx context.Context, plateNumber string) (models.PlateAssignment, error)
	myPlateFn   func(ctx context.Context, userID int64) (models.PlateAssignment, error)
	allPlatesFn func(ctx context.Context, callerRole string) ([]models.PlateOwner, error)
}

func (m *mockPlateService) Assign(ctx context.Context, userID int64, plateNumber string) (models.PlateAssignment, error) {
	return m.assignFn(ctx, userID, plateNumber)
}

func (m *mockPlateService) Search(ctx context.Context, plateNumber string) (models.PlateAssignment, error) {
	return m.searchFn(ctx, plateNumber)
}

func (m *mockPlateService) MyPlate(ctx context.Context, userID int64) (models.PlateAssignment, error) {
	return m.myPlateFn(ctx, userID)
}

func (m *mockPlateService) AllPlates(ctx context.Context, callerRole string) ([]models.PlateOwner, error) {
	return m.allPlatesFn(ctx, callerRole)
}

// mockVehicleService implements service.VehicleService for unit tests.
type mockVehicleService struct {
	addFn         func(ctx context.Context, userID int64, req models.AddVehicleRequest) (models.Vehicle, error)
	searchFn      func(ctx context.Context, licensePlate string, countryIso string) ([]models.Vehicle, error)
	myVehiclesFn  func(ctx context.Context, userID int64) ([]models.Vehicle, error)
	allVehiclesFn func(ctx context.Context, callerRole string) ([]models.Vehicle, error)
}

func (m *mockVehicleService) Add(ctx context.Context, userID int64, req models.AddVehicleRequest) (models.Vehicle, error) {
	return m.addFn(ctx, userID, req)
}

func (m *mockVehicleService) Search(ctx context.Context, licensePlate string, countryIso string) ([]models.Vehicle, error) {
	return m.searchFn(ctx, licensePlate, countryIso)
}

func (m *mockVehicleService) MyVehicles(ctx context.Context, userID int64) ([]models.Vehicle, error) {
	return m.myVehiclesFn(ctx, userID)
}

func (m *mockVehicleService) AllVehicles(ctx context.Context, callerRole string) ([]models.Vehicle, error) {
	return m.allVehiclesFn(ctx, callerRole)
}

// newTestHandler builds a Handler wired with the given service mocks.
// Any nil mock is replaced with an empty one whose methods must not be called.
func newTestHandler(t *testing.T, auth service.AuthService, plates service.PlateService, vehicles service.VehicleService) *Handler {
	t.Helper()
	if auth == nil {
		auth = &mockAuthService{}
	}
	if plates == nil {
		plates = &mockPlateService{}
	}
	if vehicles == nil {
		vehicles = &mockVehicleService{}
	}
	svcs := &service.Services{
		AuthService:    auth,
		PlateService:   plates,
		VehicleService: vehicles,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) *strings.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(b))
}

// decodeEnvelope unmarshals the recorded response body into an APIResponse.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()
	var resp models.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// validRegisterRequest is a convenience fixture used across multiple tests.
var validRegisterRequest = models.RegisterRequest{
	DisplayName: "Alice",
	Email:       "alice@example.com",
	Password:    "s3cret-password",
	CountryIso:  "US",
}
