package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
)

func newTestPlateRepo(t *testing.T) (*plateRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	wrapped, mock, db := newTestDB(t)
	repo := &plateRepository{db: wrapped, logger: wrapped.logger}
	return repo, mock, db
}

var plateColumns = []string{"id", "user_id", "plate_number", "created_at"}

func TestClaimPlate_Success(t *testing.T) {
	repo, mock, db := newTestPlateRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows(plateColumns).
		AddRow(3, int64(1), "AB123CD", now)

	mock.ExpectQuery("INSERT INTO license_plates").
		WithArgs(int64(1), "AB123CD").
		WillReturnRows(rows)

	assignment, err := repo.ClaimPlate(context.Background(), 1, "AB123CD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assignment.PlateNumber != "AB123CD" {
		t.Errorf("expected plate AB123CD, got %s", assignment.PlateNumber)
	}
}

func TestClaimPlate_PlateAlreadyTaken(t *testing.T) {
	repo, mock, db := newTestPlateRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO license_plates").
		WillReturnError(pgConstraintError(pgerrcode.UniqueViolation, "license_plates_plate_number_key"))

	_, err := repo.ClaimPlate(context.Background(), 2, "AB123CD")
	if !errors.Is(err, ErrPlateAlreadyTaken) {
		t.Fatalf("expected ErrPlateAlreadyTaken, got %v", err)
	}
}

func TestClaimPlate_UserAlreadyHasPlate(t *testing.T) {
	repo, mock, db := newTestPlateRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO license_plates").
		WillReturnError(pgConstraintError(pgerrcode.UniqueViolation, "license_plates_user_id_key"))

	_, err := repo.ClaimPlate(context.Background(), 1, "XY999ZZ")
	if !errors.Is(err, ErrUserAlreadyHasPlate) {
		t.Fatalf("expected ErrUserAlreadyHasPlate, got %v", err)
	}
}

func TestClaimPlate_UnknownUser(t *testing.T) {
	repo, mock, db := newTestPlateRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO license_plates").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.ClaimPlate(context.Background(), 404, "AB123CD")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindPlateByNumber_Success(t *testing.T) {
	repo, mock, db := newTestPlateRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(plateColumns).AddRow(3, int64(1), "AB123CD", now)

	mock.ExpectQuery("SELECT id").
		WithArgs("AB123CD").
		WillReturnRows(rows)

	assignment, err := repo.FindPlateByNumber(context.Background(), "AB123CD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assignment.UserID != 1 {
		t.Errorf("expected owner 1, got %d", assignment.UserID)
	}
}

func TestFindPlateByNumber_NotFound(t *testing.T) {
	repo, mock, db := newTestPlateRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id").
		WithArgs("ZZ000ZZ").
		WillReturnRows(sqlmock.NewRows(plateColumns))

	_, err := repo.FindPlateByNumber(context.Background(), "ZZ000ZZ")
	if !errors.Is(err, ErrPlateNotFound) {
		t.Fatalf("expected ErrPlateNotFound, got %v", err)
	}
}

func TestFindPlateByUser_NotFound(t *testing.T) {
	repo, mock, db := newTestPlateRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(plateColumns))

	_, err := repo.FindPlateByUser(context.Background(), 1)
	if !errors.Is(err, ErrPlateNotFound) {
		t.Fatalf("expected ErrPlateNotFound, got %v", err)
	}
}

func TestFindAllPlates_Success(t *testing.T) {
	repo, mock, db := newTestPlateRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "user_id", "plate_number", "created_at", "display_name", "email", "is_verified"}).
		AddRow(1, int64(1), "AB123CD", now, "John", "john@example.com", true).
		AddRow(2, int64(2), "XY999ZZ", now, "Jane", "jane@example.com", false)

	mock.ExpectQuery("SELECT p.id").WillReturnRows(rows)

	owners, err := repo.FindAllPlates(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(owners) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(owners))
	}
	if owners[0].OwnerEmail != "john@example.com" {
		t.Errorf("expected owner email john@example.com, got %s", owners[0].OwnerEmail)
	}
	if owners[1].OwnerVerified {
		t.Error("expected second owner to be unverified")
	}
}

func TestFindAllPlates_QueryError(t *testing.T) {
	repo, mock, db := newTestPlateRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT p.id").WillReturnError(errors.New("db failure"))

	_, err := repo.FindAllPlates(context.Background())
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
