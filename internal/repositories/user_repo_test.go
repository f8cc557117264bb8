package repositories

import (
	"testing"

	"busbooking/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func TestCreateUserDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&mysql.MySQLError{
			Number:  1062,
			Message: "Duplicate entry 'alice@example.com' for key 'users.uniq_email'",
		})

	_, err = UserRepo{DB: db}.Create("Alice", "alice@example.com", "hash")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestGetByEmailNormalizes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, email, password_hash, role").
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role"}).
			AddRow(1, "Alice", "alice@example.com", "hash", "user"))

	u, err := UserRepo{DB: db}.GetByEmail("  Alice@Example.com ")
	if err != nil {
		t.Fatalf("get by email error: %v", err)
	}
	if u.ID != 1 || u.Role != "user" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestGetByEmailNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, email, password_hash, role").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role"}))

	_, err = UserRepo{DB: db}.GetByEmail("ghost@example.com")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
