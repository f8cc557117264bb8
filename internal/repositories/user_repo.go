package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "busbooking/internal/config"
	"busbooking/internal/domain"
	"busbooking/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

type UserRepo struct {
	DB *sql.DB
}

func (r UserRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Create inserts a user with role "user". Duplicate email is a conflict.
func (r UserRepo) Create(name, email, passwordHash string) (models.User, error) {
	db := r.db()
	if db == nil {
		return models.User{}, domain.InternalError{Msg: "database not connected"}
	}

	res, err := db.Exec(`
		INSERT INTO users (name, email, password_hash, role, created_at)
		VALUES (?, ?, ?, 'user', NOW())
	`, strings.TrimSpace(name), strings.ToLower(strings.TrimSpace(email)), passwordHash)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return models.User{}, domain.ConflictError{Resource: "user", Msg: "email already registered"}
		}
		return models.User{}, domain.InternalError{Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}
	return models.User{
		ID:    id,
		Name:  strings.TrimSpace(name),
		Email: strings.ToLower(strings.TrimSpace(email)),
		Role:  "user",
	}, nil
}

// GetByEmail fetches a user including the password hash, for login.
func (r UserRepo) GetByEmail(email string) (models.User, error) {
	db := r.db()
	if db == nil {
		return models.User{}, domain.InternalError{Msg: "database not connected"}
	}

	var u models.User
	err := db.QueryRow(`
		SELECT id, name, email, password_hash, role
		FROM users
		WHERE email = ?
		LIMIT 1
	`, strings.ToLower(strings.TrimSpace(email))).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "user"}
		}
		return models.User{}, domain.InternalError{Err: err}
	}
	return u, nil
}

// GetByID fetches a user without the password hash.
func (r UserRepo) GetByID(id int64) (models.User, error) {
	db := r.db()
	if db == nil {
		return models.User{}, domain.InternalError{Msg: "database not connected"}
	}

	var u models.User
	err := db.QueryRow(`
		SELECT id, name, email, role
		FROM users
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&u.ID, &u.Name, &u.Email, &u.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "user"}
		}
		return models.User{}, domain.InternalError{Err: err}
	}
	return u, nil
}
