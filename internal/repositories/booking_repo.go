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

// Unique key names on the bookings table. The insert relies on these to
// keep check-then-insert atomic under concurrent requests.
const (
	idxRouteSeat = "uniq_route_seat"
	idxUserRoute = "uniq_user_route"
)

type BookingRepo struct {
	DB *sql.DB
}

func (r BookingRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Insert creates the booking row. A duplicate-key failure means another
// request won the seat or the user already holds one on the route; it is
// mapped to the matching rejection instead of a storage error.
func (r BookingRepo) Insert(userID int64, route domain.Route, seat int) (models.Booking, error) {
	db := r.db()
	if db == nil {
		return models.Booking{}, domain.InternalError{Msg: "database not connected"}
	}

	res, err := db.Exec(`
		INSERT INTO bookings (user_id, route, seat_number, created_at)
		VALUES (?, ?, ?, NOW())
	`, userID, string(route), seat)
	if err != nil {
		switch {
		case isDuplicateKey(err, idxRouteSeat):
			return models.Booking{}, domain.ErrSeatAlreadyTaken
		case isDuplicateKey(err, idxUserRoute):
			return models.Booking{}, domain.ErrUserAlreadyBooked
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return r.GetByID(id)
}

// GetByID fetches one booking with the owner's name and email attached.
func (r BookingRepo) GetByID(id int64) (models.Booking, error) {
	db := r.db()
	if db == nil {
		return models.Booking{}, domain.InternalError{Msg: "database not connected"}
	}

	var b models.Booking
	err := db.QueryRow(`
		SELECT b.id, b.user_id, b.route, b.seat_number, b.created_at,
		       COALESCE(u.name, ''), COALESCE(u.email, '')
		FROM bookings b
		LEFT JOIN users u ON u.id = b.user_id
		WHERE b.id = ?
		LIMIT 1
	`, id).Scan(&b.ID, &b.UserID, &b.Route, &b.SeatNumber, &b.CreatedAt, &b.UserName, &b.UserEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.ErrBookingNotFound
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return b, nil
}

// Delete removes the booking in one statement; found reports whether a row
// existed. No separate existence check, so revoke cannot race with itself.
func (r BookingRepo) Delete(id int64) (found bool, err error) {
	db := r.db()
	if db == nil {
		return false, domain.InternalError{Msg: "database not connected"}
	}

	res, err := db.Exec(`DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	return n > 0, nil
}

// SeatNumbers returns the booked seat numbers for a route, ascending.
// Occupancy and the free-seat list both derive from this one result set so
// they always agree within a response.
func (r BookingRepo) SeatNumbers(route domain.Route) ([]int, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database not connected"}
	}

	rows, err := db.Query(`
		SELECT seat_number FROM bookings
		WHERE route = ?
		ORDER BY seat_number ASC
	`, string(route))
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []int{}
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

// SeatTaken reports whether (route, seat) is already booked.
func (r BookingRepo) SeatTaken(route domain.Route, seat int) (bool, error) {
	db := r.db()
	if db == nil {
		return false, domain.InternalError{Msg: "database not connected"}
	}

	var one int
	err := db.QueryRow(`
		SELECT 1 FROM bookings WHERE route = ? AND seat_number = ? LIMIT 1
	`, string(route), seat).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	return true, nil
}

// UserHasBooking reports whether the user already holds a seat on the route.
func (r BookingRepo) UserHasBooking(userID int64, route domain.Route) (bool, error) {
	db := r.db()
	if db == nil {
		return false, domain.InternalError{Msg: "database not connected"}
	}

	var one int
	err := db.QueryRow(`
		SELECT 1 FROM bookings WHERE user_id = ? AND route = ? LIMIT 1
	`, userID, string(route)).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	return true, nil
}

// ListByUser returns the user's bookings, newest first.
func (r BookingRepo) ListByUser(userID int64) ([]models.Booking, error) {
	return r.list(`WHERE b.user_id = ?`, userID)
}

// ListAll returns every booking, newest first.
func (r BookingRepo) ListAll() ([]models.Booking, error) {
	return r.list(``)
}

func (r BookingRepo) list(where string, args ...any) ([]models.Booking, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database not connected"}
	}

	query := `
		SELECT b.id, b.user_id, b.route, b.seat_number, b.created_at,
		       COALESCE(u.name, ''), COALESCE(u.email, '')
		FROM bookings b
		LEFT JOIN users u ON u.id = b.user_id
		` + where + `
		ORDER BY b.created_at DESC, b.id DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.Route, &b.SeatNumber, &b.CreatedAt, &b.UserName, &b.UserEmail); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

// isDuplicateKey matches MySQL error 1062 against a specific unique index.
func isDuplicateKey(err error, index string) bool {
	var me *mysql.MySQLError
	if !errors.As(err, &me) || me.Number != 1062 {
		return false
	}
	return strings.Contains(me.Message, index)
}
