package services

import (
	"errors"
	"testing"
	"time"

	"busbooking/internal/domain"
	"busbooking/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func newBookingService(t *testing.T) (BookingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := BookingService{Bookings: repositories.BookingRepo{DB: db}, DB: db}
	return svc, mock, func() { db.Close() }
}

func TestReserveRejectsInvalidRoute(t *testing.T) {
	svc := BookingService{}
	_, err := svc.Reserve(1, "InvalidRoute", 1)
	if !errors.Is(err, domain.ErrInvalidRoute) {
		t.Fatalf("expected ErrInvalidRoute, got %v", err)
	}
}

func TestReserveRejectsSeatOutOfRange(t *testing.T) {
	svc := BookingService{}
	for _, seat := range []int{0, 41, -3} {
		_, err := svc.Reserve(1, "Ameerpet", seat)
		if !errors.Is(err, domain.ErrSeatOutOfRange) {
			t.Fatalf("seat %d: expected ErrSeatOutOfRange, got %v", seat, err)
		}
	}
}

func TestReserveSuccess(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	created := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT 1 FROM bookings WHERE route").
		WithArgs("Ameerpet", 5).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))
	mock.ExpectQuery("SELECT 1 FROM bookings WHERE user_id").
		WithArgs(int64(42), "Ameerpet").
		WillReturnRows(sqlmock.NewRows([]string{"1"}))
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(int64(42), "Ameerpet", 5).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectQuery("SELECT b.id, b.user_id").
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "route", "seat_number", "created_at", "name", "email"}).
			AddRow(11, 42, "Ameerpet", 5, created, "Alice", "alice@example.com"))

	b, err := svc.Reserve(42, "Ameerpet", 5)
	if err != nil {
		t.Fatalf("reserve error: %v", err)
	}
	if b.ID != 11 || b.SeatNumber != 5 || b.Route != domain.RouteAmeerpet {
		t.Fatalf("unexpected booking: %+v", b)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReserveRejectsTakenSeat(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectQuery("SELECT 1 FROM bookings WHERE route").
		WithArgs("Ameerpet", 5).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	_, err := svc.Reserve(7, "Ameerpet", 5)
	if !errors.Is(err, domain.ErrSeatAlreadyTaken) {
		t.Fatalf("expected ErrSeatAlreadyTaken, got %v", err)
	}
}

func TestReserveRejectsSecondBookingOnRoute(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectQuery("SELECT 1 FROM bookings WHERE route").
		WithArgs("Ameerpet", 6).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))
	mock.ExpectQuery("SELECT 1 FROM bookings WHERE user_id").
		WithArgs(int64(42), "Ameerpet").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	_, err := svc.Reserve(42, "Ameerpet", 6)
	if !errors.Is(err, domain.ErrUserAlreadyBooked) {
		t.Fatalf("expected ErrUserAlreadyBooked, got %v", err)
	}
}

// A request can pass both pre-checks and still lose the insert to a
// concurrent booking. The unique key turns that into the same rejection.
func TestReserveLostRaceSurfacesAsSeatTaken(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectQuery("SELECT 1 FROM bookings WHERE route").
		WithArgs("Jubilee Hills", 12).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))
	mock.ExpectQuery("SELECT 1 FROM bookings WHERE user_id").
		WithArgs(int64(8), "Jubilee Hills").
		WillReturnRows(sqlmock.NewRows([]string{"1"}))
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(int64(8), "Jubilee Hills", 12).
		WillReturnError(&mysql.MySQLError{
			Number:  1062,
			Message: "Duplicate entry 'Jubilee Hills-12' for key 'bookings.uniq_route_seat'",
		})

	_, err := svc.Reserve(8, "Jubilee Hills", 12)
	if !errors.Is(err, domain.ErrSeatAlreadyTaken) {
		t.Fatalf("expected ErrSeatAlreadyTaken, got %v", err)
	}
}

func TestRevokeIdempotentOnFailure(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectExec("DELETE FROM bookings").WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM bookings").WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := svc.Revoke(3); err != nil {
		t.Fatalf("first revoke error: %v", err)
	}
	if err := svc.Revoke(3); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("second revoke: expected ErrBookingNotFound, got %v", err)
	}
}

func TestMyBookingsNewestFirstPassthrough(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	older := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	newer := older.Add(2 * time.Hour)
	mock.ExpectQuery("SELECT b.id, b.user_id").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "route", "seat_number", "created_at", "name", "email"}).
			AddRow(2, 42, "Jubilee Hills", 3, newer, "Alice", "alice@example.com").
			AddRow(1, 42, "Ameerpet", 5, older, "Alice", "alice@example.com"))

	bookings, err := svc.MyBookings(42)
	if err != nil {
		t.Fatalf("my bookings error: %v", err)
	}
	if len(bookings) != 2 || bookings[0].ID != 2 || bookings[1].ID != 1 {
		t.Fatalf("unexpected order: %+v", bookings)
	}
}
