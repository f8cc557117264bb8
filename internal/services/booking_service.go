package services

import (
	"database/sql"
	"fmt"

	intconfig "busbooking/internal/config"
	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"
)

// BookingService is the reservation engine. It validates a request against
// the route registry and the current store, then commits through the
// constraint-backed insert. It never retries on conflict; the caller picks
// another seat.
type BookingService struct {
	Bookings  repositories.BookingRepo
	DB        *sql.DB
	RequestID string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepo {
	if s.Bookings.DB != nil {
		return s.Bookings
	}
	return repositories.BookingRepo{DB: s.db()}
}

// Reserve books one seat for the user. Preconditions are checked in order:
// route, seat range, seat free, user not yet booked on the route. The
// pre-checks give precise rejections; the unique keys on the insert are
// what actually closes the check-then-insert race, so a lost race surfaces
// as the same rejection the pre-check would have produced.
func (s BookingService) Reserve(userID int64, route string, seat int) (models.Booking, error) {
	if userID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "user_id", Msg: "invalid user"}
	}
	if !domain.IsValidRoute(route) {
		return models.Booking{}, domain.ErrInvalidRoute
	}
	r := domain.Route(route)
	if seat < 1 || seat > domain.Capacity(r) {
		return models.Booking{}, domain.ErrSeatOutOfRange
	}

	repo := s.bookings()

	taken, err := repo.SeatTaken(r, seat)
	if err != nil {
		return models.Booking{}, err
	}
	if taken {
		return models.Booking{}, domain.ErrSeatAlreadyTaken
	}

	has, err := repo.UserHasBooking(userID, r)
	if err != nil {
		return models.Booking{}, err
	}
	if has {
		return models.Booking{}, domain.ErrUserAlreadyBooked
	}

	b, err := repo.Insert(userID, r, seat)
	if err != nil {
		return models.Booking{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "reserve",
		fmt.Sprintf("booking_id=%d route=%s seat=%d user_id=%d", b.ID, b.Route, b.SeatNumber, userID))
	return b, nil
}

// Revoke deletes the booking in one atomic statement. A second call with
// the same id fails with booking-not-found, never crashes.
func (s BookingService) Revoke(bookingID int64) error {
	if bookingID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid booking id"}
	}

	found, err := s.bookings().Delete(bookingID)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrBookingNotFound
	}

	utils.LogEvent(s.RequestID, "booking", "revoke", fmt.Sprintf("booking_id=%d", bookingID))
	return nil
}

// Get fetches one booking by id.
func (s BookingService) Get(bookingID int64) (models.Booking, error) {
	if bookingID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "invalid booking id"}
	}
	return s.bookings().GetByID(bookingID)
}

// MyBookings lists the caller's bookings, newest first.
func (s BookingService) MyBookings(userID int64) ([]models.Booking, error) {
	if userID <= 0 {
		return nil, domain.ValidationError{Field: "user_id", Msg: "invalid user"}
	}
	return s.bookings().ListByUser(userID)
}
