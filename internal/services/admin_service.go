package services

import (
	"database/sql"

	intconfig "busbooking/internal/config"
	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"
)

// AdminService aggregates over all bookings for the admin dashboard.
type AdminService struct {
	Bookings repositories.BookingRepo
	DB       *sql.DB
}

func (s AdminService) bookings() repositories.BookingRepo {
	if s.Bookings.DB != nil {
		return s.Bookings
	}
	if s.DB != nil {
		return repositories.BookingRepo{DB: s.DB}
	}
	return repositories.BookingRepo{DB: intconfig.DB}
}

// Overview returns all bookings (newest first) and the stats computed from
// that same scan, so the list and the numbers always match.
func (s AdminService) Overview() ([]models.Booking, models.Stats, error) {
	bookings, err := s.bookings().ListAll()
	if err != nil {
		return nil, models.Stats{}, err
	}
	return bookings, statsFrom(bookings), nil
}

// ListAll returns every booking, newest first.
func (s AdminService) ListAll() ([]models.Booking, error) {
	return s.bookings().ListAll()
}

// Stats returns global and per-route booking totals.
func (s AdminService) Stats() (models.Stats, error) {
	bookings, err := s.bookings().ListAll()
	if err != nil {
		return models.Stats{}, err
	}
	return statsFrom(bookings), nil
}

func statsFrom(bookings []models.Booking) models.Stats {
	perRoute := map[domain.Route]int{}
	for _, b := range bookings {
		perRoute[b.Route]++
	}

	stats := models.Stats{
		TotalBookings: len(bookings),
		ByRoute:       map[domain.Route]models.RouteStats{},
	}
	for _, r := range domain.Routes() {
		booked := perRoute[r]
		cap := domain.Capacity(r)
		stats.ByRoute[r] = models.RouteStats{
			Booked:    booked,
			Available: cap - booked,
			Total:     cap,
		}
	}
	return stats
}
