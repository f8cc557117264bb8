package services

import (
	"database/sql"

	intconfig "busbooking/internal/config"
	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"
)

// AvailabilityService derives seat occupancy and free-seat lists. Pure
// reads: every answer comes from one seat-number query, so counts and the
// free list can never disagree within a response.
type AvailabilityService struct {
	Bookings repositories.BookingRepo
	DB       *sql.DB
}

func (s AvailabilityService) bookings() repositories.BookingRepo {
	if s.Bookings.DB != nil {
		return s.Bookings
	}
	if s.DB != nil {
		return repositories.BookingRepo{DB: s.DB}
	}
	return repositories.BookingRepo{DB: intconfig.DB}
}

// Occupancy reports capacity, booked and available seat counts for a route.
func (s AvailabilityService) Occupancy(route string) (models.Occupancy, error) {
	if !domain.IsValidRoute(route) {
		return models.Occupancy{}, domain.ErrInvalidRoute
	}
	r := domain.Route(route)

	seats, err := s.bookings().SeatNumbers(r)
	if err != nil {
		return models.Occupancy{}, err
	}

	cap := domain.Capacity(r)
	return models.Occupancy{
		Route:          r,
		TotalSeats:     cap,
		BookedSeats:    len(seats),
		AvailableSeats: cap - len(seats),
	}, nil
}

// FreeSeats returns the unbooked seat numbers for a route, ascending.
func (s AvailabilityService) FreeSeats(route string) ([]int, error) {
	if !domain.IsValidRoute(route) {
		return nil, domain.ErrInvalidRoute
	}
	r := domain.Route(route)

	booked, err := s.bookings().SeatNumbers(r)
	if err != nil {
		return nil, err
	}

	taken := make(map[int]bool, len(booked))
	for _, n := range booked {
		taken[n] = true
	}

	cap := domain.Capacity(r)
	free := make([]int, 0, cap-len(booked))
	for n := 1; n <= cap; n++ {
		if !taken[n] {
			free = append(free, n)
		}
	}
	return free, nil
}
