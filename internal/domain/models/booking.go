package models

import (
	"time"

	"busbooking/internal/domain"
)

// Booking links one user to one seat on one route. A booking is never
// updated in place; rebooking is delete then create.
type Booking struct {
	ID         int64        `json:"id"`
	UserID     int64        `json:"userId"`
	Route      domain.Route `json:"route"`
	SeatNumber int          `json:"seatNumber"`
	CreatedAt  time.Time    `json:"createdAt"`

	// Denormalized user fields for listings and tickets.
	UserName  string `json:"userName,omitempty"`
	UserEmail string `json:"userEmail,omitempty"`
}

// Occupancy summarizes one route's seat usage from a single snapshot.
type Occupancy struct {
	Route          domain.Route `json:"route"`
	TotalSeats     int          `json:"totalSeats"`
	BookedSeats    int          `json:"bookedSeats"`
	AvailableSeats int          `json:"availableSeats"`
}

// RouteStats is the admin per-route breakdown.
type RouteStats struct {
	Booked    int `json:"booked"`
	Available int `json:"available"`
	Total     int `json:"total"`
}

// Stats aggregates all bookings for the admin dashboard.
type Stats struct {
	TotalBookings int                         `json:"totalBookings"`
	ByRoute       map[domain.Route]RouteStats `json:"byRoute"`
}
