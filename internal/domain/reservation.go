package domain

// Rejection values for the reservation engine. Each precondition failure is
// a distinct value so callers and tests can match with errors.Is.
var (
	ErrInvalidRoute = ValidationError{Field: "route", Msg: "unknown route"}

	ErrSeatOutOfRange = ValidationError{Field: "seat_number", Msg: "must be between 1 and 40"}

	ErrSeatAlreadyTaken = ConflictError{Resource: "seat", Msg: "this seat is already booked"}

	ErrUserAlreadyBooked = ConflictError{Resource: "booking", Msg: "you already have a booking on this route"}

	ErrBookingNotFound = NotFoundError{Resource: "booking"}
)
