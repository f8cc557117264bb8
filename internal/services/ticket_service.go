package services

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"

	intconfig "busbooking/internal/config"
	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// TicketService renders a per-booking e-ticket PDF.
type TicketService struct {
	Bookings  repositories.BookingRepo
	DB        *sql.DB
	RequestID string
}

func (s TicketService) bookings() repositories.BookingRepo {
	if s.Bookings.DB != nil {
		return s.Bookings
	}
	if s.DB != nil {
		return repositories.BookingRepo{DB: s.DB}
	}
	return repositories.BookingRepo{DB: intconfig.DB}
}

func (s TicketService) GenerateETicket(bookingID int64) ([]byte, string, error) {
	b, err := s.bookings().GetByID(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "ticket", "generate_eticket", fmt.Sprintf("booking_id=%d", bookingID))
	return buildETicketPDF(b)
}

func buildETicketPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger    : %s", safe(b.UserName, "-")),
		fmt.Sprintf("Email        : %s", safe(b.UserEmail, "-")),
		fmt.Sprintf("Route        : %s", string(b.Route)),
		fmt.Sprintf("Seat         : %d", b.SeatNumber),
		fmt.Sprintf("Booked at    : %s", b.CreatedAt.Format("2006-01-02 15:04")),
		fmt.Sprintf("Booking code : BUS-%d", b.ID),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This e-ticket is valid for one passenger (one seat). Please show it at boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%d_%s.pdf", b.ID, safeFilenamePart(b.UserName))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
