package export

import (
	"fmt"
	"strings"

	"github.com/1conorsteward/Appointment-Now/internal/models"
)

// Document is the rendered visit summary handed back to the client as a
// download.
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// VisitDetails renders the same fields, in the same order, as the visit
// detail screen: patient, doctor, date, status, notes, location.
func (r *Renderer) VisitDetails(ap *models.Appointment) *Document {
	var b strings.Builder

	b.WriteString("Visit Details\n")
	b.WriteString("=============\n\n")

	fmt.Fprintf(&b, "Patient: %s\n", ap.PatientName)
	fmt.Fprintf(&b, "Doctor: %s\n", ap.DoctorName)
	fmt.Fprintf(&b, "Date: %s\n", ap.AppointmentDate)
	fmt.Fprintf(&b, "Status: %s\n", ap.Status)
	fmt.Fprintf(&b, "Notes: %s\n", ap.Notes)
	fmt.Fprintf(&b, "Location: %s\n", ap.Location)

	return &Document{
		Filename:    "visit_details.txt",
		ContentType: "text/plain; charset=utf-8",
		Body:        []byte(b.String()),
	}
}
