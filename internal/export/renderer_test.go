package export

import (
	"strings"
	"testing"

	"github.com/1conorsteward/Appointment-Now/internal/models"
)

func TestVisitDetails(t *testing.T) {
	r := NewRenderer()

	doc := r.VisitDetails(&models.Appointment{
		PatientName:     "Jane Doe",
		DoctorName:      "Dr. Lee",
		AppointmentDate: "2025-01-10",
		Status:          "Completed",
		Notes:           "follow-up in 6 months",
		Location:        "Clinic B",
	})

	if doc.Filename != "visit_details.txt" {
		t.Fatalf("unexpected filename %q", doc.Filename)
	}
	if doc.ContentType != "text/plain; charset=utf-8" {
		t.Fatalf("unexpected content type %q", doc.ContentType)
	}

	body := string(doc.Body)
	for _, want := range []string{
		"Patient: Jane Doe",
		"Doctor: Dr. Lee",
		"Date: 2025-01-10",
		"Status: Completed",
		"Notes: follow-up in 6 months",
		"Location: Clinic B",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("document missing %q:\n%s", want, body)
		}
	}

	// Same field order as the detail screen.
	if strings.Index(body, "Patient:") > strings.Index(body, "Doctor:") {
		t.Fatal("patient must come before doctor")
	}
}

func TestVisitDetails_EmptyOptionalFields(t *testing.T) {
	r := NewRenderer()

	doc := r.VisitDetails(&models.Appointment{
		PatientName: "Jane Doe",
		DoctorName:  "Dr. Lee",
	})

	if !strings.Contains(string(doc.Body), "Notes: \n") {
		t.Fatalf("empty notes line missing:\n%s", doc.Body)
	}
}
