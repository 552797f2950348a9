package appointment

// ===============================
// Appointment Status
// ===============================

// Status is free text as far as the store is concerned; these are the
// values the form spinner offers. Only StatusCompleted carries query
// semantics (the visit history screen).
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusCompleted Status = "Completed"
	StatusPending   Status = "Pending"
	StatusCancelled Status = "Cancelled"
)

func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

// InitialStatus is applied when a record is created without one.
func InitialStatus() Status {
	return StatusScheduled
}
