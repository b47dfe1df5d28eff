package auction

// Status is the single definition of the auction state machine shared by the
// data model, the coordinator and persistence.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusActive    Status = "ACTIVE"
	StatusSold      Status = "SOLD"
	StatusExpired   Status = "EXPIRED"
	StatusCancelled Status = "CANCELLED"
	StatusCollected Status = "COLLECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusSold, StatusExpired, StatusCancelled, StatusCollected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether a record in this status has left the slot/queue
// for good. Collected is reached only through the warehouse, never written by
// the coordinator.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusSold, StatusExpired, StatusCancelled, StatusCollected:
		return true
	default:
		return false
	}
}

// canTransition encodes the one-directional state machine:
// Pending -> Active -> {Sold | Expired | Cancelled} -> Collected.
// Pending -> Cancelled covers admin removal of a queued record.
func canTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusActive || to == StatusCancelled
	case StatusActive:
		return to == StatusSold || to == StatusExpired || to == StatusCancelled
	case StatusSold, StatusExpired, StatusCancelled:
		return to == StatusCollected
	default:
		return false
	}
}
