package mint

import "errors"

var ErrInvalidStatus = errors.New("invalid mint request status")

type Status string

const (
	StatusPending          Status = "pending"
	StatusTransactionReady Status = "transaction_ready"
	StatusConfirmed        Status = "confirmed"
	StatusFailed           Status = "failed"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusTransactionReady, StatusConfirmed, StatusFailed:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusFailed
}

// rank orders statuses along the monotonic pipeline. failed is reachable
// from anywhere, confirmed only ever moves forward.
func (s Status) rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusTransactionReady:
		return 1
	case StatusConfirmed, StatusFailed:
		return 2
	default:
		return -1
	}
}

// CanTransition reports whether moving from s to next keeps the state
// machine monotonic. Terminal confirmed never moves; failed may still be
// promoted to confirmed by a later sweep that finds the payment landed.
func (s Status) CanTransition(next Status) bool {
	if s == next {
		return false
	}
	if s == StatusConfirmed {
		return false
	}
	if next == StatusFailed {
		return true
	}
	if s == StatusFailed {
		return next == StatusConfirmed
	}
	return next.rank() > s.rank()
}
