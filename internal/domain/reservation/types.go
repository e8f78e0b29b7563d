package reservation

import "errors"

var (
	// ErrInvalidArgument is a structurally bad call, such as an empty customer id.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrRejectedRequest is a well-formed request that fails business validation.
	ErrRejectedRequest = errors.New("reservation request rejected")
	// ErrNoCarAvailable means the category has no available unit left.
	ErrNoCarAvailable = errors.New("no car available")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}
