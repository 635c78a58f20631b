package commands

import (
	"errors"
	"time"

	"assistance/internal/pkg/guard"
)

var (
	ErrExpireAssignmentsCommandIsNotConstructed = errors.New(
		"ExpireAssignmentsCommand must be created via NewExpireAssignmentsCommand constructor",
	)
	ErrResponseTimeoutIsInvalid = errors.New("response timeout must be greater than 0")
)

// ExpireAssignmentsCommand represents a sweep request: return every order
// whose driver has not answered within the response timeout to the
// assignment pool, and retry outstanding availability reconciliations.
type ExpireAssignmentsCommand struct { //nolint:recvcheck //using for validation
	responseTimeout time.Duration

	guard guard.ConstructorGuard
}

// NewExpireAssignmentsCommand creates a sweep command with the given
// response timeout. The timeout must be positive.
func NewExpireAssignmentsCommand(responseTimeout time.Duration) (ExpireAssignmentsCommand, error) {
	if responseTimeout <= 0 {
		return ExpireAssignmentsCommand{}, ErrResponseTimeoutIsInvalid
	}

	return ExpireAssignmentsCommand{
		responseTimeout: responseTimeout,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireAssignmentsCommand) Validate() error {
	return c.guard.Validate(ErrExpireAssignmentsCommandIsNotConstructed)
}

// ResponseTimeout returns how long a driver may sit on an assignment before
// it expires.
func (c ExpireAssignmentsCommand) ResponseTimeout() time.Duration {
	return c.responseTimeout
}
