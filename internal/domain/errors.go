package domain

import "errors"

// RetriableError defines an interface for errors that can be retried
type RetriableError interface {
	error
	IsRetriable() bool
}

// IsRetriable checks if an error is retriable
func IsRetriable(err error) bool {
	var re RetriableError
	if errors.As(err, &re) {
		return re.IsRetriable()
	}
	return false
}

// NetworkError represents a network-related error that may be retriable
type NetworkError struct {
	Op        string // Operation that failed (e.g., "connect", "read", "write")
	Err       error  // Underlying error
	Retriable bool   // Whether this error is retriable
}

func (e *NetworkError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *NetworkError) IsRetriable() bool {
	return e.Retriable
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new retriable network error
func NewNetworkError(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err, Retriable: true}
}

// NewFatalNetworkError creates a non-retriable network error
func NewFatalNetworkError(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err, Retriable: false}
}

// ConfigError represents a configuration error (never retriable)
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return "config error [" + e.Field + "]: " + e.Err.Error()
}

func (e *ConfigError) IsRetriable() bool {
	return false
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

var (
	// ErrUnknownMarket is returned when a message references a market missing from the reference table.
	ErrUnknownMarket = errors.New("unknown market")

	// ErrNoOrderIdentity is returned when neither the inner report nor the
	// envelope carries a client id. The transport contract guarantees at least
	// one, so this is fatal for the message.
	ErrNoOrderIdentity = errors.New("order identity unresolvable")

	// ErrMissingOrderReport is returned when an order-carrying envelope kind
	// arrives without its inner order report.
	ErrMissingOrderReport = errors.New("missing order report")

	// ErrUnsupportedReaction is returned when a notification hook returns a
	// value that is neither nil nor a Task.
	ErrUnsupportedReaction = errors.New("unsupported hook reaction")

	// ErrInvalidTick is returned when a tick policy cannot round prices.
	ErrInvalidTick = errors.New("invalid tick")

	// ErrInvalidRoundDirection is returned for an unrecognized rounding direction.
	ErrInvalidRoundDirection = errors.New("invalid round direction")

	// ErrConfigNotFound is returned when the configuration file is missing
	ErrConfigNotFound = errors.New("configuration not found")
)
