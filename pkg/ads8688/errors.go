package ads8688

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidChannel  = errors.New("invalid channel")
	ErrInvalidRange    = errors.New("invalid input range")
	ErrInvalidRegister = errors.New("invalid register")
	ErrInvalidCommand  = errors.New("invalid command")
	ErrInvalidFeature  = errors.New("invalid feature select")
	ErrInvalidVref     = errors.New("reference voltage must be positive")
	// ErrClosed indicates the ADC is closed.
	ErrClosed = errors.New("closed")
)

// TransportError is returned when the underlying [SerialInterface] fails.
// It is never retried by the driver.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func transportErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var te *TransportError
	if errors.As(err, &te) {
		return err
	}
	return &TransportError{Op: op, Err: err}
}
