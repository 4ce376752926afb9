package domain

import "errors"

var (
	ErrConnectFailed = errors.New("database connection failed")
	ErrValidation    = errors.New("validation failed")
	ErrForbidden     = errors.New("access denied: admin role required")
	ErrNotFound      = errors.New("not found")
	ErrUserNotFound  = errors.New("user not found")

	// ErrRejected marks an engine-raised error during a write: constraint
	// violation, privilege denial, or a SIGNAL from a stored procedure.
	ErrRejected = errors.New("rejected by backing store")
	// ErrQueryFailed marks any other failure while talking to the store.
	ErrQueryFailed = errors.New("query failed")
)

// StoreError carries an error raised by the backing store. Its message is the
// engine's text, unmodified, so it can be surfaced to the client verbatim.
type StoreError struct {
	Kind error
	Op   string
	Err  error
}

func (e *StoreError) Error() string { return e.Err.Error() }

func (e *StoreError) Unwrap() []error { return []error{e.Kind, e.Err} }

// Rejected wraps err as a backing-store rejection of op.
func Rejected(op string, err error) error {
	return &StoreError{Kind: ErrRejected, Op: op, Err: err}
}

// QueryFailed wraps err as an unclassified store failure of op.
func QueryFailed(op string, err error) error {
	return &StoreError{Kind: ErrQueryFailed, Op: op, Err: err}
}

// ValidationError describes a malformed request. Msg is safe to show clients.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Invalid returns a ValidationError with msg.
func Invalid(msg string) error {
	return &ValidationError{Msg: msg}
}
