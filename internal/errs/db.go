package errs

import "fmt"

// DBErrorKind classifies a storage-level failure.
type DBErrorKind int

const (
	// KindInvalidUUID means the caller supplied a malformed identifier, or an
	// identifier that does not satisfy a foreign-key constraint.
	KindInvalidUUID DBErrorKind = iota + 1

	// KindOther is any other storage failure (connection loss, unexpected
	// constraint violation, schema mismatch, cancelled context...).
	KindOther
)

func (k DBErrorKind) String() string {
	switch k {
	case KindInvalidUUID:
		return "invalid_uuid"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// DBError is the only error type returned by repository methods.
//
// Detail is set for KindInvalidUUID and describes the rejected identifier.
// Cause is set for KindOther and holds the original driver error.
type DBError struct {
	Kind   DBErrorKind
	Detail string
	Cause  error
}

// Sentinel values for errors.Is matching on the kind only.
var (
	ErrInvalidUUID = &DBError{Kind: KindInvalidUUID}
	ErrDBOther     = &DBError{Kind: KindOther}
)

// NewInvalidUUIDError returns a KindInvalidUUID error with the given detail.
func NewInvalidUUIDError(detail string) *DBError {
	return &DBError{Kind: KindInvalidUUID, Detail: detail}
}

// NewMissingQuestionError reports an answer whose question_uuid is well
// formed but references no question.
func NewMissingQuestionError(questionUUID string) *DBError {
	return NewInvalidUUIDError(fmt.Sprintf("question_uuid %s does not reference an existing question", questionUUID))
}

// NewOtherError wraps cause as a KindOther error.
func NewOtherError(cause error) *DBError {
	return &DBError{Kind: KindOther, Cause: cause}
}

func (e *DBError) Error() string {
	switch e.Kind {
	case KindInvalidUUID:
		return fmt.Sprintf("invalid uuid: %s", e.Detail)
	case KindOther:
		if e.Cause == nil {
			return "database error"
		}
		return fmt.Sprintf("database error: %v", e.Cause)
	default:
		return "unknown database error"
	}
}

// Unwrap exposes the driver error so callers can inspect it with errors.As.
func (e *DBError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a *DBError of the same kind.
func (e *DBError) Is(target error) bool {
	t, ok := target.(*DBError)
	return ok && t.Kind == e.Kind
}
