package database

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrConstraintViolation marks unique and foreign-key breaches raised by the
// store at write time. Match with errors.Is; the wrapped detail is already
// redacted to the user-relevant fragment.
var ErrConstraintViolation = errors.New("constraint violation")

type ConstraintError struct {
	Detail string
}

func (e *ConstraintError) Error() string {
	return e.Detail
}

func (e *ConstraintError) Is(target error) bool {
	return target == ErrConstraintViolation
}

// TranslateError maps store-level errors onto the data layer's error kinds.
// Row absence is not an error at this layer: callers represent it as a nil
// result, so gorm.ErrRecordNotFound is swallowed here.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &ConstraintError{Detail: redactDetail(err, "duplicate value violates a unique constraint")}
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &ConstraintError{Detail: redactDetail(err, "referenced row does not exist or is still referenced")}
	}
	return err
}

// redactDetail strips driver noise down to the last DETAIL fragment, the
// only part worth surfacing outside the data layer.
func redactDetail(err error, fallback string) string {
	msg := err.Error()
	lines := strings.Split(msg, "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if d, ok := strings.CutPrefix(last, "DETAIL:"); ok {
		return strings.TrimSpace(d)
	}
	if last == "" || strings.Contains(last, "SQLSTATE") {
		return fallback
	}
	return last
}
