// internal/repository/repository.go
package repository

import (
	"errors"

	"github.com/lib/pq"
	"github.com/rukunhub/rukunhub/internal/domain"
	"gorm.io/gorm"
)

const pqUniqueViolation = "23505"

// translateError maps a unique-constraint violation to domain.ErrConflict so
// callers can surface it instead of leaking driver errors. The unique indexes
// on contributions and dues rules are the concurrency safety net; a 23505
// here means two requests raced, not a bug.
func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return domain.ErrConflict
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrConflict
	}
	return err
}
