package postgres

import (
	"errors"
	"strings"

	"github.com/TalkBridge-2025/mentorship-service/internal/repositories"
	"gorm.io/gorm"
)

// SharedHelpers contains common query building operations
type SharedHelpers struct {
	db *gorm.DB
}

func NewSharedHelpers(db *gorm.DB) *SharedHelpers {
	return &SharedHelpers{db: db}
}

// ApplyPaginationAndSort applies pagination and sorting with SQL injection protection
func (h *SharedHelpers) ApplyPaginationAndSort(query *gorm.DB, sortBy, sortOrder string, limit, offset int) *gorm.DB {
	// Whitelist allowed sort columns
	allowedSortColumns := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"id":         true,
		"name":       true,
		"email":      true,
		"title":      true,
		"language":   true,
		"score":      true,
	}

	if sortBy == "" || !allowedSortColumns[sortBy] {
		sortBy = "created_at"
	}

	if strings.EqualFold(sortOrder, "asc") {
		sortOrder = "ASC"
	} else {
		sortOrder = "DESC"
	}

	query = query.Order(sortBy + " " + sortOrder)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	return query
}

// translateError maps driver-level errors to the repository error vocabulary.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repositories.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
		return repositories.ErrDuplicate
	}
	return err
}

// isUniqueViolation matches the Postgres unique_violation SQLSTATE without
// importing the driver error types directly.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
