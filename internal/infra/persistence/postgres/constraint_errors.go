package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isNotNullConstraintViolation reports a rejected NULL plan_data
func isNotNullConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

// isInvalidJSON reports a payload PostgreSQL refused to store as jsonb
func isInvalidJSON(err error) bool {
	if err == nil || errors.Is(err, gorm.ErrRecordNotFound) {
		return false
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "invalid input syntax for type json") ||
		strings.Contains(errMsg, "22p02") // PostgreSQL invalid_text_representation error code
}
