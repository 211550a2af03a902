package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewValidationError("bad payload", map[string]any{"field": "required"})
	mapped := ToDomainError(original)
	require.NotNil(t, mapped)
	assert.Equal(t, "VALIDATION_FAILED", mapped.Code)
	assert.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := ToDomainError(fmt.Errorf("lookup: %w", pgx.ErrNoRows))
	require.NotNil(t, mapped)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

// Router-raised errors (unknown route, method not allowed) keep their status
// instead of collapsing to 500.
func TestToDomainErrorFiberErrors(t *testing.T) {
	mapped := ToDomainError(fiber.ErrNotFound)
	require.NotNil(t, mapped)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)

	mapped = ToDomainError(fiber.ErrMethodNotAllowed)
	require.NotNil(t, mapped)
	assert.Equal(t, "METHOD_NOT_ALLOWED", mapped.Code)
	assert.Equal(t, http.StatusMethodNotAllowed, mapped.HTTPStatus)

	mapped = ToDomainError(fiber.ErrTeapot)
	require.NotNil(t, mapped)
	assert.Equal(t, "REQUEST_FAILED", mapped.Code)
	assert.Equal(t, http.StatusTeapot, mapped.HTTPStatus)

	// 5xx fiber errors still hide their detail behind INTERNAL_ERROR
	mapped = ToDomainError(fiber.ErrBadGateway)
	require.NotNil(t, mapped)
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
}

func TestToDomainErrorUnknown(t *testing.T) {
	mapped := ToDomainError(errors.New("disk on fire"))
	require.NotNil(t, mapped)
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, "internal server error", mapped.Message)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFound("property")))
	assert.True(t, IsNotFound(pgx.ErrNoRows))
	assert.False(t, IsNotFound(NewUnauthorized("nope")))
	assert.False(t, IsNotFound(nil))
}
