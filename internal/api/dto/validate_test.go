package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/realestate-service/pkg/util"
)

func TestValidateNamesOffendingFields(t *testing.T) {
	err := Validate(RegisterRequest{Name: "A", Email: "not-an-email", Password: "short"})
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details, "Email")
	assert.Contains(t, domainErr.Details, "Password")
	assert.NotContains(t, domainErr.Details, "Name")
}

func TestValidateAcceptsCompletePayloads(t *testing.T) {
	price := int64(1)
	assert.NoError(t, Validate(RegisterRequest{Name: "A", Email: "a@example.com", Password: "supersafe123"}))
	assert.NoError(t, Validate(CreatePropertyRequest{
		Title:        "T",
		Description:  "D",
		Price:        &price,
		PropertyType: "house",
	}))
}

// An omitted price must fail validation while an explicit zero stays legal.
func TestValidatePriceAbsentVersusZero(t *testing.T) {
	err := Validate(CreatePropertyRequest{
		Title:        "T",
		Description:  "D",
		PropertyType: "house",
	})
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	require.NotNil(t, domainErr)
	assert.Contains(t, domainErr.Details, "Price")

	zero := int64(0)
	assert.NoError(t, Validate(CreatePropertyRequest{
		Title:        "T",
		Description:  "D",
		Price:        &zero,
		PropertyType: "house",
	}))

	negative := int64(-1)
	err = Validate(CreatePropertyRequest{
		Title:        "T",
		Description:  "D",
		Price:        &negative,
		PropertyType: "house",
	})
	require.Error(t, err)
}

func TestValidateRejectsUnknownEnumValues(t *testing.T) {
	price := int64(1)
	err := Validate(CreatePropertyRequest{
		Title:        "T",
		Description:  "D",
		Price:        &price,
		PropertyType: "castle",
		Status:       "haunted",
	})
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	require.NotNil(t, domainErr)
	assert.Contains(t, domainErr.Details, "PropertyType")
	assert.Contains(t, domainErr.Details, "Status")
}
