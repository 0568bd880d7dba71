package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationReportsAllFields(t *testing.T) {
	err := NewValidation([]FieldViolation{
		{Field: "name", Message: "is required"},
		{Field: "age", Message: "must be between 0 and 150"},
	})

	assert.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, "validation failed: name: is required; age: must be between 0 and 150", err.Error())
	assert.Len(t, err.Fields, 2)
}

func TestViolationsErr(t *testing.T) {
	var v Violations
	assert.NoError(t, v.Err())

	v.Add("email", "is required")
	v.Addf("password", "must be at least %d characters", 6)

	err := v.Err()
	require.Error(t, err)

	var domainErr *Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, KindValidation, domainErr.Kind)
	assert.Equal(t, []FieldViolation{
		{Field: "email", Message: "is required"},
		{Field: "password", Message: "must be at least 6 characters"},
	}, domainErr.Fields)
}

func TestOneOf(t *testing.T) {
	assert.True(t, OneOf("doctor", Roles))
	assert.False(t, OneOf("janitor", Roles))
	assert.True(t, OneOf("AB-", BloodGroups))
	assert.False(t, OneOf("ab-", BloodGroups))
}
