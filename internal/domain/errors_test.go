package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidCarriesFieldAndReason(t *testing.T) {
	err := Invalid("email", "required")

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, "email", ve.Fields[0].Field)
	assert.Equal(t, "required", ve.Fields[0].Reason)
	assert.Equal(t, "invalid input: email: required", err.Error())
}

func TestValidationErrorUnwrapsToInvalidInput(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{{Field: "rate", Reason: "must be positive"}}}
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestValidationErrorJoinsAllFields(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{
		{Field: "name", Reason: "required"},
		{Field: "rate", Reason: "must be positive"},
	}}
	assert.Equal(t, "invalid input: name: required; rate: must be positive", err.Error())
}
