package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userarch/pkg/apperrors"
)

func TestName(t *testing.T) {
	for _, name := range []string{"Jo", "John Doe", "  Jo  "} {
		assert.NoError(t, Name(name), "name %q should be accepted", name)
	}

	for _, name := range []string{"", " ", "   ", "J", " J "} {
		err := Name(name)
		require.Error(t, err, "name %q should be rejected", name)
		assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
		assert.Contains(t, err.Error(), "at least 2 characters")
	}
}

func TestEmail(t *testing.T) {
	for _, email := range []string{"john@example.com", "a@b.c", "first.last@sub.domain.org"} {
		assert.NoError(t, Email(email), "email %q should be accepted", email)
	}

	for _, email := range []string{"", "invalid-email", "a@b", "@b.com", "a @b.com", "a@b@c.com"} {
		err := Email(email)
		require.Error(t, err, "email %q should be rejected", email)
		assert.Equal(t, "Invalid email format", err.Error())
	}
}

func TestNonEmptyID(t *testing.T) {
	assert.NoError(t, NonEmptyID("anything"))

	err := NonEmptyID("")
	require.Error(t, err)
	assert.Equal(t, "User ID is required", err.Error())
}

func TestUUIDID(t *testing.T) {
	assert.NoError(t, UUIDID("f47ac10b-58cc-4372-a567-0e02b2c3d479"))
	assert.NoError(t, UUIDID("F47AC10B-58CC-4372-A567-0E02B2C3D479"))

	for _, id := range []string{"", "not-a-uuid", "f47ac10b58cc4372a5670e02b2c3d479", "12345"} {
		err := UUIDID(id)
		require.Error(t, err, "id %q should be rejected", id)
		assert.Equal(t, "User ID is required and must be a valid UUID", err.Error())
	}
}

func TestUserChecksInContractOrder(t *testing.T) {
	// All three fields invalid: the id failure wins.
	err := User(NonEmptyID, "", "x", "bad")
	require.Error(t, err)
	assert.Equal(t, "User ID is required", err.Error())

	// Valid id, invalid name and email: the name failure wins.
	err = User(NonEmptyID, "id-1", "x", "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2 characters")

	assert.NoError(t, User(NonEmptyID, "id-1", "John", "john@example.com"))
}
