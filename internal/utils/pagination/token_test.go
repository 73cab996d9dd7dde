package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeDateBasedToken(t *testing.T) {
	createdAt := time.Date(2025, 3, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeDateBasedToken(createdAt)
	assert.NotEmpty(t, token, "Token should not be empty")

	decoded, err := DecodeDateBasedToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.True(t, createdAt.Equal(decoded), "Timestamp should survive the round trip")
}

func TestDecodeDateBasedToken_Invalid(t *testing.T) {
	_, err := DecodeDateBasedToken("not-base64!!")
	assert.Error(t, err, "Invalid base64 should be rejected")

	// Valid base64 but not a timestamp
	_, err = DecodeDateBasedToken("aGVsbG8=")
	assert.Error(t, err, "Non-timestamp payload should be rejected")
}
