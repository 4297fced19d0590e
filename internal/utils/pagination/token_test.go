package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	date := time.Date(2025, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(date, "purchase-42")
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, date, decodedDate, "Date should match after decode")
	assert.Equal(t, "purchase-42", decodedID, "ID should match after decode")

	// Zero time round-trips too.
	zeroToken := EncodeToken(time.Time{}, "")
	decodedZero, decodedEmptyID, err := DecodeToken(zeroToken)
	assert.NoError(t, err)
	assert.Equal(t, time.Time{}, decodedZero)
	assert.Equal(t, "", decodedEmptyID)
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	// Base64 of a string without the separator.
	_, _, err = DecodeToken("MjAyMy0wNS0xNVQwMDowMDowMFo=")
	assert.Error(t, err, "Should return an error for missing separator")
	assert.Contains(t, err.Error(), "split")

	// Base64 of "notadate|purchase-1".
	_, _, err = DecodeToken("bm90YWRhdGV8cHVyY2hhc2UtMQ==")
	assert.Error(t, err, "Should return an error for invalid date")
	assert.Contains(t, err.Error(), "date parse")
}
