package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidUsername(t *testing.T) {
	valid := []string{"admin", "John", "ABC"}
	for _, u := range valid {
		assert.True(t, ValidUsername(u), "username %q should be valid", u)
	}

	invalid := []string{"", "admin1", "john doe", "user_name", "1234", "иван"}
	for _, u := range invalid {
		assert.False(t, ValidUsername(u), "username %q should be invalid", u)
	}
}

func TestValidPassword(t *testing.T) {
	valid := []string{"Secret1", "Passw0rd", "A1bcde"}
	for _, p := range valid {
		assert.True(t, ValidPassword(p), "password %q should be valid", p)
	}

	invalid := []string{
		"",
		"Ab1",       // too short
		"secret1",   // no uppercase
		"SECRETONE", // no digit
		"1234567",   // no letter
	}
	for _, p := range invalid {
		assert.False(t, ValidPassword(p), "password %q should be invalid", p)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, 15, d.Day())

	_, err = ParseDate("15-03-2025")
	assert.Error(t, err)

	_, err = ParseDate("2025-03-15T10:00:00Z")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestErrorsAccumulate(t *testing.T) {
	var errs Errors
	assert.True(t, errs.OK())

	errs.Add("username", "Username is required")
	errs.Add("password", "Password is required")

	require.Len(t, errs, 2)
	assert.False(t, errs.OK())
	assert.Equal(t, "username", errs[0].Field)
	assert.Equal(t, "password", errs[1].Field)
}
