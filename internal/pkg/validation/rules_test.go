package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeContent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "Hello alumni!", "Hello alumni!"},
		{"script tags stripped", `<script>alert("x")</script>Congrats`, "Congrats"},
		{"markup reduced to text", "<b>Great</b> news", "Great news"},
		{"whitespace trimmed", "  spaced out  ", "spaced out"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeContent(tt.input))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("jane@tech.edu"))
	assert.True(t, IsValidEmail("Jane.Doe+alumni@tech.edu"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("passw0rd"))
	assert.False(t, IsValidPassword("short1"))
	assert.False(t, IsValidPassword("allletters"))
	assert.False(t, IsValidPassword("12345678"))
}

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("Jane Doe"))
	assert.False(t, IsValidName(" J "))
	assert.False(t, IsValidName(""))
}
