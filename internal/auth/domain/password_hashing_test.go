package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgonPasswordHasher(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		password string
		attempt  string

		expectedValid bool
	}

	testCases := []testCase{
		{name: "matching password", password: "password123", attempt: "password123", expectedValid: true},
		{name: "symbols", password: "P@ssw0rd!#2024", attempt: "P@ssw0rd!#2024", expectedValid: true},
		{name: "wrong password", password: "password123", attempt: "password124", expectedValid: false},
		{name: "case sensitive", password: "Secret-pass", attempt: "secret-pass", expectedValid: false},
	}

	for _, tc := range testCases {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			hasher := NewArgonPasswordHasher()

			hashedPassword, err := hasher.HashPassword(tt.password)
			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hashedPassword)

			isValid, err := hasher.VerifyPassword(tt.attempt, hashedPassword)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedValid, isValid)
		})
	}
}
