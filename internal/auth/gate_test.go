package auth

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "@Negrita2000"

func TestLogin_WrongSecretIsDenied(t *testing.T) {
	gate := NewStaticSecretGate(testSecret)

	token, err := gate.Login("wrong")

	assert.ErrorIs(t, err, ErrDenied)
	assert.Empty(t, token)
}

func TestLogin_ExactSecretTransitionsToLoggedIn(t *testing.T) {
	gate := NewStaticSecretGate(testSecret)

	token, err := gate.Login(testSecret)

	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, gate.Authenticated(token))
}

func TestLogout_ReturnsToLoggedOut(t *testing.T) {
	gate := NewStaticSecretGate(testSecret)

	token, err := gate.Login(testSecret)
	require.NoError(t, err)

	gate.Logout(token)

	assert.False(t, gate.Authenticated(token))
}

func TestLogout_UnknownTokenAlwaysSucceeds(t *testing.T) {
	gate := NewStaticSecretGate(testSecret)

	gate.Logout("never-issued")
}

func TestLogin_ComparisonIsCaseSensitive(t *testing.T) {
	gate := NewStaticSecretGate(testSecret)

	_, err := gate.Login("@negrita2000")
	assert.ErrorIs(t, err, ErrDenied)
}

// Any submitted secret other than the configured one is denied and leaves
// the gate logged out.
func TestProperty_OnlyExactSecretLogsIn(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("non-matching secrets never open the gate", prop.ForAll(
		func(secret string) bool {
			gate := NewStaticSecretGate(testSecret)

			token, err := gate.Login(secret)
			if secret == testSecret {
				return err == nil && gate.Authenticated(token)
			}
			return err == ErrDenied && token == ""
		},
		gen.AnyString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
