package auth

import (
	"errors"
	"testing"

	"demoday/app_error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := CreateToken(7, []string{PermissionAdmin})
	require.NoError(t, err)

	caller, err := ParseCaller(token)
	require.NoError(t, err)
	assert.Equal(t, 7, caller.UserId)
	assert.True(t, caller.IsAdmin())
}

func TestParseCallerRejectsGarbage(t *testing.T) {
	_, err := ParseCaller("not-a-token")
	assert.Error(t, err)
}

func TestRequireAdmin(t *testing.T) {
	userId, err := (&Caller{UserId: 3, Permissions: []string{PermissionAdmin}}).RequireAdmin()
	assert.NoError(t, err)
	assert.Equal(t, 3, userId)

	_, err = (&Caller{UserId: 4}).RequireAdmin()
	assert.True(t, errors.Is(err, app_error.ErrNotAuthorized))

	var nobody *Caller
	_, err = nobody.RequireAdmin()
	assert.True(t, errors.Is(err, app_error.ErrNotAuthorized))
}
