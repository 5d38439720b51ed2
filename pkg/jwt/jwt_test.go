package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/Ahmad-Rizki21/InventorySaS-sub001/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "inventory-test"
	testExpMin = 60
)

func TestJWT_AccessRoundTrip(t *testing.T) {
	tok, err := pkgjwt.GenerateAccess(testSecret, testUserID, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, err := pkgjwt.Parse(testSecret, tok, pkgjwt.TypeAccess)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
}

func TestJWT_RefreshRoundTrip(t *testing.T) {
	tok, err := pkgjwt.GenerateRefresh(testSecret, testUserID, testIssuer, testExpMin)
	require.NoError(t, err)

	userID, err := pkgjwt.Parse(testSecret, tok, pkgjwt.TypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
}

// A refresh token must never pass where an access token is expected, and
// vice versa. Both directions collapse into ErrInvalidToken.
func TestJWT_TypeMismatchRejected(t *testing.T) {
	refresh, err := pkgjwt.GenerateRefresh(testSecret, testUserID, testIssuer, testExpMin)
	require.NoError(t, err)
	_, err = pkgjwt.Parse(testSecret, refresh, pkgjwt.TypeAccess)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)

	access, err := pkgjwt.GenerateAccess(testSecret, testUserID, testIssuer, testExpMin)
	require.NoError(t, err)
	_, err = pkgjwt.Parse(testSecret, access, pkgjwt.TypeRefresh)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestJWT_ExpiredTokenRejected(t *testing.T) {
	// Expiration -1 minute: already expired at parse time.
	tok, err := pkgjwt.GenerateAccess(testSecret, testUserID, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok, pkgjwt.TypeAccess)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestJWT_WrongSecretRejected(t *testing.T) {
	tok, err := pkgjwt.GenerateAccess(testSecret, testUserID, testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("a-completely-different-secret", tok, pkgjwt.TypeAccess)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestJWT_MalformedTokenRejected(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "not.a.token", pkgjwt.TypeAccess)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestJWT_EmptySecretRejected(t *testing.T) {
	_, err := pkgjwt.GenerateAccess("", testUserID, testIssuer, testExpMin)
	assert.Error(t, err)
}
