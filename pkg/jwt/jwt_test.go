package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/orderly-app/orderly-api/pkg/jwt"
)

const (
	testSecret     = "unit-test-secret"
	testUserID     = "00000000-0000-0000-0000-000000000001"
	testBusinessID = "00000000-0000-0000-0000-000000000002"
)

func TestGenerateAndParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testBusinessID, "admin", "orderly-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, businessID, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testBusinessID, businessID)
	assert.Equal(t, "admin", role)
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testBusinessID, "staff", "orderly-test", 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("another-secret", tok)
	assert.Error(t, err, "a token signed with a different secret must not validate")
}

func TestParse_ExpiredToken(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testBusinessID, "staff", "orderly-test", -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "an expired token must not validate")
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testBusinessID, "admin", "orderly-test", 60)
	assert.Error(t, err)
}
