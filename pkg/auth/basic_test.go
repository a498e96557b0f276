package auth

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testAuthorizer() *BasicAuthorizer {
	return NewBasicAuthorizer(map[string]string{
		"alice": "wonderland",
		"bob":   "builder",
	}, zap.NewNop())
}

func basicToken(pair string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(pair))
}

func TestBasicAuthorizer_MissingHeader(t *testing.T) {
	decision := testAuthorizer().Authorize("")

	assert.False(t, decision.Allowed)
	assert.Equal(t, 401, decision.StatusCode)
}

func TestBasicAuthorizer_NonBasicScheme(t *testing.T) {
	decision := testAuthorizer().Authorize("Bearer abc123")

	assert.False(t, decision.Allowed)
	assert.Equal(t, 401, decision.StatusCode)
}

func TestBasicAuthorizer_InvalidBase64(t *testing.T) {
	decision := testAuthorizer().Authorize("Basic !!!not-base64!!!")

	assert.False(t, decision.Allowed)
	assert.Equal(t, 403, decision.StatusCode)
}

func TestBasicAuthorizer_MissingColon(t *testing.T) {
	token := "Basic " + base64.StdEncoding.EncodeToString([]byte("alice"))

	decision := testAuthorizer().Authorize(token)

	assert.False(t, decision.Allowed)
	assert.Equal(t, 403, decision.StatusCode)
}

func TestBasicAuthorizer_UnknownUser(t *testing.T) {
	decision := testAuthorizer().Authorize(basicToken("mallory:whatever"))

	assert.False(t, decision.Allowed)
	assert.Equal(t, 403, decision.StatusCode)
}

func TestBasicAuthorizer_WrongPassword(t *testing.T) {
	decision := testAuthorizer().Authorize(basicToken("alice:builder"))

	assert.False(t, decision.Allowed)
	assert.Equal(t, 403, decision.StatusCode)
}

func TestBasicAuthorizer_ValidCredentials(t *testing.T) {
	decision := testAuthorizer().Authorize(basicToken("alice:wonderland"))

	assert.True(t, decision.Allowed)
	assert.Equal(t, "alice", decision.Principal)
}

func TestBasicAuthorizer_PasswordMayContainColon(t *testing.T) {
	authorizer := NewBasicAuthorizer(map[string]string{"svc": "a:b:c"}, zap.NewNop())

	decision := authorizer.Authorize(basicToken("svc:a:b:c"))

	assert.True(t, decision.Allowed)
	assert.Equal(t, "svc", decision.Principal)
}
