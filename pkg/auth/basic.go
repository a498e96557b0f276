package auth

import (
	"encoding/base64"
	"strings"

	"go.uber.org/zap"
)

const basicPrefix = "Basic "

// Decision is the outcome of an authorization check. StatusCode carries the
// denial reason for the caller: 401 when no usable credential was presented,
// 403 when a credential was presented but rejected.
type Decision struct {
	Principal  string
	Allowed    bool
	StatusCode int
}

// BasicAuthorizer validates Basic-scheme credentials against a static
// credential set injected at construction time.
type BasicAuthorizer struct {
	credentials map[string]string
	logger      *zap.Logger
}

// NewBasicAuthorizer creates a new basic authorizer
func NewBasicAuthorizer(credentials map[string]string, logger *zap.Logger) *BasicAuthorizer {
	return &BasicAuthorizer{
		credentials: credentials,
		logger:      logger,
	}
}

// Authorize checks a raw Authorization header value. It fails closed: any
// missing, malformed, or mismatched credential yields a deny decision.
func (a *BasicAuthorizer) Authorize(token string) Decision {
	if token == "" || !strings.HasPrefix(token, basicPrefix) {
		a.logger.Info("Authorization denied: missing or non-Basic credential")
		return Decision{Principal: "user", StatusCode: 401}
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(token, basicPrefix))
	if err != nil {
		a.logger.Info("Authorization denied: credential is not valid base64", zap.Error(err))
		return Decision{Principal: "user", StatusCode: 403}
	}

	username, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		a.logger.Info("Authorization denied: credential is not username:password")
		return Decision{Principal: "user", StatusCode: 403}
	}

	stored, known := a.credentials[username]
	if !known || stored != password {
		a.logger.Info("Authorization denied: unknown user or wrong password",
			zap.String("username", username),
		)
		return Decision{Principal: "user", StatusCode: 403}
	}

	a.logger.Info("Authorization granted", zap.String("username", username))
	return Decision{Principal: username, Allowed: true}
}
