// File: services/pega/auth.go
package pega

import (
	"context"
	"encoding/base64"
	"net/http"

	"tripdesk/utils"

	"go.uber.org/zap"
)

// Authenticator validates operator credentials against the Pega case API.
type Authenticator struct {
	baseURL string
	store   *CredentialStore
}

func NewAuthenticator(baseURL string, store *CredentialStore) *Authenticator {
	return &Authenticator{baseURL: trimBaseURL(baseURL), store: store}
}

// BasicToken encodes "username:password" as an HTTP Basic credential.
func BasicToken(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}

// Authenticate probes GET /casetypes with the encoded credential. Only a 200
// counts as success; bad credentials and an unreachable backend both collapse
// to false. On success the store's active token is replaced, on failure it is
// left untouched.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) bool {
	logger := utils.GetLogger()

	token := BasicToken(username, password)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/casetypes", nil)
	if err != nil {
		logger.Error("Failed to build auth probe request", zap.Error(err))
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+token)

	resp, err := pegaHTTPClient.Do(req)
	if err != nil {
		logger.Warn("Auth probe failed to reach Pega", zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Auth probe rejected", zap.Int("status", resp.StatusCode), zap.String("username", username))
		return false
	}

	a.store.Set(token)
	return true
}
