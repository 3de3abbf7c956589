package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// bounded so a stalled identity provider fails the login instead of
// hanging the request
const exchangeTimeout = 10 * time.Second

// exchanges an authorization code for tokens at the identity provider's
// token endpoint
type Exchanger struct {
	tokenURL     string
	clientID     string
	clientSecret string
	redirectURI  string
	client       *http.Client
}

type tokenRequest struct {
	GrantType    string `json:"grant_type"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Code         string `json:"code"`
	RedirectURI  string `json:"redirect_uri"`
}

type tokenResponse struct {
	IDToken string `json:"id_token"`
}

// creates an exchanger for the provider's /oauth/token endpoint. The
// redirect URI must be byte-identical to the one sent at login time.
func NewExchanger(domain, clientID, clientSecret, redirectURI string) *Exchanger {
	return &Exchanger{
		tokenURL:     domain + "/oauth/token",
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		client:       &http.Client{Timeout: exchangeTimeout},
	}
}

// posts the authorization code and returns the ID token from the
// provider's response
func (e *Exchanger) Exchange(ctx context.Context, code string) (string, error) {
	payload, err := json.Marshal(tokenRequest{
		GrantType:    "authorization_code",
		ClientID:     e.clientID,
		ClientSecret: e.clientSecret,
		Code:         code,
		RedirectURI:  e.redirectURI,
	})
	if err != nil {
		return "", fmt.Errorf("encode token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.tokenURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenExchangeFailed, err)
	}
	defer resp.Body.Close() //nolint:errcheck // response body close on read path

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: provider returned %d: %s", ErrTokenExchangeFailed, resp.StatusCode, body)
	}

	var tokens tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrTokenExchangeFailed, err)
	}

	if tokens.IDToken == "" {
		return "", fmt.Errorf("%w: response has no id_token", ErrTokenExchangeFailed)
	}

	return tokens.IDToken, nil
}
