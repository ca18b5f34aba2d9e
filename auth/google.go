package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// GoogleProvider verifies Google ID tokens against the tokeninfo endpoint.
// Both of the site's Google flows (redirect callback and the Identity
// Services widget) terminate in an ID token, so one provider covers both.
type GoogleProvider struct {
	audience string
	client   *http.Client
	endpoint string
}

func NewGoogleProvider(audience string) *GoogleProvider {
	return &GoogleProvider{
		audience: audience,
		client:   &http.Client{Timeout: 10 * time.Second},
		endpoint: googleTokenInfoURL,
	}
}

type tokenInfo struct {
	Audience string `json:"aud"`
	Subject  string `json:"sub"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

func (p *GoogleProvider) Authenticate(ctx context.Context, credential string) (*Identity, error) {
	if credential == "" {
		return nil, ErrInvalidCredential
	}

	endpoint := p.endpoint + "?id_token=" + url.QueryEscape(credential)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build tokeninfo request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tokeninfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidCredential
	}

	var info tokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode tokeninfo response: %w", err)
	}

	if p.audience != "" && info.Audience != p.audience {
		return nil, ErrInvalidCredential
	}
	if info.Subject == "" {
		return nil, ErrInvalidCredential
	}

	return &Identity{
		Subject: "google:" + info.Subject,
		Email:   info.Email,
		Name:    info.Name,
	}, nil
}
