package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ProviderConfig
		wantErr bool
	}{
		{name: "google", cfg: ProviderConfig{Kind: ProviderGoogle}},
		{name: "wallet", cfg: ProviderConfig{Kind: ProviderWallet}},
		{name: "static", cfg: ProviderConfig{Kind: ProviderStatic}},
		{name: "unknown", cfg: ProviderConfig{Kind: "saml"}, wantErr: true},
		{name: "empty", cfg: ProviderConfig{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, provider)
		})
	}
}

func TestWalletProvider(t *testing.T) {
	tests := []struct {
		name       string
		credential string
		wantErr    bool
		wantSubj   string
	}{
		{
			name:       "valid ethereum style address",
			credential: "0xAbCdEf1234567890aBcDeF1234567890abcdef12",
			wantSubj:   "wallet:0xabcdef1234567890abcdef1234567890abcdef12",
		},
		{
			name:       "valid with surrounding whitespace",
			credential: "  0xabcdef1234567890abcdef1234567890abcdef12  ",
			wantSubj:   "wallet:0xabcdef1234567890abcdef1234567890abcdef12",
		},
		{
			name:       "missing prefix",
			credential: "abcdef1234567890abcdef1234567890abcdef12",
			wantErr:    true,
		},
		{
			name:       "too short",
			credential: "0xabc123",
			wantErr:    true,
		},
		{
			name:       "non-hex characters",
			credential: "0xzzzzzz1234567890abcdef1234567890abcdef12",
			wantErr:    true,
		},
		{
			name:       "empty",
			credential: "",
			wantErr:    true,
		},
	}

	provider := NewWalletProvider()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ident, err := provider.Authenticate(context.Background(), tt.credential)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCredential)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSubj, ident.Subject)
			assert.NotEmpty(t, ident.WalletAddress)
		})
	}
}

func TestStaticProvider(t *testing.T) {
	provider := NewStaticProvider(map[string]string{"dev-key": "Dev User"})

	ident, err := provider.Authenticate(context.Background(), "dev-key")
	require.NoError(t, err)
	assert.Equal(t, "static:dev-key", ident.Subject)
	assert.Equal(t, "Dev User", ident.Name)

	_, err = provider.Authenticate(context.Background(), "other")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestGoogleProvider(t *testing.T) {
	tests := []struct {
		name     string
		audience string
		status   int
		body     tokenInfo
		wantErr  bool
	}{
		{
			name:     "valid token",
			audience: "client-123",
			status:   http.StatusOK,
			body:     tokenInfo{Audience: "client-123", Subject: "sub-1", Email: "a@b.c", Name: "A B"},
		},
		{
			name:     "audience mismatch",
			audience: "client-123",
			status:   http.StatusOK,
			body:     tokenInfo{Audience: "other-client", Subject: "sub-1"},
			wantErr:  true,
		},
		{
			name:   "no audience check configured",
			status: http.StatusOK,
			body:   tokenInfo{Audience: "anything", Subject: "sub-2"},
		},
		{
			name:    "rejected token",
			status:  http.StatusBadRequest,
			wantErr: true,
		},
		{
			name:    "missing subject",
			status:  http.StatusOK,
			body:    tokenInfo{Audience: "client-123"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.NotEmpty(t, r.URL.Query().Get("id_token"))
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(tt.body)
			}))
			defer srv.Close()

			provider := NewGoogleProvider(tt.audience)
			provider.endpoint = srv.URL

			ident, err := provider.Authenticate(context.Background(), "some-id-token")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "google:"+tt.body.Subject, ident.Subject)
			assert.Equal(t, tt.body.Email, ident.Email)
			assert.Equal(t, tt.body.Name, ident.Name)
		})
	}
}

func TestGoogleProviderEmptyCredential(t *testing.T) {
	provider := NewGoogleProvider("")

	_, err := provider.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}
