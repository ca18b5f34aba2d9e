// Package auth implements signup, login and bearer-session resolution on
// top of a pluggable identity provider. Exactly one provider is active per
// deployment, selected by configuration; every provider resolves a
// credential string to an Identity and the rest of the flow is shared.
package auth

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidCredential is returned when a provider rejects the presented
// credential.
var ErrInvalidCredential = errors.New("invalid credential")

// ErrInvalidSession is returned when a bearer token does not resolve to a
// live session.
var ErrInvalidSession = errors.New("invalid or expired session")

// ErrUnknownUser is returned by Login when the credential verifies but no
// account exists for it.
var ErrUnknownUser = errors.New("no account for this credential")

// Identity is what a provider learns about the caller from a credential.
// Subject is stable per provider and used to match returning users.
type Identity struct {
	Subject       string
	Email         string
	Name          string
	WalletAddress string
}

// Provider verifies a credential and resolves the identity behind it.
type Provider interface {
	Authenticate(ctx context.Context, credential string) (*Identity, error)
}

// Provider kinds accepted in configuration.
const (
	ProviderGoogle = "google"
	ProviderWallet = "wallet"
	ProviderStatic = "static"
)

// ProviderConfig selects and parameterizes the active provider.
type ProviderConfig struct {
	Kind string `yaml:"kind"`

	// GoogleAudience is the OAuth client ID ID tokens must be issued to.
	// Empty skips the audience check (development only).
	GoogleAudience string `yaml:"google_audience"`

	// StaticCredentials maps fixed credentials to display names for the
	// static provider.
	StaticCredentials map[string]string `yaml:"static_credentials"`
}

// NewProvider builds the provider named by cfg.Kind.
func NewProvider(cfg ProviderConfig) (Provider, error) {
	switch cfg.Kind {
	case ProviderGoogle:
		return NewGoogleProvider(cfg.GoogleAudience), nil
	case ProviderWallet:
		return NewWalletProvider(), nil
	case ProviderStatic:
		return NewStaticProvider(cfg.StaticCredentials), nil
	default:
		return nil, fmt.Errorf("unknown auth provider %q", cfg.Kind)
	}
}
