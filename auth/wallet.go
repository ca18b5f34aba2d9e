package auth

import (
	"context"
	"strings"
)

// WalletProvider treats a wallet address as the credential. The address is
// shape-checked and normalized; ownership proof (message signing) is the
// wallet UI's responsibility upstream of this API.
type WalletProvider struct{}

func NewWalletProvider() *WalletProvider {
	return &WalletProvider{}
}

func (p *WalletProvider) Authenticate(_ context.Context, credential string) (*Identity, error) {
	address := strings.ToLower(strings.TrimSpace(credential))
	if !validWalletAddress(address) {
		return nil, ErrInvalidCredential
	}

	return &Identity{
		Subject:       "wallet:" + address,
		WalletAddress: address,
	}, nil
}

// validWalletAddress accepts 0x-prefixed hex of plausible account length.
func validWalletAddress(address string) bool {
	if !strings.HasPrefix(address, "0x") {
		return false
	}
	hex := address[2:]
	if len(hex) < 40 || len(hex) > 64 {
		return false
	}
	for _, c := range hex {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
