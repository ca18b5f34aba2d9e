package auth

import "context"

// StaticProvider resolves credentials from a fixed table. Development and
// test use only.
type StaticProvider struct {
	credentials map[string]string
}

func NewStaticProvider(credentials map[string]string) *StaticProvider {
	if credentials == nil {
		credentials = map[string]string{}
	}
	return &StaticProvider{credentials: credentials}
}

func (p *StaticProvider) Authenticate(_ context.Context, credential string) (*Identity, error) {
	name, ok := p.credentials[credential]
	if !ok {
		return nil, ErrInvalidCredential
	}

	return &Identity{
		Subject: "static:" + credential,
		Name:    name,
	}, nil
}
