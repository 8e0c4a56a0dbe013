package guard

import (
	"github.com/dmitrymomot/authguard/core/claims"
	"github.com/dmitrymomot/authguard/pkg/jwt"
)

// jwtSigner adapts pkg/jwt's HMAC service to the Signer contract.
type jwtSigner struct {
	service *jwt.Service
}

// NewJWTSigner wraps a jwt.Service as a Signer.
func NewJWTSigner(service *jwt.Service) Signer {
	return jwtSigner{service: service}
}

func (s jwtSigner) Sign(set claims.Set) (string, error) {
	return s.service.Generate(map[string]any(set))
}

func (s jwtSigner) Verify(token string) (claims.Set, error) {
	m, err := s.service.ParseMap(token)
	if err != nil {
		return nil, err
	}
	return claims.Set(m), nil
}
