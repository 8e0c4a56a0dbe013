package jwt

import (
	"encoding/json"
	"errors"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// minKeyLength is the minimum signing key size for HMAC-SHA256.
const minKeyLength = 32

// StandardClaims holds the registered claim names from RFC 7519.
// Timestamps are unix seconds.
type StandardClaims struct {
	ID        string `json:"jti,omitempty"`
	Subject   string `json:"sub,omitempty"`
	Issuer    string `json:"iss,omitempty"`
	Audience  string `json:"aud,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
	NotBefore int64  `json:"nbf,omitempty"`
}

// Service signs and verifies tokens with HMAC-SHA256.
type Service struct {
	signingKey []byte
}

// New creates a token service with the given signing key.
// The key must be at least 32 bytes.
func New(signingKey []byte) (*Service, error) {
	if len(signingKey) < minKeyLength {
		return nil, ErrSigningKeyTooShort
	}
	return &Service{signingKey: signingKey}, nil
}

// NewFromString creates a token service from a string signing key.
func NewFromString(signingKey string) (*Service, error) {
	return New([]byte(signingKey))
}

// Generate signs the given claims and returns the compact token string.
// Claims may be any JSON-serializable value: a map, StandardClaims, or a
// custom struct embedding StandardClaims.
func (s *Service) Generate(claims any) (string, error) {
	mapClaims, err := toMapClaims(claims)
	if err != nil {
		return "", errors.Join(ErrFailedToSign, err)
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, mapClaims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", errors.Join(ErrFailedToSign, err)
	}
	return signed, nil
}

// Parse verifies the token signature and temporal claims, then unmarshals the
// payload into the provided claims value (which must be a pointer).
func (s *Service) Parse(token string, claims any) error {
	mapClaims, err := s.parse(token)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(mapClaims)
	if err != nil {
		return errors.Join(ErrInvalidToken, err)
	}
	if err := json.Unmarshal(raw, claims); err != nil {
		return errors.Join(ErrInvalidToken, err)
	}
	return nil
}

// ParseMap verifies the token and returns its payload as a generic claim map.
func (s *Service) ParseMap(token string) (map[string]any, error) {
	mapClaims, err := s.parse(token)
	if err != nil {
		return nil, err
	}
	return map[string]any(mapClaims), nil
}

func (s *Service) parse(token string) (jwtlib.MapClaims, error) {
	parsed, err := jwtlib.Parse(token, func(t *jwtlib.Token) (any, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedSigningMethod
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, mapParseError(err)
	}

	mapClaims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return mapClaims, nil
}

// mapParseError translates golang-jwt errors to the package's sentinel errors
// so callers can branch with errors.Is without importing the library.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, ErrUnexpectedSigningMethod):
		return ErrUnexpectedSigningMethod
	case errors.Is(err, jwtlib.ErrTokenExpired), errors.Is(err, jwtlib.ErrTokenNotValidYet):
		return ErrExpiredToken
	case errors.Is(err, jwtlib.ErrTokenSignatureInvalid):
		return ErrInvalidSignature
	default:
		return errors.Join(ErrInvalidToken, err)
	}
}

// toMapClaims normalizes arbitrary claim values through a JSON round-trip.
func toMapClaims(claims any) (jwtlib.MapClaims, error) {
	switch c := claims.(type) {
	case jwtlib.MapClaims:
		return c, nil
	case map[string]any:
		return jwtlib.MapClaims(c), nil
	}

	raw, err := json.Marshal(claims)
	if err != nil {
		return nil, err
	}
	var mapClaims jwtlib.MapClaims
	if err := json.Unmarshal(raw, &mapClaims); err != nil {
		return nil, err
	}
	return mapClaims, nil
}
