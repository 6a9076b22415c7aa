package service

import (
	"fmt"
	"time"

	"github.com/prepdeck/prepdeck/internal/catalog/domain"
	"github.com/prepdeck/prepdeck/pkg/jwtx"
)

// TokenService mints session tokens at login. Tokens are stateless: validity
// is determined purely by signature and expiry at verification time, so there
// is no revocation list and logout is client-side only.
type TokenService struct {
	Signer     jwtx.Signer
	Issuer     string
	SessionTTL time.Duration
}

// TTL returns the effective session lifetime.
func (s *TokenService) TTL() time.Duration {
	if s.SessionTTL <= 0 {
		return jwtx.DefaultSessionTTL
	}
	return s.SessionTTL
}

// Issue signs a session token carrying the user's identifier.
func (s *TokenService) Issue(user domain.User) (string, error) {
	claims := jwtx.NewSessionClaims(user.ID, user.Phone, s.Issuer, s.TTL(), time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}
