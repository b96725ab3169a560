package rtc

import (
	"github.com/livekit/protocol/auth"
)

// KeySigner signs credentials with a LiveKit API key pair. The key pair
// must match the one the LiveKit deployment was started with, or the
// backend will reject every token this service issues.
type KeySigner struct {
	apiKey    string
	apiSecret string
}

func NewKeySigner(apiKey, apiSecret string) *KeySigner {
	return &KeySigner{apiKey: apiKey, apiSecret: apiSecret}
}

func (s *KeySigner) Sign(claims AccessClaims) (string, error) {
	at := auth.NewAccessToken(s.apiKey, s.apiSecret).
		SetIdentity(claims.Identity).
		SetName(claims.Name).
		SetMetadata(claims.Metadata).
		AddGrant(claims.Grant)
	if claims.ValidFor > 0 {
		at.SetValidFor(claims.ValidFor)
	}
	return at.ToJWT()
}
