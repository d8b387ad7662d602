package auth

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"skillswap-backend/internal/models"
)

// DefaultTTL is how long an issued token stays valid.
const DefaultTTL = 24 * time.Hour

// Issuer issues and validates session tokens.
//
// With no secret configured, tokens are base64-encoded JSON payloads carrying
// the identity and an absolute expiry. That format is forgeable by anyone who
// knows the encoding — it is a demo placeholder, not a credential. Configure
// a secret to issue HS256-signed JWTs instead; validation then rejects any
// token whose signature does not verify.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an issuer. An empty secret selects the unsigned format.
// A zero ttl falls back to DefaultTTL.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// unsignedPayload is the wire shape of the unsigned token, expiry in
// milliseconds since epoch.
type unsignedPayload struct {
	models.Identity
	Exp int64 `json:"exp"`
}

type signedClaims struct {
	jwt.RegisteredClaims
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin,omitempty"`
}

// Issue produces a token for the identity, valid for the issuer's TTL.
func (i *Issuer) Issue(identity models.Identity) (string, error) {
	now := time.Now()

	if len(i.secret) == 0 {
		payload, err := json.Marshal(unsignedPayload{
			Identity: identity,
			Exp:      now.Add(i.ttl).UnixMilli(),
		})
		if err != nil {
			return "", err
		}
		return base64.StdEncoding.EncodeToString(payload), nil
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, signedClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(identity.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		Name:    identity.Name,
		Email:   identity.Email,
		IsAdmin: identity.IsAdmin,
	})
	return token.SignedString(i.secret)
}

// Validate decodes a token and returns the embedded identity. It fails
// closed: a malformed, tampered, or expired token yields ok == false, never
// an error.
func (i *Issuer) Validate(tokenString string) (models.Identity, bool) {
	if len(i.secret) == 0 {
		return validateUnsigned(tokenString)
	}
	return i.validateSigned(tokenString)
}

func validateUnsigned(tokenString string) (models.Identity, bool) {
	raw, err := base64.StdEncoding.DecodeString(tokenString)
	if err != nil {
		return models.Identity{}, false
	}
	var payload unsignedPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return models.Identity{}, false
	}
	if payload.Exp < time.Now().UnixMilli() {
		return models.Identity{}, false
	}
	return payload.Identity, true
}

func (i *Issuer) validateSigned(tokenString string) (models.Identity, bool) {
	claims := &signedClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return models.Identity{}, false
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Identity{}, false
	}
	return models.Identity{
		ID:      id,
		Name:    claims.Name,
		Email:   claims.Email,
		IsAdmin: claims.IsAdmin,
	}, true
}
