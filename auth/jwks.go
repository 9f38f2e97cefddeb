package auth

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JWK is a single signing key from the issuer's key discovery document
// (RFC 7517). Only the RSA members are used.
type JWK struct {
	Kty string `json:"kty"`
	Use string `json:"use"`
	Alg string `json:"alg"`
	Kid string `json:"kid"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type JWKS struct {
	Keys []JWK `json:"keys"`
}

// JWKSProvider resolves RS256 signing keys from the issuer's JWKS endpoint.
// Keys are cached per kid; an unknown kid triggers a refetch, which covers
// issuer key rotation without restarting the process.
type JWKSProvider struct {
	client  *resty.Client
	jwksURL string

	mu   sync.RWMutex
	keys map[string]*rsa.PublicKey
}

func NewJWKSProvider(jwksURL string) *JWKSProvider {
	return &JWKSProvider{
		client:  resty.New(),
		jwksURL: jwksURL,
		keys:    make(map[string]*rsa.PublicKey),
	}
}

// Keyfunc is the jwt.Keyfunc used to verify RS256 tokens.
func (p *JWKSProvider) Keyfunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}

	kid, ok := token.Header["kid"].(string)
	if !ok || kid == "" {
		return nil, fmt.Errorf("token has no kid header")
	}

	p.mu.RLock()
	key, found := p.keys[kid]
	p.mu.RUnlock()
	if found {
		return key, nil
	}

	if err := p.refresh(); err != nil {
		return nil, err
	}

	p.mu.RLock()
	key, found = p.keys[kid]
	p.mu.RUnlock()
	if !found {
		return nil, fmt.Errorf("signing key %q not found in JWKS", kid)
	}
	return key, nil
}

func (p *JWKSProvider) refresh() error {
	resp, err := p.client.R().Get(p.jwksURL)
	if err != nil {
		return fmt.Errorf("fetch JWKS: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("fetch JWKS: status %d", resp.StatusCode())
	}

	var doc JWKS
	if err := json.Unmarshal(resp.Body(), &doc); err != nil {
		return fmt.Errorf("parse JWKS: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, jwk := range doc.Keys {
		if jwk.Kty != "RSA" || jwk.Kid == "" {
			continue
		}
		key, err := jwk.publicKey()
		if err != nil {
			return fmt.Errorf("parse JWK %q: %w", jwk.Kid, err)
		}
		keys[jwk.Kid] = key
	}

	p.mu.Lock()
	p.keys = keys
	p.mu.Unlock()
	return nil
}

// publicKey assembles an rsa.PublicKey from the base64url modulus and exponent.
func (k JWK) publicKey() (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("decode modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("decode exponent: %w", err)
	}

	e := 0
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: e,
	}, nil
}
