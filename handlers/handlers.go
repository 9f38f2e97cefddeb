package handlers

import (
	"context"
	"strconv"

	"gamereviews/store"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Catalog is the external game-catalog surface the recent-games route needs.
type Catalog interface {
	RecentGames(ctx context.Context) ([]byte, error)
}

// Handler carries the dependencies shared by the resource controllers.
type Handler struct {
	store   store.Store
	catalog Catalog
	// claimNamespace prefixes the profile claims inside the token payload.
	// Auth0 actions namespace custom claims under the API audience.
	claimNamespace string
}

func New(s store.Store, catalog Catalog, claimNamespace string) *Handler {
	return &Handler{
		store:          s,
		catalog:        catalog,
		claimNamespace: claimNamespace,
	}
}

// subject returns the verified Auth0 subject id set by the auth middleware.
func subject(c *gin.Context) string {
	return c.MustGet("auth0_id").(string)
}

func tokenClaims(c *gin.Context) jwt.MapClaims {
	return c.MustGet("claims").(jwt.MapClaims)
}

func (h *Handler) claim(claims jwt.MapClaims, name string) string {
	value, _ := claims[h.claimNamespace+"/"+name].(string)
	return value
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// Ping is the unauthenticated liveness probe.
func Ping(c *gin.Context) {
	c.String(200, "pong")
}
