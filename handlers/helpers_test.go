package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"gamereviews/handlers"
	"gamereviews/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testAudience = "https://gamereviews.example.com"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	os.Exit(m.Run())
}

// fakeCatalog satisfies handlers.Catalog for the recent-games tests.
type fakeCatalog struct {
	payload []byte
	err     error
}

func (f *fakeCatalog) RecentGames(ctx context.Context) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

// authAs stands in for the token middleware: it seeds the context with the
// given subject and claims the way auth.TokenVerifier does.
func authAs(sub string, claims jwt.MapClaims) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("auth0_id", sub)
		if claims == nil {
			claims = jwt.MapClaims{}
		}
		c.Set("claims", claims)
		c.Next()
	}
}

func newRouter() *gin.Engine {
	return gin.New()
}

func newTestHandler(s *fakeStore) *handlers.Handler {
	return handlers.New(s, &fakeCatalog{payload: []byte(`[]`)}, testAudience)
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode response body: %v (body: %s)", err, rr.Body.String())
	}
}
