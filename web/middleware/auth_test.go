package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickpanel/database/model"
	"tickpanel/web/service"
	"tickpanel/web/session"
)

func newTestRouter(tokens *service.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	protected := engine.Group("", AuthRequired(tokens))
	protected.GET("/whoami", func(c *gin.Context) {
		id, _ := session.GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"username": id.Username, "role": id.Role})
	})

	admin := engine.Group("/admin", AuthRequired(tokens), RoleRequired("admin"))
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return engine
}

func issueToken(t *testing.T, tokens *service.TokenService, role string) string {
	t.Helper()
	token, err := tokens.Issue(&model.User{
		Id:       "u-1",
		Username: "alice",
		Email:    "alice@example.com",
		Role:     role,
	})
	require.NoError(t, err)
	return token
}

func TestAuthRequired(t *testing.T) {
	tokens := service.NewTokenService("test-secret")
	engine := newTestRouter(tokens)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"valid token", "Bearer " + issueToken(t, tokens, model.RoleClient), http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestAuthRequiredRejectsForeignSignature(t *testing.T) {
	tokens := service.NewTokenService("test-secret")
	engine := newTestRouter(tokens)

	foreign := issueToken(t, service.NewTokenService("other-secret"), model.RoleClient)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+foreign)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleRequired(t *testing.T) {
	tokens := service.NewTokenService("test-secret")
	engine := newTestRouter(tokens)

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, model.RoleClient))
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, model.RoleAdmin))
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
