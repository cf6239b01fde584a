//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	reqdto "nft-launchpad/internal/handler/dto/request"
	resdto "nft-launchpad/internal/handler/dto/response"
	"nft-launchpad/tests/common/authtest"
	"nft-launchpad/tests/common/httptest"
	"nft-launchpad/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestRegisterAndLogin() {
	s.Run("Normal case: register, login and fetch the current user", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/register",
			reqdto.RegisterRequest{Email: "new-creator@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		token := authtest.LoginUser(t, s.Router, "new-creator@example.com", "password123")

		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/auth/me", nil, token)
		require.Equal(t, http.StatusOK, mw.Code, mw.Body.String())

		var me resdto.UserResponse
		httptest.DecodeResponseBody(t, mw.Body, &me)
		require.Equal(t, "new-creator@example.com", me.Email)
		require.Equal(t, "creator", me.Role)
		require.NotNil(t, me.LastLoginAt, "login must stamp last_login_at")
	})

	s.Run("Error case: duplicate registration is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/register",
			reqdto.RegisterRequest{Email: "dup@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		dw := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/register",
			reqdto.RegisterRequest{Email: "dup@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusConflict, dw.Code, dw.Body.String())
	})

	s.Run("Error case: wrong password is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/register",
			reqdto.RegisterRequest{Email: "creator@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/login",
			reqdto.LoginRequest{Email: "creator@example.com", Password: "wrong-password"}, "")
		require.Equal(t, http.StatusUnauthorized, lw.Code, lw.Body.String())
	})

	s.Run("Error case: protected route without a token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/auth/me", nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}
