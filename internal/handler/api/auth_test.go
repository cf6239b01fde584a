//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"nft-launchpad/internal/handler/api"
	resdto "nft-launchpad/internal/handler/dto/response"
	"nft-launchpad/internal/pkg/config"
	"nft-launchpad/internal/pkg/cookie"
	"nft-launchpad/internal/pkg/errs"
	"nft-launchpad/internal/usecase/commands"
	"nft-launchpad/internal/usecase/queries"
	"nft-launchpad/tests/common/builder"
	"nft-launchpad/tests/common/httptest"
	"nft-launchpad/tests/common/testutil"
	commandsmock "nft-launchpad/tests/mock/commands"
	queriesmock "nft-launchpad/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	cookieCfg := config.CookieConfig{SameSite: "Lax"}
	jwtCfg := config.JWTConfig{Secret: "test-secret", Duration: 24 * time.Hour}
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, cookieCfg, jwtCfg)

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", uuid.New())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	s.Run("success: returns 200 OK and sets the access token cookie", func() {
		ub := builder.NewUserBuilder()
		reqBody := ub.BuildLoginRequestDTO()

		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(&commands.LoginResult{UserID: ub.ID, AccessToken: "test-jwt-token"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(ub.ID, response.UserID)

		tokenCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(tokenCookie)
		s.Equal("test-jwt-token", tokenCookie.Value)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		base := builder.NewUserBuilder().BuildLoginRequestDTO()
		cases := []testCaseAuth{
			{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "missing password", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), base, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("error: 401 Unauthorized for bad credentials", func() {
		reqBody := builder.NewUserBuilder().BuildLoginRequestDTO()

		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("password mismatch"), commands.ErrInvalidCredentials)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"

	s.Run("success: returns 201 Created with the new user id", func() {
		ub := builder.NewUserBuilder()
		reqBody := ub.BuildRegisterRequestDTO()

		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(ub.ID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		base := builder.NewUserBuilder().BuildRegisterRequestDTO()
		cases := []testCaseAuth{
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "password too short", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), base, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("error: 409 Conflict for a duplicate email", func() {
		reqBody := builder.NewUserBuilder().BuildRegisterRequestDTO()

		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.New("duplicate email")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 and clears the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)

		tokenCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(tokenCookie)
		s.Empty(tokenCookie.Value)
		s.Negative(tokenCookie.MaxAge)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns 200 OK with the current user", func() {
		rm := builder.NewUserBuilder().BuildRM()

		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "test-token")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(rm.Email, response.Email)
		s.Equal(rm.Role, response.Role)
	})

	s.Run("error: 404 when the user row is gone", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("no rows"), queries.ErrUserNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "test-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 500 when no user is bound to the request", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
