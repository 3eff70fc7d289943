package v1_test

import (
	"net/http"
	"testing"

	"github.com/gs866812/kustia-mosque-backend/internal/auth"
	v1 "github.com/gs866812/kustia-mosque-backend/internal/controllers/v1"
	"github.com/gs866812/kustia-mosque-backend/internal/models"
	"github.com/gs866812/kustia-mosque-backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestUser stores a moderator account directly in the database.
func createTestUser(t *testing.T, email, password string) {
	user := models.User{Email: email}
	require.Nil(t, user.SetPassword(password))
	require.Nil(t, models.DB.Create(&user).Error)
}

// sessionCookie returns the authToken cookie from a response, or nil.
func sessionCookie(r *http.Response) *http.Cookie {
	for _, cookie := range r.Cookies() {
		if cookie.Name == auth.CookieName {
			return cookie
		}
	}

	return nil
}

func (suite *TestSuiteStandard) TestLogin() {
	createTestUser(suite.T(), "moderator@example.com", "correct horse battery staple")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginRequest{
		Email:    "moderator@example.com",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.NotEmpty(suite.T(), response.Token)
	assert.Equal(suite.T(), "moderator@example.com", response.Email)

	cookie := sessionCookie(r.Result())
	require.NotNil(suite.T(), cookie)
	assert.Equal(suite.T(), response.Token, cookie.Value)
	assert.True(suite.T(), cookie.HttpOnly)
}

func (suite *TestSuiteStandard) TestLoginNormalizesEmail() {
	createTestUser(suite.T(), "Moderator@Example.com ", "correct horse battery staple")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginRequest{
		Email:    "moderator@example.com",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestLoginWrongPassword() {
	createTestUser(suite.T(), "moderator@example.com", "correct horse battery staple")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginRequest{
		Email:    "moderator@example.com",
		Password: "wrong",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "the email or password is incorrect", *response.Error)
}

func (suite *TestSuiteStandard) TestLoginUnknownEmail() {
	// The error must not reveal whether the account exists
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginRequest{
		Email:    "nobody@example.com",
		Password: "wrong",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "the email or password is incorrect", *response.Error)
}

func (suite *TestSuiteStandard) TestRefresh() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/refresh", nil, asModerator(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.NotEmpty(suite.T(), response.Token)
	assert.Equal(suite.T(), "moderator@example.com", response.Email)
	assert.NotNil(suite.T(), sessionCookie(r.Result()))
}

func (suite *TestSuiteStandard) TestRefreshUnauthorized() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/refresh", nil)
	assert.Equal(suite.T(), http.StatusUnauthorized, r.Code)
}

func (suite *TestSuiteStandard) TestRefreshWithCookie() {
	service := test.TokenService()
	token, _, err := service.Sign("moderator@example.com")
	require.Nil(suite.T(), err)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/refresh", nil, map[string]string{
		"Cookie": auth.CookieName + "=" + token,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestLogout() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/logout", nil)
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)

	cookie := sessionCookie(r.Result())
	require.NotNil(suite.T(), cookie)
	assert.Empty(suite.T(), cookie.Value)
	assert.Less(suite.T(), cookie.MaxAge, 0)
}
