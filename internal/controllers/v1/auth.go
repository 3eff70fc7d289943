package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gs866812/kustia-mosque-backend/internal/auth"
	"github.com/gs866812/kustia-mosque-backend/internal/httputil"
	"github.com/gs866812/kustia-mosque-backend/internal/models"
)

type LoginRequest struct {
	Email    string `json:"email" example:"moderator@example.com"` // Email of the moderator account
	Password string `json:"password" example:"correct horse battery staple"`
}

type SessionResponse struct {
	Token     string    `json:"token,omitempty" example:"eyJhbGciOiJIUzI1NiJ9..."`   // The signed token, also set as the authToken cookie
	Email     string    `json:"email,omitempty" example:"moderator@example.com"`     // Email of the authenticated account
	ExpiresAt time.Time `json:"expiresAt,omitempty" example:"2025-08-29T12:00:00Z"`  // Expiry of the token
	Error     *string   `json:"error,omitempty" example:"the email or password is incorrect"` // The error, if any occurred
}

// RegisterAuthRoutes registers the session routes. The refresh endpoint
// needs a valid token and therefore lives on the authenticated group.
func RegisterAuthRoutes(public, admin *gin.RouterGroup) {
	public.OPTIONS("/login", httputil.OptionsPost)
	public.POST("/login", Login)

	public.OPTIONS("/logout", httputil.OptionsPost)
	public.POST("/logout", Logout)

	admin.OPTIONS("/refresh", httputil.OptionsPost)
	admin.POST("/refresh", Refresh)
}

// setSessionCookie stores the token in the cookie the legacy clients
// expect. The cookie lives exactly as long as the token.
func setSessionCookie(c *gin.Context, token string, expiresAt time.Time) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, token, int(time.Until(expiresAt).Seconds()), "/", "", false, true)
}

// @Summary		Log in
// @Description	Verifies the moderator credentials and returns a signed token. The token is also set as the authToken cookie
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200		{object}	SessionResponse
// @Failure		400		{object}	SessionResponse
// @Failure		401		{object}	SessionResponse
// @Failure		500		{object}	SessionResponse
// @Param			login	body		LoginRequest	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var request LoginRequest
	if err := httputil.BindData(c, &request); err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	var user models.User
	err := models.DB.Where(&models.User{Email: request.Email}).First(&user).Error
	if err != nil {
		// Do not leak whether the account exists
		if errors.Is(err, models.ErrResourceNotFound) {
			e := errLoginInvalid.Error()
			c.JSON(http.StatusUnauthorized, SessionResponse{
				Error: &e,
			})
			return
		}

		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	if !user.CheckPassword(request.Password) {
		e := errLoginInvalid.Error()
		c.JSON(http.StatusUnauthorized, SessionResponse{
			Error: &e,
		})
		return
	}

	token, expiresAt, err := tokens.Sign(user.Email)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{
			Error: &e,
		})
		return
	}

	setSessionCookie(c, token, expiresAt)
	c.JSON(http.StatusOK, SessionResponse{
		Token:     token,
		Email:     user.Email,
		ExpiresAt: expiresAt,
	})
}

// @Summary		Refresh session
// @Description	Issues a fresh token for the authenticated account. Clients call this shortly before the old token expires
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	SessionResponse
// @Failure		401	{object}	httputil.HTTPError
// @Failure		500	{object}	SessionResponse
// @Router			/v1/auth/refresh [post]
func Refresh(c *gin.Context) {
	email := auth.EmailFromContext(c)

	token, expiresAt, err := tokens.Sign(email)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{
			Error: &e,
		})
		return
	}

	setSessionCookie(c, token, expiresAt)
	c.JSON(http.StatusOK, SessionResponse{
		Token:     token,
		Email:     email,
		ExpiresAt: expiresAt,
	})
}

// @Summary		Log out
// @Description	Clears the authToken cookie. Stateless tokens cannot be revoked, the client discards them
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/logout [post]
func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusNoContent, nil)
}
