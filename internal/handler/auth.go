package handler

import (
	"errors"
	"net/http"

	"github.com/monicodev/orbidi-challenge/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthHandler issues access tokens.
type AuthHandler struct {
	tokens TokenIssuer
}

// TokenIssuer is the auth surface the handler consumes.
type TokenIssuer interface {
	Authenticate(username, password string) (string, error)
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// TokenResponse is the body returned on successful authentication.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Token handles POST /api/v1/auth/token requests.
//
//	@Summary		Obtain a JWT access token
//	@Description	OAuth2 password flow stub; the demo password is "admin".
//	@Tags			auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string	true	"Username"
//	@Param			password	formData	string	true	"Password"
//	@Success		200			{object}	TokenResponse
//	@Failure		400			{object}	map[string]string
//	@Failure		401			{object}	map[string]string
//	@Router			/auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required form fields 'username' and 'password'"})
		return
	}

	token, err := h.tokens.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication failed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}
