package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/monicodev/orbidi-challenge/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTokenIssuer is a mock implementation of the TokenIssuer interface
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Authenticate(username, password string) (string, error) {
	args := m.Called(username, password)
	return args.String(0), args.Error(1)
}

func performToken(h *AuthHandler, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	h.Token(c)
	return w
}

func TestAuthHandler_Token(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		form           url.Values
		mockToken      string
		mockError      error
		expectCall     bool
		expectedStatus int
	}{
		{
			name:           "missing fields",
			form:           url.Values{"username": {"alice"}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "successful login",
			form:           url.Values{"username": {"alice"}, "password": {"admin"}},
			mockToken:      "signed.jwt.token",
			expectCall:     true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong password",
			form:           url.Values{"username": {"alice"}, "password": {"nope"}},
			mockError:      auth.ErrInvalidCredentials,
			expectCall:     true,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIssuer := new(MockTokenIssuer)
			if tt.expectCall {
				mockIssuer.On("Authenticate", tt.form.Get("username"), tt.form.Get("password")).
					Return(tt.mockToken, tt.mockError)
			}
			handler := NewAuthHandler(mockIssuer)

			w := performToken(handler, tt.form)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var body TokenResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.mockToken, body.AccessToken)
				assert.Equal(t, "bearer", body.TokenType)
			}
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			}
			mockIssuer.AssertExpectations(t)
		})
	}
}
