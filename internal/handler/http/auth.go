package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffhub/ems-backend-go/internal/domain/auth"
	"github.com/staffhub/ems-backend-go/internal/handler/http/response"
	"github.com/staffhub/ems-backend-go/internal/pkg/oauth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
	google      oauth.GoogleService
}

func NewAuthHandler(authService auth.AuthService, googleService oauth.GoogleService) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
		google:      googleService,
	}
}

// principalFromRequest rebuilds the authenticated principal from the
// verified token in the request context.
func principalFromRequest(r *http.Request) (auth.Principal, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return auth.Principal{}, auth.ErrUnauthenticated
	}
	return auth.PrincipalFromClaims(claims)
}

// Login implements AuthHandler.
func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.InvalidInput(w, nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokenResponse, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, map[string]interface{}{"token": tokenResponse.Token})
}

// Me implements AuthHandler.
func (h *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	accountData, err := h.authService.Me(r.Context(), principal.AccountID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, map[string]interface{}{"user": accountData.ToResponse()})
}

// LoginWithGoogle implements AuthHandler.
func (h *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	if h.google == nil {
		response.NotFound(w, response.KindNotFound)
		return
	}

	state := h.google.GenerateState()
	http.Redirect(w, r, h.google.RedirectURL(state), http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (h *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		response.InvalidInput(w, map[string]string{"code": "code is required"})
		return
	}

	tokenResponse, err := h.authService.LoginWithGoogle(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, map[string]interface{}{"token": tokenResponse.Token})
}
