package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mdnotes/notes-api/internal/api/metrics"
	"github.com/mdnotes/notes-api/internal/core/ports"
)

// AuthHandler handles the identity-link sign-in endpoint.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type googleLoginRequest struct {
	Name       string `json:"name"       validate:"required"`
	Email      string `json:"email"      validate:"required,email"`
	ExternalID string `json:"externalId" validate:"required"`
}

type googleLoginResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// GoogleLogin resolves a provider-verified identity to a local account and
// returns its public fields plus a bearer token.
//
// @Summary      Sign in with a Google identity assertion
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      googleLoginRequest  true  "Verified identity assertion"
// @Success      200   {object}  googleLoginResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/google [post]
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req googleLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Link(c.Request().Context(), ports.IdentityAssertion{
		Name:       req.Name,
		Email:      req.Email,
		ExternalID: req.ExternalID,
	})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, googleLoginResponse{
		ID:    result.User.ID,
		Name:  result.User.Name,
		Email: result.User.Email,
		Token: result.Token,
	})
}
