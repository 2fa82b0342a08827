package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/lshigami/Quokka/internal/dto"
)

// IssueTokenHandler godoc
// @Summary Exchange an identity for a session token
// @Description Issues a bearer token for a user on the allow-listed email domain, provisioning the user record on first sight.
// @Tags auth
// @Accept json
// @Produce json
// @Param identity body dto.TokenRequest true "User identity"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Email domain not allowed"
// @Router /auth/token [post]
func (ctrl *Controller) IssueTokenHandler(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind TokenRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.authSvc.IssueToken(req)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetMeHandler godoc
// @Summary Get the session's user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserSummary
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (ctrl *Controller) GetMeHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	user, err := ctrl.authSvc.GetUser(userID)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}
