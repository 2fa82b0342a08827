package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/lshigami/Quokka/internal/dto"
)

// CheckLikeHandler godoc
// @Summary Check whether the session user liked a content item
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param type query string true "QUESTION or ANSWER"
// @Param refId query int true "Content ID"
// @Success 200 {object} dto.LikeStatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /likes/check [get]
func (ctrl *Controller) CheckLikeHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	likeType := c.Query("type")
	refID, err := strconv.ParseUint(c.Query("refId"), 10, 32)
	if likeType == "" || err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Type and refId are required"})
		return
	}

	status, err := ctrl.likeSvc.CheckLiked(likeType, uint(refID), userID)
	if err != nil {
		respondError(c, err, "Like not found")
		return
	}
	c.JSON(http.StatusOK, status)
}

// ToggleLikeHandler godoc
// @Summary Toggle a like
// @Description The single engagement endpoint: creates the like if absent, removes it if present, and reports the resulting state.
// @Tags likes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param like body dto.ToggleLikeRequest true "Content reference"
// @Success 200 {object} dto.LikeStatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /likes [post]
func (ctrl *Controller) ToggleLikeHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind ToggleLikeRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Type and refId are required"})
		return
	}

	status, err := ctrl.likeSvc.ToggleLike(req.Type, req.RefID, userID)
	if err != nil {
		respondError(c, err, "Like not found")
		return
	}
	c.JSON(http.StatusOK, status)
}
