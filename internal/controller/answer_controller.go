package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/lshigami/Quokka/internal/dto"
)

// CreateAnswerHandler godoc
// @Summary Post an answer to a question
// @Description Needs text or an audio URL. Answers cannot be edited or deleted afterwards.
// @Tags answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param answer body dto.CreateAnswerRequest true "Answer data"
// @Success 201 {object} dto.AnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Neither text nor audio URL given"
// @Failure 401 {object} dto.ErrorResponse
// @Router /answers [post]
func (ctrl *Controller) CreateAnswerHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateAnswerRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Question ID is required"})
		return
	}

	answer, err := ctrl.answerSvc.CreateAnswer(userID, req)
	if err != nil {
		respondError(c, err, "Question not found")
		return
	}
	c.JSON(http.StatusCreated, answer)
}
