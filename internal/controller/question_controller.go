package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/lshigami/Quokka/internal/dto"
)

// ListQuestionsHandler godoc
// @Summary List questions
// @Description Filter by groupId, search across question text / author / answers, sort by recent (default), popular or unanswered.
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param groupId query int false "Restrict to a group"
// @Param query query string false "Case-insensitive search term"
// @Param sortBy query string false "recent | popular | unanswered"
// @Success 200 {array} dto.QuestionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [get]
func (ctrl *Controller) ListQuestionsHandler(c *gin.Context) {
	var groupID *uint
	if raw := c.Query("groupId"); raw != "" {
		val, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid group ID format"})
			return
		}
		id := uint(val)
		groupID = &id
	}

	sortBy := c.DefaultQuery("sortBy", "recent")
	questions, err := ctrl.questionSvc.ListQuestions(groupID, c.Query("query"), sortBy)
	if err != nil {
		respondError(c, err, "Failed to retrieve questions")
		return
	}
	c.JSON(http.StatusOK, questions)
}

// GetQuestionHandler godoc
// @Summary Get a question with its answers
// @Description Full thread view: the question, its like count, and all answers newest-first with their own like counts.
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionDetailResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [get]
func (ctrl *Controller) GetQuestionHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid question ID format"})
		return
	}

	question, err := ctrl.questionSvc.GetQuestion(uint(id))
	if err != nil {
		respondError(c, err, "Question not found")
		return
	}
	c.JSON(http.StatusOK, question)
}

// CreateQuestionHandler godoc
// @Summary Post a question to a group
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question body dto.CreateQuestionRequest true "Question data"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /questions [post]
func (ctrl *Controller) CreateQuestionHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateQuestionRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Question text is required"})
		return
	}

	question, err := ctrl.questionSvc.CreateQuestion(userID, req)
	if err != nil {
		respondError(c, err, "Question not found")
		return
	}
	c.JSON(http.StatusCreated, question)
}

// UpdateQuestionHandler godoc
// @Summary Edit a question's text
// @Description Only the creator may edit; a missing question and a foreign question report identically.
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question body dto.UpdateQuestionRequest true "Question data"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Not found or not owner"
// @Router /questions [put]
func (ctrl *Controller) UpdateQuestionHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind UpdateQuestionRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	question, err := ctrl.questionSvc.UpdateQuestion(userID, req)
	if err != nil {
		respondError(c, err, "Question not found or access denied")
		return
	}
	c.JSON(http.StatusOK, question)
}

// DeleteQuestionHandler godoc
// @Summary Delete a question
// @Description Deletes the question together with its answers and likes.
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id query int true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Not found or not owner"
// @Router /questions [delete]
func (ctrl *Controller) DeleteQuestionHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Query("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Question ID is required"})
		return
	}

	if err := ctrl.questionSvc.DeleteQuestion(userID, uint(id)); err != nil {
		respondError(c, err, "Question not found or access denied")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Question deleted successfully"})
}
