package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lshigami/Quokka/internal/auth"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/media"
	"github.com/lshigami/Quokka/internal/middleware"
	"github.com/lshigami/Quokka/internal/service"
)

type Controller struct {
	authSvc     service.AuthService
	groupSvc    service.GroupService
	questionSvc service.QuestionService
	answerSvc   service.AnswerService
	likeSvc     service.LikeService
	uploader    media.Uploader
}

func NewController(
	authSvc service.AuthService,
	groupSvc service.GroupService,
	questionSvc service.QuestionService,
	answerSvc service.AnswerService,
	likeSvc service.LikeService,
	uploader media.Uploader,
) *Controller {
	return &Controller{
		authSvc:     authSvc,
		groupSvc:    groupSvc,
		questionSvc: questionSvc,
		answerSvc:   answerSvc,
		likeSvc:     likeSvc,
		uploader:    uploader,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine, tm *auth.TokenManager) {
	apiV1 := router.Group("/api/v1")
	{
		// Session issuance and media upload sit outside the session gate.
		apiV1.POST("/auth/token", ctrl.IssueTokenHandler)
		apiV1.POST("/upload/audio", ctrl.UploadAudioHandler)

		authed := apiV1.Group("")
		authed.Use(middleware.Auth(tm))
		{
			authed.GET("/auth/me", ctrl.GetMeHandler)

			groups := authed.Group("/groups")
			groups.GET("", ctrl.ListGroupsHandler)
			groups.POST("", ctrl.CreateGroupHandler)
			groups.PUT("", ctrl.UpdateGroupHandler)
			groups.DELETE("", ctrl.DeleteGroupHandler)

			questions := authed.Group("/questions")
			questions.GET("", ctrl.ListQuestionsHandler)
			questions.GET("/:id", ctrl.GetQuestionHandler)
			questions.POST("", ctrl.CreateQuestionHandler)
			questions.PUT("", ctrl.UpdateQuestionHandler)
			questions.DELETE("", ctrl.DeleteQuestionHandler)

			authed.POST("/answers", ctrl.CreateAnswerHandler)

			likes := authed.Group("/likes")
			likes.GET("/check", ctrl.CheckLikeHandler)
			likes.POST("", ctrl.ToggleLikeHandler)
		}
	}
}

// respondError translates the service error taxonomy onto HTTP statuses.
// Not-found and not-owner are the same 404 on purpose.
func respondError(c *gin.Context, err error, fallback string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: verr.Message})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: fallback})
	case errors.Is(err, service.ErrEmailDomainNotAllowed):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Email domain is not allowed"})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error"})
	}
}

func currentUserID(c *gin.Context) (uint, bool) {
	id, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
	}
	return id, ok
}
