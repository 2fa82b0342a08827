package controller

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/lshigami/Quokka/internal/dto"
)

// UploadAudioHandler godoc
// @Summary Upload an audio answer recording
// @Description Streams the uploaded buffer to the media host and returns the durable URL to attach to an answer.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Audio file"
// @Param questionId formData string true "Question the recording answers"
// @Success 200 {object} dto.UploadAudioResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /upload/audio [post]
func (ctrl *Controller) UploadAudioHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "No audio file provided"})
		return
	}
	questionID := c.PostForm("questionId")
	if questionID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Question ID is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Msg("Failed to open uploaded audio")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to upload audio file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read uploaded audio")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to upload audio file"})
		return
	}

	publicID := fmt.Sprintf("answer-%s-%s", questionID, uuid.NewString())
	result, err := ctrl.uploader.UploadAudio(c.Request.Context(), data, publicID)
	if err != nil {
		log.Error().Err(err).Str("publicID", publicID).Msg("Audio upload failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to upload audio file"})
		return
	}

	c.JSON(http.StatusOK, dto.UploadAudioResponse{
		AudioURL: result.SecureURL,
		PublicID: result.PublicID,
		Message:  "Audio uploaded successfully to Cloudinary",
	})
}
