package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tieubaoca/csbot-be/service"
	"github.com/tieubaoca/csbot-be/types"
)

type SpeechHandler struct {
	speechService *service.SpeechService
}

func NewSpeechHandler(speechService *service.SpeechService) *SpeechHandler {
	return &SpeechHandler{
		speechService: speechService,
	}
}

// HandleSpeech returns the synthesized audio as a WAV download.
func (h *SpeechHandler) HandleSpeech(c *gin.Context) {
	var req types.SpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "invalid request body"})
		return
	}

	audio, err := h.speechService.Synthesize(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, service.ErrTextRequired) {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="speech.wav"`)
	c.Data(http.StatusOK, "audio/wav", audio)
}
