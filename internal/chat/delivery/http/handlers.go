package http

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/chat"
	"github.com/MervynChew/Grab-Voice-AI-Chat/pkg/response"
)

// maxAudioBytes caps transcription uploads at 10 MiB.
const maxAudioBytes = 10 << 20

// Chat godoc
// @Summary     Process a driver message
// @Description Routes a natural-language message to a deterministic handler or the generative fallback and returns the reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message, driver type and recent history"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ProcessMessage(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessMessage: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// Transcribe godoc
// @Summary     Transcribe an audio recording
// @Description Accepts a multipart audio upload with an optional language hint and returns its transcription.
// @Tags        Chat
// @Accept      multipart/form-data
// @Produce     json
// @Param       file     formData file   true  "Audio recording"
// @Param       language formData string false "Language hint (e.g. en-US)"
// @Success     200 {object} transcribeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Transcription failed"
// @Router      /api/v1/transcribe [POST]
func (h *handler) Transcribe(c *gin.Context) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	if fileHeader.Size > maxAudioBytes {
		response.Error(c, h.mapError(chat.ErrAudioTooLarge), nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Transcribe(ctx, chat.TranscribeInput{
		Audio:        audio,
		LanguageHint: c.PostForm("language"),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Transcribe: %v", err)
		response.InternalError(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTranscribeResp(output))
}

// UpdateKnowledge godoc
// @Summary     Update the knowledge base
// @Description Administrative operation: sets a key/value inside an existing mapping category.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       body body updateKnowledgeReq true "Category, key and value"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Unknown category or category is not a mapping"
// @Router      /api/v1/admin/knowledge [PUT]
func (h *handler) UpdateKnowledge(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateKnowledgeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.UpdateKnowledge(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.UpdateKnowledge: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, gin.H{"updated": true})
}
