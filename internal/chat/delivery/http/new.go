package http

import (
	"github.com/gin-gonic/gin"

	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/chat"
	"github.com/MervynChew/Grab-Voice-AI-Chat/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	Transcribe(c *gin.Context)
	UpdateKnowledge(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
