package http

import (
	"github.com/gin-gonic/gin"

	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The chat and transcribe endpoints are rate limited per client; the
// administrative knowledge update is kept off the request-path routes.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw *middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
	rg.POST("/transcribe", mw.RateLimit(), h.Transcribe)

	admin := rg.Group("/admin")
	{
		admin.PUT("/knowledge", h.UpdateKnowledge)
	}
}
