package usecase

import (
	"time"

	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/catalog"
	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/chat"
	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/recommend"
	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/router"
	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/session"
	"github.com/MervynChew/Grab-Voice-AI-Chat/pkg/gemini"
	pkgLog "github.com/MervynChew/Grab-Voice-AI-Chat/pkg/log"
	"github.com/MervynChew/Grab-Voice-AI-Chat/pkg/speech"
)

type implUseCase struct {
	l           pkgLog.Logger
	llm         gemini.IGemini
	transcriber speech.Transcriber
	store       *catalog.Store
	fmtr        *recommend.Formatter
	router      router.Router
	sessions    *session.Store

	fallbackTimeout time.Duration
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	llm gemini.IGemini,
	transcriber speech.Transcriber,
	store *catalog.Store,
	fmtr *recommend.Formatter,
	rt router.Router,
	sessions *session.Store,
	fallbackTimeout time.Duration,
) *implUseCase {
	if fallbackTimeout <= 0 {
		fallbackTimeout = DefaultFallbackTimeout
	}
	return &implUseCase{
		l:               l,
		llm:             llm,
		transcriber:     transcriber,
		store:           store,
		fmtr:            fmtr,
		router:          rt,
		sessions:        sessions,
		fallbackTimeout: fallbackTimeout,
	}
}
