package catalog

import (
	"sync"

	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/model"
)

// Store holds the orders, rides and guideline templates visible to
// request handling. Reads are lock-free copies under RLock; the
// administrative Update path is the single writer.
type Store struct {
	mu          sync.RWMutex
	generalInfo map[string]any
	faqs        map[string]string
	guidelines  map[string]string
	orders      []model.Order
	rides       []model.Ride
}

// New creates a Store from loaded knowledge base data.
func New(data Data) *Store {
	s := &Store{
		generalInfo: data.GeneralInfo,
		faqs:        data.FAQs,
		guidelines:  data.Guidelines,
		orders:      data.Orders,
		rides:       data.Rides,
	}
	if s.generalInfo == nil {
		s.generalInfo = map[string]any{}
	}
	if s.faqs == nil {
		s.faqs = map[string]string{}
	}
	if s.guidelines == nil {
		s.guidelines = map[string]string{}
	}
	return s
}
