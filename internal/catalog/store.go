package catalog

import (
	"strings"

	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/model"
)

// Orders returns a copy of all orders in catalog iteration order.
func (s *Store) Orders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Rides returns a copy of all rides in catalog iteration order.
func (s *Store) Rides() []model.Ride {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Ride, len(s.rides))
	copy(out, s.rides)
	return out
}

// Order looks up a single order by id.
func (s *Store) Order(id int) (model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return model.Order{}, ErrOrderNotFound
}

// Ride looks up a single ride by id.
func (s *Store) Ride(id int) (model.Ride, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.rides {
		if r.ID == id {
			return r, nil
		}
	}
	return model.Ride{}, ErrRideNotFound
}

// Guideline returns the raw guideline template for key, or "" when absent.
func (s *Store) Guideline(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.guidelines[key]
}

// RenderGuideline returns the guideline for key with every {placeholder}
// replaced from vars. A template that still contains a placeholder after
// substitution indicates a programming error and panics.
func (s *Store) RenderGuideline(key string, vars map[string]string) string {
	tmpl := s.Guideline(key)

	for name, value := range vars {
		tmpl = strings.ReplaceAll(tmpl, "{"+name+"}", value)
	}
	if i := strings.IndexByte(tmpl, '{'); i >= 0 && strings.IndexByte(tmpl[i:], '}') > 0 {
		panic("catalog: unresolved placeholder in guideline " + key)
	}
	return tmpl
}

// Update sets key to value inside the named knowledge base category.
// It succeeds only when the category exists and is itself a mapping.
// This is an administrative operation and must not run on the chat path.
func (s *Store) Update(category, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch category {
	case CategoryGeneralInfo:
		s.generalInfo[key] = value
	case CategoryFAQs:
		s.faqs[key] = value
	case CategoryGuidelines:
		s.guidelines[key] = value
	case "orders", "rides":
		// Present in the catalog but list-valued, not mappings.
		return ErrCategoryNotMapping
	default:
		return ErrUnknownCategory
	}
	return nil
}
