package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/model"
)

// Context renders the knowledge base into a text excerpt for the
// generative fallback prompt, scoped to the driver type's catalog space.
func (s *Store) Context(driverType model.DriverType) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b strings.Builder
	b.WriteString("Knowledge Base Information:\n\n")

	b.WriteString("General Information:\n")
	for _, key := range sortedKeys(s.generalInfo) {
		switch v := s.generalInfo[key].(type) {
		case []any:
			parts := make([]string, len(v))
			for i, item := range v {
				parts[i] = fmt.Sprint(item)
			}
			fmt.Fprintf(&b, "%s: %s\n", key, strings.Join(parts, ", "))
		case []string:
			fmt.Fprintf(&b, "%s: %s\n", key, strings.Join(v, ", "))
		default:
			fmt.Fprintf(&b, "%s: %v\n", key, v)
		}
	}

	b.WriteString("\nFrequently Asked Questions:\n")
	for _, q := range sortedStringKeys(s.faqs) {
		fmt.Fprintf(&b, "Q: %s\nA: %s\n", q, s.faqs[q])
	}

	switch driverType {
	case model.DriverTypeRide:
		b.WriteString("\nAvailable rides:\n")
		for _, r := range s.rides {
			fmt.Fprintf(&b, "Ride %d: %s to %s, fare RM%.2f, %d minutes, passenger rating %.1f, %s traffic\n",
				r.ID, r.PickupLocation, r.Destination, r.EstimatedFare, r.TimeEstimateMin, r.PassengerRating, r.Traffic)
		}
	case model.DriverTypeDelivery:
		b.WriteString("\nAvailable orders:\n")
		for _, o := range s.orders {
			fmt.Fprintf(&b, "Order %d: pick up at %s, deliver to %s, reward RM%.2f, %d minutes, %s traffic, %s priority\n",
				o.ID, o.PickupLocation, o.DeliverTo, o.Reward, o.TimeEstimateMin, o.Traffic, o.Priority)
		}
	}

	return b.String()
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedStringKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
