package model

import "strings"

// DriverType selects which catalog space and vocabulary a request sees.
type DriverType string

const (
	DriverTypeRide     DriverType = "ride"
	DriverTypeDelivery DriverType = "delivery"
	DriverTypeUnknown  DriverType = "unknown"
)

// ParseDriverType maps a request tag onto a DriverType.
// Anything unrecognized collapses to DriverTypeUnknown.
func ParseDriverType(s string) DriverType {
	switch DriverType(strings.ToLower(strings.TrimSpace(s))) {
	case DriverTypeRide:
		return DriverTypeRide
	case DriverTypeDelivery:
		return DriverTypeDelivery
	default:
		return DriverTypeUnknown
	}
}

// Traffic is the reported traffic condition on a route.
// The ordering light < moderate < heavy is part of the ranking contract.
type Traffic string

const (
	TrafficLight    Traffic = "light"
	TrafficModerate Traffic = "moderate"
	TrafficHeavy    Traffic = "heavy"
)

// Rank returns the fixed total order used when ranking by traffic.
// Unrecognized values sort with moderate.
func (t Traffic) Rank() int {
	switch t {
	case TrafficLight:
		return 1
	case TrafficModerate:
		return 2
	case TrafficHeavy:
		return 3
	default:
		return 2
	}
}

// Priority is the dispatch priority of an order.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// OrderPreference is the axis used to rank orders.
type OrderPreference string

const (
	OrderPrefReward  OrderPreference = "reward"
	OrderPrefTime    OrderPreference = "time"
	OrderPrefTraffic OrderPreference = "traffic"
	OrderPrefDefault OrderPreference = "default"
)

// RidePreference is the axis used to rank rides.
type RidePreference string

const (
	RidePrefFare    RidePreference = "fare"
	RidePrefTime    RidePreference = "time"
	RidePrefRating  RidePreference = "rating"
	RidePrefDefault RidePreference = "default"
)
