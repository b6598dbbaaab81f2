package model

// Order is a deliverable order offered to delivery drivers.
// Entries are loaded once at startup and never mutated by request handling.
type Order struct {
	ID              int      `mapstructure:"id" json:"id"`
	PickupLocation  string   `mapstructure:"pickup_location" json:"pickup_location"`
	DeliverTo       string   `mapstructure:"deliver_to" json:"deliver_to"`
	Reward          float64  `mapstructure:"reward" json:"reward"`
	TimeEstimateMin int      `mapstructure:"time_estimate_min" json:"time_estimate_min"`
	Traffic         Traffic  `mapstructure:"traffic" json:"traffic"`
	Priority        Priority `mapstructure:"priority" json:"priority"`
}

// Ride is a ride request offered to ride-hailing drivers.
// Rides and orders use distinct id numbering spaces.
type Ride struct {
	ID              int     `mapstructure:"id" json:"id"`
	PickupLocation  string  `mapstructure:"pickup_location" json:"pickup_location"`
	Destination     string  `mapstructure:"destination" json:"destination"`
	EstimatedFare   float64 `mapstructure:"estimated_fare" json:"estimated_fare"`
	TimeEstimateMin int     `mapstructure:"time_estimate_min" json:"time_estimate_min"`
	PassengerRating float64 `mapstructure:"passenger_rating" json:"passenger_rating"`
	Traffic         Traffic `mapstructure:"traffic" json:"traffic"`
}
