package catalog

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load reads the knowledge base file (yaml) and validates it.
// A broken catalog is a startup configuration error and must abort boot.
func Load(path string) (Data, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Data{}, fmt.Errorf("error reading catalog file: %w", err)
	}

	var data Data
	if err := v.Unmarshal(&data); err != nil {
		return Data{}, fmt.Errorf("error parsing catalog file: %w", err)
	}

	if err := validate(data); err != nil {
		return Data{}, err
	}
	return data, nil
}

func validate(data Data) error {
	orderIDs := make(map[int]bool, len(data.Orders))
	for _, o := range data.Orders {
		if o.ID <= 0 {
			return fmt.Errorf("order id %d: must be a positive integer", o.ID)
		}
		if orderIDs[o.ID] {
			return fmt.Errorf("order id %d: duplicate", o.ID)
		}
		orderIDs[o.ID] = true
		if o.Reward < 0 {
			return fmt.Errorf("order id %d: reward must be non-negative", o.ID)
		}
		if o.TimeEstimateMin <= 0 {
			return fmt.Errorf("order id %d: time estimate must be positive", o.ID)
		}
	}

	rideIDs := make(map[int]bool, len(data.Rides))
	for _, r := range data.Rides {
		if r.ID <= 0 {
			return fmt.Errorf("ride id %d: must be a positive integer", r.ID)
		}
		if rideIDs[r.ID] {
			return fmt.Errorf("ride id %d: duplicate", r.ID)
		}
		rideIDs[r.ID] = true
		if r.TimeEstimateMin <= 0 {
			return fmt.Errorf("ride id %d: time estimate must be positive", r.ID)
		}
		if r.PassengerRating < 0 || r.PassengerRating > 5 {
			return fmt.Errorf("ride id %d: passenger rating must be within 0.0-5.0", r.ID)
		}
	}

	return nil
}
