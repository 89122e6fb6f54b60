package model

type City struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Country           string  `json:"country"`
	PopulationDensity float64 `json:"populationDensity"`
}

// GetCityResult is the body of a successful city lookup.
type GetCityResult struct {
	City *City `json:"city"`
}
