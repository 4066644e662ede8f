package types

// CurrentConditions describes the weather right now at a location. It is
// refreshed wholesale on every fetch, never partially patched.
type CurrentConditions struct {
	Temperature    float64   `json:"temperature"`
	MinTemperature float64   `json:"min_temperature"`
	MaxTemperature float64   `json:"max_temperature"`
	Condition      Condition `json:"condition"`
}

// DayForecast is one entry of the multi-day series. Index 0 is today or the
// next available day, in provider order.
type DayForecast struct {
	DayLabel            string    `json:"day_label" example:"MON"`
	Condition           Condition `json:"condition"`
	MaxTemperature      float64   `json:"max_temperature"`
	MinTemperature      float64   `json:"min_temperature"`
	PrecipitationChance int       `json:"precipitation_chance"`
}

// HourForecast is one entry of the hourly series, in provider order.
type HourForecast struct {
	HourLabel           string    `json:"hour_label" example:"2 PM"`
	Condition           Condition `json:"condition"`
	Temperature         float64   `json:"temperature"`
	PrecipitationChance int       `json:"precipitation_chance"`
}
