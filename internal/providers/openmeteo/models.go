package openmeteo

// GeocodingAPIResponse is the shape of the geocoding search endpoint.
type GeocodingAPIResponse struct {
	Results []GeocodingResult `json:"results"`
}

type GeocodingResult struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CountryCode string  `json:"country_code"`
}

// ForecastAPIResponse is the shape of the forecast endpoint. Only the blocks
// requested by a call are populated.
type ForecastAPIResponse struct {
	CurrentWeather *CurrentWeather `json:"current_weather"`
	Daily          *DailySeries    `json:"daily"`
	Hourly         *HourlySeries   `json:"hourly"`
}

type CurrentWeather struct {
	Temperature float64 `json:"temperature"`
	WeatherCode int     `json:"weathercode"`
}

type DailySeries struct {
	Time                        []string  `json:"time"`
	Temperature2mMax            []float64 `json:"temperature_2m_max"`
	Temperature2mMin            []float64 `json:"temperature_2m_min"`
	PrecipitationProbabilityMax []int     `json:"precipitation_probability_max"`
	WeatherCode                 []int     `json:"weathercode"`
}

type HourlySeries struct {
	Time                     []string  `json:"time"`
	Temperature2m            []float64 `json:"temperature_2m"`
	WeatherCode              []int     `json:"weathercode"`
	PrecipitationProbability []int     `json:"precipitation_probability"`
}
