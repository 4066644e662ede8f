package weather

import (
	"strings"
	"time"

	"weatherify/internal/providers/openmeteo"
	"weatherify/internal/types"
	apperrors "weatherify/pkg/errors"
)

// Provider timestamps carry no offset; they are already local to the queried
// coordinate and are formatted verbatim, without timezone conversion.
const (
	providerDateLayout = "2006-01-02"
	providerTimeLayout = "2006-01-02T15:04"
)

func mapCurrent(resp *openmeteo.ForecastAPIResponse) (*types.CurrentConditions, error) {
	if resp.CurrentWeather == nil {
		return nil, apperrors.NewDecodeError("response missing current_weather block", nil)
	}

	current := &types.CurrentConditions{
		Temperature: resp.CurrentWeather.Temperature,
		Condition:   types.ConditionFromCode(resp.CurrentWeather.WeatherCode),
	}

	// Today's min/max ride along in the daily block when present.
	if resp.Daily != nil {
		if len(resp.Daily.Temperature2mMin) > 0 {
			current.MinTemperature = resp.Daily.Temperature2mMin[0]
		}
		if len(resp.Daily.Temperature2mMax) > 0 {
			current.MaxTemperature = resp.Daily.Temperature2mMax[0]
		}
	}

	return current, nil
}

func mapDaily(resp *openmeteo.ForecastAPIResponse) ([]types.DayForecast, bool, error) {
	daily := resp.Daily
	if daily == nil {
		return nil, false, apperrors.NewDecodeError("response missing daily block", nil)
	}
	if len(daily.Time) == 0 {
		return nil, false, apperrors.NewPartialDataError("daily series has no time axis")
	}

	n, truncated := alignedLen(
		len(daily.Time),
		len(daily.Temperature2mMax),
		len(daily.Temperature2mMin),
		len(daily.PrecipitationProbabilityMax),
		len(daily.WeatherCode),
	)
	if n == 0 {
		return nil, truncated, apperrors.NewPartialDataError("daily series arrays are empty")
	}

	days := make([]types.DayForecast, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, types.DayForecast{
			DayLabel:            dayLabel(daily.Time[i]),
			Condition:           types.ConditionFromCode(daily.WeatherCode[i]),
			MaxTemperature:      daily.Temperature2mMax[i],
			MinTemperature:      daily.Temperature2mMin[i],
			PrecipitationChance: daily.PrecipitationProbabilityMax[i],
		})
	}

	return days, truncated, nil
}

func mapHourly(resp *openmeteo.ForecastAPIResponse) ([]types.HourForecast, bool, error) {
	hourly := resp.Hourly
	if hourly == nil {
		return nil, false, apperrors.NewDecodeError("response missing hourly block", nil)
	}
	if len(hourly.Time) == 0 {
		return nil, false, apperrors.NewPartialDataError("hourly series has no time axis")
	}

	// Lengths are capped before alignment so arrays that diverge only beyond
	// the hourly cap are not reported as mismatched.
	n, truncated := alignedLen(
		min(len(hourly.Time), MaxHourlyEntries),
		min(len(hourly.Temperature2m), MaxHourlyEntries),
		min(len(hourly.WeatherCode), MaxHourlyEntries),
		min(len(hourly.PrecipitationProbability), MaxHourlyEntries),
	)
	if n == 0 {
		return nil, truncated, apperrors.NewPartialDataError("hourly series arrays are empty")
	}

	hours := make([]types.HourForecast, 0, n)
	for i := 0; i < n; i++ {
		hours = append(hours, types.HourForecast{
			HourLabel:           hourLabel(hourly.Time[i]),
			Condition:           types.ConditionFromCode(hourly.WeatherCode[i]),
			Temperature:         hourly.Temperature2m[i],
			PrecipitationChance: hourly.PrecipitationProbability[i],
		})
	}

	return hours, truncated, nil
}

// alignedLen returns the shortest of the given series lengths so indexing
// never runs past the end of a short array, and reports whether any array had
// to be truncated to match.
func alignedLen(lengths ...int) (int, bool) {
	n := lengths[0]
	truncated := false
	for _, l := range lengths[1:] {
		if l != n {
			truncated = true
		}
		if l < n {
			n = l
		}
	}
	return n, truncated
}

// dayLabel renders a provider calendar date as a 3-letter uppercase weekday
// abbreviation, e.g. "MON".
func dayLabel(date string) string {
	t, err := time.Parse(providerDateLayout, date)
	if err != nil {
		return "Unknown"
	}
	return strings.ToUpper(t.Format("Mon"))
}

// hourLabel renders a provider timestamp on a 12-hour clock with an AM/PM
// marker, e.g. "2 PM". Unparseable values pass through verbatim.
func hourLabel(timestamp string) string {
	t, err := time.Parse(providerTimeLayout, timestamp)
	if err != nil {
		return timestamp
	}
	return t.Format("3 PM")
}
