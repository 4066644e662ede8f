package types

// Condition is the semantic bucket for a WMO weather code emitted by the
// forecast provider.
type Condition string

const (
	ConditionClearSky     Condition = "Clear sky"
	ConditionPartlyCloudy Condition = "Partly cloudy"
	ConditionFoggy        Condition = "Foggy"
	ConditionDrizzle      Condition = "Drizzle"
	ConditionRainy        Condition = "Rainy"
	ConditionSnowy        Condition = "Snowy"
	ConditionRainShowers  Condition = "Rain showers"
	ConditionThunderstorm Condition = "Thunderstorm"
	ConditionUnknown      Condition = "Unknown"
)

// ConditionFromCode maps a provider weather code to its Condition. It is the
// single mapping shared by the current, daily and hourly fetch paths. Codes
// outside the known table map to ConditionUnknown.
func ConditionFromCode(code int) Condition {
	switch code {
	case 0:
		return ConditionClearSky
	case 1, 2, 3:
		return ConditionPartlyCloudy
	case 45, 48:
		return ConditionFoggy
	case 51, 53, 55:
		return ConditionDrizzle
	case 61, 63, 65:
		return ConditionRainy
	case 71, 73, 75:
		return ConditionSnowy
	case 80, 81, 82:
		return ConditionRainShowers
	case 95, 96, 99:
		return ConditionThunderstorm
	default:
		return ConditionUnknown
	}
}
