package types

import "testing"

func TestConditionFromCode(t *testing.T) {
	tests := []struct {
		name     string
		codes    []int
		expected Condition
	}{
		{
			name:     "clear sky",
			codes:    []int{0},
			expected: ConditionClearSky,
		},
		{
			name:     "partly cloudy",
			codes:    []int{1, 2, 3},
			expected: ConditionPartlyCloudy,
		},
		{
			name:     "foggy",
			codes:    []int{45, 48},
			expected: ConditionFoggy,
		},
		{
			name:     "drizzle",
			codes:    []int{51, 53, 55},
			expected: ConditionDrizzle,
		},
		{
			name:     "rainy",
			codes:    []int{61, 63, 65},
			expected: ConditionRainy,
		},
		{
			name:     "snowy",
			codes:    []int{71, 73, 75},
			expected: ConditionSnowy,
		},
		{
			name:     "rain showers",
			codes:    []int{80, 81, 82},
			expected: ConditionRainShowers,
		},
		{
			name:     "thunderstorm",
			codes:    []int{95, 96, 99},
			expected: ConditionThunderstorm,
		},
		{
			name:     "unmapped codes",
			codes:    []int{-1, 4, 44, 50, 56, 66, 77, 85, 100, 9999},
			expected: ConditionUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, code := range tt.codes {
				if got := ConditionFromCode(code); got != tt.expected {
					t.Errorf("ConditionFromCode(%d) = %q, want %q", code, got, tt.expected)
				}
			}
		})
	}
}
