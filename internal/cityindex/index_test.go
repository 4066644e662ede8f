package cityindex

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"weatherify/internal/types"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []types.City
		wantErr  bool
	}{
		{
			name:  "plain rows",
			input: "name,country_code,id\nAdelaide,AU,1\nLondon,GB,2\n",
			expected: []types.City{
				{Name: "Adelaide", CountryCode: "AU", ID: "1"},
				{Name: "London", CountryCode: "GB", ID: "2"},
			},
		},
		{
			name:  "quoted fields",
			input: "name,country_code,id\n\"São Paulo\",\"BR\",123\n",
			expected: []types.City{
				{Name: "São Paulo", CountryCode: "BR", ID: "123"},
			},
		},
		{
			name:  "quoted field with embedded comma",
			input: "name,country_code,id\n\"Washington, D.C.\",US,7\n",
			expected: []types.City{
				{Name: "Washington, D.C.", CountryCode: "US", ID: "7"},
			},
		},
		{
			name:     "header only",
			input:    "name,country_code,id\n",
			expected: nil,
		},
		{
			name:  "windows line endings",
			input: "name,country_code,id\r\nParis,FR,3\r\n",
			expected: []types.City{
				{Name: "Paris", CountryCode: "FR", ID: "3"},
			},
		},
		{
			name:  "bare carriage returns",
			input: "name,country_code,id\rTokyo,JP,4\rOsaka,JP,5",
			expected: []types.City{
				{Name: "Tokyo", CountryCode: "JP", ID: "4"},
				{Name: "Osaka", CountryCode: "JP", ID: "5"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := Parse(strings.NewReader(tt.input), discardLogger())
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse returned error: %v", err)
			}
			if diff := cmp.Diff(tt.expected, idx.All()); diff != "" {
				t.Errorf("cities mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	idx := Load("testdata/does-not-exist.csv", discardLogger())
	if got := len(idx.All()); got != 0 {
		t.Errorf("expected empty index for missing file, got %d cities", got)
	}
	if got := idx.Filter("anything"); len(got) != 0 {
		t.Errorf("expected no matches on empty index, got %d", len(got))
	}
}

func TestFilter(t *testing.T) {
	idx, err := Parse(strings.NewReader(
		"name,country_code,id\nLondon,GB,1\nLondonderry,GB,2\nParis,FR,3\nEast London,ZA,4\n",
	), discardLogger())
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	t.Run("empty query returns full list in source order", func(t *testing.T) {
		if diff := cmp.Diff(idx.All(), idx.Filter("")); diff != "" {
			t.Errorf("Filter(\"\") mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("case-insensitive substring match", func(t *testing.T) {
		got := idx.Filter("LON")
		want := []string{"London", "Londonderry", "East London"}
		if len(got) != len(want) {
			t.Fatalf("Filter(\"LON\") returned %d cities, want %d", len(got), len(want))
		}
		for i, city := range got {
			if city.Name != want[i] {
				t.Errorf("Filter(\"LON\")[%d].Name = %q, want %q", i, city.Name, want[i])
			}
		}
	})

	t.Run("no match", func(t *testing.T) {
		if got := idx.Filter("zzz"); len(got) != 0 {
			t.Errorf("expected no matches, got %d", len(got))
		}
	})
}
