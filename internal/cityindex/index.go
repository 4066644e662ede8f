package cityindex

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"strings"

	"weatherify/internal/types"
)

// Index holds the static city reference list used for autocomplete. The list
// is loaded once and read-only afterwards, so it can be filtered concurrently
// without synchronization.
type Index struct {
	cities []types.City
	logger *slog.Logger
}

// Load reads the city reference file at path. The file is a comma-delimited
// table with a header row and columns (name, country_code, id); quoted fields
// may contain embedded commas. A missing or malformed file yields an empty
// index rather than an error: the application runs without autocomplete.
func Load(path string, logger *slog.Logger) *Index {
	logger = logger.With("component", "city-index")

	f, err := os.Open(path)
	if err != nil {
		logger.Warn("city reference file unavailable, autocomplete disabled", "path", path, "error", err)
		return &Index{logger: logger}
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	idx, err := Parse(f, logger)
	if err != nil {
		logger.Warn("failed to parse city reference file, autocomplete disabled", "path", path, "error", err)
		return &Index{logger: logger}
	}
	return idx
}

// Parse reads the city reference table from r. Line endings may be \n, \r\n
// or bare \r and are normalized before row-splitting.
func Parse(r io.Reader, logger *slog.Logger) (*Index, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	normalized := strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(string(raw))

	reader := csv.NewReader(strings.NewReader(normalized))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	var cities []types.City
	for i, record := range records {
		if i == 0 {
			// Header row.
			continue
		}
		if len(record) < 3 {
			logger.Warn("skipping malformed city row", "row", i, "fields", len(record))
			continue
		}
		cities = append(cities, types.City{
			Name:        strings.TrimSpace(record[0]),
			CountryCode: strings.TrimSpace(record[1]),
			ID:          strings.TrimSpace(record[2]),
		})
	}

	logger.Debug("loaded city reference list", "count", len(cities))

	return &Index{cities: cities, logger: logger}, nil
}

// All returns the full city list in source order.
func (idx *Index) All() []types.City {
	return idx.cities
}

// Filter returns the cities whose name contains query, case-insensitively.
// An empty query returns the full list. Result order follows source order.
func (idx *Index) Filter(query string) []types.City {
	if query == "" {
		return idx.cities
	}

	q := strings.ToLower(query)
	var matched []types.City
	for _, city := range idx.cities {
		if strings.Contains(strings.ToLower(city.Name), q) {
			matched = append(matched, city)
		}
	}
	return matched
}
