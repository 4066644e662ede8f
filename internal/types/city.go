package types

// City is one entry of the static city reference list. Entries are loaded
// once at startup and read-only afterwards. Names are not unique; the same
// name may appear in multiple countries.
type City struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
}
