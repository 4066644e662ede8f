package openstreetmap

type ReverseAPIResponse struct {
	PlaceId     int    `json:"place_id"`
	Licence     string `json:"licence"`
	OsmType     string `json:"osm_type"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Addresstype string `json:"addresstype"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		County      string `json:"county"`
		State       string `json:"state"`
		Country     string `json:"country"`
		CountryCode string `json:"country_code"`
	} `json:"address"`
}

// Locality returns the best human-readable locality name in the response,
// falling back through the address hierarchy. An empty string means the
// provider supplied no usable name.
func (r *ReverseAPIResponse) Locality() string {
	switch {
	case r.Address.City != "":
		return r.Address.City
	case r.Address.Town != "":
		return r.Address.Town
	case r.Address.Village != "":
		return r.Address.Village
	default:
		return r.Name
	}
}
