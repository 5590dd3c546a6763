package models

// OSMLocation is a geocoded place returned by Nominatim.
type OSMLocation struct {
	DisplayName string            `json:"display_name"`
	Latitude    float64           `json:"latitude"`
	Longitude   float64           `json:"longitude"`
	Address     map[string]string `json:"address,omitempty"`
}

// OSMAddress carries the structured address tags of an OSM element.
type OSMAddress struct {
	Street      string `json:"street,omitempty"`
	HouseNumber string `json:"housenumber,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Postcode    string `json:"postcode,omitempty"`
	Country     string `json:"country,omitempty"`
}

// OSMContact carries the contact tags of an OSM element.
type OSMContact struct {
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
	Email   string `json:"email,omitempty"`
}

// OSMAmenities summarizes the amenity tags of an OSM element.
type OSMAmenities struct {
	Internet   bool `json:"internet"`
	Wheelchair bool `json:"wheelchair"`
	Parking    bool `json:"parking"`
}

// OSMAccommodation is one accommodation found around a geocoded center.
type OSMAccommodation struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Type      string       `json:"type"`
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	Address   OSMAddress   `json:"address"`
	Contact   OSMContact   `json:"contact"`
	Amenities OSMAmenities `json:"amenities"`
}

// OSMSearchResult is the response envelope of an accommodation search.
type OSMSearchResult struct {
	Success      bool               `json:"success"`
	Message      string             `json:"message,omitempty"`
	Location     *OSMLocation       `json:"location,omitempty"`
	RadiusKm     float64            `json:"search_radius_km"`
	TotalResults int                `json:"total_results"`
	Results      []OSMAccommodation `json:"results"`
}
