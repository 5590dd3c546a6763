package models

import (
	"fmt"
	"math"

	"nestfind/utils"
)

// SearchFilters is the canonical constraint bundle shared by every search
// caller. Each field is an independent predicate over a listing; absent
// fields impose no constraint. Amenity filters only narrow when true —
// an explicit false is indistinguishable from not specified.
type SearchFilters struct {
	PropertyType PropertyType     `form:"property_type" json:"property_type,omitempty"`
	RoomType     RoomType         `form:"room_type" json:"room_type,omitempty"`
	Gender       GenderPreference `form:"gender" json:"gender,omitempty"`
	FoodFacility FoodFacility     `form:"food_facility" json:"food_facility,omitempty"`

	MinPrice           *float64 `form:"min_price" json:"min_price,omitempty"`
	MaxPrice           *float64 `form:"max_price" json:"max_price,omitempty"`
	MinBedrooms        *int     `form:"bedrooms" json:"bedrooms,omitempty"`
	MinBathrooms       *int     `form:"bathrooms" json:"bathrooms,omitempty"`
	MaxCollegeDistance *float64 `form:"max_college_distance" json:"max_college_distance,omitempty"`

	// Case-insensitive substring matches. Location is an OR across
	// address, city, state, zipcode and college name.
	Location    string `form:"location" json:"location,omitempty"`
	City        string `form:"city" json:"city,omitempty"`
	State       string `form:"state" json:"state,omitempty"`
	Zipcode     string `form:"zipcode" json:"zipcode,omitempty"`
	CollegeName string `form:"college_name" json:"college_name,omitempty"`

	HasWifi           *bool `form:"has_wifi" json:"has_wifi,omitempty"`
	HasAC             *bool `form:"has_ac" json:"has_ac,omitempty"`
	HasParking        *bool `form:"has_parking" json:"has_parking,omitempty"`
	HasTV             *bool `form:"has_tv" json:"has_tv,omitempty"`
	HasKitchen        *bool `form:"has_kitchen" json:"has_kitchen,omitempty"`
	HasWashingMachine *bool `form:"has_washing_machine" json:"has_washing_machine,omitempty"`
	HasGym            *bool `form:"has_gym" json:"has_gym,omitempty"`
	HasStudyRoom      *bool `form:"has_study_room" json:"has_study_room,omitempty"`
	HasMess           *bool `form:"has_mess" json:"has_mess,omitempty"`
	HasLaundry        *bool `form:"has_laundry" json:"has_laundry,omitempty"`
	HasHotWater       *bool `form:"has_hot_water" json:"has_hot_water,omitempty"`

	// Availability defaults to requiring is_available = true; an explicit
	// value overrides the default.
	IsAvailable *bool `form:"is_available" json:"is_available,omitempty"`
}

// Validate rejects malformed filter values before any search runs.
func (f SearchFilters) Validate() error {
	if f.PropertyType != "" && !f.PropertyType.Valid() {
		return fmt.Errorf("invalid property_type %q", f.PropertyType)
	}
	if f.RoomType != "" && !f.RoomType.Valid() {
		return fmt.Errorf("invalid room_type %q", f.RoomType)
	}
	if f.Gender != "" && !f.Gender.Valid() {
		return fmt.Errorf("invalid gender %q", f.Gender)
	}
	if f.FoodFacility != "" && !f.FoodFacility.Valid() {
		return fmt.Errorf("invalid food_facility %q", f.FoodFacility)
	}
	if f.MinPrice != nil && *f.MinPrice < 0 {
		return fmt.Errorf("min_price must be non-negative")
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		return fmt.Errorf("max_price must be non-negative")
	}
	if f.MaxCollegeDistance != nil && *f.MaxCollegeDistance < 0 {
		return fmt.Errorf("max_college_distance must be non-negative")
	}
	return nil
}

// DefaultRadiusKm applies when a proximity search omits the radius.
const DefaultRadiusKm = 5.0

// DefaultLimit applies when a search omits the page size.
const DefaultLimit = 100

// SearchQuery is one search request: optional center plus radius, the
// filter bundle, and pagination.
type SearchQuery struct {
	Latitude  *float64 `form:"latitude" json:"latitude,omitempty"`
	Longitude *float64 `form:"longitude" json:"longitude,omitempty"`
	RadiusKm  *float64 `form:"radius_km" json:"radius_km,omitempty"`
	Skip      int      `form:"skip" json:"skip"`
	Limit     *int     `form:"limit" json:"limit,omitempty"`

	SearchFilters
}

// HasCenter reports whether the query carries a proximity center.
func (q SearchQuery) HasCenter() bool {
	return q.Latitude != nil && q.Longitude != nil
}

// Radius returns the query radius, defaulted when absent.
func (q SearchQuery) Radius() float64 {
	if q.RadiusKm == nil {
		return DefaultRadiusKm
	}
	return *q.RadiusKm
}

// PageLimit returns the page size, defaulted when absent.
func (q SearchQuery) PageLimit() int {
	if q.Limit == nil {
		return DefaultLimit
	}
	return *q.Limit
}

// Validate rejects malformed queries before orchestration. NaN slips
// past plain range comparisons, so coordinates go through the shared
// validator rather than being silently coerced into an empty result.
func (q SearchQuery) Validate() error {
	if (q.Latitude == nil) != (q.Longitude == nil) {
		return fmt.Errorf("latitude and longitude must be supplied together")
	}
	if q.HasCenter() {
		if err := utils.ValidateCoordinates(*q.Latitude, *q.Longitude); err != nil {
			return err
		}
	}
	if q.RadiusKm != nil && (math.IsNaN(*q.RadiusKm) || *q.RadiusKm < 0) {
		return fmt.Errorf("radius_km must be a non-negative number")
	}
	if q.Skip < 0 {
		return fmt.Errorf("skip must be non-negative")
	}
	if q.Limit != nil && *q.Limit < 0 {
		return fmt.Errorf("limit must be non-negative")
	}
	return q.SearchFilters.Validate()
}

// NearbyResult is one page of a proximity search, distance-ranked.
type NearbyResult struct {
	Total      int                    `json:"total"`
	Properties []PropertyWithDistance `json:"properties"`
	HasMore    bool                   `json:"has_more"`
}

// SearchResult is one page of a non-proximity search, price-ranked.
// Total counts the collection before filtering; FilteredCount after.
type SearchResult struct {
	Total         int64      `json:"total"`
	FilteredCount int        `json:"filtered_count"`
	Properties    []Property `json:"properties"`
	HasMore       bool       `json:"has_more"`
}
