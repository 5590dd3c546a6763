package search

import (
	"strings"

	"nestfind/models"
)

// containsFold reports whether needle appears anywhere in haystack,
// case-insensitively.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// matchesLocation is the generic location filter: an OR of the substring
// test across address, city, state, zipcode and college name.
func matchesLocation(p models.Property, location string) bool {
	return containsFold(p.Address, location) ||
		containsFold(p.City, location) ||
		containsFold(p.State, location) ||
		containsFold(p.Zipcode, location) ||
		containsFold(p.CollegeName, location)
}

// MatchesFilters evaluates the constraint bundle against one listing.
// Constraints are independent and ANDed; an absent constraint always
// passes. The one exception is the gender filter, which widens to accept
// listings with an "any" policy.
func MatchesFilters(p models.Property, f models.SearchFilters) bool {
	// Availability is required unless explicitly overridden.
	if f.IsAvailable == nil {
		if !p.IsAvailable {
			return false
		}
	} else if p.IsAvailable != *f.IsAvailable {
		return false
	}

	if f.PropertyType != "" && p.PropertyType != f.PropertyType {
		return false
	}
	if f.RoomType != "" && p.RoomType != f.RoomType {
		return false
	}
	if f.Gender != "" && p.Gender != f.Gender && p.Gender != models.GenderAny {
		return false
	}
	if f.FoodFacility != "" && p.FoodFacility != f.FoodFacility {
		return false
	}

	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinBedrooms != nil && (p.Bedrooms == nil || *p.Bedrooms < *f.MinBedrooms) {
		return false
	}
	if f.MinBathrooms != nil && (p.Bathrooms == nil || *p.Bathrooms < *f.MinBathrooms) {
		return false
	}
	if f.MaxCollegeDistance != nil && (p.CollegeDistanceKm == nil || *p.CollegeDistanceKm > *f.MaxCollegeDistance) {
		return false
	}

	if f.Location != "" && !matchesLocation(p, f.Location) {
		return false
	}
	if f.City != "" && !containsFold(p.City, f.City) {
		return false
	}
	if f.State != "" && !containsFold(p.State, f.State) {
		return false
	}
	if f.Zipcode != "" && !containsFold(p.Zipcode, f.Zipcode) {
		return false
	}
	if f.CollegeName != "" && !containsFold(p.CollegeName, f.CollegeName) {
		return false
	}

	// Amenity filters only narrow when requested true.
	amenities := []struct {
		want *bool
		have bool
	}{
		{f.HasWifi, p.HasWifi},
		{f.HasAC, p.HasAC},
		{f.HasParking, p.HasParking},
		{f.HasTV, p.HasTV},
		{f.HasKitchen, p.HasKitchen},
		{f.HasWashingMachine, p.HasWashingMachine},
		{f.HasGym, p.HasGym},
		{f.HasStudyRoom, p.HasStudyRoom},
		{f.HasMess, p.HasMess},
		{f.HasLaundry, p.HasLaundry},
		{f.HasHotWater, p.HasHotWater},
	}
	for _, a := range amenities {
		if a.want != nil && *a.want && !a.have {
			return false
		}
	}

	return true
}
