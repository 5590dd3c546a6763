package models

import (
	"fmt"
	"time"
)

// PropertyType classifies a listing.
type PropertyType string

const (
	PropertyTypePG        PropertyType = "pg"
	PropertyTypeHostel    PropertyType = "hostel"
	PropertyTypeFlat      PropertyType = "flat"
	PropertyTypeRoom      PropertyType = "room"
	PropertyTypeApartment PropertyType = "apartment"
)

func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypePG, PropertyTypeHostel, PropertyTypeFlat, PropertyTypeRoom, PropertyTypeApartment:
		return true
	}
	return false
}

// RoomType describes the room arrangement for PGs and hostels.
type RoomType string

const (
	RoomTypeSingle    RoomType = "single"
	RoomTypeShared    RoomType = "shared"
	RoomTypeDormitory RoomType = "dormitory"
)

func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeShared, RoomTypeDormitory:
		return true
	}
	return false
}

// GenderPreference is the occupant-gender policy of a listing.
type GenderPreference string

const (
	GenderMale   GenderPreference = "male"
	GenderFemale GenderPreference = "female"
	GenderAny    GenderPreference = "any"
)

func (g GenderPreference) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderAny:
		return true
	}
	return false
}

// FoodFacility is the meal arrangement offered by a listing.
type FoodFacility string

const (
	FoodNone    FoodFacility = "none"
	FoodMess    FoodFacility = "mess"
	FoodKitchen FoodFacility = "kitchen"
	FoodBoth    FoodFacility = "both"
)

func (f FoodFacility) Valid() bool {
	switch f {
	case FoodNone, FoodMess, FoodKitchen, FoodBoth:
		return true
	}
	return false
}

// Property is a rental/PG listing. Location is stored as a GeoJSON point
// backed by a 2dsphere index; latitude/longitude are derived fields kept
// for the response shape.
type Property struct {
	ID           int64        `bson:"id" json:"id"`
	Title        string       `bson:"title" json:"title"`
	Description  string       `bson:"description" json:"description"`
	PropertyType PropertyType `bson:"property_type" json:"property_type"`
	Address      string       `bson:"address" json:"address"`
	City         string       `bson:"city" json:"city"`
	State        string       `bson:"state" json:"state"`
	Zipcode      string       `bson:"zipcode" json:"zipcode"`

	LocationGeo GeoPoint `bson:"location_geo" json:"-"`
	Latitude    float64  `bson:"-" json:"latitude"`
	Longitude   float64  `bson:"-" json:"longitude"`

	Price     float64 `bson:"price" json:"price"`
	PriceType string  `bson:"price_type" json:"price_type"`
	Bedrooms  *int    `bson:"bedrooms,omitempty" json:"bedrooms"`
	Bathrooms *int    `bson:"bathrooms,omitempty" json:"bathrooms"`

	// Student-focused details.
	RoomType          RoomType         `bson:"room_type,omitempty" json:"room_type"`
	Gender            GenderPreference `bson:"gender,omitempty" json:"gender"`
	FoodFacility      FoodFacility     `bson:"food_facility,omitempty" json:"food_facility"`
	CollegeName       string           `bson:"college_name,omitempty" json:"college_name"`
	CollegeDistanceKm *float64         `bson:"college_distance_km,omitempty" json:"college_distance_km"`

	// Amenities.
	HasWifi           bool `bson:"has_wifi" json:"has_wifi"`
	HasAC             bool `bson:"has_ac" json:"has_ac"`
	HasParking        bool `bson:"has_parking" json:"has_parking"`
	HasTV             bool `bson:"has_tv" json:"has_tv"`
	HasKitchen        bool `bson:"has_kitchen" json:"has_kitchen"`
	HasWashingMachine bool `bson:"has_washing_machine" json:"has_washing_machine"`
	HasGym            bool `bson:"has_gym" json:"has_gym"`
	HasStudyRoom      bool `bson:"has_study_room" json:"has_study_room"`
	HasMess           bool `bson:"has_mess" json:"has_mess"`
	HasLaundry        bool `bson:"has_laundry" json:"has_laundry"`
	HasHotWater       bool `bson:"has_hot_water" json:"has_hot_water"`

	// Contact information.
	ContactName  string `bson:"contact_name" json:"contact_name"`
	ContactPhone string `bson:"contact_phone" json:"contact_phone"`
	ContactEmail string `bson:"contact_email" json:"contact_email"`

	MainImageURL string `bson:"main_image_url" json:"main_image_url"`

	OwnerID int64 `bson:"owner_id" json:"owner_id"`

	IsAvailable bool `bson:"is_available" json:"is_available"`
	IsVerified  bool `bson:"is_verified" json:"is_verified"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// PropertyWithDistance decorates a listing with its distance from a
// search center, in kilometers.
type PropertyWithDistance struct {
	Property   `bson:",inline"`
	DistanceKm float64 `bson:"distance_km" json:"distance_km"`
}

// PropertyCreate is the payload for creating a listing.
type PropertyCreate struct {
	Title        string       `json:"title" binding:"required"`
	Description  string       `json:"description"`
	PropertyType PropertyType `json:"property_type" binding:"required"`
	Address      string       `json:"address" binding:"required"`
	City         string       `json:"city" binding:"required"`
	State        string       `json:"state"`
	Zipcode      string       `json:"zipcode"`
	Latitude     float64      `json:"latitude" binding:"required"`
	Longitude    float64      `json:"longitude" binding:"required"`
	Price        float64      `json:"price" binding:"required"`
	PriceType    string       `json:"price_type"`
	Bedrooms     *int         `json:"bedrooms"`
	Bathrooms    *int         `json:"bathrooms"`

	RoomType          RoomType         `json:"room_type"`
	Gender            GenderPreference `json:"gender"`
	FoodFacility      FoodFacility     `json:"food_facility"`
	CollegeName       string           `json:"college_name"`
	CollegeDistanceKm *float64         `json:"college_distance_km"`

	HasWifi           bool `json:"has_wifi"`
	HasAC             bool `json:"has_ac"`
	HasParking        bool `json:"has_parking"`
	HasTV             bool `json:"has_tv"`
	HasKitchen        bool `json:"has_kitchen"`
	HasWashingMachine bool `json:"has_washing_machine"`
	HasGym            bool `json:"has_gym"`
	HasStudyRoom      bool `json:"has_study_room"`
	HasMess           bool `json:"has_mess"`
	HasLaundry        bool `json:"has_laundry"`
	HasHotWater       bool `json:"has_hot_water"`

	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email"`
	MainImageURL string `json:"main_image_url"`
}

// Validate rejects malformed listing payloads with a specific reason.
func (in PropertyCreate) Validate() error {
	if !in.PropertyType.Valid() {
		return fmt.Errorf("invalid property_type %q", in.PropertyType)
	}
	if in.RoomType != "" && !in.RoomType.Valid() {
		return fmt.Errorf("invalid room_type %q", in.RoomType)
	}
	if in.Gender != "" && !in.Gender.Valid() {
		return fmt.Errorf("invalid gender %q", in.Gender)
	}
	if in.FoodFacility != "" && !in.FoodFacility.Valid() {
		return fmt.Errorf("invalid food_facility %q", in.FoodFacility)
	}
	if in.Price < 0 {
		return fmt.Errorf("price must be non-negative")
	}
	if in.CollegeDistanceKm != nil && *in.CollegeDistanceKm < 0 {
		return fmt.Errorf("college_distance_km must be non-negative")
	}
	if in.Latitude < -90 || in.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", in.Latitude)
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", in.Longitude)
	}
	return nil
}

// PropertyUpdate is a partial update; nil fields are left untouched.
type PropertyUpdate struct {
	Title        *string       `json:"title"`
	Description  *string       `json:"description"`
	PropertyType *PropertyType `json:"property_type"`
	Address      *string       `json:"address"`
	City         *string       `json:"city"`
	State        *string       `json:"state"`
	Zipcode      *string       `json:"zipcode"`
	Latitude     *float64      `json:"latitude"`
	Longitude    *float64      `json:"longitude"`
	Price        *float64      `json:"price"`
	PriceType    *string       `json:"price_type"`
	Bedrooms     *int          `json:"bedrooms"`
	Bathrooms    *int          `json:"bathrooms"`

	RoomType          *RoomType         `json:"room_type"`
	Gender            *GenderPreference `json:"gender"`
	FoodFacility      *FoodFacility     `json:"food_facility"`
	CollegeName       *string           `json:"college_name"`
	CollegeDistanceKm *float64          `json:"college_distance_km"`

	HasWifi           *bool `json:"has_wifi"`
	HasAC             *bool `json:"has_ac"`
	HasParking        *bool `json:"has_parking"`
	HasTV             *bool `json:"has_tv"`
	HasKitchen        *bool `json:"has_kitchen"`
	HasWashingMachine *bool `json:"has_washing_machine"`
	HasGym            *bool `json:"has_gym"`
	HasStudyRoom      *bool `json:"has_study_room"`
	HasMess           *bool `json:"has_mess"`
	HasLaundry        *bool `json:"has_laundry"`
	HasHotWater       *bool `json:"has_hot_water"`

	ContactName  *string `json:"contact_name"`
	ContactPhone *string `json:"contact_phone"`
	ContactEmail *string `json:"contact_email"`
	MainImageURL *string `json:"main_image_url"`

	IsAvailable *bool `json:"is_available"`
}

// Validate rejects malformed update payloads.
func (in PropertyUpdate) Validate() error {
	if in.PropertyType != nil && !in.PropertyType.Valid() {
		return fmt.Errorf("invalid property_type %q", *in.PropertyType)
	}
	if in.RoomType != nil && *in.RoomType != "" && !in.RoomType.Valid() {
		return fmt.Errorf("invalid room_type %q", *in.RoomType)
	}
	if in.Gender != nil && *in.Gender != "" && !in.Gender.Valid() {
		return fmt.Errorf("invalid gender %q", *in.Gender)
	}
	if in.FoodFacility != nil && *in.FoodFacility != "" && !in.FoodFacility.Valid() {
		return fmt.Errorf("invalid food_facility %q", *in.FoodFacility)
	}
	if in.Price != nil && *in.Price < 0 {
		return fmt.Errorf("price must be non-negative")
	}
	if in.Latitude != nil && (*in.Latitude < -90 || *in.Latitude > 90) {
		return fmt.Errorf("latitude %v out of range [-90, 90]", *in.Latitude)
	}
	if in.Longitude != nil && (*in.Longitude < -180 || *in.Longitude > 180) {
		return fmt.Errorf("longitude %v out of range [-180, 180]", *in.Longitude)
	}
	return nil
}
