package property

import (
	"context"
	"fmt"
	"time"

	propertyRepo "nestfind/database/repository/property"
	"nestfind/models"
	"nestfind/services/search"

	"go.uber.org/zap"
)

// PropertyService owns the listing lifecycle: creation, owner-scoped
// mutation and soft deletion. It never hard-deletes.
type PropertyService interface {
	Create(ctx context.Context, in models.PropertyCreate, ownerID int64) (*models.Property, error)
	GetByID(ctx context.Context, id int64) (*models.Property, error)
	GetByOwner(ctx context.Context, ownerID int64) ([]models.Property, error)
	Update(ctx context.Context, id, ownerID int64, in models.PropertyUpdate) (*models.Property, error)
	SoftDelete(ctx context.Context, id, ownerID int64) error
}

// DefaultPropertyService implements PropertyService.
type DefaultPropertyService struct {
	Repo propertyRepo.PropertyRepository
}

// Create validates the payload and persists a new listing for the owner.
func (s *DefaultPropertyService) Create(ctx context.Context, in models.PropertyCreate, ownerID int64) (*models.Property, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &models.Property{
		Title:        in.Title,
		Description:  in.Description,
		PropertyType: in.PropertyType,
		Address:      in.Address,
		City:         in.City,
		State:        in.State,
		Zipcode:      in.Zipcode,
		LocationGeo:  models.NewGeoPoint(in.Latitude, in.Longitude),
		Price:        in.Price,
		PriceType:    in.PriceType,
		Bedrooms:     in.Bedrooms,
		Bathrooms:    in.Bathrooms,

		RoomType:          in.RoomType,
		Gender:            in.Gender,
		FoodFacility:      in.FoodFacility,
		CollegeName:       in.CollegeName,
		CollegeDistanceKm: in.CollegeDistanceKm,

		HasWifi:           in.HasWifi,
		HasAC:             in.HasAC,
		HasParking:        in.HasParking,
		HasTV:             in.HasTV,
		HasKitchen:        in.HasKitchen,
		HasWashingMachine: in.HasWashingMachine,
		HasGym:            in.HasGym,
		HasStudyRoom:      in.HasStudyRoom,
		HasMess:           in.HasMess,
		HasLaundry:        in.HasLaundry,
		HasHotWater:       in.HasHotWater,

		ContactName:  in.ContactName,
		ContactPhone: in.ContactPhone,
		ContactEmail: in.ContactEmail,
		MainImageURL: in.MainImageURL,

		OwnerID:     ownerID,
		IsAvailable: true,
		IsVerified:  false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}
	zap.L().Info("property created", zap.Int64("id", p.ID), zap.Int64("owner_id", ownerID))

	normalized := search.NormalizeProperty(*p)
	return &normalized, nil
}

// GetByID returns one listing, normalized.
func (s *DefaultPropertyService) GetByID(ctx context.Context, id int64) (*models.Property, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	normalized := search.NormalizeProperty(*p)
	return &normalized, nil
}

// GetByOwner returns the caller's listings, normalized.
func (s *DefaultPropertyService) GetByOwner(ctx context.Context, ownerID int64) ([]models.Property, error) {
	properties, err := s.Repo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return search.NormalizeProperties(properties), nil
}

// Update applies a partial update to an owned listing and stamps the
// update time.
func (s *DefaultPropertyService) Update(ctx context.Context, id, ownerID int64, in models.PropertyUpdate) (*models.Property, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	applyUpdate(p, in)
	p.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update property %d: %w", id, err)
	}

	normalized := search.NormalizeProperty(*p)
	return &normalized, nil
}

// SoftDelete marks an owned listing unavailable.
func (s *DefaultPropertyService) SoftDelete(ctx context.Context, id, ownerID int64) error {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.OwnerID != ownerID {
		return ErrNotOwner
	}
	if err := s.Repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	zap.L().Info("property soft-deleted", zap.Int64("id", id), zap.Int64("owner_id", ownerID))
	return nil
}

func applyUpdate(p *models.Property, in models.PropertyUpdate) {
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.PropertyType != nil {
		p.PropertyType = *in.PropertyType
	}
	if in.Address != nil {
		p.Address = *in.Address
	}
	if in.City != nil {
		p.City = *in.City
	}
	if in.State != nil {
		p.State = *in.State
	}
	if in.Zipcode != nil {
		p.Zipcode = *in.Zipcode
	}
	if in.Latitude != nil || in.Longitude != nil {
		lat := p.LocationGeo.Lat()
		lon := p.LocationGeo.Lon()
		if in.Latitude != nil {
			lat = *in.Latitude
		}
		if in.Longitude != nil {
			lon = *in.Longitude
		}
		p.LocationGeo = models.NewGeoPoint(lat, lon)
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.PriceType != nil {
		p.PriceType = *in.PriceType
	}
	if in.Bedrooms != nil {
		p.Bedrooms = in.Bedrooms
	}
	if in.Bathrooms != nil {
		p.Bathrooms = in.Bathrooms
	}
	if in.RoomType != nil {
		p.RoomType = *in.RoomType
	}
	if in.Gender != nil {
		p.Gender = *in.Gender
	}
	if in.FoodFacility != nil {
		p.FoodFacility = *in.FoodFacility
	}
	if in.CollegeName != nil {
		p.CollegeName = *in.CollegeName
	}
	if in.CollegeDistanceKm != nil {
		p.CollegeDistanceKm = in.CollegeDistanceKm
	}
	if in.HasWifi != nil {
		p.HasWifi = *in.HasWifi
	}
	if in.HasAC != nil {
		p.HasAC = *in.HasAC
	}
	if in.HasParking != nil {
		p.HasParking = *in.HasParking
	}
	if in.HasTV != nil {
		p.HasTV = *in.HasTV
	}
	if in.HasKitchen != nil {
		p.HasKitchen = *in.HasKitchen
	}
	if in.HasWashingMachine != nil {
		p.HasWashingMachine = *in.HasWashingMachine
	}
	if in.HasGym != nil {
		p.HasGym = *in.HasGym
	}
	if in.HasStudyRoom != nil {
		p.HasStudyRoom = *in.HasStudyRoom
	}
	if in.HasMess != nil {
		p.HasMess = *in.HasMess
	}
	if in.HasLaundry != nil {
		p.HasLaundry = *in.HasLaundry
	}
	if in.HasHotWater != nil {
		p.HasHotWater = *in.HasHotWater
	}
	if in.ContactName != nil {
		p.ContactName = *in.ContactName
	}
	if in.ContactPhone != nil {
		p.ContactPhone = *in.ContactPhone
	}
	if in.ContactEmail != nil {
		p.ContactEmail = *in.ContactEmail
	}
	if in.MainImageURL != nil {
		p.MainImageURL = *in.MainImageURL
	}
	if in.IsAvailable != nil {
		p.IsAvailable = *in.IsAvailable
	}
}
