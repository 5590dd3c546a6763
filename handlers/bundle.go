package handlers

import (
	userRepoPkg "nestfind/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints.
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc

	// Search endpoints.
	ListPropertiesHandler   gin.HandlerFunc
	NearbyPropertiesHandler gin.HandlerFunc

	// Property lifecycle endpoints.
	CreatePropertyHandler gin.HandlerFunc
	GetPropertyHandler    gin.HandlerFunc
	UpdatePropertyHandler gin.HandlerFunc
	DeletePropertyHandler gin.HandlerFunc
	MyPropertiesHandler   gin.HandlerFunc

	// OpenStreetMap endpoints.
	SearchAccommodationHandler gin.HandlerFunc

	// Storage endpoints.
	UploadImageHandler gin.HandlerFunc
}
