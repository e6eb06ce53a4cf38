package routes

const (
	// Health
	Health = "/health"

	// Account
	AccountRegister       = "/api/v1/account/register"
	AccountLogin          = "/api/v1/account/login"
	AccountForgotPassword = "/api/v1/account/forgot-password"
	AccountResetPassword  = "/api/v1/account/reset-password"

	// Cities
	CitiesBase = "/api/v1/cities"
	CityByID   = "/api/v1/cities/{id}"

	// Property types
	PropertyTypesBase = "/api/v1/property-types"
	PropertyTypeByID  = "/api/v1/property-types/{id}"

	// Furnishing types
	FurnishingTypesBase = "/api/v1/furnishing-types"
	FurnishingTypeByID  = "/api/v1/furnishing-types/{id}"

	// Properties
	PropertiesBase   = "/api/v1/properties"
	PropertiesList   = "/api/v1/properties/list/{sellRent}"
	PropertyDetail   = "/api/v1/properties/detail/{id}"
	PropertyByID     = "/api/v1/properties/{id}"
	PropertyPhotos   = "/api/v1/properties/{id}/photos"
	PhotoSetPrimary  = "/api/v1/properties/{id}/photos/{publicId}/primary"
	PhotoByPublicID  = "/api/v1/properties/{id}/photos/{publicId}"
)
