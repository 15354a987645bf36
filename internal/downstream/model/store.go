package model

import "encoding/json"

// NewStore is the CreateStore workflow's input body. Name and the
// description fields are opaque localized-string blobs in the original
// service (a map of language code to text); the engine never inspects
// them, only UserID, which it branches on for the compensation path.
type NewStore struct {
	Name             json.RawMessage `json:"name" validate:"required"`
	UserID           int             `json:"user_id" validate:"required,gt=0" label:"User ID"`
	ShortDescription json.RawMessage `json:"short_description" validate:"required"`
	LongDescription  json.RawMessage `json:"long_description,omitempty"`
	Slug             string          `json:"slug" validate:"required,min=1,max=100"`
	Cover            *string         `json:"cover,omitempty"`
	Logo             *string         `json:"logo,omitempty"`
	Phone            *string         `json:"phone,omitempty"`
	Email            *string         `json:"email,omitempty" validate:"omitempty,email"`
	Address          *string         `json:"address,omitempty"`
	FacebookURL      *string         `json:"facebook_url,omitempty"`
	TwitterURL       *string         `json:"twitter_url,omitempty"`
	InstagramURL     *string         `json:"instagram_url,omitempty"`
	DefaultLanguage  string          `json:"default_language" validate:"required"`
	Slogan           *string         `json:"slogan,omitempty"`
	Country          *string         `json:"country,omitempty"`
	PostalCode       *string         `json:"postal_code,omitempty"`
	Route            *string         `json:"route,omitempty"`
	StreetNumber     *string         `json:"street_number,omitempty"`
	PlaceID          *string         `json:"place_id,omitempty"`
	SagaID           *string         `json:"saga_id,omitempty"`
}

// Store is the stores service's response to store creation.
type Store struct {
	ID               int             `json:"id"`
	UserID           int             `json:"user_id"`
	IsActive         bool            `json:"is_active"`
	Name             json.RawMessage `json:"name"`
	ShortDescription json.RawMessage `json:"short_description"`
	LongDescription  json.RawMessage `json:"long_description,omitempty"`
	Slug             string          `json:"slug"`
	DefaultLanguage  string          `json:"default_language"`
	Status           string          `json:"status"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`
}
