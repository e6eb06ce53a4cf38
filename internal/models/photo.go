package models

type Photo struct {
	Audited
	PropertyID int    `json:"property_id"`
	PublicID   string `json:"public_id"`
	ImageURL   string `json:"image_url"`
	IsPrimary  bool   `json:"is_primary"`
}
