package models

type PropertyType struct {
	Audited
	Name string `json:"name"`

	PropertiesCount int `json:"properties_count"`
}

type FurnishingType struct {
	Audited
	Name string `json:"name"`

	PropertiesCount int `json:"properties_count"`
}
