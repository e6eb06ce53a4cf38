package models

type City struct {
	Audited
	Name    string `json:"name"`
	Country string `json:"country"`

	// Number of properties referencing this city; populated on reads.
	PropertiesCount int `json:"properties_count"`
}
