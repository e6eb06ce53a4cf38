package models

import "time"

// SystemActor is the audit identity recorded when no authenticated principal
// is available.
const SystemActor = "system"

// Audited is embedded by every domain entity. LastUpdatedOn/LastUpdatedBy are
// refreshed through Stamp on every create and update.
type Audited struct {
	ID            int       `json:"id"`
	LastUpdatedOn time.Time `json:"last_updated_on"`
	LastUpdatedBy string    `json:"last_updated_by"`
}

// Stamp records who touched the entity and when. An empty actor falls back to
// the "system" sentinel.
func (a *Audited) Stamp(actorID string) {
	if actorID == "" {
		actorID = SystemActor
	}
	a.LastUpdatedBy = actorID
	a.LastUpdatedOn = time.Now().UTC()
}
