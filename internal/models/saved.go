package models

import "time"

// SavedProperty is a bookmark keyed by property ID. At most one record
// exists per property.
type SavedProperty struct {
	ID         string    `json:"id" bson:"savedId"`
	PropertyID int       `json:"propertyId" bson:"propertyId"`
	Notes      string    `json:"notes" bson:"notes"`
	SavedDate  time.Time `json:"savedDate" bson:"savedDate"`
}

// SaveRequest is the payload for creating a bookmark.
type SaveRequest struct {
	PropertyID int    `json:"propertyId" binding:"required"`
	Notes      string `json:"notes"`
}
