package models

import "time"

// Address holds the structured location of a listing. Full is the derived
// display string and is rebuilt by the address transformer when empty.
type Address struct {
	Street  string `json:"street" bson:"street"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	ZipCode string `json:"zipCode" bson:"zipCode"`
	Full    string `json:"full" bson:"full"`
}

// Coordinates are consumed by the map view only; the query engine never
// touches them.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Property is a single listing record. ID is immutable and unique within a
// collection snapshot.
type Property struct {
	ID           int         `json:"id" bson:"propertyId"`
	Title        string      `json:"title" bson:"title"`
	Description  string      `json:"description" bson:"description"`
	Price        float64     `json:"price" bson:"price"`
	Bedrooms     int         `json:"bedrooms" bson:"bedrooms"`
	Bathrooms    float64     `json:"bathrooms" bson:"bathrooms"`
	SquareFeet   int         `json:"squareFeet" bson:"squareFeet"`
	PropertyType string      `json:"propertyType" bson:"propertyType"`
	ListingDate  time.Time   `json:"listingDate" bson:"listingDate"`
	Images       []string    `json:"images" bson:"images"`
	Features     []string    `json:"features" bson:"features"`
	Address      Address     `json:"address" bson:"address"`
	Coordinates  Coordinates `json:"coordinates" bson:"coordinates"`
}
