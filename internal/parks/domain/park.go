package domain

import "time"

// Park represents a physical park with its descriptive, locational and rating metadata.
type Park struct {
	ID           string
	Name         string
	Description  string
	Size         float64
	Stats        ParkStats
	Features     Features
	OpeningHours OpeningHours
	Address      Address
	Location     Location
	ImageURL     string
	WebsiteURL   string
	PhoneNumber  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ParkStats aggregates review metrics. Only the review flow writes these.
type ParkStats struct {
	AverageRating float64
	ReviewCount   int
}

// Features lists the capability flags a park can advertise.
type Features struct {
	IsFree              bool
	IsWellLit           bool
	IsFreeParking       bool
	IsParking           bool
	HasAgilityEquipment bool
	IsFullyEnclosed     bool
	HasDisabledAccess   bool
}

// OpeningHours holds a display string per weekday.
type OpeningHours struct {
	Monday    string
	Tuesday   string
	Wednesday string
	Thursday  string
	Friday    string
	Saturday  string
	Sunday    string
}

// Address is the postal address of a park.
type Address struct {
	FirstLine  string
	SecondLine string
	PostCode   string
	City       string
}

// Location is a WGS84 coordinate pair.
type Location struct {
	Longitude float64
	Latitude  float64
}
