package domain

import "time"

// Review is a visitor's rating of a single park.
type Review struct {
	ID        string
	ParkID    string
	Username  string
	Rating    float64
	Body      string
	CreatedAt time.Time
}
