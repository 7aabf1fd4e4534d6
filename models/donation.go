package models

import "time"

// Donation statuses. Transitions only move forward:
// available -> reserved -> fulfilled.
const (
	DonationAvailable = "available"
	DonationReserved  = "reserved"
	DonationFulfilled = "fulfilled"
)

type FoodDonation struct {
	ID              string    `bson:"id" json:"id"`
	RestaurantID    string    `bson:"restaurant_id" json:"restaurant_id"`
	FoodName        string    `bson:"food_name" json:"food_name"`
	FoodType        string    `bson:"food_type,omitempty" json:"food_type,omitempty"`
	Quantity        float64   `bson:"quantity" json:"quantity"`
	Unit            string    `bson:"unit,omitempty" json:"unit,omitempty"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	PickupTimeStart string    `bson:"pickup_time_start,omitempty" json:"pickup_time_start,omitempty"`
	PickupTimeEnd   string    `bson:"pickup_time_end,omitempty" json:"pickup_time_end,omitempty"`
	ExpiresAt       string    `bson:"expires_at,omitempty" json:"expires_at,omitempty"`
	Location        string    `bson:"location,omitempty" json:"location,omitempty"`
	ImageURL        string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Status          string    `bson:"status" json:"status"` // available, reserved, fulfilled
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// EnrichedDonation is a donation with its owning restaurant's profile
// joined in. RestaurantProfile is null when the profile is missing.
type EnrichedDonation struct {
	FoodDonation      `bson:",inline"`
	RestaurantProfile *Profile `bson:"-" json:"restaurant_profile"`
}
