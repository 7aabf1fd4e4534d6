package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Match statuses. pending -> scheduled -> picked_up, or pending -> cancelled.
// Fulfilling a donation force-sets its matches to picked_up.
const (
	MatchPending   = "pending"
	MatchScheduled = "scheduled"
	MatchPickedUp  = "picked_up"
	MatchCancelled = "cancelled"
)

type Match struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DonationID       string             `bson:"donation_id" json:"donation_id"`
	NGOID            string             `bson:"ngo_id" json:"ngo_id"`
	RestaurantID     string             `bson:"restaurant_id" json:"restaurant_id"`
	MatchedAt        time.Time          `bson:"matched_at" json:"matched_at"`
	FulfilledAt      *time.Time         `bson:"fulfilled_at,omitempty" json:"fulfilled_at,omitempty"`
	AcceptedQuantity float64            `bson:"accepted_quantity" json:"accepted_quantity"`
	Status           string             `bson:"status" json:"status"` // pending, scheduled, picked_up, cancelled
}

// EnrichedMatch carries the match's donation and, through it, the
// restaurant profile. FoodDonation is null when the donation is gone.
type EnrichedMatch struct {
	Match        `bson:",inline"`
	FoodDonation *EnrichedDonation `bson:"-" json:"food_donations"`
}
