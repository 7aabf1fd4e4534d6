package models

import "time"

// Profile roles.
const (
	RoleRestaurant = "restaurant"
	RoleNGO        = "ngo"
)

type Profile struct {
	ID                 string    `bson:"id" json:"id"`
	FullName           string    `bson:"full_name,omitempty" json:"full_name,omitempty"`
	Email              string    `bson:"email,omitempty" json:"email,omitempty"`
	Role               string    `bson:"role,omitempty" json:"role,omitempty"` // restaurant, ngo
	OrganizationName   string    `bson:"organization_name,omitempty" json:"organization_name,omitempty"`
	Phone              string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Location           string    `bson:"location,omitempty" json:"location,omitempty"`
	Address            string    `bson:"address,omitempty" json:"address,omitempty"`
	ContributionsCount int       `bson:"contributionsCount" json:"contributionsCount"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updated_at"`
}
