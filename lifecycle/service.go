// Package lifecycle carries the donation lifecycle: NGOs accepting
// quantity from available donations, restaurants fulfilling them, and
// the enriched listings both dashboards read.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/foodlink/food-link-go/models"
	stores "github.com/foodlink/food-link-go/stores"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
)

type Service struct {
	donations stores.DonationStore
	matches   stores.MatchStore
	profiles  stores.ProfileStore
}

func NewService(donations stores.DonationStore, matches stores.MatchStore, profiles stores.ProfileStore) *Service {
	return &Service{donations: donations, matches: matches, profiles: profiles}
}

type AcceptResult struct {
	Donation *models.FoodDonation
	Full     bool
}

// Accept claims quantity from an available donation for an NGO. A nil
// acceptedQty claims everything that remains. The donation mutation is
// a conditional update pinned to the status and quantity that were
// read, so concurrent accepts against the same donation cannot both
// win; the loser gets ErrConflict and writes nothing.
func (s *Service) Accept(ctx context.Context, donationID, ngoID, restaurantID string, acceptedQty *float64) (*AcceptResult, error) {
	if donationID == "" || ngoID == "" || restaurantID == "" {
		return nil, fmt.Errorf("%w: donationId, ngoId and restaurantId are required", ErrInvalidArgument)
	}
	if acceptedQty != nil && *acceptedQty <= 0 {
		return nil, fmt.Errorf("%w: acceptedQuantity must be greater than 0", ErrInvalidArgument)
	}

	donation, err := s.donations.FindByID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, fmt.Errorf("%w: donation", ErrNotFound)
	}
	if donation.Status != models.DonationAvailable {
		return nil, fmt.Errorf("%w: donation not available", ErrConflict)
	}

	qty := donation.Quantity
	if acceptedQty != nil {
		qty = *acceptedQty
	}
	full := qty >= donation.Quantity
	newQty := donation.Quantity - qty
	if newQty < 0 {
		newQty = 0
	}

	claimed, err := s.donations.ClaimQuantity(ctx, donationID, donation.Quantity, newQty, full)
	if err != nil {
		return nil, err
	}
	if !claimed {
		// Someone else claimed or fulfilled it between our read and
		// the conditional write.
		return nil, fmt.Errorf("%w: donation not available", ErrConflict)
	}

	match := &models.Match{
		DonationID:       donationID,
		NGOID:            ngoID,
		RestaurantID:     restaurantID,
		MatchedAt:        time.Now(),
		Status:           models.MatchPending,
		AcceptedQuantity: qty,
	}
	if err := s.matches.Insert(ctx, match); err != nil {
		return nil, err
	}

	if err := s.profiles.IncrementContribution(ctx, restaurantID); err != nil {
		return nil, err
	}

	updated, err := s.donations.FindByID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	return &AcceptResult{Donation: updated, Full: full}, nil
}

// Fulfill marks a donation collected and closes all its matches as
// picked_up with a fulfilled timestamp.
func (s *Service) Fulfill(ctx context.Context, donationID string) (*models.FoodDonation, error) {
	donation, err := s.donations.FindByID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, fmt.Errorf("%w: donation", ErrNotFound)
	}

	if err := s.donations.SetStatus(ctx, donationID, models.DonationFulfilled); err != nil {
		return nil, err
	}
	if err := s.matches.MarkPickedUpByDonation(ctx, donationID, time.Now()); err != nil {
		return nil, err
	}

	return s.donations.FindByID(ctx, donationID)
}

// UpdateMatchStatus moves one match between pickup states. picked_up
// also stamps the fulfilled timestamp. The donation is untouched.
func (s *Service) UpdateMatchStatus(ctx context.Context, matchID, status string) (*models.Match, error) {
	switch status {
	case models.MatchScheduled, models.MatchPickedUp, models.MatchCancelled:
	default:
		return nil, fmt.Errorf("%w: status must be scheduled, picked_up or cancelled", ErrInvalidArgument)
	}

	oid, err := primitive.ObjectIDFromHex(matchID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid match id", ErrInvalidArgument)
	}

	var fulfilledAt *time.Time
	if status == models.MatchPickedUp {
		now := time.Now()
		fulfilledAt = &now
	}

	found, err := s.matches.UpdateStatus(ctx, oid, status, fulfilledAt)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: match", ErrNotFound)
	}
	return s.matches.FindByID(ctx, oid)
}

// ListAvailable returns available donations with the owning
// restaurant's profile joined in. Missing profiles come back null.
func (s *Service) ListAvailable(ctx context.Context) ([]models.EnrichedDonation, error) {
	donations, err := s.donations.FindByStatus(ctx, models.DonationAvailable)
	if err != nil {
		return nil, err
	}

	profileMap, err := s.profiles.FindByIDs(ctx, restaurantIDs(donations))
	if err != nil {
		return nil, err
	}

	enriched := make([]models.EnrichedDonation, 0, len(donations))
	for _, d := range donations {
		e := models.EnrichedDonation{FoodDonation: d}
		if p, ok := profileMap[d.RestaurantID]; ok {
			profile := p
			e.RestaurantProfile = &profile
		}
		enriched = append(enriched, e)
	}
	return enriched, nil
}

func (s *Service) ListByRestaurant(ctx context.Context, restaurantID string) ([]models.FoodDonation, error) {
	return s.donations.FindByRestaurant(ctx, restaurantID)
}

// ListMatchesByNGO returns an NGO's matches, each with its donation
// and, through the donation, the restaurant profile. Matches whose
// donation is gone carry a null donation.
func (s *Service) ListMatchesByNGO(ctx context.Context, ngoID string) ([]models.EnrichedMatch, error) {
	matches, err := s.matches.FindByNGO(ctx, ngoID)
	if err != nil {
		return nil, err
	}

	donationIDs := make([]string, 0, len(matches))
	seen := map[string]bool{}
	for _, m := range matches {
		if !seen[m.DonationID] {
			seen[m.DonationID] = true
			donationIDs = append(donationIDs, m.DonationID)
		}
	}

	donations, err := s.donations.FindByIDs(ctx, donationIDs)
	if err != nil {
		return nil, err
	}
	donationMap := map[string]models.FoodDonation{}
	for _, d := range donations {
		donationMap[d.ID] = d
	}

	profileMap, err := s.profiles.FindByIDs(ctx, restaurantIDs(donations))
	if err != nil {
		return nil, err
	}

	enriched := make([]models.EnrichedMatch, 0, len(matches))
	for _, m := range matches {
		e := models.EnrichedMatch{Match: m}
		if d, ok := donationMap[m.DonationID]; ok {
			ed := models.EnrichedDonation{FoodDonation: d}
			if p, ok := profileMap[d.RestaurantID]; ok {
				profile := p
				ed.RestaurantProfile = &profile
			}
			e.FoodDonation = &ed
		}
		enriched = append(enriched, e)
	}
	return enriched, nil
}

func restaurantIDs(donations []models.FoodDonation) []string {
	ids := make([]string, 0, len(donations))
	seen := map[string]bool{}
	for _, d := range donations {
		if !seen[d.RestaurantID] {
			seen[d.RestaurantID] = true
			ids = append(ids, d.RestaurantID)
		}
	}
	return ids
}
