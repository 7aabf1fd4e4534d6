package stores

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/foodlink/food-link-go/models"
)

// Store contracts over the three collections. Lookups return (nil, nil)
// when the document is absent so callers can map absence to their own
// error taxonomy.
type (
	DonationStore interface {
		Insert(ctx context.Context, d *models.FoodDonation) error
		FindByID(ctx context.Context, id string) (*models.FoodDonation, error)
		FindByStatus(ctx context.Context, status string) ([]models.FoodDonation, error)
		FindByRestaurant(ctx context.Context, restaurantID string) ([]models.FoodDonation, error)
		FindByIDs(ctx context.Context, ids []string) ([]models.FoodDonation, error)
		// ClaimQuantity conditionally mutates an available donation:
		// the update only applies while status is "available" and the
		// quantity still equals expectedQty, so racing claims cannot
		// both win. full reserves the donation, otherwise the quantity
		// drops to newQty. Reports whether the claim landed.
		ClaimQuantity(ctx context.Context, id string, expectedQty, newQty float64, full bool) (bool, error)
		SetStatus(ctx context.Context, id, status string) error
	}

	MatchStore interface {
		Insert(ctx context.Context, m *models.Match) error
		FindByID(ctx context.Context, id primitive.ObjectID) (*models.Match, error)
		FindByNGO(ctx context.Context, ngoID string) ([]models.Match, error)
		// UpdateStatus reports whether a match with the id existed.
		UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, fulfilledAt *time.Time) (bool, error)
		// MarkPickedUpByDonation bulk-sets every match of a donation to
		// picked_up with the given fulfilled timestamp.
		MarkPickedUpByDonation(ctx context.Context, donationID string, fulfilledAt time.Time) error
	}

	ProfileStore interface {
		FindByID(ctx context.Context, id string) (*models.Profile, error)
		FindByEmail(ctx context.Context, email string) (*models.Profile, error)
		FindByIDs(ctx context.Context, ids []string) (map[string]models.Profile, error)
		Insert(ctx context.Context, p *models.Profile) error
		// UpsertByEmail creates the profile when the email is new,
		// otherwise overlays the non-empty fields onto the existing
		// record. Returns the stored profile either way.
		UpsertByEmail(ctx context.Context, p *models.Profile) (*models.Profile, error)
		// IncrementContribution bumps contributionsCount by one,
		// creating a stub profile when none exists for the id.
		IncrementContribution(ctx context.Context, restaurantID string) error
	}
)
