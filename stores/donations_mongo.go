package stores

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	models "github.com/foodlink/food-link-go/models"
)

type mongoDonations struct {
	col *mongo.Collection
}

func NewMongoDonationStore(db *mongo.Database) DonationStore {
	return &mongoDonations{col: db.Collection("food_donations")}
}

func (s *mongoDonations) Insert(ctx context.Context, d *models.FoodDonation) error {
	_, err := s.col.InsertOne(ctx, d)
	return err
}

func (s *mongoDonations) FindByID(ctx context.Context, id string) (*models.FoodDonation, error) {
	var d models.FoodDonation
	err := s.col.FindOne(ctx, bson.M{"id": id}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *mongoDonations) FindByStatus(ctx context.Context, status string) ([]models.FoodDonation, error) {
	return s.find(ctx, bson.M{"status": status})
}

func (s *mongoDonations) FindByRestaurant(ctx context.Context, restaurantID string) ([]models.FoodDonation, error) {
	return s.find(ctx, bson.M{"restaurant_id": restaurantID})
}

func (s *mongoDonations) FindByIDs(ctx context.Context, ids []string) ([]models.FoodDonation, error) {
	if len(ids) == 0 {
		return []models.FoodDonation{}, nil
	}
	return s.find(ctx, bson.M{"id": bson.M{"$in": ids}})
}

func (s *mongoDonations) find(ctx context.Context, filter bson.M) ([]models.FoodDonation, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	donations := []models.FoodDonation{}
	if err := cursor.All(ctx, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

func (s *mongoDonations) ClaimQuantity(ctx context.Context, id string, expectedQty, newQty float64, full bool) (bool, error) {
	set := bson.M{"updated_at": time.Now()}
	if full {
		set["status"] = models.DonationReserved
	} else {
		set["quantity"] = newQty
	}

	// The filter pins status and the quantity that was read, so a
	// concurrent claim that already mutated the donation matches
	// nothing here.
	res, err := s.col.UpdateOne(ctx,
		bson.M{"id": id, "status": models.DonationAvailable, "quantity": expectedQty},
		bson.M{"$set": set},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *mongoDonations) SetStatus(ctx context.Context, id, status string) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	return err
}
