package stores

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	models "github.com/foodlink/food-link-go/models"
)

type mongoMatches struct {
	col *mongo.Collection
}

func NewMongoMatchStore(db *mongo.Database) MatchStore {
	return &mongoMatches{col: db.Collection("matches")}
}

func (s *mongoMatches) Insert(ctx context.Context, m *models.Match) error {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	_, err := s.col.InsertOne(ctx, m)
	return err
}

func (s *mongoMatches) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Match, error) {
	var m models.Match
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *mongoMatches) FindByNGO(ctx context.Context, ngoID string) ([]models.Match, error) {
	cursor, err := s.col.Find(ctx, bson.M{"ngo_id": ngoID})
	if err != nil {
		return nil, err
	}
	matches := []models.Match{}
	if err := cursor.All(ctx, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (s *mongoMatches) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, fulfilledAt *time.Time) (bool, error) {
	set := bson.M{"status": status}
	if fulfilledAt != nil {
		set["fulfilled_at"] = *fulfilledAt
	}
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *mongoMatches) MarkPickedUpByDonation(ctx context.Context, donationID string, fulfilledAt time.Time) error {
	_, err := s.col.UpdateMany(ctx,
		bson.M{"donation_id": donationID},
		bson.M{"$set": bson.M{"status": models.MatchPickedUp, "fulfilled_at": fulfilledAt}},
	)
	return err
}
