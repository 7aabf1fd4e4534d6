package stores

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	models "github.com/foodlink/food-link-go/models"
)

type mongoProfiles struct {
	col *mongo.Collection
}

func NewMongoProfileStore(db *mongo.Database) ProfileStore {
	return &mongoProfiles{col: db.Collection("profiles")}
}

func (s *mongoProfiles) FindByID(ctx context.Context, id string) (*models.Profile, error) {
	return s.findOne(ctx, bson.M{"id": id})
}

func (s *mongoProfiles) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *mongoProfiles) findOne(ctx context.Context, filter bson.M) (*models.Profile, error) {
	var p models.Profile
	err := s.col.FindOne(ctx, filter).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *mongoProfiles) FindByIDs(ctx context.Context, ids []string) (map[string]models.Profile, error) {
	result := map[string]models.Profile{}
	if len(ids) == 0 {
		return result, nil
	}
	cursor, err := s.col.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var profiles []models.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	for _, p := range profiles {
		result[p.ID] = p
	}
	return result, nil
}

func (s *mongoProfiles) Insert(ctx context.Context, p *models.Profile) error {
	if p.ID == "" {
		p.ID = primitive.NewObjectID().Hex()
	}
	_, err := s.col.InsertOne(ctx, p)
	return err
}

func (s *mongoProfiles) UpsertByEmail(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	existing, err := s.FindByEmail(ctx, p.Email)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if existing == nil {
		p.ID = primitive.NewObjectID().Hex()
		p.CreatedAt = now
		p.UpdatedAt = now
		if _, err := s.col.InsertOne(ctx, p); err != nil {
			return nil, err
		}
		return p, nil
	}

	set := bson.M{"updated_at": now}
	if p.FullName != "" {
		set["full_name"] = p.FullName
	}
	if p.Role != "" {
		set["role"] = p.Role
	}
	if p.OrganizationName != "" {
		set["organization_name"] = p.OrganizationName
	}
	if p.Phone != "" {
		set["phone"] = p.Phone
	}
	if p.Location != "" {
		set["location"] = p.Location
	}
	if p.Address != "" {
		set["address"] = p.Address
	}
	if _, err := s.col.UpdateOne(ctx, bson.M{"email": p.Email}, bson.M{"$set": set}); err != nil {
		return nil, err
	}
	return s.FindByEmail(ctx, p.Email)
}

func (s *mongoProfiles) IncrementContribution(ctx context.Context, restaurantID string) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"id": restaurantID},
		bson.M{"$inc": bson.M{"contributionsCount": 1}},
		options.Update().SetUpsert(true),
	)
	return err
}
