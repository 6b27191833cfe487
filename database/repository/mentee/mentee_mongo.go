package menteeRepo

import (
	"context"
	"fmt"
	"time"

	"mentorify/database"
	"mentorify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMenteeRepo implements MenteeRepository using MongoDB.
type MongoMenteeRepo struct {
	coll *mongo.Collection
}

// NewMongoMenteeRepo creates a new MenteeRepository backed by MongoDB.
func NewMongoMenteeRepo() MenteeRepository {
	coll := database.DB().Collection("mentees")
	repo := &MongoMenteeRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create mentee indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoMenteeRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create mentee indexes: %w", err)
	}
	return nil
}

func (r *MongoMenteeRepo) Create(ctx context.Context, mentee *models.Mentee) error {
	now := time.Now()
	mentee.CreatedAt = now
	mentee.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, mentee); err != nil {
		return fmt.Errorf("failed to create mentee: %w", err)
	}
	return nil
}

func (r *MongoMenteeRepo) findOne(ctx context.Context, filter bson.M) (*models.Mentee, error) {
	var mentee models.Mentee
	err := r.coll.FindOne(ctx, filter).Decode(&mentee)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mentee query failed: %w", err)
	}
	return &mentee, nil
}

func (r *MongoMenteeRepo) GetByID(ctx context.Context, id string) (*models.Mentee, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *MongoMenteeRepo) GetByEmail(ctx context.Context, email string) (*models.Mentee, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoMenteeRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Mentee, error) {
	return r.findOne(ctx, bson.M{"tokenHash": tokenHash})
}

func (r *MongoMenteeRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	update := bson.M{"$set": bson.M{"tokenHash": tokenHash, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set token hash for mentee %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("mentee %s not found", id)
	}
	return nil
}

func (r *MongoMenteeRepo) List(ctx context.Context) ([]models.Mentee, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("mentee list query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var mentees []models.Mentee
	if err := cursor.All(ctx, &mentees); err != nil {
		return nil, fmt.Errorf("failed to decode mentees: %w", err)
	}
	return mentees, nil
}
