package mentorRepo

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

// MongoMentorRepo implements MentorRepository using MongoDB.
type MongoMentorRepo struct {
	coll *mongo.Collection
}

// NewMongoMentorRepo creates a new MentorRepository backed by MongoDB.
func NewMongoMentorRepo() MentorRepository {
	coll := database.DB().Collection("mentors")
	repo := &MongoMentorRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create mentor indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoMentorRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "approved", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create mentor indexes: %w", err)
	}
	return nil
}

func (r *MongoMentorRepo) Create(ctx context.Context, mentor *models.Mentor) error {
	now := time.Now()
	mentor.CreatedAt = now
	mentor.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, mentor); err != nil {
		return fmt.Errorf("failed to create mentor: %w", err)
	}
	return nil
}

func (r *MongoMentorRepo) findOne(ctx context.Context, filter bson.M) (*models.Mentor, error) {
	var mentor models.Mentor
	err := r.coll.FindOne(ctx, filter).Decode(&mentor)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mentor query failed: %w", err)
	}
	return &mentor, nil
}

func (r *MongoMentorRepo) GetByID(ctx context.Context, id string) (*models.Mentor, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *MongoMentorRepo) GetByEmail(ctx context.Context, email string) (*models.Mentor, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoMentorRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Mentor, error) {
	return r.findOne(ctx, bson.M{"tokenHash": tokenHash})
}

func (r *MongoMentorRepo) Update(ctx context.Context, mentor *models.Mentor) error {
	mentor.UpdatedAt = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": mentor.ID}, bson.M{"$set": mentor})
	if err != nil {
		return fmt.Errorf("failed to update mentor %s: %w", mentor.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("mentor %s not found", mentor.ID)
	}
	return nil
}

func (r *MongoMentorRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete mentor %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("mentor %s not found", id)
	}
	return nil
}

func (r *MongoMentorRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	update := bson.M{"$set": bson.M{"tokenHash": tokenHash, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set token hash for mentor %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("mentor %s not found", id)
	}
	return nil
}

func (r *MongoMentorRepo) SetApproved(ctx context.Context, id string, approved bool) (*models.Mentor, error) {
	update := bson.M{"$set": bson.M{"approved": approved, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mentor models.Mentor
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&mentor)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update approval for mentor %s: %w", id, err)
	}
	return &mentor, nil
}

func (r *MongoMentorRepo) list(ctx context.Context, filter bson.M) ([]models.Mentor, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("mentor list query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var mentors []models.Mentor
	if err := cursor.All(ctx, &mentors); err != nil {
		return nil, fmt.Errorf("failed to decode mentors: %w", err)
	}
	return mentors, nil
}

func (r *MongoMentorRepo) List(ctx context.Context, approvedOnly bool) ([]models.Mentor, error) {
	filter := bson.M{}
	if approvedOnly {
		filter["approved"] = true
	}
	return r.list(ctx, filter)
}

func (r *MongoMentorRepo) ListPending(ctx context.Context) ([]models.Mentor, error) {
	return r.list(ctx, bson.M{"approved": false})
}

var starBuckets = map[int]string{
	1: "oneStars",
	2: "twoStars",
	3: "threeStars",
	4: "fourStars",
	5: "fiveStars",
}

// ApplyReviewRating performs the incremental rating update in one pipeline
// update: first stage bumps the star bucket and the total, second stage
// recomputes the weighted average from the updated buckets, rounded to 2
// decimals. Same arithmetic as models.RatingSummary.Apply, run atomically
// on the stored document.
func (r *MongoMentorRepo) ApplyReviewRating(ctx context.Context, mentorID string, rating int) error {
	bucket, ok := starBuckets[rating]
	if !ok {
		return fmt.Errorf("rating %d out of range", rating)
	}
	bucketPath := "rating." + bucket

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: bucketPath, Value: bson.D{{Key: "$add", Value: bson.A{"$" + bucketPath, 1}}}},
			{Key: "rating.totalReviews", Value: bson.D{{Key: "$add", Value: bson.A{"$rating.totalReviews", 1}}}},
		}}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "rating.average", Value: bson.D{{Key: "$round", Value: bson.A{
				bson.D{{Key: "$divide", Value: bson.A{
					bson.D{{Key: "$add", Value: bson.A{
						bson.D{{Key: "$multiply", Value: bson.A{"$rating.fiveStars", 5}}},
						bson.D{{Key: "$multiply", Value: bson.A{"$rating.fourStars", 4}}},
						bson.D{{Key: "$multiply", Value: bson.A{"$rating.threeStars", 3}}},
						bson.D{{Key: "$multiply", Value: bson.A{"$rating.twoStars", 2}}},
						"$rating.oneStars",
					}}},
					"$rating.totalReviews",
				}}},
				2,
			}}}},
		}}},
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": mentorID}, pipeline)
	if err != nil {
		return fmt.Errorf("failed to apply review rating for mentor %s: %w", mentorID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("mentor %s not found", mentorID)
	}
	return nil
}
