package availabilityRepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mentorify/database"
	"mentorify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrTemplateExists is returned when a mentor already has a template.
var ErrTemplateExists = errors.New("availability template already exists for this mentor")

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo creates a new AvailabilityRepository backed by MongoDB.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	coll := database.DB().Collection("mentor_availability")
	repo := &MongoAvailabilityRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create availability indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "mentorId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_mentor_template"),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create availability indexes: %w", err)
	}
	return nil
}

func (r *MongoAvailabilityRepo) Create(ctx context.Context, availability *models.MentorAvailability) error {
	if _, err := r.coll.InsertOne(ctx, availability); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrTemplateExists
		}
		return fmt.Errorf("failed to create availability template: %w", err)
	}
	return nil
}

func (r *MongoAvailabilityRepo) GetByMentorID(ctx context.Context, mentorID string) (*models.MentorAvailability, error) {
	var availability models.MentorAvailability
	err := r.coll.FindOne(ctx, bson.M{"mentorId": mentorID}).Decode(&availability)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability for mentor %s: %w", mentorID, err)
	}
	return &availability, nil
}

func (r *MongoAvailabilityRepo) Replace(ctx context.Context, availability *models.MentorAvailability) error {
	filter := bson.M{"mentorId": availability.MentorID}
	res, err := r.coll.ReplaceOne(ctx, filter, availability)
	if err != nil {
		return fmt.Errorf("failed to replace availability for mentor %s: %w", availability.MentorID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("availability template for mentor %s not found", availability.MentorID)
	}
	return nil
}

// splitLabel splits a "start - end" slot label into its two times.
func splitLabel(timeSlot string) (string, string) {
	parts := strings.SplitN(timeSlot, " - ", 2)
	if len(parts) != 2 {
		return timeSlot, ""
	}
	return parts[0], parts[1]
}

func (r *MongoAvailabilityRepo) updateMarker(ctx context.Context, mentorID, day, timeSlot, date, op string) error {
	start, end := splitLabel(timeSlot)

	filter := bson.M{"mentorId": mentorID}
	update := bson.M{op: bson.M{"slotsPerDay.$[d].slots.$[s].bookedDates": date}}
	arrayFilters := options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"d.day": day},
			bson.M{"s.startTime": start, "s.endTime": end},
		},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetArrayFilters(arrayFilters))
	if err != nil {
		return fmt.Errorf("failed to update booking marker for mentor %s: %w", mentorID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("availability template for mentor %s not found", mentorID)
	}
	return nil
}

func (r *MongoAvailabilityRepo) MarkSlotBooked(ctx context.Context, mentorID, day, timeSlot, date string) error {
	return r.updateMarker(ctx, mentorID, day, timeSlot, date, "$addToSet")
}

func (r *MongoAvailabilityRepo) ClearSlotBooking(ctx context.Context, mentorID, day, timeSlot, date string) error {
	return r.updateMarker(ctx, mentorID, day, timeSlot, date, "$pull")
}
