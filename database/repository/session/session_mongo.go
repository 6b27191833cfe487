package sessionRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mentorify/database"
	"mentorify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSessionRepo implements SessionRepository using MongoDB.
type MongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo creates a new SessionRepository backed by MongoDB.
func NewMongoSessionRepo() SessionRepository {
	coll := database.DB().Collection("sessions")
	repo := &MongoSessionRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create session indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSessionRepo) Create(ctx context.Context, session *models.Session) error {
	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, session); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateActiveSession
		}
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// ErrDuplicateActiveSession surfaces the storage-level uniqueness constraint
// on (mentorId, date, timeSlot) for active sessions.
var ErrDuplicateActiveSession = errors.New("an active session already holds this slot and date")

func (r *MongoSessionRepo) GetByID(ctx context.Context, id string) (*models.Session, error) {
	var session models.Session
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session %s: %w", id, err)
	}
	return &session, nil
}

func (r *MongoSessionRepo) findOne(ctx context.Context, filter bson.M) (*models.Session, error) {
	var session models.Session
	err := r.coll.FindOne(ctx, filter).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session query failed: %w", err)
	}
	return &session, nil
}

func (r *MongoSessionRepo) FindConflicting(ctx context.Context, mentorID, date, timeSlot string, statuses []string) (*models.Session, error) {
	return r.findOne(ctx, bson.M{
		"mentorId": mentorID,
		"date":     date,
		"timeSlot": timeSlot,
		"status":   bson.M{"$in": statuses},
	})
}

func (r *MongoSessionRepo) FindActiveForMentee(ctx context.Context, menteeID string, statuses []string) (*models.Session, error) {
	return r.findOne(ctx, bson.M{
		"menteeId": menteeID,
		"status":   bson.M{"$in": statuses},
	})
}

func (r *MongoSessionRepo) FindUpcomingForSlot(ctx context.Context, mentorID, day, timeSlot, fromDate string, statuses []string) (*models.Session, error) {
	return r.findOne(ctx, bson.M{
		"mentorId": mentorID,
		"day":      day,
		"timeSlot": timeSlot,
		"date":     bson.M{"$gte": fromDate},
		"status":   bson.M{"$in": statuses},
	})
}

func (r *MongoSessionRepo) UpdateStatus(ctx context.Context, id string, expected []string, next string) (*models.Session, error) {
	filter := bson.M{
		"id":     id,
		"status": bson.M{"$in": expected},
	}
	update := bson.M{"$set": bson.M{
		"status":    next,
		"updatedAt": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var session models.Session
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update session %s status: %w", id, err)
	}
	return &session, nil
}

func (r *MongoSessionRepo) SetMeetingLink(ctx context.Context, id, link string) error {
	update := bson.M{"$set": bson.M{
		"meetingLink": link,
		"updatedAt":   time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set meeting link on session %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("session %s not found", id)
	}
	return nil
}

func (r *MongoSessionRepo) AttachReview(ctx context.Context, sessionID, reviewID string) error {
	update := bson.M{"$set": bson.M{
		"reviewId":  reviewID,
		"updatedAt": time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": sessionID}, update)
	if err != nil {
		return fmt.Errorf("failed to attach review to session %s: %w", sessionID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("session %s not found", sessionID)
	}
	return nil
}

func (r *MongoSessionRepo) list(ctx context.Context, filter bson.M, fromDate string) ([]models.Session, error) {
	sort := bson.D{{Key: "date", Value: -1}, {Key: "timeSlot", Value: 1}}
	if fromDate != "" {
		filter["date"] = bson.M{"$gte": fromDate}
		sort = bson.D{{Key: "date", Value: 1}, {Key: "timeSlot", Value: 1}}
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("session list query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}
	return sessions, nil
}

func (r *MongoSessionRepo) ListForMentee(ctx context.Context, menteeID string, statuses []string, fromDate string) ([]models.Session, error) {
	return r.list(ctx, bson.M{"menteeId": menteeID, "status": bson.M{"$in": statuses}}, fromDate)
}

func (r *MongoSessionRepo) ListForMentor(ctx context.Context, mentorID string, statuses []string, fromDate string) ([]models.Session, error) {
	return r.list(ctx, bson.M{"mentorId": mentorID, "status": bson.M{"$in": statuses}}, fromDate)
}

func (r *MongoSessionRepo) ListPendingBefore(ctx context.Context, date string) ([]models.Session, error) {
	return r.list(ctx, bson.M{"status": models.SessionPending, "date": bson.M{"$lt": date}}, "")
}

func (r *MongoSessionRepo) ListPendingOn(ctx context.Context, date string) ([]models.Session, error) {
	return r.list(ctx, bson.M{"status": models.SessionPending, "date": date}, "")
}
