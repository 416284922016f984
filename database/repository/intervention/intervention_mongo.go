package interventionRepo

import (
	"context"
	"fmt"
	"time"

	"futureclim/database"
	"futureclim/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoInterventionRepo implements InterventionRepository using MongoDB.
type MongoInterventionRepo struct {
	coll *mongo.Collection
}

// NewMongoInterventionRepo creates a new instance of InterventionRepository using MongoDB.
func NewMongoInterventionRepo() InterventionRepository {
	return &MongoInterventionRepo{coll: database.Collection("interventions")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoInterventionRepo) GetAll() ([]models.Intervention, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve interventions: %w", err)
	}
	defer cursor.Close(ctx)
	var interventions []models.Intervention
	if err := cursor.All(ctx, &interventions); err != nil {
		return nil, fmt.Errorf("failed to decode interventions: %w", err)
	}
	return interventions, nil
}

func (r *MongoInterventionRepo) GetByID(id string) (*models.Intervention, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var intervention models.Intervention
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&intervention); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch intervention with id %s: %w", id, err)
	}
	return &intervention, nil
}

func (r *MongoInterventionRepo) Create(intervention *models.Intervention) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, intervention); err != nil {
		return fmt.Errorf("failed to create intervention: %w", err)
	}
	return nil
}

func (r *MongoInterventionRepo) Replace(intervention *models.Intervention) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": intervention.ID}, intervention)
	if err != nil {
		return fmt.Errorf("failed to update intervention with id %s: %w", intervention.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("intervention with id %s not found", intervention.ID)
	}
	return nil
}
