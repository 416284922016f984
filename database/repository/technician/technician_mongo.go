package technicianRepo

import (
	"context"
	"fmt"
	"time"

	"futureclim/database"
	"futureclim/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTechnicianRepo implements TechnicianRepository using MongoDB.
type MongoTechnicianRepo struct {
	coll *mongo.Collection
}

// NewMongoTechnicianRepo creates a new instance of TechnicianRepository using MongoDB.
func NewMongoTechnicianRepo() TechnicianRepository {
	return &MongoTechnicianRepo{coll: database.Collection("technicians")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoTechnicianRepo) GetAll() ([]models.Technician, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve technicians: %w", err)
	}
	defer cursor.Close(ctx)
	var technicians []models.Technician
	if err := cursor.All(ctx, &technicians); err != nil {
		return nil, fmt.Errorf("failed to decode technicians: %w", err)
	}
	return technicians, nil
}

func (r *MongoTechnicianRepo) GetByID(id string) (*models.Technician, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var tech models.Technician
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tech); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch technician with id %s: %w", id, err)
	}
	return &tech, nil
}

func (r *MongoTechnicianRepo) SetAvailability(id string, available bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"available": available}})
	if err != nil {
		return fmt.Errorf("failed to update technician with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("technician with id %s not found", id)
	}
	return nil
}
