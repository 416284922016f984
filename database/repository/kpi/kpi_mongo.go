package kpiRepo

import (
	"context"
	"fmt"
	"time"

	"futureclim/database"
	"futureclim/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoKPIRepo implements KPIRepository using MongoDB.
type MongoKPIRepo struct {
	coll *mongo.Collection
}

// NewMongoKPIRepo creates a new instance of KPIRepository using MongoDB.
func NewMongoKPIRepo() KPIRepository {
	return &MongoKPIRepo{coll: database.Collection("kpis")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoKPIRepo) GetAll() ([]models.KPI, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve KPIs: %w", err)
	}
	defer cursor.Close(ctx)
	var kpis []models.KPI
	if err := cursor.All(ctx, &kpis); err != nil {
		return nil, fmt.Errorf("failed to decode KPIs: %w", err)
	}
	return kpis, nil
}

func (r *MongoKPIRepo) ReplaceAll(kpis []models.KPI) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear KPI snapshot: %w", err)
	}
	docs := make([]any, len(kpis))
	for i := range kpis {
		docs[i] = kpis[i]
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert KPI snapshot: %w", err)
	}
	return nil
}
