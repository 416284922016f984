package siteRepo

import (
	"context"
	"fmt"
	"time"

	"futureclim/database"
	"futureclim/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSiteRepo implements SiteRepository using MongoDB.
type MongoSiteRepo struct {
	coll *mongo.Collection
}

// NewMongoSiteRepo creates a new instance of SiteRepository using MongoDB.
func NewMongoSiteRepo() SiteRepository {
	return &MongoSiteRepo{coll: database.Collection("sites")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoSiteRepo) GetAll() ([]models.Site, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve sites: %w", err)
	}
	defer cursor.Close(ctx)
	var sites []models.Site
	if err := cursor.All(ctx, &sites); err != nil {
		return nil, fmt.Errorf("failed to decode sites: %w", err)
	}
	return sites, nil
}

func (r *MongoSiteRepo) GetByID(id string) (*models.Site, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var site models.Site
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&site); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch site with id %s: %w", id, err)
	}
	return &site, nil
}

func (r *MongoSiteRepo) GetByClientID(clientID string) ([]models.Site, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"client_id": clientID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve sites for client %s: %w", clientID, err)
	}
	defer cursor.Close(ctx)
	var sites []models.Site
	if err := cursor.All(ctx, &sites); err != nil {
		return nil, fmt.Errorf("failed to decode sites: %w", err)
	}
	return sites, nil
}
