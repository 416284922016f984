package interventionRepo

import (
	"fmt"
	"time"

	"futureclim/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListScheduledBetween returns interventions whose scheduled date falls in
// [start, end), ordered by scheduled date ascending.
func (r *MongoInterventionRepo) ListScheduledBetween(start, end time.Time) ([]models.Intervention, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"scheduled_date": bson.M{"$gte": start, "$lt": end}}
	opts := options.Find().SetSort(bson.D{{Key: "scheduled_date", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query scheduled interventions: %w", err)
	}
	defer cursor.Close(ctx)
	var interventions []models.Intervention
	if err := cursor.All(ctx, &interventions); err != nil {
		return nil, fmt.Errorf("failed to decode interventions: %w", err)
	}
	return interventions, nil
}

// ListByPriorityIn returns interventions matching any of the given
// priorities, in creation order.
func (r *MongoInterventionRepo) ListByPriorityIn(priorities []models.InterventionPriority) ([]models.Intervention, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"priority": bson.M{"$in": priorities}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query interventions by priority: %w", err)
	}
	defer cursor.Close(ctx)
	var interventions []models.Intervention
	if err := cursor.All(ctx, &interventions); err != nil {
		return nil, fmt.Errorf("failed to decode interventions: %w", err)
	}
	return interventions, nil
}

type statusCount struct {
	ID    string `bson:"_id"`
	Count int64  `bson:"count"`
}

func (r *MongoInterventionRepo) groupCounts(field string, match bson.M) ([]statusCount, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := []bson.M{}
	if len(match) > 0 {
		pipeline = append(pipeline, bson.M{"$match": match})
	}
	pipeline = append(pipeline, bson.M{"$group": bson.M{"_id": "$" + field, "count": bson.M{"$sum": 1}}})

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregation on %s failed: %w", field, err)
	}
	defer cursor.Close(ctx)
	var counts []statusCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode aggregation result: %w", err)
	}
	return counts, nil
}

// CountByStatus returns the number of interventions per status.
func (r *MongoInterventionRepo) CountByStatus() (map[models.InterventionStatus]int64, error) {
	counts, err := r.groupCounts("status", nil)
	if err != nil {
		return nil, err
	}
	out := make(map[models.InterventionStatus]int64, len(counts))
	for _, c := range counts {
		out[models.InterventionStatus(c.ID)] = c.Count
	}
	return out, nil
}

// CountByPriority returns the number of interventions per priority.
func (r *MongoInterventionRepo) CountByPriority() (map[models.InterventionPriority]int64, error) {
	counts, err := r.groupCounts("priority", nil)
	if err != nil {
		return nil, err
	}
	out := make(map[models.InterventionPriority]int64, len(counts))
	for _, c := range counts {
		out[models.InterventionPriority(c.ID)] = c.Count
	}
	return out, nil
}

// CountByStatusBetween returns per-status counts for interventions created
// in [start, end).
func (r *MongoInterventionRepo) CountByStatusBetween(start, end time.Time) (map[models.InterventionStatus]int64, error) {
	match := bson.M{"created_at": bson.M{"$gte": start, "$lt": end}}
	counts, err := r.groupCounts("status", match)
	if err != nil {
		return nil, err
	}
	out := make(map[models.InterventionStatus]int64, len(counts))
	for _, c := range counts {
		out[models.InterventionStatus(c.ID)] = c.Count
	}
	return out, nil
}
