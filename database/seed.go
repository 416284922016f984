package database

import (
	"context"
	"fmt"
	"time"

	"futureclim/config"
	"futureclim/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Seed populates empty collections with the demo dataset and ensures the
// admin account exists. Non-empty collections are left untouched so a
// restart never clobbers live data.
func Seed(logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := seedAdminUser(ctx); err != nil {
		return err
	}

	seeded := 0
	for name, docs := range demoCollections() {
		coll := Collection(name)
		count, err := coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			return fmt.Errorf("failed to count %s: %w", name, err)
		}
		if count > 0 || len(docs) == 0 {
			continue
		}
		if _, err := coll.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("failed to seed %s: %w", name, err)
		}
		seeded++
	}
	if seeded > 0 {
		logger.Info("Seeded demo dataset", zap.Int("collections", seeded))
	}
	return nil
}

func seedAdminUser(ctx context.Context) error {
	coll := Collection("users")
	count, err := coll.CountDocuments(ctx, bson.M{"email": config.AppConfig.AdminEmail})
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(config.AppConfig.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := models.User{
		ID:           uuid.NewString(),
		Email:        config.AppConfig.AdminEmail,
		Name:         "Ahmed Benali",
		Role:         models.RoleAdmin,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if _, err := coll.InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("failed to insert admin user: %w", err)
	}
	return nil
}

func demoCollections() map[string][]any {
	created := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	scheduled := time.Date(2025, 1, 16, 14, 0, 0, 0, time.UTC)

	return map[string][]any{
		"clients": {
			models.Client{ID: "1", Name: "Sonatrach", Contact: "Mohamed Kara", Phone: "+213 555 123 456"},
			models.Client{ID: "2", Name: "Air Algérie", Contact: "Fatima Bensalem", Phone: "+213 555 789 012"},
			models.Client{ID: "3", Name: "Sonelgaz", Contact: "Youcef Amrani", Phone: "+213 555 345 678"},
		},
		"sites": {
			models.Site{ID: "1", Name: "Siège Social Alger", Address: "Rue Didouche Mourad, Alger", ClientID: "1"},
			models.Site{ID: "2", Name: "Aéroport Houari Boumediene", Address: "Dar El Beida, Alger", ClientID: "2"},
			models.Site{ID: "3", Name: "Centrale Électrique Oran", Address: "Zone Industrielle, Oran", ClientID: "3"},
		},
		"technicians": {
			models.Technician{ID: "1", Name: "Karim Messaoudi", Speciality: "Climatisation", Available: true, Phone: "+213 555 111 222"},
			models.Technician{ID: "2", Name: "Sara Boualem", Speciality: "Électricité", Available: false, Phone: "+213 555 333 444"},
			models.Technician{ID: "3", Name: "Omar Belhadj", Speciality: "Plomberie", Available: true, Phone: "+213 555 555 666"},
		},
		"interventions": {
			models.Intervention{
				ID:            "1",
				Title:         "Maintenance préventive climatisation",
				Description:   "Contrôle et nettoyage des unités de climatisation",
				ClientID:      "1",
				SiteID:        "1",
				Type:          models.TypePreventive,
				Priority:      models.PriorityMedium,
				Status:        models.StatusInProgress,
				AssignedTo:    "1",
				CreatedAt:     created,
				ScheduledDate: scheduled,
				Attachments:   []string{"maintenance-checklist.pdf"},
				Timeline: []models.TimelineEvent{
					{ID: "1", Type: models.EventCreated, Description: "Intervention créée", Timestamp: created, User: "Ahmed Benali"},
					{ID: "2", Type: models.EventAssigned, Description: "Assignée à Karim Messaoudi", Timestamp: created.Add(15 * time.Minute), User: "Ahmed Benali"},
				},
			},
		},
		"notifications": {
			models.Notification{
				ID:        "1",
				Title:     "Intervention urgente",
				Message:   "Nouvelle intervention priorité élevée assignée",
				Type:      models.NotificationWarning,
				Timestamp: created.Add(90 * time.Minute),
				Read:      false,
				ActionURL: "/interventions/2",
			},
			models.Notification{
				ID:        "2",
				Title:     "Rapport généré",
				Message:   "Rapport mensuel prêt pour téléchargement",
				Type:      models.NotificationSuccess,
				Timestamp: created.Add(-45 * time.Minute),
				Read:      false,
				ActionURL: "/reports",
			},
		},
		"kpis": {
			models.KPI{Label: "Interventions en cours", Value: 12, Change: 5, Trend: models.TrendUp},
			models.KPI{Label: "Interventions terminées", Value: 45, Change: -2, Trend: models.TrendDown},
			models.KPI{Label: "Temps moyen résolution", Value: 2.3, Change: 0.1, Trend: models.TrendStable},
			models.KPI{Label: "Satisfaction client", Value: 94, Change: 3, Trend: models.TrendUp},
		},
	}
}
