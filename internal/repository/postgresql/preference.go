package postgresql

import (
	"context"

	"github.com/mealdash/provider-service/internal/db"
	"github.com/mealdash/provider-service/internal/repository"
	"github.com/mealdash/provider-service/internal/storage"
)

type PreferenceRepo struct {
	db db.DB
}

func NewPreferenceRepo(db db.DB) storage.PreferenceRepository {
	return &PreferenceRepo{db: db}
}

func (r *PreferenceRepo) GetByProvider(ctx context.Context, providerID string) ([]*repository.MealPreference, error) {
	var prefs []*repository.MealPreference
	err := r.db.Select(ctx, &prefs, `
        SELECT * FROM meal_preferences
        WHERE provider_id = $1
        ORDER BY meal_type ASC
    `, providerID)
	return prefs, err
}
