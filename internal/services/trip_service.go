package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
	"roamio/internal/repositories"
	"roamio/pkg/utils"
)

type TripServiceInterface interface {
	SaveTrip(ctx context.Context, trip db_models.TripRecord) (db_models.TripRecord, error)
	ListTrips(ctx context.Context, limit int) ([]db_models.TripRecord, error)
	GetTrip(ctx context.Context, id string) (db_models.TripRecord, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
	logger   *zap.Logger
}

func NewTripService(tripRepo repositories.TripRepository, logger *zap.Logger) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
		logger:   logger,
	}
}

// SaveTrip appends a trip to the store. Store failures are returned as-is:
// a save must never be dropped silently.
func (t *TripService) SaveTrip(ctx context.Context, trip db_models.TripRecord) (db_models.TripRecord, error) {
	if strings.TrimSpace(trip.Destination) == "" {
		return db_models.TripRecord{}, fmt.Errorf("%w: destination is required", utils.ErrInvalidTrip)
	}
	if trip.Days < 1 {
		return db_models.TripRecord{}, fmt.Errorf("%w: days must be at least 1", utils.ErrInvalidTrip)
	}
	if !lo.Contains(request_models.Budgets, request_models.Budget(trip.Budget)) {
		return db_models.TripRecord{}, fmt.Errorf("%w: budget must be one of %v", utils.ErrInvalidTrip, request_models.Budgets)
	}
	if !lo.Contains(request_models.TravelerTypes, request_models.TravelerType(trip.TravelerType)) {
		return db_models.TripRecord{}, fmt.Errorf("%w: pax must be one of %v", utils.ErrInvalidTrip, request_models.TravelerTypes)
	}
	if IsFailedItineraryText(trip.ItineraryText) {
		return db_models.TripRecord{}, fmt.Errorf("%w: itinerary text is a generation error", utils.ErrInvalidTrip)
	}

	// Client-supplied ids are ignored.
	trip.ID = uuid.New().String()
	if trip.GeneratedAt == 0 {
		trip.GeneratedAt = utils.NowEpochSeconds()
	}
	if trip.Interests == nil {
		trip.Interests = []string{}
	}

	if err := t.tripRepo.Append(ctx, trip); err != nil {
		t.logger.Error("failed to save trip", zap.String("destination", trip.Destination), zap.Error(err))
		return db_models.TripRecord{}, err
	}

	t.logger.Info("trip saved", zap.String("id", trip.ID), zap.String("destination", trip.Destination))
	return trip, nil
}

// ListTrips returns saved trips most recent first. limit <= 0 means all.
func (t *TripService) ListTrips(ctx context.Context, limit int) ([]db_models.TripRecord, error) {
	trips, err := t.tripRepo.Load(ctx)
	if err != nil {
		t.logger.Error("failed to load trips", zap.Error(err))
		return nil, err
	}

	if limit > 0 && len(trips) > limit {
		trips = trips[len(trips)-limit:]
	}

	return lo.Reverse(trips), nil
}

func (t *TripService) GetTrip(ctx context.Context, id string) (db_models.TripRecord, error) {
	trips, err := t.tripRepo.Load(ctx)
	if err != nil {
		t.logger.Error("failed to load trips", zap.Error(err))
		return db_models.TripRecord{}, err
	}

	trip, found := lo.Find(trips, func(trip db_models.TripRecord) bool {
		return trip.ID == id
	})
	if !found {
		return db_models.TripRecord{}, utils.ErrTripNotFound
	}

	return trip, nil
}
