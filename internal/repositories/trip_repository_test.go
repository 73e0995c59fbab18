package repositories_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamio/internal/models/db_models"
	"roamio/internal/repositories"
	"roamio/pkg/utils"
)

func tripFixture(destination string) db_models.TripRecord {
	return db_models.TripRecord{
		Origin:        "Hyderabad, India",
		Destination:   destination,
		Days:          5,
		Budget:        "Moderate",
		TravelerType:  "Family",
		Interests:     []string{"Sightseeing", "Food"},
		GeneratedAt:   1735689600.25,
		ItineraryText: "Day 1: Visit Bahu Fort.",
	}
}

func TestTripRepository_Load_missingFileCreatesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved_trips.json")
	repo := repositories.NewTripRepository(path)

	trips, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, trips)
	assert.Empty(t, trips)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestTripRepository_Load_createsParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "trips", "saved_trips.json")
	repo := repositories.NewTripRepository(path)

	_, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestTripRepository_Load_emptyFileIsEmptySequence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved_trips.json")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o644))
	repo := repositories.NewTripRepository(path)

	trips, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestTripRepository_Load_malformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved_trips.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"destination": `), 0o644))
	repo := repositories.NewTripRepository(path)

	_, err := repo.Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrTripStore)
	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestTripRepository_AppendThenLoad_keepsOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved_trips.json")
	repo := repositories.NewTripRepository(path)
	ctx := context.Background()

	const n = 4
	for i := 0; i < n; i++ {
		require.NoError(t, repo.Append(ctx, tripFixture(fmt.Sprintf("City %d", i))))
	}

	trips, err := repo.Load(ctx)

	require.NoError(t, err)
	require.Len(t, trips, n)
	for i, trip := range trips {
		assert.Equal(t, fmt.Sprintf("City %d", i), trip.Destination)
	}
	assert.Equal(t, tripFixture("City 0"), trips[0])
}

// TestTripRepository_Append_fileFormat pins the on-disk layout: a pretty-printed
// array using the saved trips field names.
func TestTripRepository_Append_fileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved_trips.json")
	repo := repositories.NewTripRepository(path)

	require.NoError(t, repo.Append(context.Background(), tripFixture("Jammu, India")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[\n  {\n    \"from\": \"Hyderabad, India\",")

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	for _, key := range []string{"from", "destination", "days", "budget", "pax", "interests", "generated_at", "itinerary_text"} {
		assert.Contains(t, raw[0], key)
	}
	assert.NotContains(t, raw[0], "id")

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

// TestTripRepository_Load_legacyFile reads a file with no ids and float timestamps.
func TestTripRepository_Load_legacyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved_trips.json")
	legacy := `[
  {
    "from": "Hyderabad, India",
    "destination": "Jammu, India",
    "days": 5,
    "budget": "Moderate",
    "pax": "Family",
    "interests": ["Sightseeing", "Food"],
    "generated_at": 1735689600.123,
    "itinerary_text": "Day 1: Visit Bahu Fort."
  }
]`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))
	repo := repositories.NewTripRepository(path)

	trips, err := repo.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "Family", trips[0].TravelerType)
	assert.Empty(t, trips[0].ID)
}

func TestTripRepository_Append_malformedStoreIsNotOverwritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved_trips.json")
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o644))
	repo := repositories.NewTripRepository(path)

	err := repo.Append(context.Background(), tripFixture("Jammu, India"))

	require.ErrorIs(t, err, utils.ErrTripStore)
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "not json", string(data))
}

func TestTripRepository_Load_cancelledContext(t *testing.T) {
	repo := repositories.NewTripRepository(filepath.Join(t.TempDir(), "saved_trips.json"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Load(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
