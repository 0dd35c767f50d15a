package mongodb

import (
	"testing"
	"time"

	"vendorradar/internal/domain/entity"
	"vendorradar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestPositionDocument_IsGeoJSONLonLat(t *testing.T) {
	t.Parallel()

	vendorID := uuid.New()
	position := service.VendorPosition{
		VendorID:  vendorID,
		Point:     orb.Point{-74.0, 40.71},
		UpdatedAt: time.Date(2026, 5, 1, 8, 30, 0, 0, time.UTC),
	}

	raw, err := bson.Marshal(fromVendorPosition(position))
	require.NoError(t, err)

	var generic bson.M
	require.NoError(t, bson.Unmarshal(raw, &generic))
	location, ok := generic["location"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "Point", location["type"])
	assert.Equal(t, bson.A{-74.0, 40.71}, location["coordinates"])

	var doc positionDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))
	back, ok := toVendorPosition(doc)
	require.True(t, ok)
	assert.Equal(t, vendorID, back.VendorID)
	assert.Equal(t, position.Point, back.Point)
}

func TestToVendorPosition_RejectsMalformedDocuments(t *testing.T) {
	t.Parallel()

	_, ok := toVendorPosition(positionDocument{VendorID: "not-a-uuid", Location: geoJSONPoint{Coordinates: []float64{1, 2}}})
	assert.False(t, ok)

	_, ok = toVendorPosition(positionDocument{VendorID: uuid.NewString(), Location: geoJSONPoint{Coordinates: []float64{1}}})
	assert.False(t, ok)
}

func TestHistoryEntryMapping_KeepsOptionalCoordinates(t *testing.T) {
	t.Parallel()

	withPoint := entity.SearchHistoryEntry{
		Query:        "red apples",
		Coordinates:  &orb.Point{121.5, 25.03},
		Timestamp:    time.Now().UTC().Truncate(time.Millisecond),
		ResultsCount: 3,
	}
	got := toHistoryDomain(fromHistoryDomain(withPoint))
	require.NotNil(t, got.Coordinates)
	assert.Equal(t, *withPoint.Coordinates, *got.Coordinates)
	assert.Equal(t, withPoint.Query, got.Query)

	withoutPoint := toHistoryDomain(fromHistoryDomain(entity.SearchHistoryEntry{Query: "milk"}))
	assert.Nil(t, withoutPoint.Coordinates)
}
