package mongodb

import (
	"context"
	"math"
	"time"

	"vendorradar/config"
	"vendorradar/internal/domain/lifecycle"
	"vendorradar/internal/domain/service"
	"vendorradar/internal/geo"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const positionCollection = "vendor_positions"

// geoJSONPoint is the GeoJSON shape a 2dsphere index expects.
type geoJSONPoint struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"` // [longitude, latitude]
}

type positionDocument struct {
	VendorID  string       `bson:"_id"`
	Location  geoJSONPoint `bson:"location"`
	UpdatedAt time.Time    `bson:"updatedAt"`
}

type positionStore struct {
	col     *mongo.Collection
	padding float64
}

var _ service.PositionStoreResetter = (*positionStore)(nil)

// PositionStoreParams defines the required parameters
type PositionStoreParams struct {
	fx.In
	fx.Lifecycle

	DB     *mongo.Database
	Config *config.Config
}

// NewPositionStore is the constructor for the 2dsphere position store.
// The index is created on start.
func NewPositionStore(params PositionStoreParams) service.PositionStore {
	store := newPositionStore(params.DB, params.Config)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return store.ensureIndexes(ctx)
		},
	})

	return store
}

func newPositionStore(db *mongo.Database, cfg *config.Config) *positionStore {
	padding := 1.0
	if cfg.Proximity != nil && cfg.Proximity.CandidatePadding > 1 {
		padding = cfg.Proximity.CandidatePadding
	}

	return &positionStore{col: db.Collection(positionCollection), padding: padding}
}

func (s *positionStore) ensureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "location", Value: "2dsphere"}},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create 2dsphere index")
	}

	return nil
}

func (s *positionStore) Put(ctx context.Context, position service.VendorPosition) error {
	doc := fromVendorPosition(position)

	opts := options.Replace().SetUpsert(true)
	if _, err := s.col.ReplaceOne(ctx, bson.M{"_id": doc.VendorID}, doc, opts); err != nil {
		return errors.Wrap(err, "failed to upsert vendor position")
	}

	return nil
}

func (s *positionStore) Get(ctx context.Context, vendorIDs []uuid.UUID) (map[uuid.UUID]service.VendorPosition, error) {
	found := make(map[uuid.UUID]service.VendorPosition, len(vendorIDs))
	if len(vendorIDs) == 0 {
		return found, nil
	}

	ids := make([]string, len(vendorIDs))
	for i, id := range vendorIDs {
		ids[i] = id.String()
	}

	positions, err := s.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	for _, position := range positions {
		found[position.VendorID] = position
	}

	return found, nil
}

// Candidates runs $centerSphere, whose radius is in radians.
func (s *positionStore) Candidates(ctx context.Context, center orb.Point, radiusKm float64) ([]service.VendorPosition, error) {
	radians := math.Min(geo.KmToRadians(radiusKm*s.padding), math.Pi)

	filter := bson.M{
		"location": bson.M{
			"$geoWithin": bson.M{
				"$centerSphere": bson.A{bson.A{center.Lon(), center.Lat()}, radians},
			},
		},
	}

	return s.find(ctx, filter)
}

// Reset drops every stored position; the index survives.
func (s *positionStore) Reset(ctx context.Context) error {
	if _, err := s.col.DeleteMany(ctx, bson.M{}); err != nil {
		return errors.Wrap(err, "failed to reset vendor positions")
	}

	return nil
}

func (s *positionStore) find(ctx context.Context, filter bson.M) ([]service.VendorPosition, error) {
	cur, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query vendor positions")
	}
	defer cur.Close(ctx)

	var positions []service.VendorPosition
	for cur.Next(ctx) {
		var doc positionDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode vendor position")
		}

		position, ok := toVendorPosition(doc)
		if ok {
			positions = append(positions, position)
		}
	}

	if err := cur.Err(); err != nil {
		return nil, errors.Wrap(err, "vendor position cursor")
	}

	return positions, nil
}

func fromVendorPosition(position service.VendorPosition) positionDocument {
	return positionDocument{
		VendorID: position.VendorID.String(),
		Location: geoJSONPoint{
			Type:        "Point",
			Coordinates: []float64{position.Point.Lon(), position.Point.Lat()},
		},
		UpdatedAt: position.UpdatedAt.UTC(),
	}
}

func toVendorPosition(doc positionDocument) (service.VendorPosition, bool) {
	id, err := uuid.Parse(doc.VendorID)
	if err != nil || len(doc.Location.Coordinates) != 2 {
		return service.VendorPosition{}, false
	}

	return service.VendorPosition{
		VendorID:  id,
		Point:     orb.Point{doc.Location.Coordinates[0], doc.Location.Coordinates[1]},
		UpdatedAt: doc.UpdatedAt,
	}, true
}
