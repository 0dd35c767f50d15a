package mongodb

import (
	"context"
	"time"

	"vendorradar/internal/domain/entity"
	"vendorradar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const historyCollection = "search_histories"

// historyDocument keeps one customer's log as a single array, newest first.
type historyDocument struct {
	CustomerID string         `bson:"_id"`
	Entries    []historyEntry `bson:"entries"`
}

type historyEntry struct {
	Query        string    `bson:"query"`
	Coordinates  []float64 `bson:"coordinates,omitempty"`
	Timestamp    time.Time `bson:"timestamp"`
	ResultsCount int       `bson:"resultsCount"`
}

type historyRepository struct {
	col *mongo.Collection
}

// NewSearchHistoryRepository is the constructor for the MongoDB search history store.
func NewSearchHistoryRepository(db *mongo.Database) repository.SearchHistoryRepository {
	return &historyRepository{col: db.Collection(historyCollection)}
}

// PrependEntry relies on $push with $position and $slice so the cap holds atomically.
func (repo *historyRepository) PrependEntry(ctx context.Context, customerID uuid.UUID, entry entity.SearchHistoryEntry, limit int) error {
	filter := bson.M{"_id": customerID.String()}
	update := bson.M{
		"$push": bson.M{
			"entries": bson.M{
				"$each":     []historyEntry{fromHistoryDomain(entry)},
				"$position": 0,
				"$slice":    limit,
			},
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := repo.col.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.Wrap(err, "failed to prepend search history entry")
	}

	return nil
}

func (repo *historyRepository) RecentEntries(ctx context.Context, customerID uuid.UUID, limit int) ([]entity.SearchHistoryEntry, error) {
	opts := options.FindOne().SetProjection(bson.M{"entries": bson.M{"$slice": limit}})

	var doc historyDocument
	err := repo.col.FindOne(ctx, bson.M{"_id": customerID.String()}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []entity.SearchHistoryEntry{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load search history")
	}

	entries := make([]entity.SearchHistoryEntry, 0, len(doc.Entries))
	for _, entryDoc := range doc.Entries {
		entries = append(entries, toHistoryDomain(entryDoc))
	}

	return entries, nil
}

func fromHistoryDomain(entry entity.SearchHistoryEntry) historyEntry {
	doc := historyEntry{
		Query:        entry.Query,
		Timestamp:    entry.Timestamp.UTC(),
		ResultsCount: entry.ResultsCount,
	}
	if entry.Coordinates != nil {
		doc.Coordinates = []float64{entry.Coordinates.Lon(), entry.Coordinates.Lat()}
	}

	return doc
}

func toHistoryDomain(doc historyEntry) entity.SearchHistoryEntry {
	entry := entity.SearchHistoryEntry{
		Query:        doc.Query,
		Timestamp:    doc.Timestamp,
		ResultsCount: doc.ResultsCount,
	}
	if len(doc.Coordinates) == 2 {
		entry.Coordinates = &orb.Point{doc.Coordinates[0], doc.Coordinates[1]}
	}

	return entry
}
