package geoindex

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"vendorradar/internal/domain/service"
	"vendorradar/internal/geo"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Redis refuses GEOADD outside this latitude band.
const redisMaxLatitude = 85.05112878

// storedPosition is the exact position kept in the side hash. GEOPOS values are
// geohash-quantized, so distances are always computed from this record.
type storedPosition struct {
	Lon       float64 `json:"lon"`
	Lat       float64 `json:"lat"`
	UpdatedAt int64   `json:"updatedAt"`
}

// RedisStore keeps positions in a GEO sorted set.
// Keys: <geoKey> (GEO set), <geoKey>:points (exact positions), <geoKey>:polar
// (vendors beyond the GEO latitude band, always returned as candidates).
type RedisStore struct {
	client    *redis.Client
	geoKey    string
	pointsKey string
	polarKey  string
	padding   float64
}

var (
	_ service.PositionStore         = (*RedisStore)(nil)
	_ service.PositionStoreResetter = (*RedisStore)(nil)
)

// NewRedisStore creates a store on the given key. padding widens GEORADIUS queries.
func NewRedisStore(client *redis.Client, geoKey string, padding float64) *RedisStore {
	if padding < 1 {
		padding = 1
	}

	return &RedisStore{
		client:    client,
		geoKey:    geoKey,
		pointsKey: geoKey + ":points",
		polarKey:  geoKey + ":polar",
		padding:   padding,
	}
}

func (s *RedisStore) Put(ctx context.Context, position service.VendorPosition) error {
	member := position.VendorID.String()
	data, err := json.Marshal(storedPosition{
		Lon:       position.Point.Lon(),
		Lat:       position.Point.Lat(),
		UpdatedAt: position.UpdatedAt.UnixNano(),
	})
	if err != nil {
		return errors.Wrap(err, "marshal position")
	}

	pipe := s.client.TxPipeline()
	if isPolar(position.Point) {
		pipe.ZRem(ctx, s.geoKey, member)
		pipe.SAdd(ctx, s.polarKey, member)
	} else {
		pipe.GeoAdd(ctx, s.geoKey, &redis.GeoLocation{
			Name:      member,
			Longitude: position.Point.Lon(),
			Latitude:  position.Point.Lat(),
		})
		pipe.SRem(ctx, s.polarKey, member)
	}
	pipe.HSet(ctx, s.pointsKey, member, data)

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "redis put position")
	}

	return nil
}

func (s *RedisStore) Get(ctx context.Context, vendorIDs []uuid.UUID) (map[uuid.UUID]service.VendorPosition, error) {
	if len(vendorIDs) == 0 {
		return map[uuid.UUID]service.VendorPosition{}, nil
	}

	members := make([]string, len(vendorIDs))
	for i, id := range vendorIDs {
		members[i] = id.String()
	}

	return s.load(ctx, members)
}

func (s *RedisStore) Candidates(ctx context.Context, center orb.Point, radiusKm float64) ([]service.VendorPosition, error) {
	var members []string

	if isPolar(center) {
		all, err := s.client.HKeys(ctx, s.pointsKey).Result()
		if err != nil {
			return nil, errors.Wrap(err, "redis hkeys")
		}
		members = all
	} else {
		locations, err := s.client.GeoRadius(ctx, s.geoKey, center.Lon(), center.Lat(), &redis.GeoRadiusQuery{
			Radius: geo.KmToMeters(radiusKm * s.padding),
			Unit:   "m",
		}).Result()
		if err != nil {
			return nil, errors.Wrap(err, "redis georadius")
		}

		polar, err := s.client.SMembers(ctx, s.polarKey).Result()
		if err != nil {
			return nil, errors.Wrap(err, "redis smembers")
		}

		members = make([]string, 0, len(locations)+len(polar))
		for _, location := range locations {
			members = append(members, location.Name)
		}
		members = append(members, polar...)
	}

	if len(members) == 0 {
		return nil, nil
	}

	found, err := s.load(ctx, members)
	if err != nil {
		return nil, err
	}

	candidates := make([]service.VendorPosition, 0, len(found))
	for _, position := range found {
		candidates = append(candidates, position)
	}

	return candidates, nil
}

// Reset drops all three keys.
func (s *RedisStore) Reset(ctx context.Context) error {
	if err := s.client.Del(ctx, s.geoKey, s.pointsKey, s.polarKey).Err(); err != nil {
		return errors.Wrap(err, "redis reset positions")
	}

	return nil
}

func (s *RedisStore) load(ctx context.Context, members []string) (map[uuid.UUID]service.VendorPosition, error) {
	values, err := s.client.HMGet(ctx, s.pointsKey, members...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "redis hmget positions")
	}

	found := make(map[uuid.UUID]service.VendorPosition, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		id, err := uuid.Parse(members[i])
		if err != nil {
			continue
		}

		var stored storedPosition
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			return nil, errors.Wrapf(err, "decode position of %s", members[i])
		}

		found[id] = service.VendorPosition{
			VendorID:  id,
			Point:     orb.Point{stored.Lon, stored.Lat},
			UpdatedAt: time.Unix(0, stored.UpdatedAt).UTC(),
		}
	}

	return found, nil
}

func isPolar(p orb.Point) bool {
	return math.Abs(p.Lat()) > redisMaxLatitude
}
