package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Storage selects where vendor, product and customer records live
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Proximity configures the vendor position store behind radius queries
	Proximity *ProximityConfig `json:"proximity" yaml:"proximity"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	Search *SearchConfig `json:"search" yaml:"search"`

	History *HistoryConfig `json:"history" yaml:"history"`

	Realtime *RealtimeConfig `json:"realtime" yaml:"realtime"`

	// Broadcast selects how realtime events fan out across instances
	Broadcast *BroadcastConfig `json:"broadcast" yaml:"broadcast"`

	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	RabbitMQ *RabbitMQConfig `json:"rabbitmq" yaml:"rabbitmq"`

	// Relay is the push endpoint server used by push-style broadcast providers
	Relay *RelayConfig `json:"relay" yaml:"relay"`

	Telemetry *TelemetryConfig `json:"telemetry" yaml:"telemetry"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
}

// StorageConfig picks the record store driver: "postgres" or "memory"
type StorageConfig struct {
	Driver string `json:"driver" yaml:"driver"`
}

// ProximityConfig defines the position store backend and query tuning
type ProximityConfig struct {
	// Backend is one of "memory", "redis", "mongo" or "postgres"
	Backend string `json:"backend" yaml:"backend"`

	// CandidatePadding widens the index-native query radius (1.1 = 10% wider)
	// before every candidate is rechecked with haversine
	CandidatePadding float64 `json:"candidatePadding" yaml:"candidatePadding"`

	// WarmOnStart rebuilds non-authoritative stores from vendor records at startup
	WarmOnStart bool `json:"warmOnStart" yaml:"warmOnStart"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	// GeoKey is the sorted set holding vendor positions
	GeoKey string `json:"geoKey" yaml:"geoKey"`
}

type MongoConfig struct {
	URI      string `json:"uri" yaml:"uri"`
	Database string `json:"database" yaml:"database"`
}

type SearchConfig struct {
	DefaultMaxDistanceKm float64 `json:"defaultMaxDistanceKm" yaml:"defaultMaxDistanceKm"`
	DefaultLimit         int     `json:"defaultLimit" yaml:"defaultLimit"`
	MaxLimit             int     `json:"maxLimit" yaml:"maxLimit"`
}

type HistoryConfig struct {
	// Store is one of "postgres", "mongo" or "memory"
	Store                  string   `json:"store" yaml:"store"`
	Cap                    int      `json:"cap" yaml:"cap"`
	SuggestionWindow       int      `json:"suggestionWindow" yaml:"suggestionWindow"`
	DefaultSuggestionLimit int      `json:"defaultSuggestionLimit" yaml:"defaultSuggestionLimit"`
	DefaultSuggestions     []string `json:"defaultSuggestions" yaml:"defaultSuggestions"`
}

type RealtimeConfig struct {
	// AutoActivateOnLocationReport flips an offline vendor to available when it streams a position
	AutoActivateOnLocationReport bool          `json:"autoActivateOnLocationReport" yaml:"autoActivateOnLocationReport"`
	SendBuffer                   int           `json:"sendBuffer" yaml:"sendBuffer"`
	PingInterval                 time.Duration `json:"pingInterval" yaml:"pingInterval"`
	PongWait                     time.Duration `json:"pongWait" yaml:"pongWait"`
	WriteWait                    time.Duration `json:"writeWait" yaml:"writeWait"`
	AllowedOrigins               []string      `json:"allowedOrigins" yaml:"allowedOrigins"`
}

type BroadcastConfig struct {
	// Provider is one of "local", "google", "rabbitmq" or "localhttp"
	Provider string `json:"provider" yaml:"provider"`
}

// PubSubConfig defines Pub/Sub configuration for the google and localhttp providers
type PubSubConfig struct {
	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`

	// SubscriptionID is this instance's pull subscription; empty means push delivery
	SubscriptionID string `json:"subscriptionId" yaml:"subscriptionId"`

	// LocalEndpoint receives simulated push messages (localhttp provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// VerifyPushAuth checks the OIDC token Google attaches to push requests
	VerifyPushAuth bool   `json:"verifyPushAuth" yaml:"verifyPushAuth"`
	PushAudience   string `json:"pushAudience" yaml:"pushAudience"`
}

type RabbitMQConfig struct {
	URL      string `json:"url" yaml:"url"`
	Exchange string `json:"exchange" yaml:"exchange"`
}

type RelayConfig struct {
	Port int `json:"port" yaml:"port"`
}

type TelemetryConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	// Exporter is "stdout" or "otlp"
	Exporter    string  `json:"exporter" yaml:"exporter"`
	Endpoint    string  `json:"endpoint" yaml:"endpoint"`
	SampleRatio float64 `json:"sampleRatio" yaml:"sampleRatio"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Env keys are aligned with the YAML casing, e.g. PROXIMITY_CANDIDATEPADDING -> proximity.candidatePadding
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills every optional section so callers never nil-check.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = 12
	}
	if cfg.Auth.AccessTokenTTL == 0 {
		cfg.Auth.AccessTokenTTL = 7 * 24 * time.Hour
	}
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "postgres"
	}
	if cfg.Proximity == nil {
		cfg.Proximity = &ProximityConfig{WarmOnStart: true}
	}
	if cfg.Proximity.Backend == "" {
		cfg.Proximity.Backend = "memory"
	}
	if cfg.Proximity.CandidatePadding < 1 {
		cfg.Proximity.CandidatePadding = 1.1
	}
	if cfg.Redis != nil && cfg.Redis.GeoKey == "" {
		cfg.Redis.GeoKey = "vendor:positions"
	}
	cfg.Search = withSearchDefaults(cfg.Search)
	cfg.History = withHistoryDefaults(cfg.History)
	cfg.Realtime = withRealtimeDefaults(cfg.Realtime)
	if cfg.Broadcast == nil {
		cfg.Broadcast = &BroadcastConfig{}
	}
	if cfg.Broadcast.Provider == "" {
		cfg.Broadcast.Provider = "local"
	}
	if cfg.RabbitMQ != nil && cfg.RabbitMQ.Exchange == "" {
		cfg.RabbitMQ.Exchange = "vendor_events"
	}
	if cfg.Telemetry == nil {
		cfg.Telemetry = &TelemetryConfig{}
	}
	if cfg.Telemetry.SampleRatio <= 0 {
		cfg.Telemetry.SampleRatio = 1
	}
}

func withSearchDefaults(search *SearchConfig) *SearchConfig {
	if search == nil {
		search = &SearchConfig{}
	}
	if search.DefaultMaxDistanceKm <= 0 {
		search.DefaultMaxDistanceKm = 10
	}
	if search.DefaultLimit <= 0 {
		search.DefaultLimit = 20
	}
	if search.MaxLimit <= 0 {
		search.MaxLimit = 50
	}

	return search
}

func withHistoryDefaults(history *HistoryConfig) *HistoryConfig {
	if history == nil {
		history = &HistoryConfig{}
	}
	if history.Store == "" {
		history.Store = "postgres"
	}
	if history.Cap <= 0 {
		history.Cap = 50
	}
	if history.SuggestionWindow <= 0 {
		history.SuggestionWindow = 10
	}
	if history.DefaultSuggestionLimit <= 0 {
		history.DefaultSuggestionLimit = 5
	}
	if len(history.DefaultSuggestions) == 0 {
		history.DefaultSuggestions = []string{"fruits", "vegetables", "dairy", "snacks"}
	}

	return history
}

func withRealtimeDefaults(rt *RealtimeConfig) *RealtimeConfig {
	if rt == nil {
		rt = &RealtimeConfig{AutoActivateOnLocationReport: true}
	}
	if rt.SendBuffer <= 0 {
		rt.SendBuffer = 256
	}
	if rt.PongWait <= 0 {
		rt.PongWait = 60 * time.Second
	}
	if rt.PingInterval <= 0 || rt.PingInterval >= rt.PongWait {
		rt.PingInterval = rt.PongWait * 9 / 10
	}
	if rt.WriteWait <= 0 {
		rt.WriteWait = 10 * time.Second
	}

	return rt
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
