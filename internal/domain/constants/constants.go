// Package constants defines the string values recognised in configuration.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Record store drivers
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Position store backends
const (
	ProximityBackendMemory   = "memory"
	ProximityBackendRedis    = "redis"
	ProximityBackendMongo    = "mongo"
	ProximityBackendPostgres = "postgres"
)

// Search history stores
const (
	HistoryStorePostgres = "postgres"
	HistoryStoreMongo    = "mongo"
	HistoryStoreMemory   = "memory"
)

// Broadcast providers
const (
	BroadcastProviderLocal     = "local"
	BroadcastProviderGoogle    = "google"
	BroadcastProviderRabbitMQ  = "rabbitmq"
	BroadcastProviderLocalHTTP = "localhttp"
)

// Telemetry exporters
const (
	TelemetryExporterStdout = "stdout"
	TelemetryExporterOTLP   = "otlp"
)
