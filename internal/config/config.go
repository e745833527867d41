package config

import (
	"fmt"

	pkgconfig "github.com/weiawesome/wes-io-live/ulid-service/pkg/config"
)

type Config struct {
	Server    ServerConfig
	GRPC      GRPCConfig
	Generator GeneratorConfig
	Entropy   EntropyConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type GRPCConfig struct {
	Host string
	Port int
}

type GeneratorConfig struct {
	Format   string
	MaxBatch int `mapstructure:"max_batch"`
}

type EntropyConfig struct {
	Source string
	Seed   int64
}

type LogConfig struct {
	Level  string
	Pretty bool
}

// EnvPrefix prefixes the automatic env keys, e.g. ULID_SERVER_HOST. The
// explicit bindings below (PORT, GRPC_PORT, ...) are used as written.
const EnvPrefix = "ULID"

// Load reads ./config/config.yaml (when present) and the environment.
func Load() (*Config, error) {
	return LoadFrom("./config")
}

// LoadFrom is Load with an explicit config directory.
func LoadFrom(dir string) (*Config, error) {
	v, err := pkgconfig.Load(pkgconfig.Options{Path: dir, Name: "config", EnvPrefix: EnvPrefix})
	if err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8090)
	v.SetDefault("grpc.host", "0.0.0.0")
	v.SetDefault("grpc.port", 50053)
	v.SetDefault("generator.format", "ulid")
	v.SetDefault("generator.max_batch", 1000)
	v.SetDefault("entropy.source", "crypto")
	v.SetDefault("entropy.seed", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// Override from environment
	v.BindEnv("server.port", "PORT")
	v.BindEnv("grpc.port", "GRPC_PORT")
	v.BindEnv("generator.format", "ULID_FORMAT")
	v.BindEnv("generator.max_batch", "ULID_MAX_BATCH")
	v.BindEnv("entropy.source", "ULID_ENTROPY")
	v.BindEnv("entropy.seed", "ULID_SEED")
	v.BindEnv("log.level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.Generator.MaxBatch < 1 {
		return nil, fmt.Errorf("generator.max_batch must be at least 1, got %d", cfg.Generator.MaxBatch)
	}

	return &cfg, nil
}
