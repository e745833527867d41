package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Options controls where Load looks for configuration.
type Options struct {
	// Path is the directory holding the config file. "." and "./config"
	// are always searched as well.
	Path string
	// Name is the config file name without extension.
	Name string
	// EnvPrefix, when set, is prepended to every automatic env key
	// (ULID_GRPC_PORT for grpc.port with prefix ULID).
	EnvPrefix string
}

// Load reads configuration from a yaml file and environment variables.
// A missing file is not an error; the caller's defaults and env apply.
func Load(opts Options) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(opts.Name)
	v.SetConfigType("yaml")
	if opts.Path != "" {
		v.AddConfigPath(opts.Path)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if opts.EnvPrefix != "" {
		v.SetEnvPrefix(opts.EnvPrefix)
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return v, nil
}
