package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/passlocker/internal/flagx"
	"github.com/dmitrijs2005/passlocker/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "10s" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrGRPC       string         `json:"endpoint_addr_grpc"`
	DatabaseDSN            string         `json:"database_dsn"`
	TokenIssuer            string         `json:"token_issuer"`
	TokenAudience          string         `json:"token_audience"`
	TokenExpirationMinutes int            `json:"token_expiration_minutes"`
	ShutdownTimeout        timex.Duration `json:"shutdown_timeout"`
	LogLevel               string         `json:"log_level"`
}

// parseJson overlays values from the file named by -c/-config, if any.
// Fields absent from the file keep their current values.
func parseJson(config *Config, args []string) error {

	jsonConfigFile := flagx.JsonConfigFlags(args)

	// nothing to load
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", jsonConfigFile, err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.TokenIssuer, c.TokenIssuer)
	setString(&config.TokenAudience, c.TokenAudience)
	setString(&config.LogLevel, c.LogLevel)
	if c.TokenExpirationMinutes != 0 {
		config.TokenExpirationMinutes = c.TokenExpirationMinutes
	}
	if c.ShutdownTimeout.Duration != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
