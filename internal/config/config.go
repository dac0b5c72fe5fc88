package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Backend names for the persistent store.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	Store *struct {
		Backend string `json:"backend"`
		Path    string `json:"path"`
	} `json:"store"`
	// Snowflake node number for card instance IDs. Give each process a
	// distinct node when running more than one instance against shared
	// state.
	NodeID *int64 `json:"node_id"`
}

// LoadedConfig is the resolved runtime configuration.
type LoadedConfig struct {
	ServerAddress string
	StoreBackend  string
	StorePath     string
	NodeID        int64
}

func defaults() *LoadedConfig {
	return &LoadedConfig{
		ServerAddress: ":8080",
		StoreBackend:  BackendFile,
		StorePath:     "./data/tower.json",
		NodeID:        1,
	}
}

// LoadConfig reads the JSON configuration at path. A missing file yields
// defaults; a present but unparseable file is an error (unlike the store
// snapshot, a broken config should not be silently ignored).
func LoadConfig(path string) (*LoadedConfig, error) {
	cfg := defaults()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if rc.Server != nil && rc.Server.Address != "" {
		cfg.ServerAddress = rc.Server.Address
	}
	if rc.Store != nil {
		if rc.Store.Backend != "" {
			backend := strings.ToLower(strings.TrimSpace(rc.Store.Backend))
			if backend != BackendFile && backend != BackendSQLite {
				return nil, fmt.Errorf("config file %s: unknown store backend '%s' (use '%s' or '%s')", path, rc.Store.Backend, BackendFile, BackendSQLite)
			}
			cfg.StoreBackend = backend
			if backend == BackendSQLite && rc.Store.Path == "" {
				cfg.StorePath = "./data/tower.db"
			}
		}
		if rc.Store.Path != "" {
			cfg.StorePath = rc.Store.Path
		}
	}
	if rc.NodeID != nil {
		if *rc.NodeID < 0 || *rc.NodeID > 1023 {
			return nil, fmt.Errorf("config file %s: node_id must be in [0, 1023]", path)
		}
		cfg.NodeID = *rc.NodeID
	}
	return cfg, nil
}
