package config

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

const hashCacheTTL = 5 * time.Minute

// ConfigHasher tracks the fingerprint of the configuration file on disk and
// the fingerprint of the configuration a running process loaded, so callers
// can detect when the file changed after startup.
type ConfigHasher struct {
	configPath string

	currentHash     string
	currentHashTime time.Time
	loadedHash      string

	mu sync.RWMutex
}

func NewConfigHasher(configPath string) *ConfigHasher {
	return &ConfigHasher{configPath: configPath}
}

// GetCurrentConfigHash returns the fingerprint of the configuration file on
// disk, recomputing it when the cached value is older than the TTL.
func (h *ConfigHasher) GetCurrentConfigHash() (string, error) {
	h.mu.RLock()
	if h.currentHash != "" && time.Since(h.currentHashTime) < hashCacheTTL {
		hash := h.currentHash
		h.mu.RUnlock()
		return hash, nil
	}
	h.mu.RUnlock()

	return h.UpdateCurrentConfigHash()
}

// UpdateCurrentConfigHash reloads the configuration file and refreshes the
// cached fingerprint.
func (h *ConfigHasher) UpdateCurrentConfigHash() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	cfg, err := LoadConfig(h.configPath)
	if err != nil {
		return "", err
	}

	hash, err := cfg.Fingerprint()
	if err != nil {
		return "", err
	}

	h.currentHash = hash
	h.currentHashTime = time.Now()

	return hash, nil
}

// SetLoadedConfigHash records the fingerprint of the configuration that was
// loaded at startup.
func (h *ConfigHasher) SetLoadedConfigHash(hash string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.loadedHash = hash
}

func (h *ConfigHasher) GetLoadedConfigHash() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.loadedHash
}

// Fingerprint returns a stable digest of the configuration contents.
// The source file path does not contribute to the digest.
func (c *Config) Fingerprint() (string, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to serialize configuration for hashing: %v", err)
	}

	sum := md5.Sum(raw)
	return hex.EncodeToString(sum[:]), nil
}

// Equal reports whether two configurations have identical contents,
// regardless of which files they were loaded from.
func (c *Config) Equal(other *Config) (bool, error) {
	if other == nil {
		return false, nil
	}

	a, err := c.Fingerprint()
	if err != nil {
		return false, err
	}
	b, err := other.Fingerprint()
	if err != nil {
		return false, err
	}

	return a == b, nil
}
