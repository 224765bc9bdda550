package store

// Config holds configuration for the Store.
type Config struct {
	// ConsistentRead requests strongly consistent reads for Get.
	// Default: false (eventually consistent, half the read cost).
	ConsistentRead bool

	// ScanPageSize caps the number of items fetched per Scan page.
	// Default: 0 (service default, bounded by the 1 MB page limit).
	ScanPageSize int32
}

// DefaultConfig returns sensible defaults: eventually consistent reads and
// service-default scan paging.
func DefaultConfig() Config {
	return Config{}
}

// validate ensures config values are within acceptable bounds.
func (c *Config) validate() {
	if c.ScanPageSize < 0 {
		c.ScanPageSize = 0
	}
}
