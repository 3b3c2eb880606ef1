// Package cache provides Redis caching for the homescout-listings
// application: listing query results, individual properties and location
// suggestions.
package cache

// RedisConfig holds the settings for connecting to a Redis instance.
type RedisConfig struct {
	Host        string
	Port        int
	Password    string
	DB          int
	TLSEnabled  bool
	TLSCertFile string
}
