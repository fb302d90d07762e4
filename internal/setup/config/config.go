package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	ErrConfigFileNotFound    = errors.New("could not find config file in any config path")
	ErrConfigVersionMissing  = errors.New("config file is missing version field")
	ErrConfigVersionMismatch = errors.New("config file version mismatch")
	ErrLevelTableEmpty       = errors.New("level table must contain at least one entry")
	ErrLevelTableUnordered   = errors.New("level table min_score values must be strictly increasing")
)

// CurrentConfigVersion is the config file version this build understands.
const CurrentConfigVersion = 1

// Config represents the entire application configuration. It is immutable
// after load and injected into components at construction.
type Config struct {
	// Version of the config file.
	Version    int        `koanf:"version"`
	Debug      Debug      `koanf:"debug"`
	PostgreSQL PostgreSQL `koanf:"postgresql"`
	Redis      Redis      `koanf:"redis"`
	Events     Events     `koanf:"events"`
	Reputation Reputation `koanf:"reputation"`
	Levels     []Level    `koanf:"levels"`
	Badges     []Badge    `koanf:"badges"`
}

// Debug contains debug-related configuration.
type Debug struct {
	// Log level (debug, info, warn, error).
	LogLevel string `koanf:"log_level"`
	// Enable OpenTelemetry query tracing on the database client.
	QueryTracing bool `koanf:"query_tracing"`
}

// PostgreSQL contains database connection configuration.
type PostgreSQL struct {
	// Database hostname.
	Host string `koanf:"host"`
	// Database port.
	Port int `koanf:"port"`
	// Database username.
	User string `koanf:"user"`
	// Database password.
	Password string `koanf:"password"`
	// Database name.
	DBName string `koanf:"db_name"`
	// Maximum open connections.
	MaxOpenConns int `koanf:"max_open_conns"`
	// Maximum idle connections.
	MaxIdleConns int `koanf:"max_idle_conns"`
	// Connection lifetime in minutes.
	MaxLifetime int `koanf:"max_lifetime"`
	// Idle timeout in minutes.
	MaxIdleTime int `koanf:"max_idle_time"`
}

// Redis contains Redis connection configuration for the event feed.
type Redis struct {
	// Redis hostname.
	Host string `koanf:"host"`
	// Redis port.
	Port int `koanf:"port"`
	// Redis username.
	Username string `koanf:"username"`
	// Redis password.
	Password string `koanf:"password"`
}

// Events contains event feed configuration.
type Events struct {
	// Whether events are published at all. When disabled the core uses a
	// no-op emitter and Redis is never dialed.
	Enabled bool `koanf:"enabled"`
	// Redis key holding the bounded event list.
	FeedKey string `koanf:"feed_key"`
	// Maximum number of entries retained on the feed.
	FeedLength int64 `koanf:"feed_length"`
}

// Reputation contains the point values, caps, and thresholds of the
// reputation system. These are business configuration, not code.
type Reputation struct {
	// Points credited to an author whose content is upvoted.
	UpvoteReceived int64 `koanf:"upvote_received"`
	// Points debited from an author whose content is downvoted (negative).
	DownvoteReceived int64 `koanf:"downvote_received"`
	// Points credited to an actor for casting an upvote.
	UpvoteGiven int64 `koanf:"upvote_given"`
	// Points debited from an actor for casting a downvote (negative).
	DownvoteGiven int64 `koanf:"downvote_given"`
	// Points credited when an answer is marked best.
	BestAnswer int64 `koanf:"best_answer"`
	// Largest magnitude a single ledger event may carry.
	MaxEventDelta int64 `koanf:"max_event_delta"`
	// Rolling 24-hour ceiling on total positive gain.
	MaxDailyGain int64 `koanf:"max_daily_gain"`
	// Rolling 24-hour ceiling on total loss (absolute value).
	MaxDailyLoss int64 `koanf:"max_daily_loss"`
	// Rolling 24-hour ceiling on net change (absolute value).
	MaxDailyNet int64 `koanf:"max_daily_net"`
	// Minimum score required to cast votes.
	MinScoreToVote int64 `koanf:"min_score_to_vote"`
	// Rolling 24-hour cap on reports per actor.
	MaxDailyReports int `koanf:"max_daily_reports"`
}

// Level is one entry of the ordered level table.
type Level struct {
	// Display name of the level.
	Name string `koanf:"name"`
	// Inclusive minimum score for the level.
	MinScore int64 `koanf:"min_score"`
	// Privileges unlocked at this level.
	Privileges []string `koanf:"privileges"`
}

// Badge is one entry of the badge catalog. Rarity and criterion are
// validated against their closed enums when the catalog is built.
type Badge struct {
	ID          string `koanf:"id"`
	Name        string `koanf:"name"`
	Description string `koanf:"description"`
	Rarity      string `koanf:"rarity"`
	Criterion   string `koanf:"criterion"`
	Threshold   int64  `koanf:"threshold"`
	// Subject code, for subject-scoped criteria only.
	Subject string `koanf:"subject"`
}

// LoadConfig loads the community config file from the first path that has
// one and returns the config together with the directory it came from.
func LoadConfig() (*Config, string, error) {
	k := koanf.New(".")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configPaths := []string{
		".studyhive",
		homeDir + "/.studyhive/config",
		"/etc/studyhive/config",
		"/app/config",
		"config",
		".",
	}

	var usedConfigPath string

	for _, path := range configPaths {
		configPath := fmt.Sprintf("%s/community.toml", path)
		if err := k.Load(file.Provider(configPath), toml.Parser()); err == nil {
			usedConfigPath = path
			break
		}
	}

	if usedConfigPath == "" {
		return nil, "", fmt.Errorf("%w: community.toml", ErrConfigFileNotFound)
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, "", fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Version == 0 {
		return nil, "", ErrConfigVersionMissing
	}

	if config.Version != CurrentConfigVersion {
		return nil, "", fmt.Errorf("%w: found version %d, expected %d",
			ErrConfigVersionMismatch, config.Version, CurrentConfigVersion)
	}

	if err := config.Validate(); err != nil {
		return nil, "", err
	}

	return &config, usedConfigPath, nil
}

// Validate checks the parts of the config that would silently corrupt
// behavior if wrong. Badge entries are validated later when the catalog
// is built, where enum parsing happens anyway.
func (c *Config) Validate() error {
	if len(c.Levels) == 0 {
		return ErrLevelTableEmpty
	}

	for i := 1; i < len(c.Levels); i++ {
		if c.Levels[i].MinScore <= c.Levels[i-1].MinScore {
			return fmt.Errorf("%w: %q (%d) follows %q (%d)",
				ErrLevelTableUnordered,
				c.Levels[i].Name, c.Levels[i].MinScore,
				c.Levels[i-1].Name, c.Levels[i-1].MinScore)
		}
	}

	return nil
}
