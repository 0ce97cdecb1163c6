package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yigit/acadplan/internal/planner"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	// Planner carries the full planning policy so scoring weights and
	// thresholds can change without recompilation.
	Planner struct {
		Weights struct {
			Critical    float64 `yaml:"critical" env:"PLANNER_WEIGHT_CRITICAL"`
			Requirement float64 `yaml:"requirement" env:"PLANNER_WEIGHT_REQUIREMENT"`
			Difficulty  float64 `yaml:"difficulty" env:"PLANNER_WEIGHT_DIFFICULTY"`
			Unlocks     float64 `yaml:"unlocks" env:"PLANNER_WEIGHT_UNLOCKS"`
			Success     float64 `yaml:"success" env:"PLANNER_WEIGHT_SUCCESS"`
		} `yaml:"weights"`

		CreditsPerTerm       int `yaml:"credits_per_term" env:"PLANNER_CREDITS_PER_TERM"`
		EarlyGraduationTerms int `yaml:"early_graduation_terms" env:"PLANNER_EARLY_GRADUATION_TERMS"`
		RecommendationLimit  int `yaml:"recommendation_limit" env:"PLANNER_RECOMMENDATION_LIMIT"`

		Risk struct {
			HighDifficultyBar   float64 `yaml:"high_difficulty_bar" env:"PLANNER_RISK_HIGH_DIFFICULTY_BAR"`
			HighAvgDifficulty   float64 `yaml:"high_avg_difficulty" env:"PLANNER_RISK_HIGH_AVG_DIFFICULTY"`
			HighCount           int     `yaml:"high_count" env:"PLANNER_RISK_HIGH_COUNT"`
			MediumAvgDifficulty float64 `yaml:"medium_avg_difficulty" env:"PLANNER_RISK_MEDIUM_AVG_DIFFICULTY"`
			MediumCount         int     `yaml:"medium_count" env:"PLANNER_RISK_MEDIUM_COUNT"`
		} `yaml:"risk"`
	} `yaml:"planner"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	err := loadFromEnv(config)
	if err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	// Database defaults
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "acadplan"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Planner defaults mirror planner.DefaultPolicy
	policy := planner.DefaultPolicy()
	config.Planner.Weights.Critical = policy.Weights.Critical
	config.Planner.Weights.Requirement = policy.Weights.Requirement
	config.Planner.Weights.Difficulty = policy.Weights.Difficulty
	config.Planner.Weights.Unlocks = policy.Weights.Unlocks
	config.Planner.Weights.Success = policy.Weights.Success
	config.Planner.CreditsPerTerm = policy.CreditsPerTerm
	config.Planner.EarlyGraduationTerms = policy.EarlyGraduationTerms
	config.Planner.RecommendationLimit = policy.RecommendationLimit
	config.Planner.Risk.HighDifficultyBar = policy.Risk.HighDifficultyBar
	config.Planner.Risk.HighAvgDifficulty = policy.Risk.HighAvgDifficulty
	config.Planner.Risk.HighCount = policy.Risk.HighCount
	config.Planner.Risk.MediumAvgDifficulty = policy.Risk.MediumAvgDifficulty
	config.Planner.Risk.MediumCount = policy.Risk.MediumCount
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}
	if config.Database.Host == "" || config.Database.Port == "" {
		return fmt.Errorf("database host and port cannot be empty")
	}
	if config.Planner.CreditsPerTerm <= 0 {
		return fmt.Errorf("planner credits_per_term must be positive")
	}
	return nil
}

// GetPostgresConnectionString builds the pgx connection string
func (c *Config) GetPostgresConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

// PlannerPolicy maps the planner configuration section onto the engine policy.
// Requirement type weights keep their documented defaults; only the scoring
// weights and thresholds are tunable from the outside for now.
func (c *Config) PlannerPolicy() planner.Policy {
	policy := planner.DefaultPolicy()
	policy.Weights = planner.Weights{
		Critical:    c.Planner.Weights.Critical,
		Requirement: c.Planner.Weights.Requirement,
		Difficulty:  c.Planner.Weights.Difficulty,
		Unlocks:     c.Planner.Weights.Unlocks,
		Success:     c.Planner.Weights.Success,
	}
	policy.CreditsPerTerm = c.Planner.CreditsPerTerm
	policy.EarlyGraduationTerms = c.Planner.EarlyGraduationTerms
	policy.RecommendationLimit = c.Planner.RecommendationLimit
	policy.Risk = planner.RiskThresholds{
		HighDifficultyBar:   c.Planner.Risk.HighDifficultyBar,
		HighAvgDifficulty:   c.Planner.Risk.HighAvgDifficulty,
		HighCount:           c.Planner.Risk.HighCount,
		MediumAvgDifficulty: c.Planner.Risk.MediumAvgDifficulty,
		MediumCount:         c.Planner.Risk.MediumCount,
	}
	return policy
}
