package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Notion NotionConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// NotionConfig holds the credentials for the external record store: the API
// key and the identifiers of the two collections it persists.
type NotionConfig struct {
	APIKey               string
	EmployeesDatabaseID  string
	AttendanceDatabaseID string
	BaseURL              string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "3001"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Record store configuration
	config.Notion = NotionConfig{
		APIKey:               getEnv("NOTION_API_KEY", ""),
		EmployeesDatabaseID:  getEnv("EMPLOYEES_DATABASE_ID", ""),
		AttendanceDatabaseID: getEnv("ATTENDANCE_DATABASE_ID", ""),
		BaseURL:              getEnv("NOTION_BASE_URL", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Notion.APIKey == "" {
		return fmt.Errorf("NOTION_API_KEY is required")
	}
	if c.Notion.EmployeesDatabaseID == "" {
		return fmt.Errorf("EMPLOYEES_DATABASE_ID is required")
	}
	if c.Notion.AttendanceDatabaseID == "" {
		return fmt.Errorf("ATTENDANCE_DATABASE_ID is required")
	}
	return nil
}

// Presence reports which store credentials are set. Only booleans ever leave
// the process; the values themselves never appear in a response.
func (c NotionConfig) Presence() map[string]bool {
	return map[string]bool{
		"notionApiKeyExists": c.APIKey != "",
		"employeesDbExists":  c.EmployeesDatabaseID != "",
		"attendanceDbExists": c.AttendanceDatabaseID != "",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
