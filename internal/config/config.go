package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Config / tuning - defaults
const (
	DefaultFirebaseCredentialsFile = "firebase-adminsdk.json"
	DefaultTimeZone                = "Asia/Jakarta"
	DefaultCheckHour               = 8
	DefaultCheckMinute             = 0
	DefaultReminderOffsetDays      = "3,1"
	DefaultSendRateLimit           = 500
)

// Configuration loaded from environment
var (
	FirebaseCredentialsFile string
	HealthCheckPort         string
	TimeZone                string
	CheckHour               int
	CheckMinute             int
	ReminderOffsetDays      []int
	SendRateLimit           int
	RunOnce                 bool
)

// WorkerId unique for this process
var WorkerId string

// The Go runtime automatically calls all init() functions when a package is initialized
func init() {
	WorkerId = fmt.Sprintf("%s-%d", uuid.New().String(), os.Getpid())

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables or defaults")
	}

	// Load configuration
	LoadConfig()
}

// GetEnv retrieves an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt retrieves an integer environment variable or returns a default value
func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
	}
	return defaultValue
}

// GetEnvBool retrieves a boolean environment variable or returns a default value
func GetEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
		log.Printf("Warning: Invalid boolean value for %s, using default %t", key, defaultValue)
	}
	return defaultValue
}

// ParseIntList parses a comma-separated list of integers, e.g. "3,1"
func ParseIntList(value string) ([]int, error) {
	parts := strings.Split(value, ",")
	list := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q in list", p)
		}
		list = append(list, n)
	}
	return list, nil
}

// GetEnvIntList retrieves a comma-separated integer list or returns the parsed default
func GetEnvIntList(key, defaultValue string) []int {
	raw := GetEnv(key, defaultValue)
	list, err := ParseIntList(raw)
	if err != nil {
		log.Printf("Warning: Invalid value for %s (%v), using default %s", key, err, defaultValue)
		list, _ = ParseIntList(defaultValue)
	}
	return list
}

// LoadConfig loads all configuration from environment variables
func LoadConfig() {
	HealthCheckPort = GetEnv("HEALTH_CHECK_PORT", "8080")

	// Firebase configuration
	FirebaseCredentialsFile = GetEnv("FIREBASE_CREDENTIALS_FILE", DefaultFirebaseCredentialsFile)

	// Schedule configuration
	TimeZone = GetEnv("TIME_ZONE", DefaultTimeZone)
	CheckHour = GetEnvInt("CHECK_HOUR", DefaultCheckHour)
	CheckMinute = GetEnvInt("CHECK_MINUTE", DefaultCheckMinute)
	RunOnce = GetEnvBool("RUN_ONCE", false)

	// Reminder configuration
	ReminderOffsetDays = GetEnvIntList("REMINDER_OFFSET_DAYS", DefaultReminderOffsetDays)
	SendRateLimit = GetEnvInt("SEND_RATE_LIMIT", DefaultSendRateLimit)

	log.Println("Configuration loaded successfully")
}
