package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// DayTime is a time of day with no date attached
type DayTime struct {
	Hour   int
	Minute int
}

// ParseDayTime parses a "15:04" label
func ParseDayTime(value string) (DayTime, error) {
	parsed, err := time.Parse(timeLayout, strings.TrimSpace(value))
	if err != nil {
		return DayTime{}, err
	}
	return DayTime{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}

// Minutes returns minutes since midnight
func (d DayTime) Minutes() int {
	return d.Hour*60 + d.Minute
}

func (d DayTime) String() string {
	return fmt.Sprintf("%02d:%02d", d.Hour, d.Minute)
}

// RoutePreference represents a single origin/destination/date search intent.
// Optional constraints override the global settings for that route.
type RoutePreference struct {
	Origin         string
	Destination    string
	DepartureDate  time.Time
	PreferredStart *DayTime
	PreferredEnd   *DayTime
	MaxPrice       *int
	MinSeats       *int
}

// Config holds all application-level configuration
type Config struct {
	// Search
	BaseURL            string
	OriginStation      string
	DestinationStation string
	DepartureDate      time.Time
	PreferredStart     *DayTime
	PreferredEnd       *DayTime
	PassengerCount     int
	MaxPrice           *int
	MinSeatsAvailable  int
	PollingInterval    time.Duration
	Currency           string

	// Notifiers
	TelegramBotToken string
	TelegramChatID   string
	EmailSender      string
	EmailRecipient   string
	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string

	// Input files
	RoutesFile   string
	SnapshotFile string

	RoutePreferences []RoutePreference
}

// Load reads configuration from environment variables and an optional routes
// file. A .env file in the working directory is applied first when present.
func Load(routesFile string) (*Config, error) {
	_ = godotenv.Load()

	origin := strings.TrimSpace(os.Getenv("ORIGIN_STATION"))
	destination := strings.TrimSpace(os.Getenv("DESTINATION_STATION"))
	departureRaw := strings.TrimSpace(os.Getenv("DEPARTURE_DATE"))
	if origin == "" || destination == "" || departureRaw == "" {
		return nil, fmt.Errorf("ORIGIN_STATION, DESTINATION_STATION, and DEPARTURE_DATE are required")
	}
	departureDate, err := time.Parse(dateLayout, departureRaw)
	if err != nil {
		return nil, fmt.Errorf("parsing DEPARTURE_DATE: %w", err)
	}

	passengerCount := getEnvInt("PASSENGER_COUNT", 1)
	cfg := &Config{
		BaseURL:            getEnv("BASE_URL", "https://kai.id"),
		OriginStation:      origin,
		DestinationStation: destination,
		DepartureDate:      departureDate,
		PassengerCount:     passengerCount,
		MaxPrice:           getEnvOptionalInt("MAX_PRICE"),
		MinSeatsAvailable:  getEnvInt("MIN_SEATS_AVAILABLE", passengerCount),
		PollingInterval:    time.Duration(getEnvInt("POLLING_INTERVAL_MINUTES", 5)) * time.Minute,
		Currency:           getEnv("CURRENCY", "IDR"),
		TelegramBotToken:   os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:     os.Getenv("TELEGRAM_CHAT_ID"),
		EmailSender:        os.Getenv("EMAIL_SENDER"),
		EmailRecipient:     os.Getenv("EMAIL_RECIPIENT"),
		SMTPHost:           os.Getenv("SMTP_HOST"),
		SMTPPort:           getEnvInt("SMTP_PORT", 587),
		SMTPUsername:       os.Getenv("SMTP_USERNAME"),
		SMTPPassword:       os.Getenv("SMTP_PASSWORD"),
		SnapshotFile:       os.Getenv("SNAPSHOT_FILE"),
	}

	if cfg.PreferredStart, err = getEnvDayTime("PREFERRED_DEPARTURE_TIME_START"); err != nil {
		return nil, err
	}
	if cfg.PreferredEnd, err = getEnvDayTime("PREFERRED_DEPARTURE_TIME_END"); err != nil {
		return nil, err
	}

	path := routesFile
	if path == "" {
		path = os.Getenv("ROUTES_FILE")
	}
	if path != "" {
		routes, err := LoadRoutes(path)
		if err != nil {
			return nil, err
		}
		cfg.RoutesFile = path
		cfg.RoutePreferences = routes
	}

	return cfg, nil
}

// ToRoutePreference converts the top-level station settings into a route
func (c *Config) ToRoutePreference() RoutePreference {
	minSeats := c.MinSeatsAvailable
	return RoutePreference{
		Origin:         c.OriginStation,
		Destination:    c.DestinationStation,
		DepartureDate:  c.DepartureDate,
		PreferredStart: c.PreferredStart,
		PreferredEnd:   c.PreferredEnd,
		MaxPrice:       c.MaxPrice,
		MinSeats:       &minSeats,
	}
}

// Routes returns the configured route list, falling back to the single route
// described by the top-level settings
func (c *Config) Routes() []RoutePreference {
	if len(c.RoutePreferences) > 0 {
		return c.RoutePreferences
	}
	return []RoutePreference{c.ToRoutePreference()}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvOptionalInt(key string) *int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return nil
	}
	return &n
}

func getEnvDayTime(key string) (*DayTime, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return nil, nil
	}
	parsed, err := ParseDayTime(val)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", key, err)
	}
	return &parsed, nil
}
