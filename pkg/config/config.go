package config

import (
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // reminder zone must resolve on hosts without zoneinfo

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	NATS     NATSConfig // reminder events (optional)
	Redis    RedisConfig
	JWT      JWTConfig
	Log      LogConfig
	Auth     AuthConfig
	Reminder ReminderConfig
	Mail     MailConfig
	SMS      SMSConfig
	Recovery RecoveryConfig
	Storage  StorageConfig
	Gemini   GeminiConfig
}

// RedisConfig สำหรับ recovery codes
type RedisConfig struct {
	URL      string // redis://localhost:6379
	Password string
	DB       int
}

type AppConfig struct {
	Name        string
	Port        string
	Env         string
	CORSOrigins string // comma separated, "*" when empty
}

type DatabaseConfig struct {
	Driver   string // postgres, sqlite
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	Path     string // sqlite file
	LogLevel string // gorm: silent, error, warn, info
}

type NATSConfig struct {
	URL string // nats://localhost:4222, empty = disabled
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string // logs/app.log
	MaxSize    int    // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// AuthConfig login rules of the portal
type AuthConfig struct {
	DefaultPassword   string // shared password for first login
	AdminIdentifier   string // gets role admin on account creation
	DefaultUniversity string
	DefaultCareer     string
}

// ReminderConfig reminder sweep
type ReminderConfig struct {
	Enabled         bool
	Cron            string // "0 8 * * *" = 08:00 daily in Timezone
	Timezone        string // IANA zone used to compute "today"
	Window          string // today_tomorrow, around
	DispatchTimeout time.Duration
}

type MailConfig struct {
	Provider       string // sendgrid, console
	SendgridAPIKey string
	FromAddress    string
	FromName       string
}

type SMSConfig struct {
	Provider           string // twilio, console
	TwilioAccountSID   string
	TwilioAuthToken    string
	FromNumber         string
	DefaultCountryCode string // prepended to bare 10-digit numbers
}

type RecoveryConfig struct {
	CodeTTL time.Duration
}

type StorageConfig struct {
	Type          string // local, s3
	BasePath      string // local: ./uploads
	BaseURL       string // http://localhost:8080/files
	MaxUploadSize int64
	S3            S3Config
}

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Region    string
	PublicURL string
}

type GeminiConfig struct {
	APIKey string // empty = chat disabled
	Model  string
}

func LoadConfig() (*Config, error) {
	// .env is optional, environment variables win either way
	_ = godotenv.Load()

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	maxUploadSize, _ := strconv.ParseInt(getEnv("STORAGE_MAX_UPLOAD_SIZE", "5242880"), 10, 64) // 5MB

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "UES Academic Helper"),
			Port:        getEnv("APP_PORT", "3000"),
			Env:         getEnv("APP_ENV", "development"),
			CORSOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "postgres"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "ues_helper"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
			Path:     getEnv("DB_PATH", "data/ues_helper.db"),
			LogLevel: getEnv("DB_LOG_LEVEL", "warn"),
		},
		NATS: NATSConfig{
			URL: os.Getenv("NATS_URL"),
		},
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
			TTL:    getDuration("JWT_TTL", 7*24*time.Hour),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "both"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
		Auth: AuthConfig{
			DefaultPassword:   getEnv("DEFAULT_PASSWORD", "UES2026"),
			AdminIdentifier:   strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_IDENTIFIER"))),
			DefaultUniversity: getEnv("DEFAULT_UNIVERSITY", "UES"),
			DefaultCareer:     getEnv("DEFAULT_CAREER", "Ingeniería en Software"),
		},
		Reminder: ReminderConfig{
			Enabled:         getEnv("REMINDER_ENABLED", "true") == "true",
			Cron:            getEnv("REMINDER_CRON", "0 8 * * *"),
			Timezone:        getEnv("REMINDER_TIMEZONE", "America/Hermosillo"),
			Window:          getEnv("REMINDER_WINDOW", "today_tomorrow"),
			DispatchTimeout: getDuration("REMINDER_DISPATCH_TIMEOUT", 15*time.Second),
		},
		Mail: MailConfig{
			Provider:       getEnv("MAIL_PROVIDER", "console"),
			SendgridAPIKey: os.Getenv("SENDGRID_API_KEY"),
			FromAddress:    getEnv("MAIL_FROM_ADDRESS", "soporte@ues-helper.local"),
			FromName:       getEnv("MAIL_FROM_NAME", "Soporte UES Helper"),
		},
		SMS: SMSConfig{
			Provider:           getEnv("SMS_PROVIDER", "console"),
			TwilioAccountSID:   os.Getenv("TWILIO_ACCOUNT_SID"),
			TwilioAuthToken:    os.Getenv("TWILIO_AUTH_TOKEN"),
			FromNumber:         os.Getenv("SMS_FROM_NUMBER"),
			DefaultCountryCode: getEnv("SMS_DEFAULT_COUNTRY_CODE", "52"),
		},
		Recovery: RecoveryConfig{
			CodeTTL: getDuration("RECOVERY_CODE_TTL", 15*time.Minute),
		},
		Storage: StorageConfig{
			Type:          getEnv("STORAGE_TYPE", "local"),
			BasePath:      getEnv("STORAGE_BASE_PATH", "./uploads"),
			BaseURL:       getEnv("STORAGE_BASE_URL", "http://localhost:3000/files"),
			MaxUploadSize: maxUploadSize,
			S3: S3Config{
				Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
				AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
				SecretKey: getEnv("S3_SECRET_KEY", "minioadmin"),
				Bucket:    getEnv("S3_BUCKET", "ues-helper"),
				UseSSL:    getEnv("S3_USE_SSL", "false") == "true",
				Region:    getEnv("S3_REGION", "us-east-1"),
				PublicURL: getEnv("S3_PUBLIC_URL", ""),
			},
		},
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getDuration accepts Go durations ("15s", "24h"); bad values fall back to the default
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

// IsDevelopment ตรวจสอบว่าเป็น development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction ตรวจสอบว่าเป็น production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// Location resolves the reminder time zone, UTC when the name is unknown
func (c *ReminderConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
