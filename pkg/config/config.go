package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	MigrationsDir string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Refresh token config
	RefreshTokenExpiryDuration time.Duration
	RefreshTokenCookieName     string
	RefreshTokenCookiePath     string

	// Basalam OAuth
	BasalamClientID     string `mapstructure:"BASALAM_CLIENT_ID"`
	BasalamClientSecret string `mapstructure:"BASALAM_CLIENT_SECRET"`
	BasalamRedirectURL  string `mapstructure:"BASALAM_REDIRECT_URL"`
	BasalamAuthURL      string `mapstructure:"BASALAM_AUTH_URL"`
	BasalamTokenURL     string `mapstructure:"BASALAM_TOKEN_URL"`

	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`
}

// LoadConfig loads configuration from environment variables and a .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("MIGRATIONS_DIR", "migrations")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "bazaryar-backend")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_NAME", "rtid")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_PATH", "/api/v1/auth")
	viper.SetDefault("BASALAM_CLIENT_ID", "")
	viper.SetDefault("BASALAM_CLIENT_SECRET", "")
	viper.SetDefault("BASALAM_REDIRECT_URL", "")
	viper.SetDefault("BASALAM_AUTH_URL", "https://basalam.com/accounts/sso")
	viper.SetDefault("BASALAM_TOKEN_URL", "https://auth.basalam.com/oauth/token")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.MigrationsDir = viper.GetString("MIGRATIONS_DIR")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	refreshExpiryStr := viper.GetString("REFRESH_TOKEN_EXPIRY_DURATION")
	refreshExpiryDuration, err := time.ParseDuration(refreshExpiryStr)
	if err != nil {
		refreshExpiryDuration = time.Hour * 24 * 7
		log.Printf("Warning: Invalid value for REFRESH_TOKEN_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", refreshExpiryStr, refreshExpiryDuration.String())
	}
	cfg.RefreshTokenExpiryDuration = refreshExpiryDuration
	cfg.RefreshTokenCookieName = viper.GetString("REFRESH_TOKEN_COOKIE_NAME")
	cfg.RefreshTokenCookiePath = viper.GetString("REFRESH_TOKEN_COOKIE_PATH")

	cfg.BasalamClientID = viper.GetString("BASALAM_CLIENT_ID")
	cfg.BasalamClientSecret = viper.GetString("BASALAM_CLIENT_SECRET")
	cfg.BasalamRedirectURL = viper.GetString("BASALAM_REDIRECT_URL")
	cfg.BasalamAuthURL = viper.GetString("BASALAM_AUTH_URL")
	cfg.BasalamTokenURL = viper.GetString("BASALAM_TOKEN_URL")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	if cfg.BasalamClientID == "" {
		log.Println("Warning: BASALAM_CLIENT_ID not set. Basalam OAuth will not function.")
	}
	if cfg.BasalamClientSecret == "" {
		log.Println("Warning: BASALAM_CLIENT_SECRET not set. Basalam OAuth will not function.")
	}
	if cfg.BasalamRedirectURL == "" {
		log.Println("Warning: BASALAM_REDIRECT_URL not set. Basalam OAuth will not function.")
	}

	return cfg, nil
}
