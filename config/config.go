package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisTaskDB   int    `mapstructure:"REDIS_TASK_DB"`

	// External news source (NewsAPI-compatible endpoint).
	NewsAPIBaseURL  string `mapstructure:"NEWS_API_BASE_URL"`
	NewsAPIKey      string `mapstructure:"NEWS_API_KEY"`
	NewsAPICountry  string `mapstructure:"NEWS_API_COUNTRY"`
	NewsCacheTTLSec int    `mapstructure:"NEWS_CACHE_TTL_SEC"`

	// Moderation and verification policy knobs. Observed values differ
	// across deployments, so they are configuration, not constants.
	VerificationAutoApprove bool `mapstructure:"VERIFICATION_AUTO_APPROVE"`
	ArticleFlagThreshold    int  `mapstructure:"ARTICLE_FLAG_THRESHOLD"`
	ArticleMinContentLen    int  `mapstructure:"ARTICLE_MIN_CONTENT_LEN"`
	TrendingPoolMultiplier  int  `mapstructure:"TRENDING_POOL_MULTIPLIER"`
	NotifierPollSeconds     int  `mapstructure:"NOTIFIER_POLL_SECONDS"`

	// Firebase (optional managed-auth collaborator).
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_TASK_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "pressroom")
	viper.SetDefault("NEWS_API_BASE_URL", "https://newsapi.org/v2")
	viper.SetDefault("NEWS_API_KEY", "")
	viper.SetDefault("NEWS_API_COUNTRY", "us")
	viper.SetDefault("NEWS_CACHE_TTL_SEC", 300)
	viper.SetDefault("VERIFICATION_AUTO_APPROVE", true)
	viper.SetDefault("ARTICLE_FLAG_THRESHOLD", 5)
	viper.SetDefault("ARTICLE_MIN_CONTENT_LEN", 200)
	viper.SetDefault("TRENDING_POOL_MULTIPLIER", 3)
	viper.SetDefault("NOTIFIER_POLL_SECONDS", 30)
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
