package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/arizon-automation/sales-dashboard/internal/domain"
)

type Config struct {
	App          App           `mapstructure:",squash"`
	Server       Server        `mapstructure:",squash"`
	Database     Database      `mapstructure:",squash"`
	Unleashed    Unleashed     `mapstructure:",squash"`
	Cache        Cache         `mapstructure:",squash"`
	Auth         Auth          `mapstructure:",squash"`
	Reporting    Reporting     `mapstructure:",squash"`
	ReportWarmup ReportWarmup  `mapstructure:",squash"`
	Users        []domain.User `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Unleashed struct {
	URL    string `mapstructure:"unleashed_url"`
	APIID  string `mapstructure:"unleashed_api_id"`
	APIKey string `mapstructure:"unleashed_api_key"`
}

type Cache struct {
	Driver    string        `mapstructure:"cache_driver"`
	Dir       string        `mapstructure:"cache_dir"`
	TTL       time.Duration `mapstructure:"cache_ttl"`
	RedisAddr string        `mapstructure:"cache_redis_addr"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
	// Users is a comma separated list of username:name:bcrypt-hash entries.
	Users string `mapstructure:"auth_users"`
}

type Reporting struct {
	// ExcludedCustomers are customer codes dropped before any aggregation.
	ExcludedCustomers []string `mapstructure:"excluded_customers"`
}

type ReportWarmup struct {
	CronSchedule string `mapstructure:"report_warmup_cron"`
	Enabled      bool   `mapstructure:"report_warmup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales_dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("UNLEASHED_URL", "https://api.unleashedsoftware.com")
	viper.SetDefault("UNLEASHED_API_ID", "your_api_id")
	viper.SetDefault("UNLEASHED_API_KEY", "your_api_key")

	viper.SetDefault("CACHE_DRIVER", "file")
	viper.SetDefault("CACHE_DIR", "cache")
	viper.SetDefault("CACHE_TTL", "2h")
	viper.SetDefault("CACHE_REDIS_ADDR", "localhost:6379")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_USERS", "")

	viper.SetDefault("EXCLUDED_CUSTOMERS", "")

	viper.SetDefault("REPORT_WARMUP_CRON", "0 */2 * * *")
	viper.SetDefault("REPORT_WARMUP_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Users, err = ParseUsers(config.Auth.Users)
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// ParseUsers parses a comma separated list of username:name:bcrypt-hash
// entries into dashboard accounts. The split keeps any ':' inside the
// hash, only the username and name may not contain one.
func ParseUsers(raw string) ([]domain.User, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var users []domain.User
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.SplitN(entry, ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[2] == "" {
			return nil, fmt.Errorf("invalid user entry %q, expected username:name:hash", entry)
		}

		users = append(users, domain.User{
			Username:     parts[0],
			Name:         parts[1],
			PasswordHash: parts[2],
		})
	}

	return users, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine the current directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from: ", location)
			return
		}
	}

	logrus.Warn("no .env file found in any known location")
}
