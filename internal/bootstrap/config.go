package bootstrap

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort    string        `mapstructure:"SERVER_PORT"`
	GrpcPort      string        `mapstructure:"GRPC_PORT"`
	RedisUrl      string        `mapstructure:"REDIS_URL"`
	CacheTTL      time.Duration `mapstructure:"CACHE_TTL"`
	MongoUri      string        `mapstructure:"MONGO_URI"`
	MongoDatabase string        `mapstructure:"MONGO_DATABASE"`
	S3Bucket      string        `mapstructure:"S3_BUCKET"`
	S3Endpoint    string        `mapstructure:"S3_ENDPOINT"`
	IsLocalCors   bool          `mapstructure:"LOCAL_CORS"`
	MaxBodyBytes  int64         `mapstructure:"MAX_BODY_BYTES"`
}

var defaults = map[string]any{
	"SERVER_PORT":    "8080",
	"GRPC_PORT":      "8082",
	"REDIS_URL":      "localhost:6379",
	"CACHE_TTL":      "24h",
	"MONGO_URI":      "mongodb://localhost:27017",
	"MONGO_DATABASE": "gib2sgf",
	"S3_BUCKET":      "",
	"S3_ENDPOINT":    "",
	"LOCAL_CORS":     false,
	"MAX_BODY_BYTES": 1 << 20,
}

// Setup loads cfgPath into the environment when it exists and reads the
// configuration from the environment. Variables already set win over the file.
func Setup(cfgPath string) (*Config, error) {
	if cfgPath != "" {
		if err := godotenv.Load(cfgPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
