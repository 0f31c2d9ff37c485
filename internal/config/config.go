package config

import (
	"strconv"
)

const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

// Config is the root application configuration. Every field comes from the
// environment, optionally seeded from a .env file.
type Config struct {
	Telegram TelegramConfig
	Storage  StorageConfig
	Log      LogConfig
	Server   ServerConfig
	Texts    TextsConfig
}

type TelegramConfig struct {
	Token string `env:"TELEGRAM_TOKEN" env-required:"true"`
	// FeedbackChatId accepts both the -100 prefixed form and the bare
	// supergroup id.
	FeedbackChatId int64 `env:"FEEDBACK_CHAT_ID" env-required:"true"`
	Debug          bool  `env:"DEBUG"            env-default:"false"`
	WorkerCount    int   `env:"WORKER_COUNT"     env-default:"3"`
	PollTimeout    int   `env:"POLL_TIMEOUT"     env-default:"60"`
}

type StorageConfig struct {
	Kind          string `env:"STORAGE"          env-default:"mongo"`
	MongoURI      string `env:"MONGODB_URI"      env-default:"mongodb://localhost:27017/?replicaSet=rs0"`
	MongoDatabase string `env:"MONGODB_DATABASE" env-default:"feedback_bot"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  env-default:"info"`
	Pretty bool   `env:"LOG_PRETTY" env-default:"false"`
}

type ServerConfig struct {
	Addr string `env:"HTTP_ADDR" env-default:":8080"`
}

type TextsConfig struct {
	Language string `env:"LANGUAGE"   env-default:"ru"`
	Start    string `env:"START_TEXT"`
	Help     string `env:"HELP_TEXT"`
}

// NormalizeChatId turns a bare supergroup id into the -100 prefixed chat id
// the Bot API expects. Negative ids are returned as is.
func NormalizeChatId(id int64) int64 {
	if id < 0 {
		return id
	}

	normalized, err := strconv.ParseInt("-100"+strconv.FormatInt(id, 10), 10, 64)
	if err != nil {
		return id
	}

	return normalized
}
