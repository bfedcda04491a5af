package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	LLM    LLMConfig
	Redis  RedisConfig
	Upload UploadConfig
	Chat   ChatConfig
	TTS    TTSConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

type LoggerConfig struct {
	Level string
	Env   string
}

// LLMConfig selects and tunes the generation backend. Provider is
// either "googleai" (Gemini) or "ollama".
type LLMConfig struct {
	Provider    string
	Model       string
	APIKey      string
	ServerURL   string
	Timeout     time.Duration
	Temperature float64
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type UploadConfig struct {
	Dir string
}

type ChatConfig struct {
	HistoryLimit int
	SessionTTL   time.Duration
}

type TTSConfig struct {
	Endpoint string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")

	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("server.body_limit", 10*1024*1024)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("llm.provider", "googleai")
	viper.SetDefault("llm.model", "gemini-1.5-flash")
	viper.SetDefault("llm.timeout", 60)
	viper.SetDefault("llm.temperature", 0.2)
	viper.SetDefault("upload.dir", "uploads")
	viper.SetDefault("chat.history_limit", 20)
	viper.SetDefault("chat.session_ttl", 3600)
	viper.SetDefault("tts.endpoint", "https://translate.google.com/translate_tts")

	viper.AutomaticEnv()
	_ = viper.BindEnv("llm.api_key", "GEMINI_API_KEY")
	_ = viper.BindEnv("redis.address", "REDIS_ADDRESS")
	_ = viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// The config file is optional; env vars and defaults cover a bare
	// deployment.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
			BodyLimit:    viper.GetInt("server.body_limit"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		LLM: LLMConfig{
			Provider:    viper.GetString("llm.provider"),
			Model:       viper.GetString("llm.model"),
			APIKey:      viper.GetString("llm.api_key"),
			ServerURL:   viper.GetString("llm.server_url"),
			Timeout:     viper.GetDuration("llm.timeout") * time.Second,
			Temperature: viper.GetFloat64("llm.temperature"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Upload: UploadConfig{
			Dir: viper.GetString("upload.dir"),
		},
		Chat: ChatConfig{
			HistoryLimit: viper.GetInt("chat.history_limit"),
			SessionTTL:   viper.GetDuration("chat.session_ttl") * time.Second,
		},
		TTS: TTSConfig{
			Endpoint: viper.GetString("tts.endpoint"),
		},
	}

	return config, nil
}
