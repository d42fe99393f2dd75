package main

import (
	"sync"

	"github.com/spf13/viper"
)

// AppConfig is loaded once at startup from the optional .env file and the
// environment. Everything else is runtime Config below.
type AppConfig struct {
	ServerPort      string `mapstructure:"SERVER_PORT"`
	BoardSize       int    `mapstructure:"BOARD_SIZE"`
	AISeed          int64  `mapstructure:"AI_SEED"`
	TickIntervalMs  int    `mapstructure:"TICK_INTERVAL_MS"`
	DevelopmentLogs bool   `mapstructure:"DEVELOPMENT_LOGS"`
}

func Setup(cfgPath string) (*AppConfig, error) {
	viper.SetConfigFile(cfgPath)
	viper.SetConfigType("env")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("BOARD_SIZE", DefaultBoardSize)
	viper.SetDefault("AI_SEED", 0)
	viper.SetDefault("TICK_INTERVAL_MS", 50)
	viper.SetDefault("DEVELOPMENT_LOGS", false)
	viper.AutomaticEnv()

	// A missing .env is fine; defaults and the environment cover it.
	_ = viper.ReadInConfig()

	var cfg AppConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Config is the runtime-tunable part, readable and updatable over
// /api/settings.
type Config struct {
	DefaultBoardSize       int  `json:"default_board_size"`
	DefaultBlackDifficulty int  `json:"default_black_difficulty"`
	DefaultWhiteDifficulty int  `json:"default_white_difficulty"`
	DefaultTargetMoves     int  `json:"default_target_moves"`
	DefaultCaptureTarget   int  `json:"default_capture_target"`
	AiMoveDelayMs          int  `json:"ai_move_delay_ms"`
	LogMoveStats           bool `json:"log_move_stats"`
}

func DefaultConfig() Config {
	return Config{
		DefaultBoardSize:       DefaultBoardSize,
		DefaultBlackDifficulty: 5,
		DefaultWhiteDifficulty: 5,
		DefaultTargetMoves:     200,
		DefaultCaptureTarget:   20,
		AiMoveDelayMs:          0,
		LogMoveStats:           false,
	}
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}
