package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/nazar220160/TGConvertor/internal/telegram"
)

// Config holds all application configuration.
type Config struct {
	// API is the device identity used for client construction and tdata
	// export. Defaults to the Telegram Desktop profile.
	API telegram.APIProfile
}

// Load loads configuration from environment variables, reading a .env file
// first when one exists. TG_API_ID and TG_API_HASH select a custom API
// profile; they must be set together.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{API: telegram.TelegramDesktop}

	apiID := os.Getenv("TG_API_ID")
	apiHash := os.Getenv("TG_API_HASH")
	switch {
	case apiID != "" && apiHash != "":
		id, err := strconv.ParseInt(apiID, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("TG_API_ID must be an integer: %w", err)
		}
		cfg.API = telegram.CustomAPI(int32(id), apiHash)
	case apiID != "" || apiHash != "":
		return nil, fmt.Errorf("TG_API_ID and TG_API_HASH must be set together")
	}

	return cfg, nil
}
