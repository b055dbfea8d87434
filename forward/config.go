package forward

import (
	"chat-relay/config"
	"chat-relay/errors"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// SectionName is the component's key in the host configuration file.
const SectionName = "forward"

// Config holds the receivers to relay to and the keywords that trigger a
// relay. Both sets must be non-empty or the component stays disabled.
type Config struct {
	Receivers []string `json:"receivers" validate:"required,min=1,dive,required"`
	Keywords  []string `json:"keywords" validate:"required,min=1,dive,required"`
}

var validate = validator.New()

// LoadConfig reads and validates the forward section. An absent section
// yields errors.ErrConfigMissing, anything malformed or failing
// validation yields errors.ErrConfigInvalid; either way the caller skips
// handler registration and the host keeps running.
func LoadConfig(sections config.Sections, log *slog.Logger) (Config, error) {
	raw, ok := sections.Section(SectionName)
	if !ok {
		return Config{}, errors.ErrConfigMissing
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		log.Warn("Error loading forward configuration", "error", err)
		return Config{}, fmt.Errorf("%w: %v", errors.ErrConfigInvalid, err)
	}

	cfg.Receivers = lo.Uniq(cfg.Receivers)
	cfg.Keywords = lo.Uniq(cfg.Keywords)

	if err := validate.Struct(cfg); err != nil {
		log.Warn("Error loading forward configuration", "error", err)
		return Config{}, fmt.Errorf("%w: %v", errors.ErrConfigInvalid, err)
	}

	log.Info("Forward configuration loaded", "receivers", cfg.Receivers, "keywords", cfg.Keywords)
	return cfg, nil
}
