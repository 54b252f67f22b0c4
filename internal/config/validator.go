package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the struct tags of cfg and reports every failing field
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		problems := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			problems = append(problems, fmt.Sprintf("%s failed %q", e.Field(), e.Tag()))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, ", "))
	}
	return nil
}

// ValidateDiscord checks the fields the Discord front-end cannot run without
func (c *Config) ValidateDiscord() error {
	var missing []string
	if c.DiscordToken == "" {
		missing = append(missing, EnvDiscordToken)
	}
	if c.DiscordAppID == "" {
		missing = append(missing, EnvDiscordAppID)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Warnings returns non-fatal configuration remarks
func (c *Config) Warnings() []string {
	var warnings []string
	if c.APIKey == "" {
		warnings = append(warnings, "API_KEY not set, requests are sent without X-API-Key")
	}
	if strings.HasPrefix(c.APIURL, "http://") && !strings.Contains(c.APIURL, "localhost") && !strings.Contains(c.APIURL, "127.0.0.1") {
		warnings = append(warnings, "API_URL uses plain HTTP to a remote host")
	}
	return warnings
}
