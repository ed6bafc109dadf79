package core

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ProviderHuggingFace = "huggingface"
	ProviderOpenAI      = "openai"
)

type Config struct {
	Env            string `yaml:"env" env:"ENV" env-default:"prod"`
	TelegramApiKey string `yaml:"telegram_api_key" env:"TELEGRAM_TOKEN" env-default:""`
	OpenAIApiKey   string `yaml:"openai_api_key" env:"OPENAI_API_KEY" env-default:""`
	OpenAIBaseURL  string `yaml:"openai_base_url" env:"OPENAI_BASE_URL" env-default:""`
	Generator      struct {
		Provider string        `yaml:"provider" env:"GENERATOR_PROVIDER" env-default:"huggingface"`
		ApiKey   string        `yaml:"api_key" env:"HUGGINGFACE_API_TOKEN" env-default:""`
		Model    string        `yaml:"model" env:"STABLE_DIFFUSION_MODEL" env-default:"stabilityai/stable-diffusion-xl-base-1.0"`
		BaseURL  string        `yaml:"base_url" env:"GENERATOR_BASE_URL" env-default:"https://router.huggingface.co/hf-inference/models"`
		Timeout  time.Duration `yaml:"timeout" env:"GENERATOR_TIMEOUT" env-default:"120s"`
	} `yaml:"generator"`
	Health struct {
		Disabled bool   `yaml:"disabled" env:"HEALTH_DISABLED" env-default:"false"`
		Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	} `yaml:"health"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env-default:"false"`
		Host     string `yaml:"host" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env-default:"27017"`
		User     string `yaml:"user" env-default:"admin"`
		Password string `yaml:"password" env-default:"pass"`
		Database string `yaml:"database" env-default:"logobot"`
	} `yaml:"mongo"`
	Styles   []Style  `yaml:"styles"`
	Messages Messages `yaml:"messages"`
}

// Load reads the config file at path and applies environment overrides.
// A missing file is not an error: the bot can be configured from the
// environment alone.
func Load(path string) (*Config, error) {
	conf := &Config{}
	var err error
	if _, statErr := os.Stat(path); statErr == nil {
		err = cleanenv.ReadConfig(path, conf)
	} else {
		err = cleanenv.ReadEnv(conf)
	}
	if err != nil {
		desc, _ := cleanenv.GetDescription(conf, nil)
		return nil, fmt.Errorf("config: %s; %s", err, desc)
	}
	if err = conf.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return conf, nil
}

func MustLoad(path string) *Config {
	conf, err := Load(path)
	if err != nil {
		panic(err)
	}
	return conf
}

func (c *Config) Validate() error {
	if c.TelegramApiKey == "" {
		return errors.New("telegram_api_key is required")
	}
	switch c.Generator.Provider {
	case ProviderHuggingFace:
		if c.Generator.ApiKey == "" {
			return errors.New("generator.api_key is required")
		}
	case ProviderOpenAI:
		if c.OpenAIApiKey == "" {
			return errors.New("openai_api_key is required for the openai provider")
		}
	default:
		return fmt.Errorf("unknown generator provider %q", c.Generator.Provider)
	}
	if c.Generator.Timeout <= 0 {
		return errors.New("generator.timeout must be positive")
	}
	if err := c.Messages.Validate(); err != nil {
		return fmt.Errorf("messages: %w", err)
	}
	return nil
}
