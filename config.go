package numo

import (
	"fmt"
	"os"
	"time"

	"github.com/oarkflow/json"
	"go.uber.org/zap"

	"github.com/oarkflow/numo/utils"
)

const (
	defaultHTTPTimeout  = 5 * time.Second
	defaultCurrencyTTL  = 15 * time.Minute
	defaultCurrencyAPI  = "https://open.er-api.com/v6/latest"
	defaultTranslateAPI = "https://translate.googleapis.com/translate_a/single"
)

// Config controls engine construction for the CLI: runner order by name and
// the external service endpoints. Durations accept Go duration strings
// ("5s", "15m") in the JSON file.
type Config struct {
	Runners      []string      `json:"runners"`
	HTTPTimeout  time.Duration `json:"http_timeout"`
	CurrencyAPI  string        `json:"currency_api_url"`
	CurrencyTTL  time.Duration `json:"currency_cache_ttl"`
	TranslateAPI string        `json:"translate_api_url"`
}

func DefaultConfig() Config {
	return Config{
		Runners:      []string{"translate", "unit", "currency", "math", "variable"},
		HTTPTimeout:  defaultHTTPTimeout,
		CurrencyAPI:  defaultCurrencyAPI,
		CurrencyTTL:  defaultCurrencyTTL,
		TranslateAPI: defaultTranslateAPI,
	}
}

// LoadConfig reads a JSON config file into the defaults. An empty path keeps
// the defaults. NUMO_CURRENCY_API and NUMO_TRANSLATE_API override the
// endpoints either way.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		var raw map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			return cfg, err
		}
		if err := utils.Convert(raw, &cfg); err != nil {
			return cfg, err
		}
	}
	if v := utils.Getenv("NUMO_CURRENCY_API"); v != "" {
		cfg.CurrencyAPI = v
	}
	if v := utils.Getenv("NUMO_TRANSLATE_API"); v != "" {
		cfg.TranslateAPI = v
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if len(c.Runners) == 0 {
		return &ValidationError{Field: "runners", Value: c.Runners, Message: "at least one runner required"}
	}
	for _, name := range c.Runners {
		switch name {
		case "translate", "unit", "currency", "math", "variable":
		default:
			return &ValidationError{Field: "runners", Value: name, Message: "unknown runner"}
		}
	}
	if c.HTTPTimeout <= 0 {
		return &ValidationError{Field: "http_timeout", Value: c.HTTPTimeout, Message: "must be positive"}
	}
	if c.CurrencyTTL <= 0 {
		return &ValidationError{Field: "currency_cache_ttl", Value: c.CurrencyTTL, Message: "must be positive"}
	}
	return nil
}

// BuildRunners constructs the runner list in the configured order.
func (c Config) BuildRunners() ([]Runner, error) {
	runners := make([]Runner, 0, len(c.Runners))
	for _, name := range c.Runners {
		switch name {
		case "translate":
			runners = append(runners, NewTranslateRunner(c.TranslateAPI, c.HTTPTimeout))
		case "unit":
			runners = append(runners, NewUnitRunner())
		case "currency":
			runners = append(runners, NewCurrencyRunner(c.CurrencyAPI, c.CurrencyTTL, c.HTTPTimeout))
		case "math":
			runners = append(runners, NewMathRunner())
		case "variable":
			runners = append(runners, NewVariableRunner())
		default:
			return nil, fmt.Errorf("unknown runner %q", name)
		}
	}
	return runners, nil
}

// Engine builds a Numo engine from the config.
func (c Config) Engine(logger *zap.Logger) (*Numo, error) {
	runners, err := c.BuildRunners()
	if err != nil {
		return nil, err
	}
	return New(WithRunners(runners...), WithLogger(logger)), nil
}
