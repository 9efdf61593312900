package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/c9s/indicatorkit/pkg/datasource/csvsource"
)

// InputConfig points to the candlestick csv files
type InputConfig struct {
	// Path is a csv file, a directory of csv files or a list of both
	Path   PathList `json:"path"`
	Format string   `json:"format"`
}

// IndicatorConfig is one indicator job. Which of the parameters are read depends on the indicator id.
type IndicatorConfig struct {
	ID string `json:"id"`

	// Name labels the result, defaults to the id
	Name string `json:"name,omitempty"`

	// Source selects the bar value fed to the single series indicators:
	// close (default), open, high, low, typical, median or volume
	Source string `json:"source,omitempty"`

	Window int `json:"window,omitempty"`
	Short  int `json:"short,omitempty"`
	Long   int `json:"long,omitempty"`
	Signal int `json:"signal,omitempty"`

	// stochastics %D and slow %D windows
	D  int `json:"d,omitempty"`
	SD int `json:"sd,omitempty"`

	// envelope band width in percent
	Percent float64 `json:"percent,omitempty"`

	// bollinger band width in sigma
	K float64 `json:"k,omitempty"`

	// parabolic SAR acceleration factors
	AFInit *float64 `json:"afInit,omitempty"`
	AFStep *float64 `json:"afStep,omitempty"`
	AFMax  *float64 `json:"afMax,omitempty"`

	// ichimoku line lengths
	Conversion   int `json:"conversion,omitempty"`
	Base         int `json:"base,omitempty"`
	LeadingSpanB int `json:"leadingSpanB,omitempty"`
	Span         int `json:"span,omitempty"`
}

// Label returns the name of the result
func (c IndicatorConfig) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}

type Config struct {
	Input       InputConfig       `json:"input"`
	Parallelism int               `json:"parallelism"`
	Indicators  []IndicatorConfig `json:"indicators"`
}

type Stash map[string]interface{}

func loadStash(config []byte) (Stash, error) {
	stash := make(Stash)
	if err := yaml.Unmarshal(config, stash); err != nil {
		return nil, err
	}

	return stash, nil
}

// Load reads the pipeline config file
func Load(configFile string) (*Config, error) {
	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	config, err := LoadBytes(content)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", configFile)
	}

	return config, nil
}

// LoadBytes parses the pipeline config, fills the defaults and validates it
func LoadBytes(content []byte) (*Config, error) {
	var config Config

	stash, err := loadStash(content)
	if err != nil {
		return nil, err
	}

	if err := loadInput(stash, &config); err != nil {
		return nil, err
	}

	if err := loadParallelism(stash, &config); err != nil {
		return nil, err
	}

	indicators, err := loadIndicators(stash)
	if err != nil {
		return nil, err
	}
	config.Indicators = indicators

	return &config, nil
}

func loadInput(stash Stash, config *Config) error {
	if conf, ok := stash["input"]; ok {
		if err := reUnmarshal(conf, &config.Input); err != nil {
			return errors.Wrap(err, "input")
		}
	}

	if config.Input.Format == "" {
		config.Input.Format = csvsource.FormatPlain
	}

	if _, err := csvsource.ReaderMakerByFormat(config.Input.Format); err != nil {
		return errors.Wrap(err, "input")
	}

	return nil
}

func loadParallelism(stash Stash, config *Config) error {
	config.Parallelism = 1

	val, ok := stash["parallelism"]
	if !ok {
		return nil
	}

	n, ok := val.(int)
	if !ok || n < 1 {
		return errors.Errorf("parallelism should be a positive integer, given: %T %+v", val, val)
	}

	config.Parallelism = n
	return nil
}

func loadIndicators(stash Stash) (indicators []IndicatorConfig, err error) {
	indicatorsConf, ok := stash["indicators"]
	if !ok {
		return indicators, nil
	}

	configList, ok := indicatorsConf.([]interface{})
	if !ok {
		return nil, errors.New("expecting list in indicators")
	}

	for i, entry := range configList {
		configStash, ok := entry.(map[string]interface{})
		if !ok {
			return nil, errors.Errorf("indicator config should be a map, given: %T %+v", entry, entry)
		}

		var conf IndicatorConfig
		if err := reUnmarshal(configStash, &conf); err != nil {
			return nil, errors.Wrapf(err, "indicators[%d]", i)
		}

		if conf.ID == "" {
			return nil, errors.Errorf("indicators[%d]: id is required", i)
		}

		indicators = append(indicators, conf)
	}

	return indicators, nil
}

// reUnmarshal converts the yaml stash into the typed struct through json
func reUnmarshal(conf interface{}, val interface{}) error {
	plain, err := json.Marshal(conf)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(plain, val); err != nil {
		return errors.Wrapf(err, "json parsing error, given payload: %s", plain)
	}

	return nil
}
