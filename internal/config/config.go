package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrNoGames = errors.New("there are no games to simulate")

const (
	defaultWorkers  = 4
	defaultMaxPlies = 200
)

type SimulateConfig struct {
	Games    int   `yaml:"games"`
	Workers  int   `yaml:"workers"`
	MaxPlies int   `yaml:"max_plies"`
	Seed     int64 `yaml:"seed"`
}

type config struct {
	Simulate SimulateConfig `yaml:"simulate"`
}

func New(cfgPath string) (config, error) {
	file, err := os.Open(cfgPath)
	if err != nil {
		return config{}, err
	}
	defer func() {
		_ = file.Close()
	}()
	cfg := config{}
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return config{}, err
	}
	if cfg.Simulate.Games <= 0 {
		return config{}, ErrNoGames
	}
	if cfg.Simulate.Workers <= 0 {
		cfg.Simulate.Workers = defaultWorkers
	}
	if cfg.Simulate.MaxPlies <= 0 {
		cfg.Simulate.MaxPlies = defaultMaxPlies
	}
	return cfg, nil
}
