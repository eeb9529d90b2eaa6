package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/katalvlaran/segmatch/dtw"
	"github.com/katalvlaran/segmatch/metric"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	// PathEnv names the variable consulted when no --config flag is given.
	PathEnv = "SEGMATCH_CONFIG"
)

var ErrBadEnv = errors.New("config: env must be one of local, dev, prod")

type Config struct {
	Env      string    `yaml:"env" env:"SEGMATCH_ENV" env-default:"local"`
	StoreDir string    `yaml:"store_dir" env:"SEGMATCH_STORE_DIR" env-default:"./models"`
	KNN      KNNConfig `yaml:"knn"`
	DTW      DTWConfig `yaml:"dtw"`
	MDS      MDSConfig `yaml:"mds"`
}

type KNNConfig struct {
	K               int     `yaml:"k" env:"SEGMATCH_KNN_K" env-default:"3"`
	MaxDistance     float64 `yaml:"max_distance" env:"SEGMATCH_KNN_MAX_DISTANCE" env-default:"1e9"`
	DownsampleRatio float64 `yaml:"downsample_ratio" env:"SEGMATCH_KNN_DOWNSAMPLE_RATIO" env-default:"1"`
}

type DTWConfig struct {
	Window int    `yaml:"window" env:"SEGMATCH_DTW_WINDOW" env-default:"0"`
	Cost   string `yaml:"cost" env:"SEGMATCH_DTW_COST" env-default:"euclidean"`
}

type MDSConfig struct {
	Dimensions  int `yaml:"dimensions" env:"SEGMATCH_MDS_DIMENSIONS" env-default:"2"`
	Concurrency int `yaml:"concurrency" env:"SEGMATCH_MDS_CONCURRENCY" env-default:"0"`
}

// Load reads the YAML file at path, then environment overrides. An empty
// path reads the environment alone.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	} else {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if cfg.MDS.Concurrency <= 0 {
		cfg.MDS.Concurrency = runtime.NumCPU()
	}
	switch cfg.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return nil, fmt.Errorf("config: env %q: %w", cfg.Env, ErrBadEnv)
	}

	return &cfg, nil
}

// MustLoad is Load for program start-up; it panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic("cannot read config: " + err.Error())
	}

	return cfg
}

// ResolvePath returns flagValue, or the SEGMATCH_CONFIG variable when the flag is empty.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	return os.Getenv(PathEnv)
}

// Options converts the dtw section into engine options.
func (c DTWConfig) Options() (dtw.Options, error) {
	cost, err := metric.ByName(c.Cost)
	if err != nil {
		return dtw.Options{}, err
	}
	opts := dtw.DefaultOptions()
	opts.Window = c.Window
	opts.Cost = cost

	return opts, nil
}
