package config

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
		Port    int    `yaml:"port"`
	} `yaml:"server"`
	Storage struct {
		DBPath string `yaml:"db_path"`
	} `yaml:"storage"`
	Security struct {
		CORS struct {
			AllowedOrigins []string `yaml:"allowed_origins"`
		} `yaml:"cors"`
		RateLimit struct {
			RPS   float64 `yaml:"rps"`
			Burst int     `yaml:"burst"`
		} `yaml:"rate_limit"`
		APIKeys struct {
			Backend     []string `yaml:"backend"`
			Frontend    []string `yaml:"frontend"`
			Admin       []string `yaml:"admin"`
			AllowUnauth bool     `yaml:"allow_unauth"`
		} `yaml:"api_keys"`
	} `yaml:"security"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"` // text|json
	} `yaml:"logging"`
	Validation struct {
		MaxContentLen  int `yaml:"max_content_len"`
		MaxDecisionLen int `yaml:"max_decision_len"`
	} `yaml:"validation"`
	Retention struct {
		Enabled bool   `yaml:"enabled"`
		Cron    string `yaml:"cron"`
		// Period is how long archived inbox items are kept before the
		// sweep purges them, e.g. "2160h" or "90d". Memory traces are
		// never purged.
		Period string `yaml:"period"`
	} `yaml:"retention"`
}

// Addr returns host:port for the HTTP server.
func (c *Config) Addr() string {
	addr := c.Server.Address
	if addr == "" {
		addr = "0.0.0.0"
	}
	p := c.Server.Port
	if p == 0 {
		p = 8080
	}
	return fmt.Sprintf("%s:%d", addr, p)
}

// EffectiveConfigResult is the merged view of file, env and flags that the
// rest of the server consumes.
type EffectiveConfigResult struct {
	Config *Config
	Addr   string
	DBPath string
	// Source names the winning layer for addr/db: "flags", "env" or "config"
	Source string
}

// Load reads a YAML config file. A missing file is an error; callers that
// allow running without a file should check os.IsNotExist upstream.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseCommandFlags defines and parses command-line flags and returns their
// values along with a map indicating which flags were explicitly set.
func ParseCommandFlags() (addr string, dbPath string, cfgPath string, setFlags map[string]bool) {
	addrPtr := flag.String("addr", ":8080", "HTTP listen address")
	dbPtr := flag.String("db", "./.backbone", "Pebble DB path")
	cfgPtr := flag.String("config", "./config.yaml", "Path to config file")
	flag.Parse()
	setFlags = map[string]bool{}
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })
	return *addrPtr, *dbPtr, *cfgPtr, setFlags
}

// LoadEffective merges the config file (optional) with env overrides and the
// provided flag values. Flags win over env, env wins over file.
func LoadEffective(cfgPath, flagAddr, flagDB string, setFlags map[string]bool) (EffectiveConfigResult, error) {
	cfg := &Config{}
	source := "config"
	if c, err := Load(cfgPath); err == nil {
		cfg = c
	} else if setFlags["config"] {
		// an explicitly requested file must exist
		return EffectiveConfigResult{}, err
	}

	envUsed := LoadEnvOverrides(cfg)
	if envUsed {
		source = "env"
	}

	addr := cfg.Addr()
	dbPath := cfg.Storage.DBPath
	if dbPath == "" {
		dbPath = flagDB
	}
	if setFlags["addr"] {
		addr = flagAddr
		source = "flags"
	}
	if setFlags["db"] {
		dbPath = flagDB
		source = "flags"
	}

	return EffectiveConfigResult{Config: cfg, Addr: addr, DBPath: dbPath, Source: source}, nil
}
