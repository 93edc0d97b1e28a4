package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

const DefaultPath = "./config/application.yaml"

const envPrefix = "HOMEDASH_"

type Application struct {
	Addr      string    `koanf:"addr"`
	Timezone  string    `koanf:"timezone"`
	Seed      Seed      `koanf:"seed"`
	Dashboard Dashboard `koanf:"dashboard"`
	Cors      Cors      `koanf:"cors"`
	Metrics   Metrics   `koanf:"metrics"`
}

type Seed struct {
	Enabled bool `koanf:"enabled"`
	// File replaces the built-in sample records when set.
	File string `koanf:"file"`
}

type Dashboard struct {
	DueSoonDays      int `koanf:"duesoondays"`
	ExpiringSoonDays int `koanf:"expiringsoondays"`
	PreviewLimit     int `koanf:"previewlimit"`
}

type Cors struct {
	AllowedOrigins []string `koanf:"allowedorigins"`
}

type Metrics struct {
	Enabled bool `koanf:"enabled"`
}

func Defaults() Application {
	return Application{
		Addr:     ":8181",
		Timezone: "Local",
		Seed: Seed{
			Enabled: true,
		},
		Dashboard: Dashboard{
			DueSoonDays:      7,
			ExpiringSoonDays: 30,
			PreviewLimit:     5,
		},
		Cors: Cors{
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		Metrics: Metrics{
			Enabled: true,
		},
	}
}

// Location resolves the configured timezone. Calendar dates are interpreted in it.
func (a Application) Location() (*time.Location, error) {
	if a.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", a.Timezone, err)
	}
	return loc, nil
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Defaults(), "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, envPrefix)), "_", ".")
			if k == "cors.allowedorigins" {
				return k, strings.Split(v, ",")
			}
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	if _, err := app.Location(); err != nil {
		return Application{}, err
	}

	return app, nil
}
