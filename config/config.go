/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"encoding/json"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	DEFAULT_PROJECT_NAME = "Teller"
	DEFAULT_LOG_LEVEL    = "info"
	DEFAULT_LOG_FORMAT   = "text"
	DEFAULT_CURRENCY     = "R$"
	DEFAULT_TIME_LAYOUT  = "02/01/2006 15:04:05"
)

var ConfigStore atomic.Value

type LogConfig struct {
	Level  string `json:"level" envconfig:"TELLER_LOG_LEVEL"`
	Format string `json:"format" envconfig:"TELLER_LOG_FORMAT"`
}

type StatementConfig struct {
	Currency   string `json:"currency" envconfig:"TELLER_STATEMENT_CURRENCY"`
	TimeLayout string `json:"time_layout" envconfig:"TELLER_STATEMENT_TIME_LAYOUT"`
}

type Configuration struct {
	ProjectName string          `json:"project_name" envconfig:"TELLER_PROJECT_NAME"`
	Log         LogConfig       `json:"log"`
	Statement   StatementConfig `json:"statement"`
}

func loadConfigFromFile(file string) error {
	var cnf Configuration
	_, err := os.Stat(file)
	if err == nil {
		f, err := os.Open(file)
		if err != nil {
			return errors.Wrapf(err, "opening config file %s", file)
		}
		defer f.Close()
		err = json.NewDecoder(f).Decode(&cnf)
		if err != nil {
			return errors.Wrapf(err, "decoding config file %s", file)
		}
	} else if errors.Is(err, os.ErrNotExist) {
		log.Println("config json not passed, will use env variables")
	}

	// override config from environment variables
	err = envconfig.Process("teller", &cnf)
	if err != nil {
		return errors.Wrap(err, "reading environment")
	}

	err = cnf.validateAndAddDefaults()
	if err != nil {
		return err
	}

	ConfigStore.Store(&cnf)
	return nil
}

func InitConfig(configFile string) error {
	logger()
	return loadConfigFromFile(configFile)
}

func Fetch() (*Configuration, error) {
	config := ConfigStore.Load()
	c, ok := config.(*Configuration)
	if !ok {
		return nil, errors.New("config not loaded. Create a json file called teller.json or set TELLER_ environment variables")
	}
	return c, nil
}

func (cnf *Configuration) validateAndAddDefaults() error {
	cnf.ProjectName = strings.TrimSpace(cnf.ProjectName)
	cnf.Log.Level = strings.ToLower(strings.TrimSpace(cnf.Log.Level))
	cnf.Log.Format = strings.ToLower(strings.TrimSpace(cnf.Log.Format))
	cnf.Statement.Currency = strings.TrimSpace(cnf.Statement.Currency)

	if cnf.ProjectName == "" {
		cnf.ProjectName = DEFAULT_PROJECT_NAME
	}

	if cnf.Log.Level == "" {
		cnf.Log.Level = DEFAULT_LOG_LEVEL
	}
	if _, err := logrus.ParseLevel(cnf.Log.Level); err != nil {
		return errors.Errorf("invalid log level %q", cnf.Log.Level)
	}

	if cnf.Log.Format == "" {
		cnf.Log.Format = DEFAULT_LOG_FORMAT
	}
	if cnf.Log.Format != "text" && cnf.Log.Format != "json" {
		return errors.Errorf("invalid log format %q, expected text or json", cnf.Log.Format)
	}

	if cnf.Statement.Currency == "" {
		cnf.Statement.Currency = DEFAULT_CURRENCY
	}
	if strings.TrimSpace(cnf.Statement.TimeLayout) == "" {
		cnf.Statement.TimeLayout = DEFAULT_TIME_LAYOUT
	}

	return nil
}

// Logger builds the logrus logger described by the configuration.
func (cnf *Configuration) Logger() *logrus.Logger {
	l := logrus.New()
	if level, err := logrus.ParseLevel(cnf.Log.Level); err == nil {
		l.SetLevel(level)
	}
	if cnf.Log.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}

// MockConfig sets a mock configuration for testing purposes.
func MockConfig(mockConfig *Configuration) {
	ConfigStore.Store(mockConfig)
}

func logger() {
	logger := logrus.New()
	log.SetOutput(logger.Writer())
}
