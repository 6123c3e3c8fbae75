/*
 *    Copyright 2023 iFood
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort              = 9000
	defaultMaxRequestSize    = 6291456
	defaultMaxStorageSize    = 512 * 1024 * 1024
	defaultNotificationLimit = 10
	defaultLockTimeout       = 900
)

const (
	StorageS3    = "s3"
	StorageLocal = "local"
)

type AppConfig struct {
	Lambda       Lambda
	Aws          AWS
	Processor    Processor
	Redis        Redis
	Journal      Journal
	Notification Notification
	HTTPServer   HTTPServer
}

type Lambda struct {
	Environment string
	Tracing     bool
}

type AWS struct {
	Queue    string
	Topic    string
	Region   string
	Resolver string
}

type Processor struct {
	StorageType           string
	LocalRoot             string
	InstrumentBuckets     map[string]string
	DevBucketPrefix       string
	UnprocessedPrefix     string
	ProcessedPrefix       string
	CalibratedInstruments []string
	TestDataDir           string
	FilePath              string
	UseTestData           bool
	DryRun                bool
	OutputDir             string
	MaxStorageSize        int64
	LockTimeout           int
	DebugLog              bool
}

type Redis struct {
	URL      string
	Password string
	UseTLS   bool
}

type Journal struct {
	DSN string
}

type Notification struct {
	MaxPerMinute int
	Slack        Slack
}

type Slack struct {
	ChannelID string
	Webhook   string
}

type HTTPServer struct {
	AuthorizationKeys []string
	Profiler          bool
	Metrics           bool
	MaxRequestSize    int
	Port              int
}

func NewConfig() *AppConfig {
	return &AppConfig{
		Lambda: Lambda{
			Environment: "DEVELOPMENT",
		},
		Aws: AWS{
			Region: "us-east-1",
		},
		Processor: Processor{
			StorageType: StorageS3,
			InstrumentBuckets: map[string]string{
				"eea":     "hermes-eea",
				"nemisis": "hermes-nemisis",
				"merit":   "hermes-merit",
				"spani":   "hermes-spani",
			},
			DevBucketPrefix:       "dev-",
			UnprocessedPrefix:     "unprocessed/",
			ProcessedPrefix:       "processed/",
			CalibratedInstruments: []string{"eea", "nemisis", "merit", "spani"},
			TestDataDir:           "/var/task/testdata",
			MaxStorageSize:        defaultMaxStorageSize,
			LockTimeout:           defaultLockTimeout,
		},
		Notification: Notification{
			MaxPerMinute: defaultNotificationLimit,
		},
		HTTPServer: HTTPServer{
			Port:           defaultPort,
			MaxRequestSize: defaultMaxRequestSize,
		},
	}
}

func validateConfig(config AppConfig) error {
	if config.Aws.Region == "" {
		return fmt.Errorf("no AWS region specified")
	}

	switch config.Processor.StorageType {
	case StorageS3:
	case StorageLocal:
		if config.Processor.LocalRoot == "" {
			return fmt.Errorf("local storage requires a root directory")
		}
	default:
		return fmt.Errorf("unsupported storage type %q", config.Processor.StorageType)
	}

	if len(config.Processor.InstrumentBuckets) == 0 {
		return fmt.Errorf("no instrument buckets specified")
	}

	if !strings.HasSuffix(config.Processor.UnprocessedPrefix, "/") || !strings.HasSuffix(config.Processor.ProcessedPrefix, "/") {
		return fmt.Errorf("processing prefixes must end with a slash")
	}

	return nil
}

// see supershal approach https://github.com/spf13/viper/issues/188
func LoadConfig() (AppConfig, error) {
	const keyDelimiter = "/"
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))

	// set default values in viper.
	// Viper needs to know if a key exists in order to override it.
	// https://github.com/spf13/viper/issues/188
	b, err := yaml.Marshal(NewConfig())
	if err != nil {
		return AppConfig{}, err
	}

	defaultConfig := bytes.NewReader(b)

	v.SetConfigType("yaml")

	if err := v.MergeConfig(defaultConfig); err != nil {
		return AppConfig{}, err
	}

	if configFile := os.Getenv("SDC_AWS_CONFIG_FILE_PATH"); configFile != "" {
		// An explicit file must exist.
		v.SetConfigFile(configFile)

		if err := v.MergeInConfig(); err != nil {
			return AppConfig{}, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.AddConfigPath(os.Getenv("CONFIG_DIR"))
		v.AddConfigPath("../resources/")
		v.AddConfigPath(".")
		v.AddConfigPath("/app/config/")
		v.AddConfigPath("/var/task/")
		v.SetConfigName("config")

		// The container ships without a config file, defaults and env are enough.
		var notFound viper.ConfigFileNotFoundError
		if err := v.MergeInConfig(); err != nil && !errors.As(err, &notFound) {
			return AppConfig{}, err
		}
	}

	// tell viper to overwrite env variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(keyDelimiter, "_"))

	if err := bindLegacyEnv(v); err != nil {
		return AppConfig{}, err
	}

	// refresh configuration with all merged values
	config := AppConfig{}
	err = v.Unmarshal(&config)

	if err != nil {
		return AppConfig{}, err
	}

	err = validateConfig(config)
	if err != nil {
		return AppConfig{}, err
	}

	return config, nil
}

// bindLegacyEnv keeps the variable names documented for the container image working.
func bindLegacyEnv(v *viper.Viper) error {
	bindings := map[string]string{
		"Lambda/Environment":    "LAMBDA_ENVIRONMENT",
		"Processor/FilePath":    "SDC_AWS_FILE_PATH",
		"Processor/UseTestData": "USE_INSTRUMENT_TEST_DATA",
	}

	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	return nil
}
