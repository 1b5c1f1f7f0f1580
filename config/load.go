package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const envPrefix = "COORDINATOR"

var (
	ErrConfigFailedToSetDefaults = errors.New("error occurred while setting defaults")
	ErrConfigPath                = errors.New("config path error")
	ErrConfigFailedToDump        = errors.New("failed to dump config")
)

// Load reads defaults, then config.yaml from the given directories, then COORDINATOR_* env vars.
func Load(configFileDirs ...string) (*CoordinatorConfig, error) {
	v := viper.New()
	cfg := getDefaultCoordinatorConfig()

	err := setDefaults(v, cfg)
	if err != nil {
		return nil, err
	}

	err = overrideWithFiles(v, configFileDirs...)
	if err != nil {
		return nil, err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// DumpConfig writes the default configuration to filename.
func DumpConfig(filename string) error {
	v := viper.New()

	if err := setDefaults(v, getDefaultCoordinatorConfig()); err != nil {
		return err
	}

	if err := v.WriteConfigAs(filename); err != nil {
		return errors.Join(ErrConfigFailedToDump, err)
	}

	return nil
}

func setDefaults(v *viper.Viper, defaultConfig *CoordinatorConfig) error {
	defaultsMap := make(map[string]interface{})

	if err := mapstructure.Decode(defaultConfig, &defaultsMap); err != nil {
		err = errors.Join(ErrConfigFailedToSetDefaults, err)
		return err
	}

	for key, value := range flatten("", defaultsMap) {
		v.SetDefault(key, value)
	}

	return nil
}

// flatten expands nested defaults into dotted keys so env overrides reach nested fields.
func flatten(prefix string, m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{})

	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		nested := make(map[string]interface{})
		switch val := value.(type) {
		case map[string]string:
			if len(val) > 0 {
				out[fullKey] = val
			}
			continue
		default:
			if err := mapstructure.Decode(value, &nested); err != nil || len(nested) == 0 {
				out[fullKey] = value
				continue
			}
		}

		for k, v := range flatten(fullKey, nested) {
			out[k] = v
		}
	}

	return out
}

func overrideWithFiles(v *viper.Viper, configFileDirs ...string) error {
	if len(configFileDirs) == 0 || configFileDirs[0] == "" {
		return nil
	}

	for _, path := range configFileDirs {
		stat, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return errors.Join(ErrConfigPath, fmt.Errorf("path: %s does not exist", path))
			}
			return err
		}
		if !stat.IsDir() {
			return errors.Join(ErrConfigPath, fmt.Errorf("path: %s should be a directory", path))
		}

		v.AddConfigPath(path)
	}

	v.SetConfigName("config")

	return v.ReadInConfig()
}
