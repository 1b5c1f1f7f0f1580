package helper

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/revault/coordinatord/config"
	"github.com/revault/coordinatord/dbconn"
	coordinatorsql "github.com/revault/coordinatord/internal/coordinator/store/sql"
	coordinatorLogger "github.com/revault/coordinatord/internal/logger"
)

var ErrMissingFlag = errors.New("missing flag")

func GetString(settingName string) (string, error) {
	setting := viper.GetString(settingName)
	if setting == "" {
		return "", errors.Join(ErrMissingFlag, fmt.Errorf("%s", settingName))
	}

	return setting, nil
}

func GetStringSlice(settingName string) ([]string, error) {
	setting := viper.GetStringSlice(settingName)
	if len(setting) == 0 {
		return nil, errors.Join(ErrMissingFlag, fmt.Errorf("%s", settingName))
	}

	return setting, nil
}

func DecodeHex(settingName string) ([]byte, error) {
	s, err := GetString(settingName)
	if err != nil {
		return nil, err
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%s is not valid hex: %w", settingName, err)
	}

	return b, nil
}

// NewStore builds the store from the loaded config. A --db URL replaces the configured database.
func NewStore() (*coordinatorsql.Store, *slog.Logger, error) {
	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logLevel := cfg.LogLevel
	if l := viper.GetString("logLevel"); l != "" {
		logLevel = l
	}

	logger, err := coordinatorLogger.NewLogger(logLevel, cfg.LogFormat, coordinatorLogger.WithWriter(os.Stderr), coordinatorLogger.WithService("coordinator-cli"))
	if err != nil {
		return nil, nil, err
	}

	var params dbconn.DBConnectionParams
	if dbURL := viper.GetString("db"); dbURL != "" {
		params, err = dbconn.FromURL(dbURL)
	} else {
		params, err = cfg.Db.ConnectionParams()
	}
	if err != nil {
		return nil, nil, err
	}

	s, err := coordinatorsql.New(params, logger)
	if err != nil {
		return nil, nil, err
	}

	return s, logger, nil
}
