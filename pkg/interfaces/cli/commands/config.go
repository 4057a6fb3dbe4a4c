package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/vsinha/bundletrack/pkg/domain/schema"
)

const (
	cfgKeyDataDir         = "data_dir"
	cfgKeyBundleFile      = "bundle_file"
	cfgKeyBranchFile      = "branch_file"
	cfgKeyLedgerFile      = "ledger_file"
	cfgKeyLogLevel        = "log_level"
	cfgKeySchemaOverrides = "schema_overrides"

	defaultDataDir  = "data"
	defaultLogLevel = "info"

	defaultBundleFileName = "bundle_analysis.csv"
	defaultBranchFileName = "branch_list.csv"
	defaultLedgerFileName = "bundle_sales_log.csv"
)

// loadConfig reads bundletrack.yaml via Viper. A missing config file is
// not an error; flags and defaults cover everything.
func loadConfig(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyDataDir, defaultDataDir)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)

	v.SetEnvPrefix("BUNDLETRACK")
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("bundletrack")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return v, nil
}

// Path resolution: flag > config > data-dir default

func resolveDataDir() string {
	if flagDataDir != "" {
		return flagDataDir
	}
	return cfg.GetString(cfgKeyDataDir)
}

func resolveBundlePath() string {
	if flagBundleFile != "" {
		return flagBundleFile
	}
	if path := cfg.GetString(cfgKeyBundleFile); path != "" {
		return path
	}
	return filepath.Join(resolveDataDir(), defaultBundleFileName)
}

func resolveBranchPath() string {
	if flagBranchFile != "" {
		return flagBranchFile
	}
	if path := cfg.GetString(cfgKeyBranchFile); path != "" {
		return path
	}
	return filepath.Join(resolveDataDir(), defaultBranchFileName)
}

func resolveLedgerPath() string {
	if flagLedgerFile != "" {
		return flagLedgerFile
	}
	if path := cfg.GetString(cfgKeyLedgerFile); path != "" {
		return path
	}
	return filepath.Join(resolveDataDir(), defaultLedgerFileName)
}

func resolveLogLevel() string {
	if flagLogLevel != "" {
		return flagLogLevel
	}
	return cfg.GetString(cfgKeyLogLevel)
}

// resolveSchemaOverrides reads configured logical-field column pins, e.g.
//
//	schema_overrides:
//	  confidence: Enhanced_Confidenci
func resolveSchemaOverrides() map[schema.Field]string {
	raw := cfg.GetStringMapString(cfgKeySchemaOverrides)
	if len(raw) == 0 {
		return nil
	}
	overrides := make(map[schema.Field]string, len(raw))
	for field, column := range raw {
		overrides[schema.Field(field)] = column
	}
	return overrides
}
