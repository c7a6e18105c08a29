package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	errUtils "github.com/cloudposse/countdown/errors"
	"github.com/cloudposse/countdown/pkg/countdown"
	log "github.com/cloudposse/countdown/pkg/logger"
	"github.com/cloudposse/countdown/pkg/schema"
)

// flagKeys maps flag names to the configuration keys they override.
var flagKeys = map[string]string{
	TargetFlag:    TargetKey,
	TimezoneFlag:  TimezoneKey,
	LogsLevelFlag: LogsLevel,
	LogsFileFlag:  LogsFile,
}

// LoadConfig resolves the configuration from the following locations (from lower to higher priority):
// defaults
// XDG config dir ($XDG_CONFIG_HOME/countdown/countdown.yaml)
// home dir (~/.countdown/countdown.yaml)
// current directory (./countdown.yaml)
// the file named by --config
// COUNTDOWN_* ENV vars
// Command-line flags that were set
// The target and timezone are left as strings; commands that need them call ResolveTarget.
func LoadConfig(flags *pflag.FlagSet) (schema.Configuration, error) {
	v := viper.New()
	var cfg schema.Configuration
	v.SetConfigType("yaml")
	v.SetTypeByDefaultValue(true)
	setDefaultConfiguration(v)

	readers := []func(*viper.Viper) error{readXDGConfig, readHomeConfig, readWorkDirConfig}
	for _, read := range readers {
		if err := read(v); err != nil {
			return cfg, err
		}
	}

	if path := explicitConfigPath(flags); path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return cfg, errUtils.Build(errUtils.ErrReadConfig).
				WithCause(err).
				WithContext("file", path).
				WithHint("Check that the file passed with --config exists and is valid YAML").
				WithExitCode(errUtils.ExitCodeUsage).
				Err()
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindFlags(v, flags); err != nil {
		return cfg, err
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errUtils.Build(errUtils.ErrUnmarshalConfig).WithCause(err).Err()
	}
	cfg.ConfigFileUsed = v.ConfigFileUsed()
	if cfg.ConfigFileUsed == "" {
		log.Debug("'countdown.yaml' config was not found, using defaults")
	} else {
		log.Debug("Loaded config", "file", cfg.ConfigFileUsed)
	}
	return cfg, nil
}

// setDefaultConfiguration set default configuration for the viper instance.
func setDefaultConfiguration(v *viper.Viper) {
	v.SetDefault(TargetKey, countdown.DefaultTarget)
	v.SetDefault(TimezoneKey, DefaultTimezone)
	v.SetDefault(LogsFile, DefaultLogFile)
	v.SetDefault(LogsLevel, DefaultLogLevel)
}

// readXDGConfig load config from $XDG_CONFIG_HOME/countdown.
func readXDGConfig(v *viper.Viper) error {
	return mergeOptionalConfig(v, filepath.Join(xdg.ConfigHome, AppName))
}

// readHomeConfig load config from user's HOME dir.
func readHomeConfig(v *viper.Viper) error {
	home, err := homedir.Dir()
	if err != nil {
		log.Debug("Skipping home config", "error", err)
		return nil
	}
	return mergeOptionalConfig(v, filepath.Join(home, DotConfigDirName))
}

// readWorkDirConfig load config from current working directory.
func readWorkDirConfig(v *viper.Viper) error {
	wd, err := os.Getwd()
	if err != nil {
		return errUtils.Build(errUtils.ErrReadConfig).WithCause(err).Err()
	}
	return mergeOptionalConfig(v, wd)
}

// mergeOptionalConfig merges countdown.yaml from path, tolerating its absence.
func mergeOptionalConfig(v *viper.Viper, path string) error {
	err := mergeConfig(v, path, CliConfigFileName)
	if err == nil {
		log.Trace("Merged config", "path", path)
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return errUtils.Build(errUtils.ErrReadConfig).
		WithCause(err).
		WithContext("path", path).
		Err()
}

// mergeConfig merge config from a specified path and file name.
// Search paths accumulate in viper, so each call resets them to path alone.
func mergeConfig(v *viper.Viper, path string, fileName string) error {
	probe := viper.New()
	probe.SetConfigType("yaml")
	probe.AddConfigPath(path)
	probe.SetConfigName(fileName)
	if err := probe.ReadInConfig(); err != nil {
		return err
	}

	v.SetConfigFile(probe.ConfigFileUsed())
	return v.MergeInConfig()
}

func explicitConfigPath(flags *pflag.FlagSet) string {
	if flags == nil {
		return ""
	}
	f := flags.Lookup(ConfigFlag)
	if f == nil {
		return ""
	}
	return f.Value.String()
}

// bindFlags lets flags that were set on the command line override every other source.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errUtils.Build(errUtils.ErrBindFlag).
				WithCause(err).
				WithContext("flag", name).
				Err()
		}
	}
	return nil
}

// ResolveTarget turns the configured timezone and target into a countdown.Target.
func ResolveTarget(cfg schema.Configuration) (countdown.Target, *time.Location, error) {
	loc, err := LoadLocation(cfg.Timezone)
	if err != nil {
		return countdown.Target{}, nil, err
	}
	target, err := countdown.ParseTarget(cfg.Target, loc)
	if err != nil {
		return countdown.Target{}, nil, err
	}
	return target, loc, nil
}

// LoadLocation resolves an IANA zone name. Empty and "Local" mean the system zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, DefaultTimezone) {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errUtils.Build(errUtils.ErrInvalidTimezone).
			WithCause(err).
			WithContext("timezone", name).
			WithHint("Use an IANA zone name such as `Europe/Berlin`, `UTC` or `Local`").
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}
	return loc, nil
}
