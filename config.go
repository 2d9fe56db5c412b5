package krill

import (
	"fmt"
	"os"

	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/viper"
)

const (
	// ConfigEnv is the environment variable holding the directory of conf.toml.
	ConfigEnv  = "KRILL_CONFIG"
	configName = "conf"
)

// LoadSystem reads the system from `dir`/conf.toml, either from its name or from its mass ratio:
//	[system]
//	name = "earth-moon"
//	mu = 0.012154
// The mass ratio wins when both are set.
func LoadSystem(dir string) (System, error) {
	conf := viper.New()
	conf.SetConfigName(configName)
	conf.SetConfigType("toml")
	conf.AddConfigPath(dir)
	if err := conf.ReadInConfig(); err != nil {
		return System{}, fmt.Errorf("%s/%s.toml: %s", dir, configName, err)
	}
	logger := kitlog.With(Logger, "subsys", "config")

	name := conf.GetString("system.name")
	var sys System
	var err error
	if conf.IsSet("system.mu") {
		if name == "" {
			name = "custom"
		} else if predef, perr := SystemFromString(name); perr == nil && predef.μ != conf.GetFloat64("system.mu") {
			logger.Log("level", "warning", "message", "mass ratio overrides the predefined system", "system", name, "μ", predef.μ)
		}
		sys, err = NewSystemFromMassRatio(name, conf.GetFloat64("system.mu"))
	} else if name != "" {
		sys, err = SystemFromString(name)
	} else {
		err = fmt.Errorf("%w: %s/%s.toml sets neither system.name nor system.mu", ErrInvalidArgument, dir, configName)
	}
	if err != nil {
		logger.Log("level", "critical", "err", err)
		return System{}, err
	}
	logger.Log("level", "info", "system", sys.Name, "μ", sys.μ)
	return sys, nil
}

// SystemFromEnv is LoadSystem on the directory set in the KRILL_CONFIG environment variable.
func SystemFromEnv() (System, error) {
	confPath := os.Getenv(ConfigEnv)
	if confPath == "" {
		return System{}, fmt.Errorf("environment variable `%s` is missing or empty", ConfigEnv)
	}
	return LoadSystem(confPath)
}
