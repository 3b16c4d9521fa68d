package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override, e.g.
// DEMOHOST_EXIT_ON_INTERRUPT_WHEN_IDLE=false.
const EnvPrefix = "DEMOHOST"

// Load initializes the configuration from defaults, an optional config file
// and environment variables. It returns the config file used, if any.
func Load(cfgFile string) (string, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			return "", nil
		}
		return "", fmt.Errorf("read config: %w", err)
	}
	return viper.ConfigFileUsed(), nil
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault(KeyTitle, "Demo Host")
	viper.SetDefault(KeyHandleInterrupt, true)
	viper.SetDefault(KeyExitOnIdleInterrupt, true)
	viper.SetDefault(KeyDebug, false)
	viper.SetDefault(KeyLogFile, "")
	viper.SetDefault(KeyMetricsAddr, "")
	viper.SetDefault(KeyUI, UIAuto)
	viper.SetDefault(KeyHelpStyle, "auto")
	viper.SetDefault(KeyScenarios, []string{})

	viper.SetDefault(KeyCountingLimit, 10)
	viper.SetDefault(KeyCountingDelay, "500ms")
	viper.SetDefault(KeySleepDuration, "5s")
	viper.SetDefault(KeyTicTacToeRows, 3)
	viper.SetDefault(KeyTicTacToeCols, 3)
	viper.SetDefault(KeyTicTacToeWin, 3)
	viper.SetDefault(KeyTicTacToeDelay, "400ms")
	viper.SetDefault(KeyTicTacToeSeed, 0)
	viper.SetDefault(KeyFaultyFailAfter, 3)
	viper.SetDefault(KeyFaultyDelay, "300ms")
}
