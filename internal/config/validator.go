package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ValidateConfig validates configuration values and returns an error if any are invalid.
// This function should be called after viper has loaded the configuration.
func ValidateConfig() error {
	var errors []string

	for _, key := range []string{KeyCountingDelay, KeyTicTacToeDelay, KeyFaultyDelay} {
		if d := viper.GetDuration(key); d < 0 {
			errors = append(errors, fmt.Sprintf("%s must not be negative, got: %v", key, d))
		}
	}
	if d := viper.GetDuration(KeySleepDuration); d <= 0 {
		errors = append(errors, fmt.Sprintf("%s must be positive, got: %v", KeySleepDuration, d))
	}

	for _, key := range []string{KeyCountingLimit, KeyFaultyFailAfter, KeyTicTacToeRows, KeyTicTacToeCols, KeyTicTacToeWin} {
		if n := viper.GetInt(key); n <= 0 {
			errors = append(errors, fmt.Sprintf("%s must be positive, got: %d", key, n))
		}
	}

	rows, cols, win := viper.GetInt(KeyTicTacToeRows), viper.GetInt(KeyTicTacToeCols), viper.GetInt(KeyTicTacToeWin)
	if rows > 0 && cols > 0 && win > max(rows, cols) {
		errors = append(errors, fmt.Sprintf("%s must not exceed the longest board side (%d), got: %d", KeyTicTacToeWin, max(rows, cols), win))
	}

	switch ui := viper.GetString(KeyUI); ui {
	case UIAuto, UILine, UIList:
	default:
		errors = append(errors, fmt.Sprintf("%s must be one of %s, %s, %s, got: %q", KeyUI, UIAuto, UILine, UIList, ui))
	}

	// If there are any errors, return them
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}

	return nil
}
