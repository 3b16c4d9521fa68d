package config

import (
	"github.com/spf13/viper"

	"demohost/internal/demos"
	"demohost/pkg/harness"
)

// Configuration keys.
const (
	KeyTitle               = "title"
	KeyHandleInterrupt     = "handle_interrupt"
	KeyExitOnIdleInterrupt = "exit_on_interrupt_when_idle"
	KeyDebug               = "debug"
	KeyLogFile             = "log_file"
	KeyMetricsAddr         = "metrics_addr"
	KeyUI                  = "ui"
	KeyHelpStyle           = "help_style"
	KeyScenarios           = "scenarios"

	KeyCountingLimit   = "demos.counting.limit"
	KeyCountingDelay   = "demos.counting.delay"
	KeySleepDuration   = "demos.sleep.duration"
	KeyTicTacToeRows   = "demos.tictactoe.rows"
	KeyTicTacToeCols   = "demos.tictactoe.cols"
	KeyTicTacToeWin    = "demos.tictactoe.win"
	KeyTicTacToeDelay  = "demos.tictactoe.delay"
	KeyTicTacToeSeed   = "demos.tictactoe.seed"
	KeyFaultyFailAfter = "demos.faulty.fail_after"
	KeyFaultyDelay     = "demos.faulty.delay"
)

// Console modes.
const (
	UIAuto = "auto"
	UILine = "line"
	UIList = "list"
)

// Settings is a typed snapshot of the configuration.
type Settings struct {
	Title                   string
	HandleInterrupt         bool
	ExitOnInterruptWhenIdle bool
	Debug                   bool
	LogFile                 string
	MetricsAddr             string
	UI                      string
	HelpStyle               string
	Scenarios               []string
	Demos                   demos.Settings
}

// Current reads the settings from viper.
func Current() Settings {
	return Settings{
		Title:                   viper.GetString(KeyTitle),
		HandleInterrupt:         viper.GetBool(KeyHandleInterrupt),
		ExitOnInterruptWhenIdle: viper.GetBool(KeyExitOnIdleInterrupt),
		Debug:                   viper.GetBool(KeyDebug),
		LogFile:                 viper.GetString(KeyLogFile),
		MetricsAddr:             viper.GetString(KeyMetricsAddr),
		UI:                      viper.GetString(KeyUI),
		HelpStyle:               viper.GetString(KeyHelpStyle),
		Scenarios:               viper.GetStringSlice(KeyScenarios),
		Demos: demos.Settings{
			Counting: demos.CountingSettings{
				Limit: viper.GetInt(KeyCountingLimit),
				Delay: viper.GetDuration(KeyCountingDelay),
			},
			Sleep: demos.SleepSettings{
				Duration: viper.GetDuration(KeySleepDuration),
			},
			TicTacToe: demos.TicTacToeSettings{
				Rows:  viper.GetInt(KeyTicTacToeRows),
				Cols:  viper.GetInt(KeyTicTacToeCols),
				Win:   viper.GetInt(KeyTicTacToeWin),
				Delay: viper.GetDuration(KeyTicTacToeDelay),
				Seed:  viper.GetUint64(KeyTicTacToeSeed),
			},
			Faulty: demos.FaultySettings{
				FailAfter: viper.GetInt(KeyFaultyFailAfter),
				Delay:     viper.GetDuration(KeyFaultyDelay),
			},
		},
	}
}

// Harness returns the engine configuration part of the settings.
func (s Settings) Harness() harness.Config {
	return harness.Config{
		Title:                   s.Title,
		HandleInterrupt:         s.HandleInterrupt,
		ExitOnInterruptWhenIdle: s.ExitOnInterruptWhenIdle,
	}
}
