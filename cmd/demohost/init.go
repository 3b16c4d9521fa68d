package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"demohost/internal/config"
	"demohost/internal/demos"
)

// Wrapper for survey functions to allow mocking in tests
var askOneFunc = survey.AskOne

func newInitCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively write a config file",
		Long:  `Asks a few questions and writes the answers to a demohost config file.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runInit(cmd, output)
			if errors.Is(err, terminal.InterruptErr) {
				fmt.Fprintln(cmd.OutOrStdout(), "Setup cancelled.")
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "config.yaml", "Config file to write")
	return cmd
}

func runInit(cmd *cobra.Command, output string) error {
	out := cmd.OutOrStdout()

	if _, err := os.Stat(output); err == nil {
		overwrite := false
		err := askOneFunc(&survey.Confirm{
			Message: fmt.Sprintf("File '%s' already exists. Overwrite?", output),
			Default: false,
		}, &overwrite)
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(out, "Operation cancelled.")
			return nil
		}
	}

	answers := struct {
		Title      string
		UI         string
		Scenarios  []string
		ExitOnIdle bool
	}{}

	if err := askOneFunc(&survey.Input{
		Message: "Menu title:",
		Default: "Demo Host",
	}, &answers.Title); err != nil {
		return err
	}

	if err := askOneFunc(&survey.Select{
		Message: "Console:",
		Options: []string{config.UIAuto, config.UILine, config.UIList},
		Default: config.UIAuto,
	}, &answers.UI); err != nil {
		return err
	}

	names := demos.Names()
	if err := askOneFunc(&survey.MultiSelect{
		Message: "Scenarios to offer:",
		Options: names,
		Default: names,
	}, &answers.Scenarios); err != nil {
		return err
	}

	if err := askOneFunc(&survey.Confirm{
		Message: "Exit when Ctrl+C is pressed at the menu?",
		Default: true,
	}, &answers.ExitOnIdle); err != nil {
		return err
	}

	v := viper.New()
	v.Set(config.KeyTitle, answers.Title)
	v.Set(config.KeyUI, answers.UI)
	v.Set(config.KeyExitOnIdleInterrupt, answers.ExitOnIdle)
	// An empty or full selection means all scenarios.
	if len(answers.Scenarios) > 0 && len(answers.Scenarios) < len(names) {
		v.Set(config.KeyScenarios, answers.Scenarios)
	}

	if err := v.WriteConfigAs(output); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(out, "Configuration written to %s\n", output)
	return nil
}
