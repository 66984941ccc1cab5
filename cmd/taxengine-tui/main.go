package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/taxfolio/taxengine/internal/calculation"
	"github.com/taxfolio/taxengine/internal/compare"
	"github.com/taxfolio/taxengine/internal/config"
	"github.com/taxfolio/taxengine/internal/statetax"
	"github.com/taxfolio/taxengine/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "taxengine-tui [scenarios-file]",
	Short: "Interactive scenario browser for the tax engine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yearFile, _ := cmd.Flags().GetString("tax-year-config")
		statesFile, _ := cmd.Flags().GetString("states-config")

		loader := config.NewLoader()
		yearCfg, err := loader.LoadTaxYearConfig(yearFile)
		if err != nil {
			return err
		}
		stateCfgs, err := loader.LoadStateConfigs(statesFile)
		if err != nil {
			return err
		}

		scenarios, err := compare.LoadScenarios(args[0])
		if err != nil {
			return err
		}

		engine := compare.NewEngine(
			calculation.NewCalculationEngine(),
			config.NewTaxYearStore(yearCfg),
			statetax.NewRegistry(stateCfgs),
		)

		program := tea.NewProgram(tui.NewModel(engine, scenarios), tea.WithAltScreen())
		_, err = program.Run()
		return err
	},
}

func main() {
	rootCmd.Flags().String("tax-year-config", "data/taxyear_2025.yaml", "Path to the tax year rule table")
	rootCmd.Flags().String("states-config", "data/states.yaml", "Path to the state jurisdiction table")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
