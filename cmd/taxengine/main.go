package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/taxfolio/taxengine/internal/calculation"
	"github.com/taxfolio/taxengine/internal/compare"
	"github.com/taxfolio/taxengine/internal/config"
	"github.com/taxfolio/taxengine/internal/domain"
	"github.com/taxfolio/taxengine/internal/output"
	"github.com/taxfolio/taxengine/internal/sstb"
	"github.com/taxfolio/taxengine/internal/statetax"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "taxengine %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "taxengine",
	Short: "Federal and state tax calculation CLI",
	Long:  "Computes federal tax (brackets, QBI, AMT, credits) and state tax from a YAML return and rule tables",
}

// loadEnvironment assembles the engine collaborators from the flag-selected
// rule files.
func loadEnvironment(cmd *cobra.Command) (*config.TaxYearStore, *statetax.Registry, error) {
	yearFile, _ := cmd.Flags().GetString("tax-year-config")
	statesFile, _ := cmd.Flags().GetString("states-config")

	loader := config.NewLoader()
	yearCfg, err := loader.LoadTaxYearConfig(yearFile)
	if err != nil {
		return nil, nil, err
	}
	stateCfgs, err := loader.LoadStateConfigs(statesFile)
	if err != nil {
		return nil, nil, err
	}
	return config.NewTaxYearStore(yearCfg), statetax.NewRegistry(stateCfgs), nil
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [return-file]",
	Short: "Calculate federal and state tax for one return",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		years, states, err := loadEnvironment(cmd)
		if err != nil {
			return err
		}

		ret, err := config.NewLoader().LoadReturn(args[0])
		if err != nil {
			return err
		}

		engine := calculation.NewCalculationEngine()
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			engine.SetLogger(simpleCLILogger{})
		}

		cfg, err := years.ForYear(ret.TaxYear)
		if err != nil {
			return err
		}
		federal, err := engine.CalculateFederal(ret, cfg)
		if err != nil {
			return err
		}

		var stateOut *domain.StateBreakdown
		if ret.State != "" {
			stateOut, err = states.CalculateFor(ret)
			if err != nil {
				return err
			}
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "csv":
			csvOut, err := (&output.CSVFormatter{}).Format(federal, stateOut)
			if err != nil {
				return err
			}
			fmt.Print(csvOut)
		default:
			fmt.Print((&output.ReportFormatter{}).Format(federal, stateOut))
		}
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [scenarios-file]",
	Short: "Compare what-if scenarios against a base return",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		years, states, err := loadEnvironment(cmd)
		if err != nil {
			return err
		}

		scenarios, err := compare.LoadScenarios(args[0])
		if err != nil {
			return err
		}

		engine := compare.NewEngine(calculation.NewCalculationEngine(), years, states)
		set, err := engine.Compare(context.Background(), scenarios)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "csv":
			out, err := (&compare.CSVFormatter{}).Format(set)
			if err != nil {
				return err
			}
			fmt.Print(out)
		case "json":
			out, err := (&compare.JSONFormatter{}).Format(set)
			if err != nil {
				return err
			}
			fmt.Println(out)
		default:
			fmt.Print((&compare.TableFormatter{}).Format(set))
		}
		return nil
	},
}

var classifyCmd = &cobra.Command{
	Use:   "classify [business-name]",
	Short: "Classify a business for SSTB status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		naics, _ := cmd.Flags().GetString("naics")
		description, _ := cmd.Flags().GetString("description")

		res := sstb.Classify(sstb.Input{
			Name:        args[0],
			Description: description,
			NAICSCode:   naics,
		})
		fmt.Printf("category: %s\nsstb: %t\nmethod: %s\n", res.Category, res.IsSSTB, res.Method)
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().String("tax-year-config", "data/taxyear_2025.yaml", "Path to the tax year rule table")
	rootCmd.PersistentFlags().String("states-config", "data/states.yaml", "Path to the state jurisdiction table")
	rootCmd.PersistentFlags().String("format", "table", "Output format: table, csv or json")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	classifyCmd.Flags().String("naics", "", "NAICS code for the business")
	classifyCmd.Flags().String("description", "", "Free-text description of the business")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
