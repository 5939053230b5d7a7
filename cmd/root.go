package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lirantal/railil/pkg/config"
	"github.com/lirantal/railil/pkg/output"
	"github.com/lirantal/railil/pkg/rail"
	"github.com/lirantal/railil/pkg/stations"
	"github.com/lirantal/railil/pkg/utils"
)

var (
	fromArg   string
	toArg     string
	dateArg   string
	timeArg   string
	jsonFlag  bool
	outputArg string
	limitArg  int
	debugFlag bool
)

var rootCmd = &cobra.Command{
	Use:           "railil",
	Short:         "Search Israel Railways train schedules",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		utils.SetDebug(debugFlag)

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		from, ok := stations.Resolve(fromArg)
		if !ok {
			return fmt.Errorf("could not find station matching %q", fromArg)
		}
		to, ok := stations.Resolve(toArg)
		if !ok {
			return fmt.Errorf("could not find station matching %q", toArg)
		}

		date, err := utils.ParseDate(dateArg)
		if err != nil {
			return err
		}
		hour, err := utils.ParseTime(timeArg)
		if err != nil {
			return err
		}

		result, err := rail.NewClient(cfg).Search(from.ID, to.ID, date, hour)
		if err != nil {
			return fmt.Errorf("fetching trains: %w", err)
		}

		travels := result.Travels
		if limitArg >= 0 && limitArg < len(travels) {
			travels = travels[:limitArg]
		}

		format := outputArg
		if jsonFlag {
			format = "json"
		}
		var formatter output.Formatter
		switch format {
		case "json":
			formatter = output.JSONFormatter{}
		case "table":
			formatter = output.TableFormatter{}
		default:
			formatter = output.MarkdownFormatter{}
		}

		fmt.Println(formatter.Format(travels, &result.From, &result.To))
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&fromArg, "from", "f", "", "Origin station name or ID (required)")
	rootCmd.Flags().StringVarP(&toArg, "to", "t", "", "Destination station name or ID (required)")
	rootCmd.Flags().StringVarP(&dateArg, "date", "d", "", "Date (YYYY-MM-DD), defaults to today")
	rootCmd.Flags().StringVar(&timeArg, "time", "", "Time (HH:MM), defaults to now")
	rootCmd.Flags().BoolVar(&jsonFlag, "json", false, "Output JSON (alias for --output json)")
	rootCmd.Flags().StringVarP(&outputArg, "output", "o", "markdown", "Output format: table, markdown, json")
	rootCmd.Flags().IntVar(&limitArg, "limit", 5, "Number of results to show")
	rootCmd.Flags().BoolVarP(&debugFlag, "debug", "v", false, "Enable debug logs")
	rootCmd.MarkFlagRequired("from")
	rootCmd.MarkFlagRequired("to")
}
