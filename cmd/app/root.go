package main

import (
	"os"

	"restaurant/cmd"

	"github.com/spf13/cobra"
)

// cli carries what every subcommand needs once flags are parsed.
type cli struct {
	configPath string
	config     cmd.Config
}

func newRootCommand() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "restaurant",
		Short: "Restaurant order pipeline",
		Long: `Restaurant runs the order pipeline server and its console clients.

  serve     accept orders and coordinate couriers over gRPC and HTTP
  customer  place orders and follow their status
  courier   claim orders and deliver them with the restaurant's vehicles`,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			cfg, err := cmd.LoadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.config = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", os.Getenv("RESTAURANT_CONFIG"), "YAML config file path")

	rootCmd.AddCommand(newServeCommand(c))
	rootCmd.AddCommand(newCustomerCommand(c))
	rootCmd.AddCommand(newCourierCommand(c))

	return rootCmd
}
