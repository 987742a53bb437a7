package main

import (
	"os"

	"restaurant/internal/adapters/out/grpcclient"
	"restaurant/internal/console"

	"github.com/spf13/cobra"
)

func newCustomerCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "customer",
		Short: "Place orders and query their status",
		RunE: func(command *cobra.Command, _ []string) error {
			client, err := grpcclient.New(c.config.ServerAddress)
			if err != nil {
				return err
			}
			defer client.Close()

			return console.NewCustomer(client, os.Stdin, os.Stdout).Run(command.Context())
		},
	}
}

func newCourierCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "courier",
		Short: "Claim orders and deliver them",
		RunE: func(command *cobra.Command, _ []string) error {
			client, err := grpcclient.New(c.config.ServerAddress)
			if err != nil {
				return err
			}
			defer client.Close()

			courier := console.NewCourier(client, c.config.DeliveryTimeUnit, os.Stdin, os.Stdout)
			return courier.Run(command.Context())
		},
	}
}
