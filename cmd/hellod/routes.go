package main

import (
	"hellod/internal/api"
	"hellod/internal/slogutil"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the registered routes",
	Args:  cobra.NoArgs,
	RunE:  runRoutes,
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

func runRoutes(cmd *cobra.Command, args []string) error {
	result, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	server, err := api.NewServer(result.Config, slogutil.NewDiscardLogger())
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Method", "Pattern", "Handler"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, rt := range server.Routes() {
		table.Append([]string{rt.Method, rt.Pattern, rt.Name})
	}
	table.Render()
	return nil
}
