package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elgarage/backend/config"
	"github.com/elgarage/backend/internal/server"
	"github.com/elgarage/backend/pkg/database"
	"github.com/elgarage/backend/pkg/logger"

	// Import migrations so their init() funcs run and register themselves.
	_ "github.com/elgarage/backend/database/migrations"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "elgarage",
	Short: "ELGarage API server",
	Long:  "ELGarage is the backend for the ELGarage mobile app: accounts, garage management and AI mechanical diagnosis.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

// elgarage serve
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		// The API must answer its status route even when the store is down,
		// so a failed connection is logged rather than fatal.
		if err := database.Connect(); err != nil {
			logger.Error("database connection failed", "error", err)
		}
		return server.Run()
	},
}

// elgarage route:list
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "Print the registered HTTP routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		for _, route := range server.NewRouter().Routes() {
			fmt.Printf("%-6s %-20s %s\n", route.Method, route.Path, route.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)
}
