package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/crosscheck-io/crosscheck/config"
	srv "github.com/crosscheck-io/crosscheck/internal/server"
	"github.com/crosscheck-io/crosscheck/internal/verify"
)

func main() {
	// Credentials commonly live in a local .env during development.
	_ = godotenv.Load()

	var cfgPath string
	var root = &cobra.Command{Use: "crosscheck"}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file")

	var serveAddr string
	var serve = &cobra.Command{
		Use:   "serve",
		Short: "Run HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig(cfgPath)
			if serveAddr == "" {
				serveAddr = os.Getenv("CROSSCHECK_HTTP_ADDR")
			}
			if serveAddr != "" {
				cfg.Server.Address = serveAddr
			}
			return srv.Run(cfg)
		},
	}
	serve.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")

	var once = &cobra.Command{
		Use:   "verify [claim text]",
		Short: "Verify a single claim and print the result as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig(cfgPath)
			logger := log.New(os.Stderr, "[VERIFY] ", log.LstdFlags)
			v := verify.NewVerifier(cfg.Providers, logger)
			result := v.Verify(context.Background(), strings.Join(args, " "))
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	root.AddCommand(serve, once)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
