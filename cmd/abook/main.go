package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/pbaille/abook/internal/api"
	"github.com/pbaille/abook/internal/config"
	"github.com/pbaille/abook/internal/logging"
	"github.com/pbaille/abook/internal/logic"
	"github.com/pbaille/abook/internal/repl"
	"github.com/pbaille/abook/internal/store"
	"github.com/spf13/cobra"
)

var (
	configPath string
	dbPath     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "abook",
		Short:        "Contact manager driven by short text commands",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, l, closeFn, err := open()
			if err != nil {
				return err
			}
			defer closeFn()

			r := repl.New(l, cfg.HistoryFile)
			defer r.Close()
			return r.Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (overrides config)")

	rootCmd.AddCommand(execCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// open loads config, sets up logging and returns a logic manager over the
// store. closeFn releases the store.
func open() (config.Config, *logic.Manager, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("load config: %w", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	logging.Init(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Pretty: cfg.LogPretty,
	})

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("create db dir: %w", err)
	}
	s, err := store.New(cfg.DBPath)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	l, err := logic.New(s)
	if err != nil {
		s.Close()
		return config.Config{}, nil, nil, err
	}
	return cfg, l, func() { s.Close() }, nil
}

func execCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec [command]",
		Short: "Run one command, e.g. abook exec fn Alice",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, l, closeFn, err := open()
			if err != nil {
				return err
			}
			defer closeFn()

			res, persons, err := l.Execute(strings.Join(args, " "))
			if err != nil {
				return err
			}
			repl.Render(cmd.OutOrStdout(), res.Feedback, persons)
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all persons",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, l, closeFn, err := open()
			if err != nil {
				return err
			}
			defer closeFn()

			persons := l.DisplayPersons()
			if len(persons) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No persons yet. Use 'abook exec add ...' to create one.")
				return nil
			}
			repl.Render(cmd.OutOrStdout(), fmt.Sprintf("%d persons", len(persons)), persons)
			return nil
		},
	}
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, l, closeFn, err := open()
			if err != nil {
				return err
			}
			defer closeFn()

			if addr == "" {
				addr = cfg.ServerAddr
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := api.New(l, addr)
			return server.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "server address (overrides config)")
	return cmd
}
