package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tinoworks/tinomacro/expansion"
	"github.com/tinoworks/tinomacro/internal/plugin"
	"github.com/tinoworks/tinomacro/internal/render"
)

const (
	defaultCodec   = plugin.CodecJSON
	defaultDialect = render.SwiftName
	defaultWorkers = 0
)

var (
	codecName   string
	dialectName string
	workers     int
	pluginDebug bool
)

var pluginCmd = &cobra.Command{
	Use:   "plugin",
	Short: "serve expansion requests over stdio",
	Long:  "read expansion requests from stdin and write one response per request to stdout",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return Serve(ctx)
	},
}

// Serve answers requests on stdin until it is closed.
func Serve(ctx context.Context) error {
	codec, err := plugin.CodecByName(codecName)
	if err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %v", err)
	}
	cfg, err := loadConfig(wd)
	if err != nil {
		return err
	}

	dialect := render.New(dialectName, *cfg)
	if dialect == nil {
		return fmt.Errorf("unknown dialect %q, expected one of %v", dialectName, render.Names())
	}

	var logger *log.Logger
	if pluginDebug {
		// stdout carries the responses
		logger = log.New(os.Stderr, "", 0)
	}

	server := plugin.NewServer(expansion.NewExpander(*cfg, dialect), codec, workers, logger)
	return server.Serve(ctx, os.Stdin, os.Stdout)
}

func init() {
	pluginCmd.Flags().StringVar(&codecName, "codec", defaultCodec, "frame encoding, json or msgpack")
	pluginCmd.Flags().StringVar(&dialectName, "dialect", defaultDialect, "language generated source is rendered in, swift or go")
	pluginCmd.Flags().IntVar(&workers, "workers", defaultWorkers, "maximum concurrent expansions, one per CPU when 0")
	pluginCmd.Flags().StringVar(&configFile, "config", defaultConfigFile, "specify configuration file, .tino.yaml in the working directory by default")
	pluginCmd.Flags().BoolVar(&pluginDebug, "debug", defaultDebug, "log requests to stderr")

	rootCmd.AddCommand(pluginCmd)
}
