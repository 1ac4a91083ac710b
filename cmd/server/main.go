package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tariqueislamanik2021-tech/webrtc-audio-call/internal/app"
	"github.com/tariqueislamanik2021-tech/webrtc-audio-call/internal/config"
	"github.com/tariqueislamanik2021-tech/webrtc-audio-call/internal/log"
)

func main() {
	var (
		configPath string
		addr       string
		staticDir  string
		logLevel   string
	)

	rootCmd := &cobra.Command{
		Use:   "audio-call-server",
		Short: "WebRTC audio call signaling server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(logLevel)

			cfg, path, err := config.Load(logger, configPath)
			if err != nil {
				return err
			}
			logger.Info().Str("config", path).Msg("configuration loaded")

			// Flags win over file and env.
			if addr != "" {
				cfg.Addr = addr
			}
			if staticDir != "" {
				cfg.StaticDir = staticDir
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			logger = log.New(cfg.LogLevel)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			application := app.New(cfg, logger)

			logger.Info().Str("addr", cfg.Addr).Msg("starting signaling server")
			if err := application.Run(ctx); err != nil {
				return err
			}
			logger.Info().Msg("server stopped")
			return nil
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address (default :3000)")
	rootCmd.Flags().StringVar(&staticDir, "static-dir", "", "directory with client assets to serve")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
