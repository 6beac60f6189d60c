package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charityfund/charity/internal/auth"
	"github.com/charityfund/charity/internal/router"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var listenAddr string

// serveCmd exposes the records over a JSON API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the records over a JSON API",
	Long: `Starts an HTTP server with the same operations as the interactive menu
under /api. When JWT_SECRET (auth.secret) is set every record route requires
a bearer token from "charity token".`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// tokenCmd mints an operator token for the API
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a signed API token for an operator",
	Long: `Signs a token with the configured auth secret.

Example:
  JWT_SECRET=change-me charity token --subject front-desk`,
	Args: cobra.NoArgs,
	RunE: runToken,
}

var tokenSubject string

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "addr", "", "Listen address (default: server.addr from config)")

	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "Operator name embedded in the token (required)")
	_ = tokenCmd.MarkFlagRequired("subject")
}

func runServe(cmd *cobra.Command, args []string) error {
	s, closeFn, err := openStore()
	if err != nil {
		return err
	}
	defer closeFn()

	r, err := router.NewRouter(s, cfg, logger)
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr
	if listenAddr != "" {
		addr = listenAddr
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := signalContext()
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Received shutdown signal")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	return srv.Shutdown(shutdownCtx)
}

func runToken(cmd *cobra.Command, args []string) error {
	issuer, err := auth.NewIssuer(cfg.Auth)
	if err != nil {
		return err
	}

	token, err := issuer.GenerateJWT(tokenSubject)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
