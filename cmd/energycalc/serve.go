package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/energycalc/internal/web"
)

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr = addr
	}
	if cmd.Flags().Changed("root") {
		cfg.Server.Root = root
	}

	out := cmd.OutOrStdout()
	srv, err := web.New(cfg.Server, log.Logger)
	if errors.Is(err, web.ErrIndexMissing) {
		fmt.Fprintf(out, "Error: %s not found in %s\n", cfg.Server.Index, cfg.Server.Root)
		return err
	}
	if err != nil {
		return err
	}

	rule := strings.Repeat("=", 50)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "Energy Calculator - Web Interface")
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "\nServer running at: %s\n", srv.URL())
	fmt.Fprintf(out, "Serving from: %s\n\n", srv.Root())
	fmt.Fprintln(out, "Press Ctrl+C to stop the server")

	if openBrowser {
		if err := openURL(srv.URL()); err != nil {
			log.Warn().Err(err).Str("url", srv.URL()).Msg("could not open browser")
		}
	}

	if err := srv.Run(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintln(out, "\nServer stopped")
	return nil
}

// openURL opens url with the platform opener. The opener's own output would
// interleave with the banner, so it is discarded.
var openURL = func(url string) error {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return browser.OpenURL(url)
}
