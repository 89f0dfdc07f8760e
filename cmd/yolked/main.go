// cmd/yolked/main.go
//
// Entry point for the yolked terminal client.
//
// Flow:
// 1. Load (or create) ~/.yolked/config.yaml
// 2. Open the flow log and the cached session token
// 3. Launch the TUI; the app resolves the session and routes from there

package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yolked/yolked/internal/api"
	"github.com/yolked/yolked/internal/config"
	"github.com/yolked/yolked/internal/logbook"
	"github.com/yolked/yolked/internal/tui"
)

func main() {
	stateDir := flag.String("state-dir", "", "override the state directory (default ~/.yolked)")
	serverURL := flag.String("server", "", "override the service base URL")
	flag.Parse()

	cfg, err := config.Load(*stateDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}

	lb, err := logbook.Open(cfg.LogPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer lb.Close()
	lb.Info("yolked starting, server %s", cfg.ServerURL)

	tokens := api.NewTokenStore(cfg.SessionPath())
	client := api.NewHTTPClient(cfg.ServerURL, tokens)

	p := tea.NewProgram(
		tui.NewApp(client, lb),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
