package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/platform/tui"
	"github.com/vovakirdan/minigames/internal/storage"
)

var (
	flagSSHAddr         string
	flagHostKey         string
	flagIdleTimeout     int
	flagServeDifficulty string
	flagServeConfig     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that allows users to connect and play games.

Each SSH connection gets its own session with a game picker menu and its
own game runners. Scores live in memory for the life of the server and all
users share the same leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  arcade serve                           # Listen on :23234 with auto-generated key
  arcade serve --ssh :2222               # Listen on port 2222
  arcade serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeDifficulty, "difficulty", "", "Initial difficulty preset offered to players")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom game config YAML, applied to every game")
}

func runServe(_ *cobra.Command, _ []string) error {
	if _, err := config.ParsePreset(flagServeDifficulty); err != nil {
		return err
	}

	logger, err := newLogger("arcade-ssh", log.InfoLevel)
	if err != nil {
		return err
	}

	store, err := storage.Open()
	if err != nil {
		return fmt.Errorf("opening score ledger: %w", err)
	}
	defer store.Close()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Difficulty:  flagServeDifficulty,
		ConfigPath:  flagServeConfig,
	}

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting arcade SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
