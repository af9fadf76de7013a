package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/snakeoillabs/serpent/internal/config"
	"github.com/snakeoillabs/serpent/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the serpent SSH server",
	Long: `Start an SSH server so people can play over the network.

Each connection gets its own game session; all players share the server's
high-score table.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.serpent/host_key

Examples:
  serpent serve                           # Listen on :23235
  serpent serve --ssh :2222               # Listen on port 2222
  serpent serve --host-key ./my_host_key  # Use a specific host key

Users connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH listen address (host:port; overrides settings)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (overrides settings)")
}

func runServe(_ *cobra.Command, _ []string) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	address := settings.SSH.Address
	if flagSSHAddr != "" {
		address = flagSSHAddr
	}
	hostKey := settings.SSH.HostKeyPath
	if flagHostKey != "" {
		hostKey = flagHostKey
	}
	idleMins := settings.SSH.IdleTimeoutMins
	if flagIdleTimeout > 0 {
		idleMins = flagIdleTimeout
	}

	cfg := tui.SSHServerConfig{
		Address:     address,
		HostKeyPath: hostKey,
		DBPath:      dbPath(settings),
		IdleTimeout: time.Duration(idleMins) * time.Minute,
		Settings:    settings,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting serpent SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
