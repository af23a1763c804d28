package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server that lets users play flappy remotely.

Every connection gets its own game; the high score and run history
are shared by all players.

Examples:
  flappy serve --ssh :2222
  flappy serve --ssh 0.0.0.0:23234 --host-key ./host_key

Connect with:
  ssh -t -p 2222 localhost`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to SSH host key (auto-generated if empty)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Close idle sessions after this long")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runServe(_ *cobra.Command, _ []string) {
	exitOnError(serve())
}

func serve() error {
	logger, closeLog := newLogger(os.Stderr)
	defer closeLog()

	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	st := openStores(logger)
	defer st.Close()

	newGame := func() tui.Game {
		opts := []flappy.Option{flappy.WithLogger(logger)}
		if st.high != nil {
			opts = append(opts, flappy.WithHighScores(st.high))
		}
		return flappy.New(cfg, opts...)
	}

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = flagSSHAddr
	serverCfg.HostKeyPath = flagHostKey
	serverCfg.IdleTimeout = flagIdleTimeout
	serverCfg.TickRate = flagFPS

	var recorder tui.RunRecorder
	if st.history != nil {
		recorder = st.history
	}

	server, err := tui.NewSSHServer(serverCfg, newGame, recorder, logger)
	if err != nil {
		return fmt.Errorf("creating SSH server: %w", err)
	}

	fmt.Printf("Starting SSH server on %s\n", flagSSHAddr)
	fmt.Printf("Connect with: ssh -t -p %s localhost\n", portOf(flagSSHAddr))

	return server.ListenAndServe()
}

// portOf extracts the port from a host:port address.
func portOf(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return port
}
