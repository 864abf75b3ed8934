package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"realtime-chat/internal/app"
	"realtime-chat/internal/pinglat"
)

var flagPort int

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pinglat",
	Short: "One-shot TCP round-trip timer (PING/PONG)",
	Long: `pinglat measures network latency with a single PING/PONG exchange
over a raw TCP connection. Run the responder with "pinglat serve", then
measure from another host with "pinglat ping <ipv4>".`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the PONG responder",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := pinglat.ValidatePort(flagPort); err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		logger := app.NewLogger(os.Getenv("APP_ENV"))
		return pinglat.NewServer(logger, flagPort).Listen(ctx)
	},
}

var pingCmd = &cobra.Command{
	Use:   "ping <ipv4>",
	Short: "Measure one round trip against a responder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := pinglat.ValidatePort(flagPort); err != nil {
			return err
		}

		client, err := pinglat.NewClient(args[0], flagPort, 5*time.Second)
		if err != nil {
			return err
		}

		rtt, err := client.Ping()
		if err != nil {
			return err
		}

		fmt.Printf("%d ms\n", rtt.Milliseconds())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagPort, "port", "p", pinglat.DefaultPort, "TCP port of the responder")
	rootCmd.AddCommand(serveCmd, pingCmd)
}

func main() {
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
