package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:           "smftool",
	Short:         "Standard MIDI File toolbox",
	Long:          `Decode, scan, cross-check and serve Standard MIDI Files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !debugFlag {
			return nil
		}
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		enableDebugLogging(l)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Write debug logs to stderr")
	addDecodeFlags(rootCmd.PersistentFlags())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	_ = cliLog.Sync()
	cobra.CheckErr(err)
}
