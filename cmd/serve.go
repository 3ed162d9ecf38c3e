package cmd

import (
	"github.com/spf13/cobra"
	"github.com/trknhr/ghostfaker/internal/bridge"
	"github.com/trknhr/ghostfaker/internal/logger"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Answer launcher events as JSON lines on stdin/stdout",
		Long: `Reads one JSON request per line from stdin and writes one JSON response per line.

  {"event":"query","argument":"mail"}
  {"event":"item_enter","data":"email"}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// stdout carries the protocol, keep logs off the console
			a, err := newApp(flags, true)
			if err != nil {
				return err
			}
			logger.Info("serving on stdin/stdout")
			return bridge.Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), a.ext)
		},
	}
}
