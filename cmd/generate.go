package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trknhr/ghostfaker/internal/logger"
	"github.com/trknhr/ghostfaker/internal/provider"
)

func newGenerateCmd(flags *rootFlags) *cobra.Command {
	var copyIndex int

	cmd := &cobra.Command{
		Use:   "generate <provider>",
		Short: "Print ten sample values for a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags, false)
			if err != nil {
				return err
			}
			if copyIndex < 0 || copyIndex > provider.SampleSize {
				return fmt.Errorf("--copy must be between 1 and %d", provider.SampleSize)
			}

			values, err := a.generator.Generate(args[0])
			if err != nil {
				return err
			}
			for _, v := range values {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}

			if copyIndex > 0 {
				if err := a.copier.Copy(values[copyIndex-1]); err != nil {
					logger.WarnClipboardOnce(err)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&copyIndex, "copy", 0, "copy the n-th value (1-10) to the clipboard")
	return cmd
}
