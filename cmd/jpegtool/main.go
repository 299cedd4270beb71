// Command jpegtool is the batch driver collaborator described in §6: a
// thin tool built on top of the jpegcodec library that reads ordinary
// raster images, drives the codec, writes its compressed envelope to disk,
// and (via its stats subcommand) sweeps quality levels across a directory
// and records results. It never implements any codec logic itself.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "jpegtool",
		Short:         "Encode and inspect images with the jpegcodec baseline codec",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("log-file", "", "rotate structured logs to this file in addition to stderr")
	root.AddCommand(newEncodeCmd())
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newStatsCmd())
	return root
}
