// Command parsepgp dumps the packet tree of an OpenPGP stream.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/LachlanGunn/parse4880"
	"github.com/LachlanGunn/parse4880/internal/cli"
)

func main() {
	var verbose bool

	command := &cobra.Command{
		Use:   "parsepgp <file>",
		Short: "Dump the packet tree of an OpenPGP stream",
		Args:  cobra.ExactArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	command.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := command.Execute(); err != nil {
		var parseErr parse4880.ParseError
		if errors.As(err, &parseErr) {
			fmt.Fprintf(os.Stderr, "Parse error:\n\t%s\n", parseErr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(path string) error {
	data, err := cli.ReadInput(path)
	if err != nil {
		return err
	}

	return parse4880.ParseFunc(data, func(packet parse4880.Packet) bool {
		printPacket(packet, 0)
		return true
	})
}

func printPacket(packet parse4880.Packet, level int) {
	fmt.Printf("%sPacket: %s\n", strings.Repeat("    ", level), packet)
	for _, subpacket := range packet.Subpackets() {
		printPacket(subpacket, level+1)
	}
}
