package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"firestige.xyz/lladdr/pkg/sockaddr"
)

var (
	filterProtocol string
	filterSnapLen  uint32
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Print a BPF program selecting one protocol",
	Long: `Assemble a classic BPF program that accepts only Ethernet frames of the
given protocol, printed in the "tcpdump -dd" style for SO_ATTACH_FILTER.

Examples:
  lladdr filter -p ipv4
  lladdr filter -p 0x88cc --snaplen 1500`,
	Run: func(cmd *cobra.Command, args []string) {
		if filterProtocol == "" {
			filterProtocol = cfg.Defaults.Protocol
		}
		if !cmd.Flags().Changed("snaplen") {
			filterSnapLen = cfg.Defaults.SnapLen
		}
		if err := runFilter(os.Stdout, filterProtocol, filterSnapLen); err != nil {
			exitWithError("filter failed", err)
		}
	},
}

func init() {
	filterCmd.Flags().StringVarP(&filterProtocol, "protocol", "p", "", "protocol name or number (default from config)")
	filterCmd.Flags().Uint32Var(&filterSnapLen, "snaplen", 65535, "bytes accepted per matching frame")
}

func runFilter(w io.Writer, protocol string, snapLen uint32) error {
	p, err := sockaddr.ParseProtocol(protocol)
	if err != nil {
		return err
	}
	prog, err := sockaddr.NewReduced(p, 0, nil).Filter(snapLen)
	if err != nil {
		return fmt.Errorf("failed to assemble BPF program: %w", err)
	}
	slog.Debug("filter assembled", "protocol", sockaddr.ProtocolName(p), "instructions", len(prog))

	for _, ins := range prog {
		if _, err := fmt.Fprintf(w, "{ 0x%02x, %d, %d, 0x%08x },\n", ins.Op, ins.Jt, ins.Jf, ins.K); err != nil {
			return err
		}
	}
	return nil
}
