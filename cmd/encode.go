package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"

	"github.com/spf13/cobra"

	"firestige.xyz/lladdr/pkg/sockaddr"
)

type encodeOptions struct {
	Protocol     string
	Index        int32
	HardwareType string
	PacketType   string
	HardwareAddr string
}

var encodeOpts encodeOptions

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a native sockaddr_ll as hex",
	Long: `Build a packet socket address from flags and print its native
20-byte struct sockaddr_ll encoding as hex. Values are not validated.

Examples:
  lladdr encode -p ipv4 --ifindex 3 --hwaddr 01:02:03:04:05:06
  lladdr encode -p arp --ifindex 2 --hatype ether --pkttype broadcast`,
	Run: func(cmd *cobra.Command, args []string) {
		if encodeOpts.Protocol == "" {
			encodeOpts.Protocol = cfg.Defaults.Protocol
		}
		if err := runEncode(os.Stdout, encodeOpts); err != nil {
			exitWithError("encode failed", err)
		}
	},
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeOpts.Protocol, "protocol", "p", "", "protocol name or number (default from config)")
	encodeCmd.Flags().Int32Var(&encodeOpts.Index, "ifindex", 0, "interface index")
	encodeCmd.Flags().StringVar(&encodeOpts.HardwareType, "hatype", "0", "ARP hardware type name or number")
	encodeCmd.Flags().StringVar(&encodeOpts.PacketType, "pkttype", "0", "packet type name or number")
	encodeCmd.Flags().StringVar(&encodeOpts.HardwareAddr, "hwaddr", "", "hardware address, e.g. 01:02:03:04:05:06")
}

func buildAddress(opts encodeOptions) (sockaddr.PacketAddress, error) {
	protocol, err := sockaddr.ParseProtocol(opts.Protocol)
	if err != nil {
		return sockaddr.PacketAddress{}, err
	}
	hatype, err := sockaddr.ParseHardwareType(opts.HardwareType)
	if err != nil {
		return sockaddr.PacketAddress{}, err
	}
	pkttype, err := sockaddr.ParsePacketType(opts.PacketType)
	if err != nil {
		return sockaddr.PacketAddress{}, err
	}

	var hwaddr net.HardwareAddr
	if opts.HardwareAddr != "" {
		hwaddr, err = net.ParseMAC(opts.HardwareAddr)
		if err != nil {
			return sockaddr.PacketAddress{}, fmt.Errorf("invalid hardware address: %w", err)
		}
	}
	return sockaddr.New(protocol, opts.Index, hatype, pkttype, hwaddr), nil
}

func runEncode(w io.Writer, opts encodeOptions) error {
	addr, err := buildAddress(opts)
	if err != nil {
		return err
	}
	b, err := addr.MarshalBinary()
	if err != nil {
		return err
	}
	slog.Debug("address encoded", "address", addr.String(), "bytes", len(b))
	_, err = fmt.Fprintln(w, hex.EncodeToString(b))
	return err
}
