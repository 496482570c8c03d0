package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"firestige.xyz/lladdr/internal/iface"
	"firestige.xyz/lladdr/internal/render"
	"firestige.xyz/lladdr/pkg/sockaddr"
)

// interfaceResolver is satisfied by *iface.Resolver.
type interfaceResolver interface {
	Lookup(name string) (iface.Info, error)
	LookupIndex(index int) (iface.Info, error)
}

type showOptions struct {
	Interface  string
	Index      int
	Protocol   string
	PacketType string
	Format     string
}

var showOpts showOptions

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the packet socket address of an interface",
	Long: `Resolve a network interface and print the packet socket address a
caller would bind to or send on.

Examples:
  lladdr show -i eth0                  # all protocols on eth0
  lladdr show -i eth0 -p ipv4 -o json  # IPv4 on eth0, JSON output
  lladdr show --ifindex 2 -p 0x88cc    # LLDP on interface 2`,
	Run: func(cmd *cobra.Command, args []string) {
		showOpts.Format = cfg.Output
		if showOpts.Protocol == "" {
			showOpts.Protocol = cfg.Defaults.Protocol
		}
		if err := runShow(os.Stdout, iface.NewResolver(cfg.SysfsRoot), showOpts); err != nil {
			exitWithError("show failed", err)
		}
	},
}

func init() {
	showCmd.Flags().StringVarP(&showOpts.Interface, "interface", "i", "", "interface name")
	showCmd.Flags().IntVar(&showOpts.Index, "ifindex", 0, "interface index (used when --interface is empty)")
	showCmd.Flags().StringVarP(&showOpts.Protocol, "protocol", "p", "", "protocol name or number (default from config)")
	showCmd.Flags().StringVar(&showOpts.PacketType, "pkttype", "", "packet type name or number")
}

func runShow(w io.Writer, r interfaceResolver, opts showOptions) error {
	protocol, err := sockaddr.ParseProtocol(opts.Protocol)
	if err != nil {
		return err
	}

	var info iface.Info
	switch {
	case opts.Interface != "":
		info, err = r.Lookup(opts.Interface)
	case opts.Index > 0:
		info, err = r.LookupIndex(opts.Index)
	default:
		return fmt.Errorf("either --interface or --ifindex is required")
	}
	if err != nil {
		return err
	}

	addr := info.Address(protocol)
	if opts.PacketType != "" {
		pkttype, err := sockaddr.ParsePacketType(opts.PacketType)
		if err != nil {
			return err
		}
		addr = sockaddr.New(addr.Protocol, addr.InterfaceIndex, addr.HardwareType, pkttype, addr.HardwareAddress)
	}

	slog.Info("address built", "interface", info.Name, "address", addr.String())
	return render.Address(w, addr, opts.Format)
}
