package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"firestige.xyz/lladdr/internal/render"
	"firestige.xyz/lladdr/pkg/sockaddr"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decode a native sockaddr_ll",
	Long: `Decode a hex encoded struct sockaddr_ll, as printed by "lladdr encode"
or captured from a recvfrom(2) call, and print its fields. Colons and
spaces in the input are ignored.

Examples:
  lladdr decode 1100080003000000000000060102030405060000
  lladdr decode -o yaml "1100:0806:02000000:0100:01:06:0102030405060000"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDecode(os.Stdout, args[0], cfg.Output); err != nil {
			exitWithError("decode failed", err)
		}
	},
}

func runDecode(w io.Writer, input, format string) error {
	cleaned := strings.NewReplacer(":", "", " ", "", "\n", "").Replace(input)
	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return fmt.Errorf("invalid hex input: %w", err)
	}

	var addr sockaddr.PacketAddress
	if err := addr.UnmarshalBinary(data); err != nil {
		return err
	}
	if len(data) > sockaddr.SizeofSockaddrLinklayer {
		slog.Warn("trailing bytes ignored", "extra", len(data)-sockaddr.SizeofSockaddrLinklayer)
	}
	return render.Address(w, addr, format)
}
