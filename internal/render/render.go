// Package render writes packet addresses in the CLI output formats.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"firestige.xyz/lladdr/pkg/sockaddr"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// View is the printable form of a PacketAddress.
type View struct {
	Protocol         string `json:"protocol" yaml:"protocol"`
	ProtocolName     string `json:"protocol_name,omitempty" yaml:"protocol_name,omitempty"`
	InterfaceIndex   int32  `json:"ifindex" yaml:"ifindex"`
	HardwareType     int32  `json:"hatype" yaml:"hatype"`
	HardwareTypeName string `json:"hatype_name,omitempty" yaml:"hatype_name,omitempty"`
	PacketType       int32  `json:"pkttype" yaml:"pkttype"`
	PacketTypeName   string `json:"pkttype_name,omitempty" yaml:"pkttype_name,omitempty"`
	HardwareAddress  string `json:"hwaddr,omitempty" yaml:"hwaddr,omitempty"`
}

// NewView converts a to its printable form.
func NewView(a sockaddr.PacketAddress) View {
	v := View{
		Protocol:         fmt.Sprintf("0x%04x", a.Protocol),
		ProtocolName:     sockaddr.ProtocolName(a.Protocol),
		InterfaceIndex:   a.InterfaceIndex,
		HardwareType:     a.HardwareType,
		HardwareTypeName: sockaddr.HardwareTypeName(a.HardwareType),
		PacketType:       a.PacketType,
		PacketTypeName:   sockaddr.PacketTypeName(a.PacketType),
	}
	if a.HasHardwareAddress() {
		v.HardwareAddress = a.HardwareAddress.String()
	}
	return v
}

// Address writes a to w in format.
func Address(w io.Writer, a sockaddr.PacketAddress, format string) error {
	switch format {
	case FormatText, "":
		_, err := fmt.Fprintln(w, a.String())
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewView(a))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewView(a)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
