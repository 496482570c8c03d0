// Package sockaddr implements packet socket addresses.
//
// PacketAddress mirrors Linux struct sockaddr_ll field for field:
//
//	Protocol        sll_protocol
//	InterfaceIndex  sll_ifindex
//	HardwareType    sll_hatype
//	PacketType      sll_pkttype
//	HardwareAddress sll_addr (sll_halen is its length)
//
// Nothing in this package validates field values. Negative indexes, unknown
// type codes and odd address lengths are carried as given.
package sockaddr

import (
	"bytes"
	"fmt"
	"net"
	"strings"
)

// PacketAddress is a link-layer socket address.
//
// Protocol is kept in host byte order (0x0800 is IPv4); the native
// encoders convert it to network order.
type PacketAddress struct {
	Protocol        uint16
	InterfaceIndex  int32
	HardwareType    int32
	PacketType      int32
	HardwareAddress net.HardwareAddr
}

var _ net.Addr = PacketAddress{}

// New constructs a PacketAddress from every sockaddr_ll field. Used by code
// translating kernel supplied addresses.
func New(protocol uint16, ifindex, hatype, pkttype int32, addr net.HardwareAddr) PacketAddress {
	return Build(
		WithProtocol(protocol),
		WithInterfaceIndex(ifindex),
		WithHardwareType(hatype),
		WithPacketType(pkttype),
		WithHardwareAddress(addr),
	)
}

// NewReduced constructs an address from the fields a caller supplies when
// binding or sending. Hardware type and packet type are zero.
func NewReduced(protocol uint16, ifindex int32, addr net.HardwareAddr) PacketAddress {
	return Build(
		WithProtocol(protocol),
		WithInterfaceIndex(ifindex),
		WithHardwareAddress(addr),
	)
}

// NewLegacyProtocol constructs an address without a hardware address.
//
// Deprecated: use NewReduced.
func NewLegacyProtocol(protocol uint16, ifindex int32) PacketAddress {
	return Build(WithProtocol(protocol), WithInterfaceIndex(ifindex))
}

// NewLegacyHardware constructs an address with protocol zero.
//
// Deprecated: use NewReduced.
func NewLegacyHardware(ifindex int32, addr net.HardwareAddr) PacketAddress {
	return Build(WithInterfaceIndex(ifindex), WithHardwareAddress(addr))
}

// Network returns the address family name, "packet".
func (a PacketAddress) Network() string {
	return "packet"
}

// HasHardwareAddress reports whether a hardware address is present.
func (a PacketAddress) HasHardwareAddress() bool {
	return len(a.HardwareAddress) > 0
}

// Equal reports whether a and b hold the same field values. A nil and an
// empty hardware address compare equal.
func (a PacketAddress) Equal(b PacketAddress) bool {
	return a.Protocol == b.Protocol &&
		a.InterfaceIndex == b.InterfaceIndex &&
		a.HardwareType == b.HardwareType &&
		a.PacketType == b.PacketType &&
		bytes.Equal(a.HardwareAddress, b.HardwareAddress)
}

// String returns a field by field dump meant for logs. The format is not
// stable and must not be parsed.
func (a PacketAddress) String() string {
	var sb strings.Builder
	sb.WriteString("PacketAddress{")
	fmt.Fprintf(&sb, "Protocol: %s", withName(fmt.Sprintf("0x%04x", a.Protocol), ProtocolName(a.Protocol)))
	fmt.Fprintf(&sb, ", InterfaceIndex: %d", a.InterfaceIndex)
	fmt.Fprintf(&sb, ", HardwareType: %s", withName(fmt.Sprint(a.HardwareType), HardwareTypeName(a.HardwareType)))
	fmt.Fprintf(&sb, ", PacketType: %s", withName(fmt.Sprint(a.PacketType), PacketTypeName(a.PacketType)))
	fmt.Fprintf(&sb, ", HardwareAddress: %s", hardwareAddrString(a.HardwareAddress))
	sb.WriteString("}")
	return sb.String()
}

func withName(value, name string) string {
	if name == "" {
		return value
	}
	return value + " (" + name + ")"
}

func hardwareAddrString(addr net.HardwareAddr) string {
	if len(addr) == 0 {
		return "none"
	}
	return addr.String()
}
