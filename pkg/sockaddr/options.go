package sockaddr

import "net"

// Option sets one field of a PacketAddress under construction.
type Option func(*PacketAddress)

// Build returns a PacketAddress with the given options applied to a zero
// value. Fields without an option stay zero, and the hardware address stays
// nil (absent).
func Build(opts ...Option) PacketAddress {
	var a PacketAddress
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// WithProtocol sets the link-layer protocol (EtherType) in host byte order.
func WithProtocol(protocol uint16) Option {
	return func(a *PacketAddress) {
		a.Protocol = protocol
	}
}

// WithInterfaceIndex sets the interface index.
func WithInterfaceIndex(ifindex int32) Option {
	return func(a *PacketAddress) {
		a.InterfaceIndex = ifindex
	}
}

// WithHardwareType sets the ARPHRD_* hardware type.
func WithHardwareType(hatype int32) Option {
	return func(a *PacketAddress) {
		a.HardwareType = hatype
	}
}

// WithPacketType sets the PACKET_* packet type.
func WithPacketType(pkttype int32) Option {
	return func(a *PacketAddress) {
		a.PacketType = pkttype
	}
}

// WithHardwareAddress sets the hardware address. The slice is not copied.
func WithHardwareAddress(addr net.HardwareAddr) Option {
	return func(a *PacketAddress) {
		a.HardwareAddress = addr
	}
}
