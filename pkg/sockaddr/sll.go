package sockaddr

import (
	"net"

	"github.com/google/gopacket/layers"
)

// FromLinuxSLL builds the address a frame was received on from its cooked
// capture header. The header does not carry the interface, so ifindex is
// supplied by the caller.
func FromLinuxSLL(sll *layers.LinuxSLL, ifindex int32) PacketAddress {
	var addr net.HardwareAddr
	if n := int(sll.AddrLen); n > 0 && len(sll.Addr) > 0 {
		if n > len(sll.Addr) {
			n = len(sll.Addr)
		}
		addr = sll.Addr[:n]
	}
	return New(
		uint16(sll.EthernetType),
		ifindex,
		int32(sll.AddrType),
		int32(sll.PacketType),
		addr,
	)
}

// LinuxSLL returns the cooked capture header describing a. The interface
// index has no place in the header and is dropped.
func (a PacketAddress) LinuxSLL() *layers.LinuxSLL {
	return &layers.LinuxSLL{
		PacketType:   layers.LinuxSLLPacketType(a.PacketType),
		AddrLen:      uint16(len(a.HardwareAddress)),
		Addr:         a.HardwareAddress,
		EthernetType: layers.EthernetType(a.Protocol),
		AddrType:     uint16(a.HardwareType),
	}
}
