//go:build linux

package sockaddr

import (
	"net"

	"golang.org/x/sys/unix"
)

// FromUnix converts a socket address returned by the unix package, as from
// unix.Recvfrom or unix.Getsockname on an AF_PACKET socket.
func FromUnix(sa *unix.SockaddrLinklayer) PacketAddress {
	var addr net.HardwareAddr
	if n := int(sa.Halen); n > 0 {
		if n > len(sa.Addr) {
			n = len(sa.Addr)
		}
		addr = make(net.HardwareAddr, n)
		copy(addr, sa.Addr[:n])
	}
	return New(htons(sa.Protocol), int32(sa.Ifindex), int32(sa.Hatype), int32(sa.Pkttype), addr)
}

// ToUnix converts a to the unix package form accepted by unix.Bind and
// unix.Sendto. The protocol is stored in network byte order as the kernel
// expects.
func (a PacketAddress) ToUnix() (*unix.SockaddrLinklayer, error) {
	if len(a.HardwareAddress) > maxHardwareAddrLen {
		return nil, ErrAddressTooLong
	}
	sa := &unix.SockaddrLinklayer{
		Protocol: htons(a.Protocol),
		Ifindex:  int(a.InterfaceIndex),
		Hatype:   uint16(a.HardwareType),
		Pkttype:  uint8(a.PacketType),
		Halen:    uint8(len(a.HardwareAddress)),
	}
	copy(sa.Addr[:], a.HardwareAddress)
	return sa, nil
}
