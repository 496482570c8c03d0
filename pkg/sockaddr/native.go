package sockaddr

import (
	"encoding/binary"
	"net"
)

// SizeofSockaddrLinklayer is the size of struct sockaddr_ll in bytes.
const SizeofSockaddrLinklayer = 20

// AddressFamilyPacket is AF_PACKET.
const AddressFamilyPacket uint16 = 17

const maxHardwareAddrLen = 8

// struct sockaddr_ll offsets
const (
	offFamily   = 0
	offProtocol = 2
	offIfindex  = 4
	offHatype   = 8
	offPkttype  = 10
	offHalen    = 11
	offAddr     = 12
)

// MarshalBinary encodes a as a native struct sockaddr_ll. Protocol is
// written in network byte order, every other integer in host order.
// HardwareType and PacketType are truncated to 16 and 8 bits.
func (a PacketAddress) MarshalBinary() ([]byte, error) {
	if len(a.HardwareAddress) > maxHardwareAddrLen {
		return nil, ErrAddressTooLong
	}
	b := make([]byte, SizeofSockaddrLinklayer)
	binary.NativeEndian.PutUint16(b[offFamily:], AddressFamilyPacket)
	binary.BigEndian.PutUint16(b[offProtocol:], a.Protocol)
	binary.NativeEndian.PutUint32(b[offIfindex:], uint32(a.InterfaceIndex))
	binary.NativeEndian.PutUint16(b[offHatype:], uint16(a.HardwareType))
	b[offPkttype] = uint8(a.PacketType)
	b[offHalen] = uint8(len(a.HardwareAddress))
	copy(b[offAddr:], a.HardwareAddress)
	return b, nil
}

// UnmarshalBinary decodes a native struct sockaddr_ll. A zero sll_halen
// leaves HardwareAddress nil.
func (a *PacketAddress) UnmarshalBinary(data []byte) error {
	if len(data) < SizeofSockaddrLinklayer {
		return ErrShortBuffer
	}
	if binary.NativeEndian.Uint16(data[offFamily:]) != AddressFamilyPacket {
		return ErrFamily
	}
	halen := int(data[offHalen])
	if halen > maxHardwareAddrLen {
		return ErrAddressTooLong
	}

	var addr net.HardwareAddr
	if halen > 0 {
		addr = make(net.HardwareAddr, halen)
		copy(addr, data[offAddr:offAddr+halen])
	}
	*a = New(
		binary.BigEndian.Uint16(data[offProtocol:]),
		int32(binary.NativeEndian.Uint32(data[offIfindex:])),
		int32(binary.NativeEndian.Uint16(data[offHatype:])),
		int32(data[offPkttype]),
		addr,
	)
	return nil
}

// htons converts a host order value to the in-memory representation of
// its network order form. The conversion is its own inverse.
func htons(v uint16) uint16 {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return binary.NativeEndian.Uint16(b[:])
}
