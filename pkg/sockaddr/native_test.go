package sockaddr

import (
	"encoding/binary"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalBinaryLayout(t *testing.T) {
	a := New(ProtocolIPv4, 3, HardwareTypeEther, PacketTypeMulticast, testMAC)

	b, err := a.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, SizeofSockaddrLinklayer)

	assert.Equal(t, AddressFamilyPacket, binary.NativeEndian.Uint16(b[0:2]))
	assert.Equal(t, []byte{0x08, 0x00}, b[2:4], "protocol is network order")
	assert.Equal(t, uint32(3), binary.NativeEndian.Uint32(b[4:8]))
	assert.Equal(t, uint16(1), binary.NativeEndian.Uint16(b[8:10]))
	assert.Equal(t, byte(2), b[10])
	assert.Equal(t, byte(6), b[11])
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 0, 0}, b[12:20])
}

func TestBinaryRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		addr PacketAddress
	}{
		{"full", New(ProtocolIPv6, 7, HardwareTypeEther, PacketTypeOutgoing, testMAC)},
		{"no hardware address", NewLegacyProtocol(ProtocolARP, 2)},
		{"infiniband sized", NewReduced(ProtocolAll, 1, net.HardwareAddr{1, 2, 3, 4, 5, 6, 7, 8})},
		{"negative index", NewLegacyHardware(-3, net.HardwareAddr{0xde, 0xad})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.addr.MarshalBinary()
			require.NoError(t, err)

			var got PacketAddress
			require.NoError(t, got.UnmarshalBinary(b))
			assert.Equal(t, tt.addr, got)
		})
	}
}

func TestMarshalBinaryTruncatesNarrowFields(t *testing.T) {
	b, err := New(0, 0, 0x1FFFE, 0x1FF, nil).MarshalBinary()
	require.NoError(t, err)

	var got PacketAddress
	require.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, HardwareTypeNone, got.HardwareType)
	assert.Equal(t, int32(0xFF), got.PacketType)
}

func TestMarshalBinaryAddressTooLong(t *testing.T) {
	_, err := NewReduced(ProtocolAll, 1, make(net.HardwareAddr, 20)).MarshalBinary()
	assert.ErrorIs(t, err, ErrAddressTooLong)
}

func TestUnmarshalBinaryErrors(t *testing.T) {
	valid, err := NewReduced(ProtocolIPv4, 1, testMAC).MarshalBinary()
	require.NoError(t, err)

	wrongFamily := append([]byte(nil), valid...)
	binary.NativeEndian.PutUint16(wrongFamily[0:2], 2)

	longAddr := append([]byte(nil), valid...)
	longAddr[11] = 9

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrShortBuffer},
		{"truncated", valid[:19], ErrShortBuffer},
		{"inet family", wrongFamily, ErrFamily},
		{"halen over 8", longAddr, ErrAddressTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a PacketAddress
			assert.ErrorIs(t, a.UnmarshalBinary(tt.data), tt.want)
		})
	}
}

func TestHtonsIsInvolution(t *testing.T) {
	for _, v := range []uint16{0, 3, 0x0800, 0x86DD, 0xFFFF} {
		assert.Equal(t, v, htons(htons(v)))
	}
}
