package sockaddr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/gopacket/layers"
)

// Link-layer protocols (ETH_P_*), host byte order.
const (
	ProtocolNone  uint16 = 0x0000
	ProtocolAll   uint16 = 0x0003
	ProtocolLoop  uint16 = 0x0060
	ProtocolIPv4  uint16 = 0x0800
	ProtocolARP   uint16 = 0x0806
	ProtocolVLAN  uint16 = 0x8100
	ProtocolIPv6  uint16 = 0x86DD
	ProtocolMPLS  uint16 = 0x8847
	ProtocolPPPoE uint16 = 0x8864
	ProtocolQinQ  uint16 = 0x88A8
	ProtocolLLDP  uint16 = 0x88CC
)

// ARP hardware types (ARPHRD_*).
const (
	HardwareTypeNetROM            int32 = 0
	HardwareTypeEther             int32 = 1
	HardwareTypeIEEE802           int32 = 6
	HardwareTypeIEEE1394          int32 = 24
	HardwareTypeInfiniband        int32 = 32
	HardwareTypePPP               int32 = 512
	HardwareTypeTunnel            int32 = 768
	HardwareTypeTunnel6           int32 = 769
	HardwareTypeLoopback          int32 = 772
	HardwareTypeSIT               int32 = 776
	HardwareTypeIPGRE             int32 = 778
	HardwareTypeIEEE80211         int32 = 801
	HardwareTypeIEEE80211Radiotap int32 = 803
	HardwareTypeIP6GRE            int32 = 823
	HardwareTypeNone              int32 = 0xFFFE
	HardwareTypeVoid              int32 = 0xFFFF
)

// Packet types (PACKET_*).
const (
	PacketTypeHost      int32 = 0
	PacketTypeBroadcast int32 = 1
	PacketTypeMulticast int32 = 2
	PacketTypeOtherHost int32 = 3
	PacketTypeOutgoing  int32 = 4
	PacketTypeLoopback  int32 = 5
	PacketTypeUser      int32 = 6
	PacketTypeKernel    int32 = 7
)

var protocolNames = map[string]uint16{
	"none":  ProtocolNone,
	"all":   ProtocolAll,
	"loop":  ProtocolLoop,
	"ip":    ProtocolIPv4,
	"ipv4":  ProtocolIPv4,
	"arp":   ProtocolARP,
	"vlan":  ProtocolVLAN,
	"8021q": ProtocolVLAN,
	"ipv6":  ProtocolIPv6,
	"ip6":   ProtocolIPv6,
	"mpls":  ProtocolMPLS,
	"pppoe": ProtocolPPPoE,
	"qinq":  ProtocolQinQ,
	"lldp":  ProtocolLLDP,
}

var hardwareTypeNames = map[int32]string{
	HardwareTypeNetROM:            "netrom",
	HardwareTypeEther:             "ether",
	HardwareTypeIEEE802:           "ieee802",
	HardwareTypeIEEE1394:          "ieee1394",
	HardwareTypeInfiniband:        "infiniband",
	HardwareTypePPP:               "ppp",
	HardwareTypeTunnel:            "tunnel",
	HardwareTypeTunnel6:           "tunnel6",
	HardwareTypeLoopback:          "loopback",
	HardwareTypeSIT:               "sit",
	HardwareTypeIPGRE:             "ipgre",
	HardwareTypeIEEE80211:         "ieee80211",
	HardwareTypeIEEE80211Radiotap: "ieee80211_radiotap",
	HardwareTypeIP6GRE:            "ip6gre",
	HardwareTypeNone:              "none",
	HardwareTypeVoid:              "void",
}

var packetTypeNames = map[int32]string{
	PacketTypeHost:      "host",
	PacketTypeBroadcast: "broadcast",
	PacketTypeMulticast: "multicast",
	PacketTypeOtherHost: "otherhost",
	PacketTypeOutgoing:  "outgoing",
	PacketTypeLoopback:  "loopback",
	PacketTypeUser:      "user",
	PacketTypeKernel:    "kernel",
}

// ProtocolName returns a short name for protocol. EtherTypes are named by
// gopacket; the pseudo protocols 0 and ETH_P_ALL get their own names.
func ProtocolName(protocol uint16) string {
	switch protocol {
	case ProtocolNone:
		return "none"
	case ProtocolAll:
		return "all"
	case ProtocolLoop:
		return "loop"
	}
	return layers.EthernetType(protocol).String()
}

// HardwareTypeName returns the ARPHRD_* name of hatype, or "" if unknown.
func HardwareTypeName(hatype int32) string {
	return hardwareTypeNames[hatype]
}

// PacketTypeName returns the PACKET_* name of pkttype, or "" if unknown.
func PacketTypeName(pkttype int32) string {
	return packetTypeNames[pkttype]
}

// ParseProtocol parses a protocol name ("ipv4", "arp", "all") or a number
// in any base strconv understands ("0x0800", "2048").
func ParseProtocol(s string) (uint16, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if p, ok := protocolNames[key]; ok {
		return p, nil
	}
	v, err := strconv.ParseUint(key, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: protocol %q", ErrUnknownName, s)
	}
	return uint16(v), nil
}

// ParseHardwareType parses an ARPHRD_* name ("ether") or a number.
func ParseHardwareType(s string) (int32, error) {
	return parseCode(s, "hardware type", hardwareTypeNames)
}

// ParsePacketType parses a PACKET_* name ("broadcast") or a number.
func ParsePacketType(s string) (int32, error) {
	return parseCode(s, "packet type", packetTypeNames)
}

func parseCode(s, what string, names map[int32]string) (int32, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for code, name := range names {
		if name == key {
			return code, nil
		}
	}
	v, err := strconv.ParseInt(key, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrUnknownName, what, s)
	}
	return int32(v), nil
}
