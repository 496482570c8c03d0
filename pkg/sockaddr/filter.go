package sockaddr

import (
	"golang.org/x/net/bpf"
)

// Offset of the EtherType in an untagged Ethernet header.
const etherTypeOffset = 12

// Filter assembles a classic BPF program for a SOCK_RAW packet socket on an
// Ethernet interface. It accepts up to snapLen bytes of frames whose
// EtherType equals a.Protocol and drops the rest. ProtocolNone and
// ProtocolAll accept every frame.
func (a PacketAddress) Filter(snapLen uint32) ([]bpf.RawInstruction, error) {
	return bpf.Assemble(a.filterProgram(snapLen))
}

func (a PacketAddress) filterProgram(snapLen uint32) []bpf.Instruction {
	if a.Protocol == ProtocolNone || a.Protocol == ProtocolAll {
		return []bpf.Instruction{
			bpf.RetConstant{Val: snapLen},
		}
	}
	return []bpf.Instruction{
		bpf.LoadAbsolute{Off: etherTypeOffset, Size: 2},
		bpf.JumpIf{Cond: bpf.JumpEqual, Val: uint32(a.Protocol), SkipFalse: 1},
		bpf.RetConstant{Val: snapLen},
		bpf.RetConstant{Val: 0},
	}
}
