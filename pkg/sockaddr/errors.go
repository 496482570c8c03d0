package sockaddr

import "errors"

var (
	// Native encoding errors
	ErrShortBuffer    = errors.New("sockaddr: buffer too short for sockaddr_ll")
	ErrFamily         = errors.New("sockaddr: address family is not AF_PACKET")
	ErrAddressTooLong = errors.New("sockaddr: hardware address longer than 8 bytes")

	// Name lookup errors
	ErrUnknownName = errors.New("sockaddr: unknown name")
)
