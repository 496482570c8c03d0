// Package iface resolves network interfaces into packet socket addresses.
package iface

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"firestige.xyz/lladdr/pkg/sockaddr"
)

// DefaultSysfsRoot is where the kernel exposes interface attributes.
const DefaultSysfsRoot = "/sys"

// Info describes one interface.
type Info struct {
	Name         string
	Index        int
	HardwareAddr net.HardwareAddr
	HardwareType int32 // ARPHRD_*, 0 when sysfs does not report it
}

// Address returns the address a caller binds to or sends on for protocol on
// this interface. Packet type is zero.
func (i Info) Address(protocol uint16) sockaddr.PacketAddress {
	return sockaddr.Build(
		sockaddr.WithProtocol(protocol),
		sockaddr.WithInterfaceIndex(int32(i.Index)),
		sockaddr.WithHardwareType(i.HardwareType),
		sockaddr.WithHardwareAddress(i.HardwareAddr),
	)
}

// Resolver looks interfaces up through the net package and sysfs.
type Resolver struct {
	sysfsRoot string
	byName    func(string) (*net.Interface, error)
	byIndex   func(int) (*net.Interface, error)
}

// NewResolver creates a Resolver reading hardware types below sysfsRoot.
// An empty root means DefaultSysfsRoot.
func NewResolver(sysfsRoot string) *Resolver {
	if sysfsRoot == "" {
		sysfsRoot = DefaultSysfsRoot
	}
	return &Resolver{
		sysfsRoot: sysfsRoot,
		byName:    net.InterfaceByName,
		byIndex:   net.InterfaceByIndex,
	}
}

// Lookup resolves an interface by name.
func (r *Resolver) Lookup(name string) (Info, error) {
	ifi, err := r.byName(name)
	if err != nil {
		return Info{}, fmt.Errorf("lookup interface %q: %w", name, err)
	}
	return r.info(ifi)
}

// LookupIndex resolves an interface by index.
func (r *Resolver) LookupIndex(index int) (Info, error) {
	ifi, err := r.byIndex(index)
	if err != nil {
		return Info{}, fmt.Errorf("lookup interface %d: %w", index, err)
	}
	return r.info(ifi)
}

func (r *Resolver) info(ifi *net.Interface) (Info, error) {
	hatype, err := r.hardwareType(ifi.Name)
	if err != nil {
		return Info{}, err
	}
	slog.Debug("interface resolved",
		"name", ifi.Name,
		"index", ifi.Index,
		"hwaddr", ifi.HardwareAddr.String(),
		"hatype", hatype,
	)
	return Info{
		Name:         ifi.Name,
		Index:        ifi.Index,
		HardwareAddr: ifi.HardwareAddr,
		HardwareType: hatype,
	}, nil
}

// hardwareType reads <root>/class/net/<name>/type. A missing file is not an
// error: non-Linux hosts and containers without sysfs report 0.
func (r *Resolver) hardwareType(name string) (int32, error) {
	path := filepath.Join(r.sysfsRoot, "class", "net", name, "type")
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("hardware type unavailable", "path", path)
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	v, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}
	return int32(v), nil
}
