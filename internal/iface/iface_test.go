package iface

import (
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/lladdr/pkg/sockaddr"
)

var eth0 = &net.Interface{
	Index:        2,
	Name:         "eth0",
	HardwareAddr: net.HardwareAddr{0x02, 0x42, 0xac, 0x11, 0x00, 0x02},
}

func newTestResolver(t *testing.T) (*Resolver, string) {
	t.Helper()
	root := t.TempDir()
	r := NewResolver(root)
	r.byName = func(name string) (*net.Interface, error) {
		if name == eth0.Name {
			return eth0, nil
		}
		return nil, errors.New("no such network interface")
	}
	r.byIndex = func(index int) (*net.Interface, error) {
		if index == eth0.Index {
			return eth0, nil
		}
		return nil, errors.New("no such network interface")
	}
	return r, root
}

func writeType(t *testing.T, root, name, content string) {
	t.Helper()
	dir := filepath.Join(root, "class", "net", name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "type"), []byte(content), 0644))
}

func TestLookupReadsHardwareType(t *testing.T) {
	r, root := newTestResolver(t)
	writeType(t, root, "eth0", "1\n")

	info, err := r.Lookup("eth0")
	require.NoError(t, err)
	assert.Equal(t, "eth0", info.Name)
	assert.Equal(t, 2, info.Index)
	assert.Equal(t, sockaddr.HardwareTypeEther, info.HardwareType)
	assert.Equal(t, eth0.HardwareAddr, info.HardwareAddr)
}

func TestLookupWithoutSysfs(t *testing.T) {
	r, _ := newTestResolver(t)

	info, err := r.LookupIndex(2)
	require.NoError(t, err)
	assert.Zero(t, info.HardwareType)
}

func TestLookupBadTypeFile(t *testing.T) {
	r, root := newTestResolver(t)
	writeType(t, root, "eth0", "ether\n")

	_, err := r.Lookup("eth0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLookupUnknownInterface(t *testing.T) {
	r, _ := newTestResolver(t)

	_, err := r.Lookup("nope0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nope0"`)

	_, err = r.LookupIndex(99)
	assert.Error(t, err)
}

func TestInfoAddress(t *testing.T) {
	info := Info{Name: "eth0", Index: 2, HardwareAddr: eth0.HardwareAddr, HardwareType: sockaddr.HardwareTypeEther}

	a := info.Address(sockaddr.ProtocolIPv4)
	assert.Equal(t, sockaddr.New(sockaddr.ProtocolIPv4, 2, sockaddr.HardwareTypeEther, 0, eth0.HardwareAddr), a)
}

func TestNewResolverDefaultRoot(t *testing.T) {
	assert.Equal(t, DefaultSysfsRoot, NewResolver("").sysfsRoot)
}
