package types

import (
	"errors"
	"testing"
)

// TestNewP2PAddr 测试 /p2p/ 地址构建
func TestNewP2PAddr(t *testing.T) {
	addr := NewP2PAddr("QmNode")
	if addr.String() != "/p2p/QmNode" {
		t.Fatalf("addr = %q, want /p2p/QmNode", addr)
	}
	if err := addr.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

// TestMultiaddrValidate 测试基本格式校验
func TestMultiaddrValidate(t *testing.T) {
	tests := []struct {
		name string
		addr Multiaddr
		want error
	}{
		{"valid", "/p2p/QmNode", nil},
		{"valid long", "/ip4/1.2.3.4/tcp/4001", nil},
		{"empty", "", ErrEmptyMultiaddr},
		{"no leading slash", "p2p/QmNode", ErrNotMultiaddrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.addr.Validate(); !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

// TestP2PSegment 测试 /p2p/ 段提取
func TestP2PSegment(t *testing.T) {
	tests := []struct {
		name    string
		addr    Multiaddr
		want    string
		wantErr error
	}{
		{"bare", "/p2p/QmNode", "QmNode", nil},
		{"tail of longer address", "/ip4/1.2.3.4/tcp/4001/p2p/QmNode", "QmNode", nil},
		{"last segment wins", "/p2p/QmRelay/p2p-circuit/p2p/QmTarget", "QmTarget", nil},
		{"empty", "", "", ErrEmptyMultiaddr},
		{"not multiaddr", "p2p/QmNode", "", ErrNotMultiaddrFormat},
		{"missing segment", "/ip4/1.2.3.4/tcp/4001", "", ErrMissingP2PSegment},
		{"empty value", "/p2p/", "", ErrMissingP2PSegment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.addr.P2PSegment()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("P2PSegment() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("P2PSegment() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestHasP2PSegment 测试 /p2p/ 段判断
func TestHasP2PSegment(t *testing.T) {
	if !Multiaddr("/p2p/QmNode").HasP2PSegment() {
		t.Fatal("HasP2PSegment(/p2p/QmNode) = false")
	}
	if Multiaddr("/ip4/1.2.3.4/tcp/4001").HasP2PSegment() {
		t.Fatal("HasP2PSegment(/ip4/...) = true")
	}
}
