package crypto

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// TestB58CheckRoundTrip 测试编码解码往返
func TestB58CheckRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		version byte
		payload []byte
	}{
		{"empty payload", 0, nil},
		{"version 0", 0, []byte{0x01, 0x02, 0x03}},
		{"version 1", 1, []byte("hello")},
		{"version 255", 255, bytes.Repeat([]byte{0xab}, 33)},
		{"leading zeros", 0, []byte{0x00, 0x00, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := B58CheckEncode(tt.version, tt.payload)

			version, payload, err := B58CheckDecode(s)
			if err != nil {
				t.Fatalf("B58CheckDecode: %v", err)
			}
			if version != tt.version {
				t.Errorf("version = %d, want %d", version, tt.version)
			}
			if !bytes.Equal(payload, tt.payload) {
				t.Errorf("payload = %x, want %x", payload, tt.payload)
			}

			stripped, err := B58CheckStrip(s)
			if err != nil {
				t.Fatalf("B58CheckStrip: %v", err)
			}
			if !bytes.Equal(stripped, tt.payload) {
				t.Errorf("stripped payload = %x, want %x", stripped, tt.payload)
			}
		})
	}
}

// TestB58CheckCorruption 测试任意单字符损坏都触发校验失败
func TestB58CheckCorruption(t *testing.T) {
	payload := []byte{0x00, 0x35, 0x94, 0x17, 0xe1, 0xab, 0xcd}
	s := B58CheckEncode(0, payload)

	const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	for i := 0; i < len(s); i++ {
		// 替换为字母表中另一个字符
		replacement := alphabet[0]
		if s[i] == replacement {
			replacement = alphabet[1]
		}
		corrupted := s[:i] + string(replacement) + s[i+1:]

		_, _, err := B58CheckDecode(corrupted)
		if err == nil {
			t.Fatalf("corrupted string at index %d decoded successfully", i)
		}
	}
}

// TestB58CheckBadChecksum 测试明确的校验和错误
func TestB58CheckBadChecksum(t *testing.T) {
	s := B58CheckEncode(0, []byte{0x11, 0x22, 0x33, 0x44})

	// 篡改中间字符（保持在字母表内）
	mid := len(s) / 2
	replacement := byte('2')
	if s[mid] == replacement {
		replacement = '3'
	}
	corrupted := s[:mid] + string(replacement) + s[mid+1:]

	_, _, err := B58CheckDecode(corrupted)
	if !errors.Is(err, ErrBadChecksum) && !errors.Is(err, ErrMalformedBinary) {
		t.Fatalf("error = %v, want ErrBadChecksum or ErrMalformedBinary", err)
	}
}

// TestB58CheckMalformed 测试非法输入
func TestB58CheckMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"invalid char", "0OIl"},
		{"too short", "2g"}, // 解码后不足 5 字节
		{"whitespace", strings.Repeat(" ", 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := B58CheckDecode(tt.input); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

// TestB58CheckDeterministic 测试编码确定性
func TestB58CheckDeterministic(t *testing.T) {
	payload := []byte{0xde, 0xad, 0xbe, 0xef}
	if B58CheckEncode(0, payload) != B58CheckEncode(0, payload) {
		t.Fatal("encoding is not deterministic")
	}
}
