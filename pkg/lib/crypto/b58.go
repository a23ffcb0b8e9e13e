package crypto

import (
	"fmt"

	sha256 "github.com/minio/sha256-simd"
	"github.com/mr-tron/base58"
)

// ============================================================================
//                              Base58Check 编解码
// ============================================================================

// Base58Check 文本格式：
//
//   ┌────────────────────────────────────────────────────────────┐
//   │  Base58( Version(1) || Payload(n) || Checksum(4) )         │
//   └────────────────────────────────────────────────────────────┘
//
// Checksum = SHA256(SHA256(Version || Payload)) 的前 4 字节。
// 公钥地址的版本字节固定为 0。

const (
	// b58ChecksumSize 校验和长度（4 字节）
	b58ChecksumSize = 4

	// B58AddressVersion 公钥地址使用的版本字节
	B58AddressVersion byte = 0
)

// b58Checksum 计算双 SHA-256 校验和的前 4 字节
func b58Checksum(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:b58ChecksumSize]
}

// B58CheckEncode 将载荷编码为带校验和的 Base58 文本
//
// 参数：
//   - version: 版本字节
//   - payload: 载荷字节
//
// 对良构输入不会失败，结果是确定性的。
func B58CheckEncode(version byte, payload []byte) string {
	buf := make([]byte, 0, 1+len(payload)+b58ChecksumSize)
	buf = append(buf, version)
	buf = append(buf, payload...)
	buf = append(buf, b58Checksum(buf)...)
	return base58.Encode(buf)
}

// B58CheckDecode 解码 Base58Check 文本
//
// 返回：
//   - byte: 版本字节
//   - []byte: 载荷字节
//   - error: 校验和不匹配时为 ErrBadChecksum
func B58CheckDecode(s string) (byte, []byte, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrMalformedBinary, err)
	}
	if len(raw) < 1+b58ChecksumSize {
		return 0, nil, fmt.Errorf("%w: input too short", ErrMalformedBinary)
	}

	versioned := raw[:len(raw)-b58ChecksumSize]
	checksum := raw[len(raw)-b58ChecksumSize:]

	want := b58Checksum(versioned)
	for i := range checksum {
		if checksum[i] != want[i] {
			return 0, nil, ErrBadChecksum
		}
	}

	return versioned[0], versioned[1:], nil
}

// B58CheckStrip 解码 Base58Check 文本并丢弃版本字节
//
// 只关心载荷的调用方的便捷入口；需要读取版本字节
// （例如旧格式的版本标签）的调用方使用 B58CheckDecode。
func B58CheckStrip(s string) ([]byte, error) {
	_, payload, err := B58CheckDecode(s)
	return payload, err
}
