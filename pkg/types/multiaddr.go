// Package types 提供 go-netkey 核心值类型
package types

import (
	"errors"
	"strings"
)

// ============================================================================
//                              Multiaddr - 统一地址类型
// ============================================================================

// Multiaddr 统一地址类型（值对象）
//
// 本库只关心地址中的 /p2p/ 段：节点身份地址形如 /p2p/<b58>，
// 也可能作为更长地址的尾段出现（如 /ip4/1.2.3.4/tcp/4001/p2p/<b58>）。
//
// 约束：
//   - String() 始终返回以 "/" 开头的 canonical 形式
type Multiaddr string

// Multiaddr 错误定义
var (
	// ErrEmptyMultiaddr 空 multiaddr
	ErrEmptyMultiaddr = errors.New("empty multiaddr")

	// ErrNotMultiaddrFormat 不是 multiaddr 格式（不以 / 开头）
	ErrNotMultiaddrFormat = errors.New("not multiaddr format: must start with /")

	// ErrMissingP2PSegment 地址中没有 /p2p/ 段
	ErrMissingP2PSegment = errors.New("missing /p2p/ segment")
)

// p2pProtocol /p2p/ 段的协议名
const p2pProtocol = "p2p"

// NewP2PAddr 从 Base58 身份串构建 /p2p/ 地址
func NewP2PAddr(b58 string) Multiaddr {
	return Multiaddr("/" + p2pProtocol + "/" + b58)
}

// String 返回字符串表示
func (m Multiaddr) String() string {
	return string(m)
}

// Validate 检查基本格式
func (m Multiaddr) Validate() error {
	if m == "" {
		return ErrEmptyMultiaddr
	}
	if !strings.HasPrefix(string(m), "/") {
		return ErrNotMultiaddrFormat
	}
	return nil
}

// P2PSegment 提取地址中最后一个 /p2p/ 段的值
//
// 返回：
//   - string: /p2p/ 之后的 Base58 身份串
//   - error: 格式错误或地址中没有 /p2p/ 段
//
// 示例：
//   - "/p2p/QmNode" → "QmNode"
//   - "/ip4/1.2.3.4/tcp/4001/p2p/QmNode" → "QmNode"
func (m Multiaddr) P2PSegment() (string, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}

	parts := strings.Split(string(m), "/")
	// parts[0] 是开头 "/" 之前的空串
	for i := len(parts) - 2; i >= 1; i-- {
		if parts[i] == p2pProtocol && parts[i+1] != "" {
			return parts[i+1], nil
		}
	}
	return "", ErrMissingP2PSegment
}

// HasP2PSegment 判断地址中是否含有 /p2p/ 段
func (m Multiaddr) HasP2PSegment() bool {
	_, err := m.P2PSegment()
	return err == nil
}
