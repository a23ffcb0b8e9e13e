package crypto

import "sync"

// ============================================================================
//                              网络标识
// ============================================================================

// Network 网络标识
//
// 值与二进制标签字节的高 4 位对齐：
//   - Mainnet = 0
//   - Testnet = 1
//
// 仅这两个值有效，其余的半字节在解码时报错。
type Network int

const (
	// Mainnet 主网
	Mainnet Network = 0
	// Testnet 测试网
	Testnet Network = 1
)

// String 返回网络名称
func (n Network) String() string {
	switch n {
	case Mainnet:
		return "mainnet"
	case Testnet:
		return "testnet"
	default:
		return "unknown"
	}
}

// ParseNetwork 解析网络名称
func ParseNetwork(s string) (Network, error) {
	switch s {
	case "mainnet":
		return Mainnet, nil
	case "testnet":
		return Testnet, nil
	default:
		return 0, ErrBadNetwork
	}
}

// ============================================================================
//                              网络注册表
// ============================================================================

// Registry 进程内可变的当前网络单元
//
// 保存一个可选的"当前网络"值。Get 在未设置时返回调用方提供的默认值。
// 读写之间只保证可见性：跨多步操作需要一致视图的调用方，
// 应当先 Get 一次并在本次操作内使用快照值。
type Registry struct {
	mu  sync.RWMutex
	set bool
	net Network
}

// NewRegistry 创建独立的网络注册表
//
// 测试可以并行构造互不影响的注册表。
func NewRegistry() *Registry {
	return &Registry{}
}

// Get 返回当前网络，未设置时返回 def
func (r *Registry) Get(def Network) Network {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.set {
		return def
	}
	return r.net
}

// Set 覆盖当前网络
//
// 对后续所有 Get 调用可见，最后一次写入生效。
func (r *Registry) Set(n Network) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.set = true
	r.net = n
}

// defaultRegistry 进程级默认注册表
var defaultRegistry = NewRegistry()

// DefaultRegistry 返回进程级默认网络注册表
func DefaultRegistry() *Registry {
	return defaultRegistry
}
