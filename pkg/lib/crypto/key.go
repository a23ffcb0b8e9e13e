package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"io"
)

// ============================================================================
//                              密钥类型定义
// ============================================================================

// KeyType 密钥类型
//
// 值与二进制标签字节的低 4 位对齐：
//   - EccCompact = 0（P-256 紧凑表示）
//   - Ed25519 = 1
type KeyType int

const (
	// KeyTypeEccCompact P-256 紧凑椭圆曲线密钥
	KeyTypeEccCompact KeyType = 0
	// KeyTypeEd25519 Ed25519 密钥
	KeyTypeEd25519 KeyType = 1
)

// String 返回密钥类型名称
func (kt KeyType) String() string {
	switch kt {
	case KeyTypeEccCompact:
		return "EccCompact"
	case KeyTypeEd25519:
		return "Ed25519"
	default:
		return "Unknown"
	}
}

// KeyTypes 支持的密钥类型列表
var KeyTypes = []KeyType{
	KeyTypeEccCompact,
	KeyTypeEd25519,
}

// ============================================================================
//                              密钥接口定义
// ============================================================================

// Key 基础密钥接口
type Key interface {
	// Raw 返回原始密钥字节
	Raw() ([]byte, error)

	// Type 返回密钥类型
	Type() KeyType

	// Equals 比较两个密钥是否相等
	Equals(Key) bool
}

// PublicKey 公钥接口
type PublicKey interface {
	Key

	// Verify 使用此公钥验证签名
	//
	// 参数：
	//   - data: 原始数据
	//   - sig: 签名字节
	//
	// 返回：
	//   - bool: 签名是否有效
	//   - error: 验证过程中的错误
	Verify(data, sig []byte) (bool, error)
}

// PrivateKey 私钥接口
type PrivateKey interface {
	Key

	// Sign 使用此私钥签名数据
	Sign(data []byte) ([]byte, error)

	// GetPublic 返回对应的公钥
	GetPublic() PublicKey

	// SharedSecret 与对端公钥执行密钥协商
	//
	// 对端密钥必须与本密钥同类型。协商满足交换律：
	// priv1.SharedSecret(pub2) == priv2.SharedSecret(pub1)。
	SharedSecret(peer PublicKey) ([]byte, error)
}

// ============================================================================
//                              密钥对
// ============================================================================

// KeyPair 一对相互对应的私钥与公钥，附带网络标识
//
// Pub 始终是 Priv 的对应公钥，两者的 KeyType 一致。
// 只能通过密钥生成或 KeysFromBin 构造，构造后不可变。
type KeyPair struct {
	// Network 密钥所属网络
	Network Network

	// Priv 私钥
	Priv PrivateKey

	// Pub 公钥
	Pub PublicKey
}

// Equals 比较两个密钥对是否相等（网络、私钥、公钥全部一致）
func (kp *KeyPair) Equals(other *KeyPair) bool {
	if kp == nil || other == nil {
		return kp == other
	}
	return kp.Network == other.Network &&
		kp.Priv.Equals(other.Priv) &&
		kp.Pub.Equals(other.Pub)
}

// ============================================================================
//                              密钥工厂函数
// ============================================================================

// GenerateKeyPair 生成密钥对
//
// 使用系统默认的加密安全随机源。
//
// 参数：
//   - network: 网络标识
//   - keyType: 密钥类型
//
// 返回：
//   - *KeyPair: 密钥对
//   - error: 生成错误
func GenerateKeyPair(network Network, keyType KeyType) (*KeyPair, error) {
	return GenerateKeyPairWithReader(network, keyType, rand.Reader)
}

// GenerateKeyPairWithReader 使用指定的随机源生成密钥对
//
// 参数：
//   - network: 网络标识
//   - keyType: 密钥类型
//   - reader: 随机源（用于测试时的确定性生成）
func GenerateKeyPairWithReader(network Network, keyType KeyType, reader io.Reader) (*KeyPair, error) {
	var (
		priv PrivateKey
		pub  PublicKey
		err  error
	)

	switch keyType {
	case KeyTypeEccCompact:
		priv, pub, err = GenerateEccCompactKey(reader)
	case KeyTypeEd25519:
		priv, pub, err = GenerateEd25519Key(reader)
	default:
		return nil, ErrBadKeyType
	}
	if err != nil {
		return nil, err
	}

	return &KeyPair{Network: network, Priv: priv, Pub: pub}, nil
}

// ============================================================================
//                              辅助函数
// ============================================================================

// KeyEqual 使用常量时间比较两个密钥是否相等
//
// 这是一个安全的比较方法，可以防止时序攻击。
func KeyEqual(k1, k2 Key) bool {
	if k1.Type() != k2.Type() {
		return false
	}

	b1, err1 := k1.Raw()
	b2, err2 := k2.Raw()

	if err1 != nil || err2 != nil {
		return false
	}

	return subtle.ConstantTimeCompare(b1, b2) == 1
}
