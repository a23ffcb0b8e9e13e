package netkey

import (
	"github.com/dep2p/go-netkey/pkg/lib/crypto"
	"github.com/dep2p/go-netkey/pkg/types"
)

// ════════════════════════════════════════════════════════════════════════════
//                              版本信息
// ════════════════════════════════════════════════════════════════════════════

// Version 当前版本
const Version = "v0.1.0"

// ════════════════════════════════════════════════════════════════════════════
//                              类型别名
// ════════════════════════════════════════════════════════════════════════════

// Network 网络标识
type Network = crypto.Network

// KeyType 密钥类型
type KeyType = crypto.KeyType

// Key 密钥公共接口
type Key = crypto.Key

// PublicKey 公钥接口
type PublicKey = crypto.PublicKey

// PrivateKey 私钥接口
type PrivateKey = crypto.PrivateKey

// KeyPair 密钥对
type KeyPair = crypto.KeyPair

// Signer 签名器
type Signer = crypto.Signer

// Agreement 密钥协商器
type Agreement = crypto.Agreement

// Keystore 密钥存储接口
type Keystore = crypto.Keystore

// Multiaddr 统一地址类型
type Multiaddr = types.Multiaddr

// 网络与密钥类型常量
const (
	Mainnet = crypto.Mainnet
	Testnet = crypto.Testnet

	KeyTypeEccCompact = crypto.KeyTypeEccCompact
	KeyTypeEd25519    = crypto.KeyTypeEd25519
)

// ════════════════════════════════════════════════════════════════════════════
//                              常用入口
// ════════════════════════════════════════════════════════════════════════════

// GenerateKeyPair 生成指定网络与类型的密钥对
func GenerateKeyPair(network Network, keyType KeyType) (*KeyPair, error) {
	return crypto.GenerateKeyPair(network, keyType)
}

// KeysToBin 将密钥对编码为二进制
func KeysToBin(pair *KeyPair) ([]byte, error) {
	return crypto.KeysToBin(pair)
}

// KeysFromBin 从二进制还原密钥对
func KeysFromBin(data []byte) (*KeyPair, error) {
	return crypto.KeysFromBin(data)
}

// PubKeyToB58 将公钥编码为 Base58 地址
func PubKeyToB58(network Network, pub PublicKey) (string, error) {
	return crypto.PubKeyToB58(network, pub)
}

// B58ToPubKey 从 Base58 地址还原公钥
func B58ToPubKey(network Network, address string) (PublicKey, error) {
	return crypto.B58ToPubKey(network, address)
}

// NewSigner 创建签名器
func NewSigner(priv PrivateKey) (*Signer, error) {
	return crypto.NewSigner(priv)
}

// VerifySignature 验证签名
func VerifySignature(pub PublicKey, data, sig []byte) (bool, error) {
	return crypto.VerifySignature(pub, data, sig)
}

// NewAgreement 创建密钥协商器
func NewAgreement(priv PrivateKey) (*Agreement, error) {
	return crypto.NewAgreement(priv)
}

// NewFSKeystore 创建文件系统密钥存储
func NewFSKeystore(dir string, password []byte) (*crypto.FSKeystore, error) {
	return crypto.NewFSKeystore(dir, password)
}
