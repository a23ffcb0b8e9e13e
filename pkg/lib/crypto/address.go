package crypto

import (
	"github.com/dep2p/go-netkey/pkg/types"
)

// ============================================================================
//                              地址编解码
// ============================================================================

// 公钥的人类可分享形式有两层：
//
//   公钥 → PubKeyToBin → 二进制（Tag || 32 字节）
//        → Base58Check（版本字节固定 0）→ 文本地址
//        → "/p2p/" + 文本地址 → multiaddr 形式
//
// 每一层都可以无损还原到下一层。

// BinToB58 将任意密钥二进制编码为 Base58Check 文本（版本 0）
func BinToB58(bin []byte) string {
	return B58CheckEncode(B58AddressVersion, bin)
}

// B58ToBin 解码 Base58Check 文本为密钥二进制（忽略版本字节）
func B58ToBin(s string) ([]byte, error) {
	return B58CheckStrip(s)
}

// PubKeyToB58 将公钥编码为 Base58 文本地址
//
// 参数：
//   - network: 地址所属网络
//   - pub: 公钥（EccCompact 必须满足紧凑表示）
func PubKeyToB58(network Network, pub PublicKey) (string, error) {
	bin, err := PubKeyToBin(network, pub)
	if err != nil {
		return "", err
	}
	return BinToB58(bin), nil
}

// B58ToPubKey 从 Base58 文本地址解码公钥
//
// 解码出的网络标识必须与 network 一致，否则返回 *BadNetworkError。
func B58ToPubKey(network Network, s string) (PublicKey, error) {
	bin, err := B58ToBin(s)
	if err != nil {
		return nil, err
	}
	return PubKeyFromBin(network, bin)
}

// ToP2PAddress 将公钥二进制转换为 /p2p/ 地址
func ToP2PAddress(pubKeyBin []byte) types.Multiaddr {
	return types.NewP2PAddr(BinToB58(pubKeyBin))
}

// FromP2PAddress 从 /p2p/ 地址还原公钥二进制
//
// 接受纯 /p2p/<b58> 地址，也接受以 /p2p/ 段结尾的更长地址。
func FromP2PAddress(addr types.Multiaddr) ([]byte, error) {
	b58, err := addr.P2PSegment()
	if err != nil {
		return nil, err
	}
	return B58ToBin(b58)
}
