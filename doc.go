// Package netkey 提供 P2P 网络身份的密钥管理与编码
//
// go-netkey 围绕三个核心概念构建：
//
//   - KeyPair: 带网络标识的密钥对，支持 ECC Compact (P-256) 与 Ed25519
//   - 编码层: 密钥对/公钥的二进制布局与 Base58Check 地址
//   - Keystore: 可选口令加密的密钥文件存储
//
// # 快速开始
//
//	import "github.com/dep2p/go-netkey"
//
//	// 1. 生成密钥对
//	pair, err := netkey.GenerateKeyPair(netkey.Mainnet, netkey.KeyTypeEd25519)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// 2. 得到可分享的 Base58 地址
//	addr, _ := netkey.PubKeyToB58(netkey.Mainnet, pair.Pub)
//
//	// 3. 签名与验证
//	signer, _ := netkey.NewSigner(pair.Priv)
//	sig, _ := signer.Sign([]byte("hello"))
//	ok, _ := netkey.VerifySignature(pair.Pub, []byte("hello"), sig)
//
// 完整 API 见 pkg/lib/crypto。
package netkey
