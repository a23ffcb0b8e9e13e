// Package crypto 提供网络身份密钥的管理与编码。
//
// 本包围绕两类非对称密钥构建 P2P 网络身份：
//
//   - EccCompact：P-256 密钥，公钥点满足紧凑表示（可仅由 32 字节
//     X 坐标确定性重建），用于 ECDSA 签名与 ECDH 协商
//   - Ed25519：64 字节私钥 / 32 字节公钥，用于分离式签名与
//     经 Curve25519 转换的 X25519 协商
//
// 每个密钥都携带网络标识（Mainnet / Testnet），网络与密钥类型
// 共同编码在序列化格式的首个标签字节中。
//
// 提供的编码层次：
//
//   - KeysToBin / KeysFromBin：完整密钥对的二进制格式，
//     解码兼容两种旧的"外部钱包"双标签布局
//   - PubKeyToBin / PubKeyFromBin：公钥二进制（Tag || 32 字节）
//   - PubKeyToB58 / B58ToPubKey：Base58Check 文本地址
//   - ToP2PAddress / FromP2PAddress："/p2p/..." multiaddr 形式
//
// 签名与密钥协商经 Signer / Agreement 窄对象进行，私钥材料
// 不越过对象边界暴露。FSKeystore 提供可选口令加密的文件持久化。
//
// 基本用法：
//
//	pair, _ := crypto.GenerateKeyPair(crypto.Mainnet, crypto.KeyTypeEd25519)
//	bin, _ := crypto.KeysToBin(pair)             // 持久化
//	addr, _ := crypto.PubKeyToB58(pair.Network, pair.Pub) // 分享
//
//	signer, _ := crypto.NewSigner(pair.Priv)
//	sig, _ := signer.Sign(msg)
//	ok, _ := crypto.VerifySignature(pair.Pub, msg, sig)
package crypto
