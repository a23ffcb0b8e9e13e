package crypto

// ============================================================================
//                              签名与协商封装
// ============================================================================

// Signer 与 Agreement 是持有私钥的窄操作对象：私钥归对象独占，
// 除各自的操作方法外不通过任何访问器暴露密钥材料。

// Signer 签名器
type Signer struct {
	priv PrivateKey
}

// NewSigner 创建签名器
//
// 参数：
//   - priv: 私钥（归签名器独占）
func NewSigner(priv PrivateKey) (*Signer, error) {
	if priv == nil {
		return nil, ErrNilPrivateKey
	}
	return &Signer{priv: priv}, nil
}

// Sign 签名数据
//
// EccCompact 生成 ECDSA-over-SHA-256 签名（64 字节 R||S）；
// Ed25519 生成分离式签名（64 字节）。
func (s *Signer) Sign(data []byte) ([]byte, error) {
	return s.priv.Sign(data)
}

// PublicKey 返回签名对应的公钥（公钥不属于秘密材料）
func (s *Signer) PublicKey() PublicKey {
	return s.priv.GetPublic()
}

// VerifySignature 使用公钥验证签名，按密钥类型分发
func VerifySignature(pub PublicKey, data, sig []byte) (bool, error) {
	if pub == nil {
		return false, ErrNilPublicKey
	}
	return pub.Verify(data, sig)
}

// ============================================================================
//                              密钥协商
// ============================================================================

// Agreement 密钥协商器
type Agreement struct {
	priv PrivateKey
}

// NewAgreement 创建密钥协商器
func NewAgreement(priv PrivateKey) (*Agreement, error) {
	if priv == nil {
		return nil, ErrNilPrivateKey
	}
	return &Agreement{priv: priv}, nil
}

// Agree 与对端公钥协商共享密钥
//
// 对端密钥类型必须与本地一致，否则返回 ErrKeyTypeMismatch。
// 协商满足交换律：A.Agree(pubB) == B.Agree(pubA)。
//
// EccCompact 执行 ECDH；Ed25519 将双方密钥经双有理映射转换到
// Curve25519 形式后执行 X25519。
func (a *Agreement) Agree(peer PublicKey) ([]byte, error) {
	if peer == nil {
		return nil, ErrNilPublicKey
	}
	if a.priv.Type() != peer.Type() {
		return nil, ErrKeyTypeMismatch
	}
	return a.priv.SharedSecret(peer)
}
