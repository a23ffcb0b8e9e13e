package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
	"math/big"

	sha256 "github.com/minio/sha256-simd"
)

// EccCompact 密钥常量（使用 P-256 曲线）
const (
	// EccCompactPrivateKeySize EccCompact 私钥标量大小（32 字节）
	EccCompactPrivateKeySize = 32
	// EccCompactPointSize 紧凑公钥点大小（仅 X 坐标，32 字节）
	EccCompactPointSize = 32
	// EccCompactPublicKeySize 未压缩公钥点大小（0x04 || X || Y，65 字节）
	EccCompactPublicKeySize = 65
	// EccCompactSignatureSize EccCompact 签名大小（64 字节）
	EccCompactSignatureSize = 64
)

// ============================================================================
//                              EccCompactPublicKey
// ============================================================================

// EccCompactPublicKey P-256 公钥实现（紧凑表示）
//
// 紧凑表示：公钥点可以仅由 32 字节的 X 坐标重建。重建规则是取
// 曲线方程两个平方根中较小的那个（y = min(y, p-y)），因此只有
// Y 坐标恰好是较小根的点才是紧凑的。密钥生成会循环直到取到紧凑点。
type EccCompactPublicKey struct {
	k *ecdsa.PublicKey
}

// Raw 返回未压缩格式的公钥点字节（65 字节，0x04 || X || Y）
func (k *EccCompactPublicKey) Raw() ([]byte, error) {
	return marshalP256Point(k.k), nil
}

// CompactRaw 返回紧凑格式的公钥点字节（32 字节 X 坐标）
//
// 点不满足紧凑表示时返回 ErrNotCompact。
func (k *EccCompactPublicKey) CompactRaw() ([]byte, error) {
	if !k.IsCompact() {
		return nil, ErrNotCompact
	}
	return paddedBytes(k.k.X, EccCompactPointSize), nil
}

// IsCompact 判断公钥点是否满足紧凑表示
func (k *EccCompactPublicKey) IsCompact() bool {
	p := elliptic.P256().Params().P
	negY := new(big.Int).Sub(p, k.k.Y)
	return k.k.Y.Cmp(negY) <= 0
}

// Type 返回密钥类型
func (k *EccCompactPublicKey) Type() KeyType {
	return KeyTypeEccCompact
}

// Equals 比较两个公钥是否相等
func (k *EccCompactPublicKey) Equals(other Key) bool {
	ek, ok := other.(*EccCompactPublicKey)
	if !ok {
		return KeyEqual(k, other)
	}
	return k.k.X.Cmp(ek.k.X) == 0 && k.k.Y.Cmp(ek.k.Y) == 0
}

// Verify 使用此公钥验证签名
//
// 签名格式为 64 字节：R (32 字节) + S (32 字节)，对 SHA-256 摘要验证。
func (k *EccCompactPublicKey) Verify(data, sig []byte) (bool, error) {
	if len(sig) != EccCompactSignatureSize {
		return false, nil
	}

	hash := sha256.Sum256(data)

	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:])

	return ecdsa.Verify(k.k, hash[:], r, s), nil
}

// ============================================================================
//                              EccCompactPrivateKey
// ============================================================================

// EccCompactPrivateKey P-256 私钥实现（紧凑表示）
type EccCompactPrivateKey struct {
	k *ecdsa.PrivateKey
}

// Raw 返回私钥标量的最小大端编码
//
// 标量正常为 32 字节；当最高字节恰好为零时自然出现 31 字节的
// 退化标量，编码层必须能无损表示这两种长度。
func (k *EccCompactPrivateKey) Raw() ([]byte, error) {
	return k.k.D.Bytes(), nil
}

// Type 返回密钥类型
func (k *EccCompactPrivateKey) Type() KeyType {
	return KeyTypeEccCompact
}

// Equals 比较两个私钥是否相等
func (k *EccCompactPrivateKey) Equals(other Key) bool {
	ek, ok := other.(*EccCompactPrivateKey)
	if !ok {
		return KeyEqual(k, other)
	}

	b1 := paddedBytes(k.k.D, EccCompactPrivateKeySize)
	b2 := paddedBytes(ek.k.D, EccCompactPrivateKeySize)
	return subtle.ConstantTimeCompare(b1, b2) == 1
}

// GetPublic 返回对应的公钥
func (k *EccCompactPrivateKey) GetPublic() PublicKey {
	return &EccCompactPublicKey{k: &k.k.PublicKey}
}

// Sign 使用此私钥签名数据
//
// 返回 64 字节签名：R (32 字节) + S (32 字节)，对 SHA-256 摘要签名。
func (k *EccCompactPrivateKey) Sign(data []byte) ([]byte, error) {
	hash := sha256.Sum256(data)
	r, s, err := ecdsa.Sign(rand.Reader, k.k, hash[:])
	if err != nil {
		return nil, err
	}

	sig := make([]byte, EccCompactSignatureSize)
	copy(sig[:32], paddedBytes(r, 32))
	copy(sig[32:], paddedBytes(s, 32))
	return sig, nil
}

// SharedSecret 执行 ECDH 密钥协商
//
// 对端必须是同曲线的 EccCompact 公钥，返回共享点的 X 坐标（32 字节）。
func (k *EccCompactPrivateKey) SharedSecret(peer PublicKey) ([]byte, error) {
	if peer == nil {
		return nil, ErrNilPublicKey
	}
	ek, ok := peer.(*EccCompactPublicKey)
	if !ok {
		return nil, ErrKeyTypeMismatch
	}

	x, _ := elliptic.P256().ScalarMult(ek.k.X, ek.k.Y, paddedBytes(k.k.D, EccCompactPrivateKeySize))
	if x == nil {
		return nil, ErrInvalidPublicKey
	}
	return paddedBytes(x, 32), nil
}

// ============================================================================
//                              工厂函数
// ============================================================================

// GenerateEccCompactKey 生成新的 EccCompact 密钥对
//
// 只有约一半的 P-256 点满足紧凑表示，因此循环生成直到取到紧凑点。
//
// 参数：
//   - src: 随机源
func GenerateEccCompactKey(src io.Reader) (PrivateKey, PublicKey, error) {
	for {
		priv, err := ecdsa.GenerateKey(elliptic.P256(), src)
		if err != nil {
			return nil, nil, err
		}

		pub := &EccCompactPublicKey{k: &priv.PublicKey}
		if !pub.IsCompact() {
			continue
		}
		return &EccCompactPrivateKey{k: priv}, pub, nil
	}
}

// unmarshalEccCompactPrivateKey 从标量与公钥点字节构造私钥
//
// 标量为 31 或 32 字节的大端编码；公钥点为 65 字节未压缩格式。
// 公钥点取自序列化数据本身，不由标量重新推导。
func unmarshalEccCompactPrivateKey(scalar, point []byte) (*EccCompactPrivateKey, error) {
	if len(scalar) != EccCompactPrivateKeySize && len(scalar) != EccCompactPrivateKeySize-1 {
		return nil, fmt.Errorf("%w: scalar must be 31 or 32 bytes, got %d", ErrInvalidKeySize, len(scalar))
	}

	x, y, err := unmarshalP256Point(point)
	if err != nil {
		return nil, err
	}

	d := new(big.Int).SetBytes(scalar)
	if d.Sign() <= 0 {
		return nil, ErrInvalidPrivateKey
	}

	return &EccCompactPrivateKey{k: &ecdsa.PrivateKey{
		D: d,
		PublicKey: ecdsa.PublicKey{
			Curve: elliptic.P256(),
			X:     x,
			Y:     y,
		},
	}}, nil
}

// unmarshalEccCompactPublicKey 从 32 字节紧凑点重建公钥
func unmarshalEccCompactPublicKey(data []byte) (*EccCompactPublicKey, error) {
	if len(data) != EccCompactPointSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKeySize, EccCompactPointSize, len(data))
	}

	x, y := recoverP256CompactPoint(data)
	if x == nil {
		return nil, ErrInvalidPublicKey
	}

	return &EccCompactPublicKey{k: &ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y}}, nil
}

// ============================================================================
//                              点编码辅助函数
// ============================================================================

// paddedBytes 返回固定长度的大端字节切片
func paddedBytes(n *big.Int, length int) []byte {
	b := n.Bytes()
	if len(b) >= length {
		return b[len(b)-length:]
	}
	padded := make([]byte, length)
	copy(padded[length-len(b):], b)
	return padded
}

// marshalP256Point 序列化为未压缩点（0x04 || X || Y）
func marshalP256Point(pub *ecdsa.PublicKey) []byte {
	out := make([]byte, EccCompactPublicKeySize)
	out[0] = 0x04
	copy(out[1:33], paddedBytes(pub.X, 32))
	copy(out[33:], paddedBytes(pub.Y, 32))
	return out
}

// unmarshalP256Point 解析未压缩点并检查在曲线上
func unmarshalP256Point(data []byte) (*big.Int, *big.Int, error) {
	if len(data) != EccCompactPublicKeySize {
		return nil, nil, fmt.Errorf("%w: expected %d point bytes, got %d",
			ErrInvalidPublicKey, EccCompactPublicKeySize, len(data))
	}
	if data[0] != 0x04 {
		return nil, nil, fmt.Errorf("%w: not an uncompressed point", ErrInvalidPublicKey)
	}

	x := new(big.Int).SetBytes(data[1:33])
	y := new(big.Int).SetBytes(data[33:65])
	if !elliptic.P256().IsOnCurve(x, y) {
		return nil, nil, fmt.Errorf("%w: point not on curve", ErrInvalidPublicKey)
	}
	return x, y, nil
}

// recoverP256CompactPoint 从 32 字节 X 坐标重建完整公钥点
//
// 曲线方程 y² = x³ - 3x + b (mod P) 有两个根，取较小的那个
// （与 IsCompact 的判定规则一致）。X 不在曲线上时返回 (nil, nil)。
func recoverP256CompactPoint(data []byte) (*big.Int, *big.Int) {
	curve := elliptic.P256()
	p := curve.Params().P
	b := curve.Params().B

	x := new(big.Int).SetBytes(data)
	if x.Cmp(p) >= 0 {
		return nil, nil
	}

	// x³
	x3 := new(big.Int).Mul(x, x)
	x3.Mul(x3, x)
	x3.Mod(x3, p)

	// -3x
	threeX := new(big.Int).Mul(x, big.NewInt(3))
	threeX.Mod(threeX, p)

	// x³ - 3x + b
	y2 := new(big.Int).Sub(x3, threeX)
	y2.Add(y2, b)
	y2.Mod(y2, p)

	// 对于 P ≡ 3 (mod 4)：y = y²^((P+1)/4) mod P
	exp := new(big.Int).Add(p, big.NewInt(1))
	exp.Div(exp, big.NewInt(4))
	y := new(big.Int).Exp(y2, exp, p)

	// 验证 y（X 不在曲线上时平方根不存在）
	check := new(big.Int).Mul(y, y)
	check.Mod(check, p)
	if check.Cmp(y2) != 0 {
		return nil, nil
	}

	// 取较小的根
	negY := new(big.Int).Sub(p, y)
	if y.Cmp(negY) > 0 {
		y = negY
	}

	return x, y
}
