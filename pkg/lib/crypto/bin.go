package crypto

import (
	"fmt"
)

// ============================================================================
//                              二进制布局
// ============================================================================

// 密钥对序列化格式（KeysToBin / KeysFromBin）：
//
//   ┌─────────────────────────────────────────────────────────────┐
//   │  Tag:  1 字节，高 4 位 = Network，低 4 位 = KeyType          │
//   ├─────────────────────────────────────────────────────────────┤
//   │  EccCompact（标量 32 字节）:                                 │
//   │    Tag || Scalar(32) || Point(65, 未压缩)                    │
//   │  EccCompact（退化标量 31 字节，显式补零对齐到 32 字节槽位）: │
//   │    Tag || 0x00 || Scalar(31) || Point(65)                    │
//   │  Ed25519:                                                    │
//   │    Tag || Secret(64) || Public(32)                           │
//   └─────────────────────────────────────────────────────────────┘
//
// 解码同时兼容两种旧的"外部钱包"双标签布局：
//
//   EccCompact: Tag || Priv(32) || Tag(重复) || CompactPoint(32)
//   Ed25519:    Tag || Priv(64) || Tag(重复) || Public(32)
//
// 匹配按固定优先级进行（旧双标签格式先于规范格式），因为仅凭长度
// 无法完全区分各布局：旧 Ed25519 双标签格式与规范 EccCompact 格式
// 同为 98 字节，先用标签低位和重复标签字节甄别。

// 各布局的总长度
const (
	// keysBinEccLegacySize 旧双标签 EccCompact 布局长度
	keysBinEccLegacySize = 1 + 32 + 1 + 32
	// keysBinEd25519LegacySize 旧双标签 Ed25519 布局长度
	keysBinEd25519LegacySize = 1 + 64 + 1 + 32
	// keysBinEccSize 规范 EccCompact 布局长度（补零与否相同）
	keysBinEccSize = 1 + 32 + 65
	// keysBinEd25519Size 规范 Ed25519 布局长度
	keysBinEd25519Size = 1 + 64 + 32
	// pubKeyBinSize 公钥二进制长度
	pubKeyBinSize = 1 + 32
)

// ============================================================================
//                              标签字节
// ============================================================================

// makeTag 组合网络与密钥类型为标签字节
func makeTag(network Network, keyType KeyType) byte {
	return byte(network)<<4 | byte(keyType)
}

// splitTag 拆分标签字节并校验两个半字节
//
// 网络或密钥类型半字节超出已知值时返回 ErrMalformedBinary。
func splitTag(tag byte) (Network, KeyType, error) {
	network := Network(tag >> 4)
	keyType := KeyType(tag & 0x0f)

	switch network {
	case Mainnet, Testnet:
	default:
		return 0, 0, fmt.Errorf("%w: unknown network nibble %d", ErrMalformedBinary, network)
	}

	switch keyType {
	case KeyTypeEccCompact, KeyTypeEd25519:
	default:
		return 0, 0, fmt.Errorf("%w: unknown key type nibble %d", ErrMalformedBinary, keyType)
	}

	return network, keyType, nil
}

// ============================================================================
//                              密钥对序列化
// ============================================================================

// KeysToBin 将密钥对序列化为二进制
//
// 布局见文件头说明。EccCompact 的 31 字节退化标量以显式零字节补齐，
// 使标量槽位固定为 32 字节，解码时布局自描述。
func KeysToBin(pair *KeyPair) ([]byte, error) {
	if pair == nil || pair.Priv == nil {
		return nil, ErrNilPrivateKey
	}

	tag := makeTag(pair.Network, pair.Priv.Type())

	switch priv := pair.Priv.(type) {
	case *EccCompactPrivateKey:
		scalar, err := priv.Raw()
		if err != nil {
			return nil, err
		}
		point, err := priv.GetPublic().Raw()
		if err != nil {
			return nil, err
		}

		switch len(scalar) {
		case EccCompactPrivateKeySize:
			out := make([]byte, 0, keysBinEccSize)
			out = append(out, tag)
			out = append(out, scalar...)
			out = append(out, point...)
			return out, nil

		case EccCompactPrivateKeySize - 1:
			out := make([]byte, 0, keysBinEccSize)
			out = append(out, tag, 0x00)
			out = append(out, scalar...)
			out = append(out, point...)
			return out, nil

		default:
			return nil, fmt.Errorf("%w: scalar must be 31 or 32 bytes, got %d",
				ErrInvalidKeySize, len(scalar))
		}

	case *Ed25519PrivateKey:
		secret, err := priv.Raw()
		if err != nil {
			return nil, err
		}
		public, err := priv.GetPublic().Raw()
		if err != nil {
			return nil, err
		}

		out := make([]byte, 0, keysBinEd25519Size)
		out = append(out, tag)
		out = append(out, secret...)
		out = append(out, public...)
		return out, nil

	default:
		return nil, ErrBadKeyType
	}
}

// KeysFromBin 从二进制反序列化密钥对
//
// 按固定优先级依次尝试五种布局（见文件头说明），全部不匹配时
// 返回 ErrMalformedBinary。网络与密钥类型取自首字节的两个半字节。
func KeysFromBin(data []byte) (*KeyPair, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedBinary)
	}

	network, keyType, err := splitTag(data[0])
	if err != nil {
		return nil, err
	}

	// 1. 旧双标签 EccCompact：Tag || Priv(32) || Tag || CompactPoint(32)
	//    尾部 32 字节是原始紧凑点，先重建完整点再按规范布局构造。
	if keyType == KeyTypeEccCompact && len(data) == keysBinEccLegacySize && data[33] == data[0] {
		pub, err := unmarshalEccCompactPublicKey(data[34:66])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedBinary, err)
		}
		point, _ := pub.Raw()
		return newEccCompactPair(network, data[1:33], point)
	}

	// 2. 旧双标签 Ed25519：Tag || Priv(64) || Tag || Public(32)
	if keyType == KeyTypeEd25519 && len(data) == keysBinEd25519LegacySize && data[65] == data[0] {
		return newEd25519Pair(network, data[1:65], data[66:98])
	}

	// 3. 规范补零 EccCompact：Tag || 0x00 || Scalar(31) || Point(65)
	//    32 字节标量的最小编码不可能以零字节开头，因此补零可甄别。
	if keyType == KeyTypeEccCompact && len(data) == keysBinEccSize && data[1] == 0x00 {
		return newEccCompactPair(network, data[2:33], data[33:98])
	}

	// 4. 规范 EccCompact：Tag || Scalar(32) || Point(65)
	if keyType == KeyTypeEccCompact && len(data) == keysBinEccSize {
		return newEccCompactPair(network, data[1:33], data[33:98])
	}

	// 5. 规范 Ed25519：Tag || Secret(64) || Public(32)
	if keyType == KeyTypeEd25519 && len(data) == keysBinEd25519Size {
		return newEd25519Pair(network, data[1:65], data[65:97])
	}

	return nil, fmt.Errorf("%w: no known layout for %d bytes", ErrMalformedBinary, len(data))
}

// newEccCompactPair 从标量与点字节构造 EccCompact 密钥对
func newEccCompactPair(network Network, scalar, point []byte) (*KeyPair, error) {
	priv, err := unmarshalEccCompactPrivateKey(scalar, point)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBinary, err)
	}
	return &KeyPair{Network: network, Priv: priv, Pub: priv.GetPublic()}, nil
}

// newEd25519Pair 从私钥与公钥字节构造 Ed25519 密钥对
func newEd25519Pair(network Network, secret, public []byte) (*KeyPair, error) {
	priv, err := UnmarshalEd25519PrivateKey(secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBinary, err)
	}
	pub, err := UnmarshalEd25519PublicKey(public)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBinary, err)
	}
	return &KeyPair{Network: network, Priv: priv, Pub: pub}, nil
}

// ============================================================================
//                              公钥序列化
// ============================================================================

// PubKeyToBin 将公钥序列化为二进制（Tag || 32 字节）
//
// EccCompact 公钥必须满足紧凑表示，否则返回 ErrNotCompact，
// 调用方应改用紧凑的密钥。
func PubKeyToBin(network Network, pub PublicKey) ([]byte, error) {
	if pub == nil {
		return nil, ErrNilPublicKey
	}

	tag := makeTag(network, pub.Type())

	switch k := pub.(type) {
	case *EccCompactPublicKey:
		point, err := k.CompactRaw()
		if err != nil {
			return nil, err
		}
		out := make([]byte, 0, pubKeyBinSize)
		out = append(out, tag)
		out = append(out, point...)
		return out, nil

	case *Ed25519PublicKey:
		raw, err := k.Raw()
		if err != nil {
			return nil, err
		}
		out := make([]byte, 0, pubKeyBinSize)
		out = append(out, tag)
		out = append(out, raw...)
		return out, nil

	default:
		return nil, ErrBadKeyType
	}
}

// PubKeyFromBin 从二进制反序列化公钥
//
// 解码出的网络标识与 expected 不一致时返回 *BadNetworkError。
// EccCompact 的 32 字节紧凑点会重建为完整公钥点。
func PubKeyFromBin(expected Network, data []byte) (PublicKey, error) {
	if len(data) != pubKeyBinSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformedBinary, pubKeyBinSize, len(data))
	}

	network, keyType, err := splitTag(data[0])
	if err != nil {
		return nil, err
	}
	if network != expected {
		return nil, &BadNetworkError{Actual: network, Expected: expected}
	}

	switch keyType {
	case KeyTypeEccCompact:
		return unmarshalEccCompactPublicKey(data[1:])
	case KeyTypeEd25519:
		return UnmarshalEd25519PublicKey(data[1:])
	default:
		return nil, ErrBadKeyType
	}
}
