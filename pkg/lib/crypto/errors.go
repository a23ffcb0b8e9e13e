package crypto

import (
	"errors"
	"fmt"
)

// ============================================================================
//                              错误定义
// ============================================================================

// 密钥相关错误
var (
	// ErrBadKeyType 不支持的密钥类型
	ErrBadKeyType = errors.New("invalid or unsupported key type")

	// ErrBadNetwork 网络标识不匹配
	ErrBadNetwork = errors.New("network mismatch")

	// ErrNilPrivateKey 私钥为空
	ErrNilPrivateKey = errors.New("nil private key")

	// ErrNilPublicKey 公钥为空
	ErrNilPublicKey = errors.New("nil public key")

	// ErrInvalidKeySize 密钥大小无效
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidPublicKey 公钥无效
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidPrivateKey 私钥无效
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrKeyTypeMismatch 密钥协商双方的密钥类型不一致
	ErrKeyTypeMismatch = errors.New("key type mismatch")
)

// 编码相关错误
var (
	// ErrBadChecksum Base58Check 校验和不匹配
	ErrBadChecksum = errors.New("bad checksum")

	// ErrNotCompact 公钥点不满足紧凑表示
	ErrNotCompact = errors.New("public key not compact")

	// ErrMalformedBinary 字节布局不匹配任何已知格式
	ErrMalformedBinary = errors.New("malformed key binary")
)

// 密钥存储相关错误
var (
	// ErrKeyNotFound 密钥未找到
	ErrKeyNotFound = errors.New("key not found")

	// ErrKeyExists 密钥已存在
	ErrKeyExists = errors.New("key already exists")

	// ErrInvalidKeyFile 密钥文件格式无效
	ErrInvalidKeyFile = errors.New("invalid key file")

	// ErrInvalidPassword 密码无效或缺失
	ErrInvalidPassword = errors.New("invalid password")

	// ErrDecryptionFailed 解密失败
	ErrDecryptionFailed = errors.New("decryption failed")
)

// ============================================================================
//                              结构化错误
// ============================================================================

// BadNetworkError 解码出的网络标识与调用方断言的网络不一致
//
// 携带实际解码出的网络标识，便于调用方向用户提示。
// errors.Is(err, ErrBadNetwork) 对此错误成立。
type BadNetworkError struct {
	// Actual 字节中实际携带的网络标识
	Actual Network

	// Expected 调用方断言的网络标识
	Expected Network
}

// Error 实现 error 接口
func (e *BadNetworkError) Error() string {
	return fmt.Sprintf("network mismatch: got %s, want %s", e.Actual, e.Expected)
}

// Unwrap 支持 errors.Is(err, ErrBadNetwork)
func (e *BadNetworkError) Unwrap() error {
	return ErrBadNetwork
}
