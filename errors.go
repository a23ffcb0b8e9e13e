package netkey

import "github.com/dep2p/go-netkey/pkg/lib/crypto"

// ════════════════════════════════════════════════════════════════════════════
//                              错误再导出
// ════════════════════════════════════════════════════════════════════════════

// 密钥与编码错误
var (
	ErrBadKeyType        = crypto.ErrBadKeyType
	ErrBadNetwork        = crypto.ErrBadNetwork
	ErrNilPrivateKey     = crypto.ErrNilPrivateKey
	ErrNilPublicKey      = crypto.ErrNilPublicKey
	ErrInvalidKeySize    = crypto.ErrInvalidKeySize
	ErrInvalidPublicKey  = crypto.ErrInvalidPublicKey
	ErrInvalidPrivateKey = crypto.ErrInvalidPrivateKey
	ErrKeyTypeMismatch   = crypto.ErrKeyTypeMismatch
	ErrBadChecksum       = crypto.ErrBadChecksum
	ErrNotCompact        = crypto.ErrNotCompact
	ErrMalformedBinary   = crypto.ErrMalformedBinary
)

// 密钥存储错误
var (
	ErrKeyNotFound      = crypto.ErrKeyNotFound
	ErrKeyExists        = crypto.ErrKeyExists
	ErrInvalidKeyFile   = crypto.ErrInvalidKeyFile
	ErrInvalidPassword  = crypto.ErrInvalidPassword
	ErrDecryptionFailed = crypto.ErrDecryptionFailed
)
