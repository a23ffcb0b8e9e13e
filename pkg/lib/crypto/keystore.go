package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/argon2"
)

// ============================================================================
//                              密钥文件格式
// ============================================================================

// 密钥文件格式：
//
//   ┌────────────────────────────────────────────────────────────┐
//   │                    密钥文件                                 │
//   ├────────────────────────────────────────────────────────────┤
//   │  Magic:     "NETKEY" (6 bytes)                             │
//   │  Version:   uint8                                          │
//   │  Encrypted: uint8 (0=否, 1=是)                             │
//   │  Data:      KeysToBin 字节或其加密形式                      │
//   └────────────────────────────────────────────────────────────┘
//
//   网络与密钥类型由 KeysToBin 的标签字节自描述，文件头不再重复。
//
//   加密数据格式：
//   ┌────────────────────────────────────────────────────────────┐
//   │  Salt:       16 bytes                                      │
//   │  Nonce:      12 bytes                                      │
//   │  Ciphertext: 变长（AES-GCM 加密）                          │
//   └────────────────────────────────────────────────────────────┘

const (
	keyFileMagic   = "NETKEY"
	keyFileVersion = 1

	// 加密参数
	saltSize  = 16
	nonceSize = 12

	// Argon2 参数
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4
	argon2KeyLen  = 32

	// 已解码密钥对的缓存容量
	keystoreCacheSize = 32
)

// ============================================================================
//                              Keystore 接口
// ============================================================================

// Keystore 密钥对存储接口
type Keystore interface {
	// Has 检查是否存在指定 ID 的密钥对
	Has(id string) (bool, error)

	// Put 存储密钥对
	Put(id string, pair *KeyPair) error

	// Get 获取密钥对
	Get(id string) (*KeyPair, error)

	// Delete 删除密钥对
	Delete(id string) error

	// List 列出所有密钥对 ID
	List() ([]string, error)
}

// ============================================================================
//                              文件系统密钥存储
// ============================================================================

// FSKeystore 基于文件系统的密钥对存储
//
// 文件内容是 KeysToBin 的输出（可选口令加密），读回经 KeysFromBin
// 还原。已解码的密钥对经 LRU 缓存，重复 Get 不触发重复解密。
type FSKeystore struct {
	dir      string
	password []byte // 可选：用于加密存储
	cache    *lru.Cache[string, *KeyPair]
}

// NewFSKeystore 创建文件系统密钥存储
//
// 参数：
//   - dir: 存储目录
//   - password: 加密口令（为空则明文存储）
func NewFSKeystore(dir string, password []byte) (*FSKeystore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	cache, err := lru.New[string, *KeyPair](keystoreCacheSize)
	if err != nil {
		return nil, err
	}

	return &FSKeystore{
		dir:      dir,
		password: password,
		cache:    cache,
	}, nil
}

// Has 检查是否存在指定 ID 的密钥对
func (ks *FSKeystore) Has(id string) (bool, error) {
	if ks.cache.Contains(id) {
		return true, nil
	}
	_, err := os.Stat(ks.keyPath(id))
	if os.IsNotExist(err) {
		return false, nil
	}
	return err == nil, err
}

// Put 存储密钥对
func (ks *FSKeystore) Put(id string, pair *KeyPair) error {
	exists, err := ks.Has(id)
	if err != nil {
		return err
	}
	if exists {
		return ErrKeyExists
	}

	data, err := ks.encodePair(pair)
	if err != nil {
		return err
	}

	if err := os.WriteFile(ks.keyPath(id), data, 0600); err != nil {
		return err
	}
	ks.cache.Add(id, pair)
	return nil
}

// Get 获取密钥对
func (ks *FSKeystore) Get(id string) (*KeyPair, error) {
	if pair, ok := ks.cache.Get(id); ok {
		return pair, nil
	}

	data, err := os.ReadFile(ks.keyPath(id))
	if os.IsNotExist(err) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}

	pair, err := ks.decodePair(data)
	if err != nil {
		return nil, err
	}
	ks.cache.Add(id, pair)
	return pair, nil
}

// Delete 删除密钥对
func (ks *FSKeystore) Delete(id string) error {
	ks.cache.Remove(id)
	err := os.Remove(ks.keyPath(id))
	if os.IsNotExist(err) {
		return ErrKeyNotFound
	}
	return err
}

// List 列出所有密钥对 ID
func (ks *FSKeystore) List() ([]string, error) {
	entries, err := os.ReadDir(ks.dir)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".key" {
			id := entry.Name()[:len(entry.Name())-4] // 移除 .key 后缀
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Generate 生成并存储新的密钥对
//
// 参数：
//   - network: 网络标识
//   - keyType: 密钥类型
//
// 返回：
//   - string: 自动分配的密钥 ID（UUID）
//   - *KeyPair: 生成的密钥对
func (ks *FSKeystore) Generate(network Network, keyType KeyType) (string, *KeyPair, error) {
	pair, err := GenerateKeyPair(network, keyType)
	if err != nil {
		return "", nil, err
	}

	id := uuid.New().String()
	if err := ks.Put(id, pair); err != nil {
		return "", nil, err
	}
	return id, pair, nil
}

// keyPath 返回密钥文件路径
func (ks *FSKeystore) keyPath(id string) string {
	return filepath.Join(ks.dir, id+".key")
}

// encodePair 编码密钥对（可选加密）
func (ks *FSKeystore) encodePair(pair *KeyPair) ([]byte, error) {
	raw, err := KeysToBin(pair)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(keyFileMagic)
	buf.WriteByte(keyFileVersion)

	if len(ks.password) > 0 {
		buf.WriteByte(1) // encrypted = true

		encrypted, err := encryptData(raw, ks.password)
		if err != nil {
			return nil, err
		}
		buf.Write(encrypted)
	} else {
		buf.WriteByte(0) // encrypted = false
		buf.Write(raw)
	}

	return buf.Bytes(), nil
}

// decodePair 解码密钥对
func (ks *FSKeystore) decodePair(data []byte) (*KeyPair, error) {
	if len(data) < len(keyFileMagic)+2 {
		return nil, ErrInvalidKeyFile
	}

	if string(data[:len(keyFileMagic)]) != keyFileMagic {
		return nil, ErrInvalidKeyFile
	}

	offset := len(keyFileMagic)

	version := data[offset]
	if version != keyFileVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidKeyFile, version)
	}
	offset++

	encrypted := data[offset] == 1
	offset++

	keyData := data[offset:]

	if encrypted {
		if len(ks.password) == 0 {
			return nil, ErrInvalidPassword
		}
		var err error
		keyData, err = decryptData(keyData, ks.password)
		if err != nil {
			return nil, err
		}
	}

	return KeysFromBin(keyData)
}

// ============================================================================
//                              加密辅助函数
// ============================================================================

// encryptData 使用 AES-GCM 加密数据
func encryptData(plaintext, password []byte) ([]byte, error) {
	// 生成随机盐
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}

	// 派生密钥
	key := argon2.IDKey(password, salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	// 生成随机 nonce
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)

	// 组装结果：salt || nonce || ciphertext
	result := make([]byte, saltSize+nonceSize+len(ciphertext))
	copy(result[:saltSize], salt)
	copy(result[saltSize:saltSize+nonceSize], nonce)
	copy(result[saltSize+nonceSize:], ciphertext)

	return result, nil
}

// decryptData 使用 AES-GCM 解密数据
func decryptData(data, password []byte) ([]byte, error) {
	if len(data) < saltSize+nonceSize {
		return nil, ErrDecryptionFailed
	}

	salt := data[:saltSize]
	nonce := data[saltSize : saltSize+nonceSize]
	ciphertext := data[saltSize+nonceSize:]

	key := argon2.IDKey(password, salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

// ============================================================================
//                              内存密钥存储
// ============================================================================

// MemKeystore 内存密钥对存储（用于测试）
type MemKeystore struct {
	pairs map[string]*KeyPair
}

// NewMemKeystore 创建内存密钥存储
func NewMemKeystore() *MemKeystore {
	return &MemKeystore{
		pairs: make(map[string]*KeyPair),
	}
}

// Has 检查是否存在指定 ID 的密钥对
func (ks *MemKeystore) Has(id string) (bool, error) {
	_, ok := ks.pairs[id]
	return ok, nil
}

// Put 存储密钥对
func (ks *MemKeystore) Put(id string, pair *KeyPair) error {
	if _, ok := ks.pairs[id]; ok {
		return ErrKeyExists
	}
	ks.pairs[id] = pair
	return nil
}

// Get 获取密钥对
func (ks *MemKeystore) Get(id string) (*KeyPair, error) {
	pair, ok := ks.pairs[id]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return pair, nil
}

// Delete 删除密钥对
func (ks *MemKeystore) Delete(id string) error {
	if _, ok := ks.pairs[id]; !ok {
		return ErrKeyNotFound
	}
	delete(ks.pairs, id)
	return nil
}

// List 列出所有密钥对 ID
func (ks *MemKeystore) List() ([]string, error) {
	ids := make([]string, 0, len(ks.pairs))
	for id := range ks.pairs {
		ids = append(ids, id)
	}
	return ids, nil
}
