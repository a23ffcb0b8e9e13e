// Package lib 包含基础设施工具库
//
// 本目录包含与具体业务无关的通用工具库：
//
//   - crypto: 密钥、二进制编码、Base58 地址、签名与密钥协商、密钥存储
//   - log: 日志封装
//
// # 与 pkg/ 其他目录的关系
//
//   - types/: 公共值类型定义（如 Multiaddr）
//   - lib/: 基础设施工具库（本目录）
//
// # 使用示例
//
//	import (
//	    "github.com/dep2p/go-netkey/pkg/lib/crypto"
//	    "github.com/dep2p/go-netkey/pkg/lib/log"
//	)
package lib
