// Package main 提供 netkey 命令行入口
//
// 子命令:
//
//	netkey generate -net mainnet -type ed25519 -keystore ./keys
//	netkey list     -keystore ./keys
//	netkey info     -keystore ./keys -id <id>
//	netkey addr     -b58 <address>
//	netkey sign     -keystore ./keys -id <id> -in message.bin
//	netkey verify   -b58 <address> -in message.bin -sig <b58sig>
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dep2p/go-netkey/pkg/lib/crypto"
	"github.com/dep2p/go-netkey/pkg/lib/log"
)

var logger = log.Logger("netkey/cmd")

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		printHelp()
		return nil
	}

	switch args[0] {
	case "generate":
		return cmdGenerate(args[1:])
	case "list":
		return cmdList(args[1:])
	case "info":
		return cmdInfo(args[1:])
	case "addr":
		return cmdAddr(args[1:])
	case "sign":
		return cmdSign(args[1:])
	case "verify":
		return cmdVerify(args[1:])
	case "help", "-h", "--help":
		printHelp()
		return nil
	default:
		printHelp()
		return fmt.Errorf("未知子命令: %s", args[0])
	}
}

func printHelp() {
	fmt.Println("netkey - 密钥与地址管理工具")
	fmt.Println()
	fmt.Println("子命令:")
	fmt.Println("  generate  生成新密钥对并写入密钥库")
	fmt.Println("  list      列出密钥库中的密钥 ID")
	fmt.Println("  info      显示密钥对信息")
	fmt.Println("  addr      解析 Base58 地址")
	fmt.Println("  sign      使用密钥库中的私钥签名文件")
	fmt.Println("  verify    验证签名")
	fmt.Println()
	fmt.Println("使用 'netkey <子命令> -h' 查看各子命令的参数")
}

// openKeystore 打开密钥库目录
func openKeystore(dir, password string) (*crypto.FSKeystore, error) {
	var pw []byte
	if password != "" {
		pw = []byte(password)
	}
	return crypto.NewFSKeystore(dir, pw)
}

// ============================================================================
//                              generate
// ============================================================================

func cmdGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	netName := fs.String("net", "mainnet", "网络 (mainnet/testnet)")
	typeName := fs.String("type", "ed25519", "密钥类型 (ecc_compact/ed25519)")
	dir := fs.String("keystore", "./keys", "密钥库目录")
	password := fs.String("password", "", "加密口令（为空则明文存储）")
	if err := fs.Parse(args); err != nil {
		return err
	}

	network, err := crypto.ParseNetwork(*netName)
	if err != nil {
		return err
	}
	keyType, err := parseKeyType(*typeName)
	if err != nil {
		return err
	}

	ks, err := openKeystore(*dir, *password)
	if err != nil {
		return err
	}

	id, pair, err := ks.Generate(network, keyType)
	if err != nil {
		return err
	}
	logger.Info("密钥对已生成", "id", log.TruncateID(id, 8), "type", keyType, "network", network)

	addr, err := crypto.PubKeyToB58(network, pair.Pub)
	if err != nil {
		return err
	}

	fmt.Printf("ID:      %s\n", id)
	fmt.Printf("类型:    %s\n", keyType)
	fmt.Printf("网络:    %s\n", network)
	fmt.Printf("地址:    %s\n", addr)
	return nil
}

// ============================================================================
//                              list
// ============================================================================

func cmdList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	dir := fs.String("keystore", "./keys", "密钥库目录")
	password := fs.String("password", "", "加密口令")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ks, err := openKeystore(*dir, *password)
	if err != nil {
		return err
	}

	ids, err := ks.List()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Println("密钥库为空")
		return nil
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}

// ============================================================================
//                              info
// ============================================================================

func cmdInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	dir := fs.String("keystore", "./keys", "密钥库目录")
	password := fs.String("password", "", "加密口令")
	id := fs.String("id", "", "密钥 ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("必须指定 -id")
	}

	ks, err := openKeystore(*dir, *password)
	if err != nil {
		return err
	}

	pair, err := ks.Get(*id)
	if err != nil {
		return err
	}

	addr, err := crypto.PubKeyToB58(pair.Network, pair.Pub)
	if err != nil {
		return err
	}
	bin, err := crypto.PubKeyToBin(pair.Network, pair.Pub)
	if err != nil {
		return err
	}

	fmt.Printf("ID:        %s\n", *id)
	fmt.Printf("类型:      %s\n", pair.Pub.Type())
	fmt.Printf("网络:      %s\n", pair.Network)
	fmt.Printf("地址:      %s\n", addr)
	fmt.Printf("P2P 地址:  %s\n", crypto.ToP2PAddress(bin))
	return nil
}

// ============================================================================
//                              addr
// ============================================================================

func cmdAddr(args []string) error {
	fs := flag.NewFlagSet("addr", flag.ExitOnError)
	b58 := fs.String("b58", "", "Base58 地址")
	netName := fs.String("net", "mainnet", "期望网络 (mainnet/testnet)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *b58 == "" {
		return fmt.Errorf("必须指定 -b58")
	}

	network, err := crypto.ParseNetwork(*netName)
	if err != nil {
		return err
	}

	pub, err := crypto.B58ToPubKey(network, *b58)
	if err != nil {
		return err
	}
	bin, err := crypto.PubKeyToBin(network, pub)
	if err != nil {
		return err
	}

	fmt.Printf("类型:      %s\n", pub.Type())
	fmt.Printf("网络:      %s\n", network)
	fmt.Printf("P2P 地址:  %s\n", crypto.ToP2PAddress(bin))
	return nil
}

// ============================================================================
//                              sign / verify
// ============================================================================

func cmdSign(args []string) error {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	dir := fs.String("keystore", "./keys", "密钥库目录")
	password := fs.String("password", "", "加密口令")
	id := fs.String("id", "", "密钥 ID")
	in := fs.String("in", "", "待签名文件")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" || *in == "" {
		return fmt.Errorf("必须指定 -id 和 -in")
	}

	ks, err := openKeystore(*dir, *password)
	if err != nil {
		return err
	}
	pair, err := ks.Get(*id)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		return err
	}

	signer, err := crypto.NewSigner(pair.Priv)
	if err != nil {
		return err
	}
	sig, err := signer.Sign(data)
	if err != nil {
		return err
	}

	fmt.Println(crypto.BinToB58(sig))
	return nil
}

func cmdVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	b58 := fs.String("b58", "", "签名者的 Base58 地址")
	netName := fs.String("net", "mainnet", "期望网络 (mainnet/testnet)")
	in := fs.String("in", "", "被签名文件")
	sigB58 := fs.String("sig", "", "Base58 编码的签名")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *b58 == "" || *in == "" || *sigB58 == "" {
		return fmt.Errorf("必须指定 -b58、-in 和 -sig")
	}

	network, err := crypto.ParseNetwork(*netName)
	if err != nil {
		return err
	}
	pub, err := crypto.B58ToPubKey(network, *b58)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		return err
	}
	sig, err := crypto.B58ToBin(*sigB58)
	if err != nil {
		return err
	}

	ok, err := crypto.VerifySignature(pub, data, sig)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("签名验证失败")
	}
	fmt.Println("签名有效")
	return nil
}

// parseKeyType 解析密钥类型名称
func parseKeyType(name string) (crypto.KeyType, error) {
	switch name {
	case "ecc_compact":
		return crypto.KeyTypeEccCompact, nil
	case "ed25519":
		return crypto.KeyTypeEd25519, nil
	default:
		return 0, fmt.Errorf("%w: %q", crypto.ErrBadKeyType, name)
	}
}
