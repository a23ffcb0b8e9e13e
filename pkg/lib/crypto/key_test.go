package crypto

import (
	"crypto/rand"
	"testing"
)

// TestKeyType 测试密钥类型名称
func TestKeyType(t *testing.T) {
	tests := []struct {
		kt   KeyType
		want string
	}{
		{KeyTypeEccCompact, "EccCompact"},
		{KeyTypeEd25519, "Ed25519"},
		{KeyType(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kt.String(); got != tt.want {
			t.Errorf("KeyType(%d).String() = %q, want %q", tt.kt, got, tt.want)
		}
	}
}

// TestKeyTypeValues 测试密钥类型值与标签半字节对齐
func TestKeyTypeValues(t *testing.T) {
	if KeyTypeEccCompact != 0 {
		t.Errorf("KeyTypeEccCompact = %d, want 0", KeyTypeEccCompact)
	}
	if KeyTypeEd25519 != 1 {
		t.Errorf("KeyTypeEd25519 = %d, want 1", KeyTypeEd25519)
	}
}

// TestGenerateKeyPair 测试密钥对生成
func TestGenerateKeyPair(t *testing.T) {
	tests := []struct {
		name    string
		network Network
		keyType KeyType
		wantErr bool
	}{
		{"EccCompact/mainnet", Mainnet, KeyTypeEccCompact, false},
		{"EccCompact/testnet", Testnet, KeyTypeEccCompact, false},
		{"Ed25519/mainnet", Mainnet, KeyTypeEd25519, false},
		{"Ed25519/testnet", Testnet, KeyTypeEd25519, false},
		{"unknown", Mainnet, KeyType(99), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := GenerateKeyPair(tt.network, tt.keyType)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("GenerateKeyPair: %v", err)
			}

			if pair.Network != tt.network {
				t.Errorf("Network = %v, want %v", pair.Network, tt.network)
			}
			if pair.Priv.Type() != tt.keyType {
				t.Errorf("Priv.Type() = %v, want %v", pair.Priv.Type(), tt.keyType)
			}
			if pair.Pub.Type() != tt.keyType {
				t.Errorf("Pub.Type() = %v, want %v", pair.Pub.Type(), tt.keyType)
			}
			if !pair.Priv.GetPublic().Equals(pair.Pub) {
				t.Error("Pub does not match Priv.GetPublic()")
			}
		})
	}
}

// TestKeyEqual 测试密钥比较
func TestKeyEqual(t *testing.T) {
	for _, kt := range KeyTypes {
		pair1, err := GenerateKeyPairWithReader(Mainnet, kt, rand.Reader)
		if err != nil {
			t.Fatalf("GenerateKeyPairWithReader(%v): %v", kt, err)
		}
		pair2, err := GenerateKeyPairWithReader(Mainnet, kt, rand.Reader)
		if err != nil {
			t.Fatalf("GenerateKeyPairWithReader(%v): %v", kt, err)
		}

		if !KeyEqual(pair1.Pub, pair1.Pub) {
			t.Errorf("%v: key not equal to itself", kt)
		}
		if KeyEqual(pair1.Pub, pair2.Pub) {
			t.Errorf("%v: independent keys compare equal", kt)
		}
		if KeyEqual(pair1.Priv, pair2.Priv) {
			t.Errorf("%v: independent private keys compare equal", kt)
		}
	}

	// 类型不同的密钥永不相等
	ecc, _ := GenerateKeyPair(Mainnet, KeyTypeEccCompact)
	ed, _ := GenerateKeyPair(Mainnet, KeyTypeEd25519)
	if KeyEqual(ecc.Pub, ed.Pub) {
		t.Error("keys of different types compare equal")
	}
}

// TestKeyPairEquals 测试密钥对比较
func TestKeyPairEquals(t *testing.T) {
	pair, err := GenerateKeyPair(Testnet, KeyTypeEd25519)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	other, err := GenerateKeyPair(Testnet, KeyTypeEd25519)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	if !pair.Equals(pair) {
		t.Error("pair not equal to itself")
	}
	if pair.Equals(other) {
		t.Error("independent pairs compare equal")
	}

	// 网络不同即不相等
	clone := &KeyPair{Network: Mainnet, Priv: pair.Priv, Pub: pair.Pub}
	if pair.Equals(clone) {
		t.Error("pairs with different networks compare equal")
	}
}
