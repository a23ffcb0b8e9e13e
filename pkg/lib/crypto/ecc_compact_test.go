package crypto

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"
)

// TestEccCompactGenerate 测试生成的密钥总是紧凑的
func TestEccCompactGenerate(t *testing.T) {
	for i := 0; i < 8; i++ {
		priv, pub, err := GenerateEccCompactKey(rand.Reader)
		if err != nil {
			t.Fatalf("GenerateEccCompactKey: %v", err)
		}

		ek := pub.(*EccCompactPublicKey)
		if !ek.IsCompact() {
			t.Fatal("generated public key is not compact")
		}
		if !priv.GetPublic().Equals(pub) {
			t.Fatal("GetPublic does not match generated public key")
		}
	}
}

// TestEccCompactPointRecovery 测试紧凑点的确定性重建
func TestEccCompactPointRecovery(t *testing.T) {
	_, pub, err := GenerateEccCompactKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateEccCompactKey: %v", err)
	}
	ek := pub.(*EccCompactPublicKey)

	compact, err := ek.CompactRaw()
	if err != nil {
		t.Fatalf("CompactRaw: %v", err)
	}
	if len(compact) != EccCompactPointSize {
		t.Fatalf("compact point size = %d, want %d", len(compact), EccCompactPointSize)
	}

	recovered, err := unmarshalEccCompactPublicKey(compact)
	if err != nil {
		t.Fatalf("unmarshalEccCompactPublicKey: %v", err)
	}
	if !recovered.Equals(pub) {
		t.Fatal("recovered point differs from original")
	}
}

// TestEccCompactNotCompact 测试非紧凑点的拒绝
func TestEccCompactNotCompact(t *testing.T) {
	pub := generateNonCompactKey(t)

	if pub.IsCompact() {
		t.Fatal("expected a non-compact key")
	}
	if _, err := pub.CompactRaw(); err != ErrNotCompact {
		t.Fatalf("CompactRaw error = %v, want ErrNotCompact", err)
	}
}

// TestEccCompactSignVerify 测试签名与验证
func TestEccCompactSignVerify(t *testing.T) {
	priv, pub, err := GenerateEccCompactKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateEccCompactKey: %v", err)
	}

	msg := []byte("the quick brown fox")
	sig, err := priv.Sign(msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if len(sig) != EccCompactSignatureSize {
		t.Fatalf("signature size = %d, want %d", len(sig), EccCompactSignatureSize)
	}

	ok, err := pub.Verify(msg, sig)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("valid signature rejected")
	}

	ok, err = pub.Verify([]byte("another message"), sig)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Fatal("signature accepted for wrong message")
	}

	// 截断的签名直接拒绝
	ok, err = pub.Verify(msg, sig[:32])
	if err != nil || ok {
		t.Fatalf("truncated signature: ok=%v err=%v", ok, err)
	}
}

// TestEccCompactSharedSecret 测试 ECDH 交换律
func TestEccCompactSharedSecret(t *testing.T) {
	privA, pubA, err := GenerateEccCompactKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateEccCompactKey: %v", err)
	}
	privB, pubB, err := GenerateEccCompactKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateEccCompactKey: %v", err)
	}
	_, pubC, err := GenerateEccCompactKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateEccCompactKey: %v", err)
	}

	ab, err := privA.SharedSecret(pubB)
	if err != nil {
		t.Fatalf("SharedSecret: %v", err)
	}
	ba, err := privB.SharedSecret(pubA)
	if err != nil {
		t.Fatalf("SharedSecret: %v", err)
	}
	if !bytes.Equal(ab, ba) {
		t.Fatal("shared secrets do not commute")
	}

	ac, err := privA.SharedSecret(pubC)
	if err != nil {
		t.Fatalf("SharedSecret: %v", err)
	}
	if bytes.Equal(ab, ac) {
		t.Fatal("unrelated key produced the same shared secret")
	}
}

// TestUnmarshalEccCompactPrivateKey 测试标量长度校验
func TestUnmarshalEccCompactPrivateKey(t *testing.T) {
	priv, _, err := GenerateEccCompactKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateEccCompactKey: %v", err)
	}
	point, err := priv.GetPublic().Raw()
	if err != nil {
		t.Fatalf("Raw: %v", err)
	}
	scalar, err := priv.Raw()
	if err != nil {
		t.Fatalf("Raw: %v", err)
	}

	got, err := unmarshalEccCompactPrivateKey(scalar, point)
	if err != nil {
		t.Fatalf("unmarshalEccCompactPrivateKey: %v", err)
	}
	if !got.Equals(priv) {
		t.Fatal("unmarshalled key differs from original")
	}

	// 30 字节标量无效
	if _, err := unmarshalEccCompactPrivateKey(make([]byte, 30), point); err == nil {
		t.Fatal("expected error for 30-byte scalar")
	}
	// 截断的公钥点无效
	if _, err := unmarshalEccCompactPrivateKey(scalar, point[:64]); err == nil {
		t.Fatal("expected error for truncated point")
	}
}

// generateNonCompactKey 生成一个公钥点不满足紧凑表示的 P-256 密钥
func generateNonCompactKey(t *testing.T) *EccCompactPublicKey {
	t.Helper()
	for {
		priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		if err != nil {
			t.Fatalf("ecdsa.GenerateKey: %v", err)
		}
		pub := &EccCompactPublicKey{k: &priv.PublicKey}
		if !pub.IsCompact() {
			return pub
		}
	}
}
