package netkey

import "testing"

// TestFacadeRoundTrip 测试根包入口的基本流程
func TestFacadeRoundTrip(t *testing.T) {
	pair, err := GenerateKeyPair(Mainnet, KeyTypeEd25519)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	bin, err := KeysToBin(pair)
	if err != nil {
		t.Fatalf("KeysToBin: %v", err)
	}
	got, err := KeysFromBin(bin)
	if err != nil {
		t.Fatalf("KeysFromBin: %v", err)
	}
	if !got.Equals(pair) {
		t.Fatal("round-tripped pair differs")
	}

	addr, err := PubKeyToB58(Mainnet, pair.Pub)
	if err != nil {
		t.Fatalf("PubKeyToB58: %v", err)
	}
	pub, err := B58ToPubKey(Mainnet, addr)
	if err != nil {
		t.Fatalf("B58ToPubKey: %v", err)
	}
	if !pub.Equals(pair.Pub) {
		t.Fatal("decoded public key differs")
	}

	signer, err := NewSigner(pair.Priv)
	if err != nil {
		t.Fatalf("NewSigner: %v", err)
	}
	sig, err := signer.Sign([]byte("hello"))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	ok, err := VerifySignature(pub, []byte("hello"), sig)
	if err != nil {
		t.Fatalf("VerifySignature: %v", err)
	}
	if !ok {
		t.Fatal("valid signature rejected")
	}
}
