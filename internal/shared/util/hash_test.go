package util

import "testing"

func TestSum256HexStableAndHex(t *testing.T) {
	data := []byte("%PDF-1.4 sample")
	got := Sum256Hex(data)
	if got != Sum256Hex(data) {
		t.Fatalf("expected stable hash, got %s", got)
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
}

func TestHashKeyDistinguishesInputs(t *testing.T) {
	if HashKey("batch-1") == HashKey("batch-2") {
		t.Fatalf("expected distinct hashes for distinct keys")
	}
}
