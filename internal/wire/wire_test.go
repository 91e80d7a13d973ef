package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestEntryRoundTrip(t *testing.T) {
	payload := []byte(`{"status":200}`)
	b := EncodeEntry(1735689600, payload)

	at, got, err := DecodeEntry(b)
	if err != nil {
		t.Fatalf("DecodeEntry: %v", err)
	}
	if at != 1735689600 {
		t.Fatalf("fetchedAt = %d", at)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload = %q", got)
	}
}

func TestEntryEmptyPayload(t *testing.T) {
	b := EncodeEntry(0, nil)
	at, got, err := DecodeEntry(b)
	if err != nil {
		t.Fatalf("DecodeEntry: %v", err)
	}
	if at != 0 || len(got) != 0 {
		t.Fatalf("at=%d payload=%q", at, got)
	}
}

// DecodeEntry must reject trailing bytes (strict framing).
func TestDecodeEntryRejectsTrailing(t *testing.T) {
	b := EncodeEntry(7, []byte("x"))
	b = append(b, 0xDE, 0xAD) // trailing junk
	if _, _, err := DecodeEntry(b); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("DecodeEntry should reject trailing bytes, got %v", err)
	}
}

func TestDecodeEntryRejectsCorrupt(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("short"),
		[]byte("not-wire-format-but-long-enough"),
		func() []byte { // wrong magic
			b := EncodeEntry(1, []byte("x"))
			b[0] = 'X'
			return b
		}(),
		func() []byte { // wrong version
			b := EncodeEntry(1, []byte("x"))
			b[4] = 99
			return b
		}(),
		func() []byte { // truncated payload
			b := EncodeEntry(1, []byte("hello"))
			return b[:len(b)-2]
		}(),
	}
	for i, b := range cases {
		if _, _, err := DecodeEntry(b); !errors.Is(err, ErrCorrupt) {
			t.Fatalf("case %d: expected ErrCorrupt, got %v", i, err)
		}
	}
}
