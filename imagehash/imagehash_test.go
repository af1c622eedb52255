package imagehash

import (
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	codec := NewCodec("test-secret")

	for _, path := range []string{"1.svg", "32.svg", "a-much-longer-file-name.svg"} {
		token, err := codec.Encode(path)
		if err != nil {
			t.Fatalf("Encode(%q): %v", path, err)
		}
		decoded, err := codec.Decode(token)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if decoded != path {
			t.Errorf("Round trip changed %q into %q", path, decoded)
		}
	}
}

func TestEncodeIsUniquePerCall(t *testing.T) {
	codec := NewCodec("test-secret")

	first, err := codec.Encode("7.svg")
	if err != nil {
		t.Fatal(err)
	}
	second, err := codec.Encode("7.svg")
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("Two encodings of the same path must differ (fresh IV per call)")
	}

	for _, token := range []string{first, second} {
		decoded, err := codec.Decode(token)
		if err != nil || decoded != "7.svg" {
			t.Errorf("Decode(%q) = %q, %v", token, decoded, err)
		}
	}
}

func TestDecodeRejectsMalformedTokens(t *testing.T) {
	codec := NewCodec("test-secret")

	for _, token := range []string{"", "!!!not-base64!!!", "c2hvcnQ", "a.b"} {
		if _, err := codec.Decode(token); err == nil {
			t.Errorf("Expected Decode(%q) to fail", token)
		}
	}
}
