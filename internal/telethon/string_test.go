package telethon

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/nazar220160/TGConvertor/internal/session"
)

var testKey = bytes.Repeat([]byte{'c'}, session.AuthKeySize)

func TestStringRoundTripIPv4(t *testing.T) {
	rec, err := session.New(2, testKey, session.WithEndpoint("149.154.167.51", 443))
	if err != nil {
		t.Fatal(err)
	}

	token, err := EncodeString(rec)
	if err != nil {
		t.Fatalf("EncodeString failed: %v", err)
	}
	if !strings.HasPrefix(token, stringVersion) {
		t.Errorf("token %q should start with version %q", token[:4], stringVersion)
	}

	got, err := FromString(token)
	if err != nil {
		t.Fatalf("FromString failed: %v", err)
	}
	if got.DCID != 2 || got.ServerAddress != "149.154.167.51" || got.Port != 443 {
		t.Errorf("endpoint = dc %d %s:%d, want dc 2 149.154.167.51:443",
			got.DCID, got.ServerAddress, got.Port)
	}
	if string(got.AuthKey) != string(testKey) {
		t.Error("auth key corrupted in round trip")
	}
}

func TestStringRoundTripIPv6(t *testing.T) {
	rec, err := session.New(2, testKey, session.WithEndpoint("2001:b28:f23d:f001::a", 443))
	if err != nil {
		t.Fatal(err)
	}
	token, err := EncodeString(rec)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := base64.URLEncoding.DecodeString(token[1:])
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != ipv6PayloadSize {
		t.Fatalf("decoded payload = %d bytes, want %d", len(raw), ipv6PayloadSize)
	}
	got, err := FromString(token)
	if err != nil {
		t.Fatal(err)
	}
	if got.ServerAddress != "2001:b28:f23d:f001::a" {
		t.Errorf("server address = %q, want 2001:b28:f23d:f001::a", got.ServerAddress)
	}
}

func TestStringStableAcrossRoundTrip(t *testing.T) {
	rec, err := session.New(2, testKey, session.WithEndpoint("149.154.167.91", 443))
	if err != nil {
		t.Fatal(err)
	}
	token, err := EncodeString(rec)
	if err != nil {
		t.Fatal(err)
	}
	got, err := FromString(token)
	if err != nil {
		t.Fatal(err)
	}
	again, err := EncodeString(got)
	if err != nil {
		t.Fatal(err)
	}
	if token != again {
		t.Errorf("re-encoded token differs:\n%s\n%s", token, again)
	}
}

func TestEncodeResolvesDefaultEndpoint(t *testing.T) {
	// No explicit endpoint: encode must embed the static production default
	// for dc 2.
	rec, err := session.New(2, testKey)
	if err != nil {
		t.Fatal(err)
	}
	token, err := EncodeString(rec)
	if err != nil {
		t.Fatalf("EncodeString failed: %v", err)
	}
	got, err := FromString(token)
	if err != nil {
		t.Fatal(err)
	}
	if got.ServerAddress != "149.154.167.51" || got.Port != 443 {
		t.Errorf("default endpoint = %s:%d, want 149.154.167.51:443",
			got.ServerAddress, got.Port)
	}
}

func TestEncodeResolvesTestEndpoint(t *testing.T) {
	rec, err := session.New(1, testKey, session.WithTestMode(true))
	if err != nil {
		t.Fatal(err)
	}
	token, err := EncodeString(rec)
	if err != nil {
		t.Fatal(err)
	}
	got, err := FromString(token)
	if err != nil {
		t.Fatal(err)
	}
	if got.ServerAddress != "149.154.175.10" || got.Port != 80 {
		t.Errorf("test endpoint = %s:%d, want 149.154.175.10:80",
			got.ServerAddress, got.Port)
	}
}

func TestStringRejectsUnknownLength(t *testing.T) {
	token := stringVersion + base64.URLEncoding.EncodeToString(make([]byte, 100))
	if _, err := FromString(token); err == nil || !session.IsValidation(err) {
		t.Fatalf("error = %v, want validation error", err)
	}
}

func TestStringRejectsTooShort(t *testing.T) {
	if _, err := FromString("1"); err == nil || !session.IsValidation(err) {
		t.Fatalf("error = %v, want validation error", err)
	}
}
