package jpake

import (
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestRound1ResultTextRoundTrip(t *testing.T) {
	t.Parallel()

	s, err := NewSession("Alice")
	if err != nil {
		t.Fatal(err)
	}

	r1, err := s.Round1()
	if err != nil {
		t.Fatal(err)
	}

	text, err := r1.MarshalText()
	if err != nil {
		t.Fatal(err)
	}

	var decoded Round1Result
	if err := decoded.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "G1 round trips", r1.G1, decoded.G1)
	assert.Equal(t, "G2 round trips", r1.G2, decoded.G2)
	assert.Equal(t, "String matches MarshalText", string(text), r1.String())
}

func TestRound2ResultWireRoundTrip(t *testing.T) {
	t.Parallel()

	alice, err := NewSession("Alice")
	if err != nil {
		t.Fatal(err)
	}

	bob, err := NewSession("Bob")
	if err != nil {
		t.Fatal(err)
	}

	s, err := DeriveS("secretPassword123")
	if err != nil {
		t.Fatal(err)
	}

	aliceR1, err := alice.Round1()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := bob.Round1(); err != nil {
		t.Fatal(err)
	}

	bobR2, err := bob.Round2(aliceR1, s[:], "Alice")
	if err != nil {
		t.Fatal(err)
	}

	b, err := bobR2.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "wire size", round2WireSize, len(b))

	var decoded Round2Result
	if err := decoded.UnmarshalBinary(b); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "A round trips", bobR2.A, decoded.A)
	assert.Equal(t, "ZKPx2s round trips", bobR2.ZKPx2s, decoded.ZKPx2s)
}

func TestUnmarshalBinaryRejectsWrongLength(t *testing.T) {
	t.Parallel()

	var r1 Round1Result
	if err := r1.UnmarshalBinary(make([]byte, 10)); !IsKind(err, InvalidArgument) {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}

	var r2 Round2Result
	if err := r2.UnmarshalBinary(make([]byte, 10)); !IsKind(err, InvalidArgument) {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestUnmarshalTextRejectsInvalidBase58(t *testing.T) {
	t.Parallel()

	var r1 Round1Result
	if err := r1.UnmarshalText([]byte("not-valid-base58-0OIl")); !IsKind(err, InvalidArgument) {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}

	var r2 Round2Result
	if err := r2.UnmarshalText([]byte("not-valid-base58-0OIl")); !IsKind(err, InvalidArgument) {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}
