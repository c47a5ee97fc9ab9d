package schnorr

import (
	"testing"

	"github.com/codahale/gubbins/assert"

	"github.com/jpake-go/jpake/internal/curve"
)

func TestProveAndVerify(t *testing.T) {
	t.Parallel()

	x, err := curve.RandomScalar()
	if err != nil {
		t.Fatal(err)
	}

	g := curve.G()
	gx := g.Mul(x)

	proof, err := Prove("alice", x, gx, g, []string{"session-1"})
	if err != nil {
		t.Fatal(err)
	}

	ok, err := Verify("alice", gx, proof, g, []string{"session-1"})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "valid proof verifies", true, ok)
}

func TestVerifyRejectsWrongUserID(t *testing.T) {
	t.Parallel()

	x, err := curve.RandomScalar()
	if err != nil {
		t.Fatal(err)
	}

	g := curve.G()
	gx := g.Mul(x)

	proof, err := Prove("alice", x, gx, g, nil)
	if err != nil {
		t.Fatal(err)
	}

	ok, err := Verify("bob", gx, proof, g, nil)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "proof bound to wrong userID fails", false, ok)
}

func TestVerifyRejectsWrongOtherInfo(t *testing.T) {
	t.Parallel()

	x, err := curve.RandomScalar()
	if err != nil {
		t.Fatal(err)
	}

	g := curve.G()
	gx := g.Mul(x)

	proof, err := Prove("alice", x, gx, g, []string{"t1"})
	if err != nil {
		t.Fatal(err)
	}

	ok, err := Verify("alice", gx, proof, g, []string{"t2"})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "proof bound to wrong otherInfo fails", false, ok)
}

func TestVerifyRejectsBitFlip(t *testing.T) {
	t.Parallel()

	x, err := curve.RandomScalar()
	if err != nil {
		t.Fatal(err)
	}

	g := curve.G()
	gx := g.Mul(x)

	proof, err := Prove("alice", x, gx, g, nil)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < ProofSize; i++ {
		tampered := proof
		tampered[i] ^= 0x01

		ok, _ := Verify("alice", gx, tampered, g, nil)
		if ok {
			t.Fatalf("bit flip at byte %d still verified", i)
		}
	}
}

func TestVerifyRejectsBadLengthPrefixes(t *testing.T) {
	t.Parallel()

	x, err := curve.RandomScalar()
	if err != nil {
		t.Fatal(err)
	}

	g := curve.G()
	gx := g.Mul(x)

	proof, err := Prove("alice", x, gx, g, nil)
	if err != nil {
		t.Fatal(err)
	}

	proof[0] = 32

	if _, err := Verify("alice", gx, proof, g, nil); err == nil {
		t.Fatal("expected an error for a bad VLen prefix")
	}
}

func TestParseProofRejectsWrongLength(t *testing.T) {
	t.Parallel()

	if _, err := ParseProof(make([]byte, ProofSize-1)); err == nil {
		t.Fatal("expected an error for a short proof")
	}
}

func TestChallengeRejectsOversizedUserID(t *testing.T) {
	t.Parallel()

	x, err := curve.RandomScalar()
	if err != nil {
		t.Fatal(err)
	}

	g := curve.G()
	gx := g.Mul(x)

	big := make([]byte, 256)
	for i := range big {
		big[i] = 'a'
	}

	if _, err := Prove(string(big), x, gx, g, nil); err == nil {
		t.Fatal("expected an error for an oversized userID")
	}
}

func TestChallengeRejectsOversizedOtherInfo(t *testing.T) {
	t.Parallel()

	x, err := curve.RandomScalar()
	if err != nil {
		t.Fatal(err)
	}

	g := curve.G()
	gx := g.Mul(x)

	big := make([]byte, 256)
	for i := range big {
		big[i] = 'a'
	}

	if _, err := Prove("alice", x, gx, g, []string{string(big)}); err == nil {
		t.Fatal("expected an error for an oversized otherInfo element")
	}
}
