package jpake

import (
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestDeriveSRejectsEmptyPassword(t *testing.T) {
	t.Parallel()

	if _, err := DeriveS(""); !IsKind(err, InvalidArgument) {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestStretchThenDeriveS(t *testing.T) {
	t.Parallel()

	salt, err := NewStretchSalt()
	if err != nil {
		t.Fatal(err)
	}

	params := StretchParams{Time: 1, Memory: 8 * 1024, Parallelism: 1, KeyLen: 32}

	stretched, err := Stretch("weaksecret", salt, &params)
	if err != nil {
		t.Fatal(err)
	}

	a, err := DeriveS(stretched)
	if err != nil {
		t.Fatal(err)
	}

	b, err := DeriveS(stretched)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "stretch+derive is deterministic", a, b)
}
