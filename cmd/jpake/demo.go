package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/jpake-go/jpake"
)

type demoCmd struct {
	Alice string `help:"The initiator's identity." default:"Alice"`
	Bob   string `help:"The responder's identity." default:"Bob"`
}

func (cmd *demoCmd) Run(_ *kong.Context) error {
	password, err := askPassword("Enter shared password: ")
	if err != nil {
		return err
	}

	s, err := jpake.DeriveS(password)
	if err != nil {
		return err
	}

	alice, err := jpake.NewSession(cmd.Alice)
	if err != nil {
		return err
	}

	bob, err := jpake.NewSession(cmd.Bob)
	if err != nil {
		return err
	}

	aliceR1, err := alice.Round1()
	if err != nil {
		return err
	}

	bobR1, err := bob.Round1()
	if err != nil {
		return err
	}

	fmt.Printf("%s -> %s: %s\n", cmd.Alice, cmd.Bob, aliceR1)
	fmt.Printf("%s -> %s: %s\n", cmd.Bob, cmd.Alice, bobR1)

	aliceR2, err := alice.Round2(bobR1, s[:], cmd.Bob)
	if err != nil {
		return err
	}

	bobR2, err := bob.Round2(aliceR1, s[:], cmd.Alice)
	if err != nil {
		return err
	}

	fmt.Printf("%s -> %s: %s\n", cmd.Alice, cmd.Bob, aliceR2)
	fmt.Printf("%s -> %s: %s\n", cmd.Bob, cmd.Alice, bobR2)

	if err := alice.SetRound2FromPeer(bobR2); err != nil {
		return err
	}

	if err := bob.SetRound2FromPeer(aliceR2); err != nil {
		return err
	}

	aliceKey, err := alice.DeriveSharedKey()
	if err != nil {
		return err
	}

	bobKey, err := bob.DeriveSharedKey()
	if err != nil {
		return err
	}

	fmt.Printf("%s's key: %x\n", cmd.Alice, aliceKey)
	fmt.Printf("%s's key: %x\n", cmd.Bob, bobKey)

	if aliceKey == bobKey {
		fmt.Println("keys agree")
	} else {
		fmt.Println("keys DO NOT agree")
	}

	return nil
}
