package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/jpake-go/jpake"
)

type deriveSCmd struct {
	Stretch bool `help:"Strengthen the password with Argon2id before deriving s."`
}

func (cmd *deriveSCmd) Run(_ *kong.Context) error {
	password, err := askPassword("Enter password: ")
	if err != nil {
		return err
	}

	if cmd.Stretch {
		salt, err := jpake.NewStretchSalt()
		if err != nil {
			return err
		}

		password, err = jpake.Stretch(password, salt, nil)
		if err != nil {
			return err
		}

		fmt.Printf("salt: %x\n", salt)
	}

	s, err := jpake.DeriveS(password)
	if err != nil {
		return err
	}

	fmt.Printf("s: %x\n", s)

	return nil
}
