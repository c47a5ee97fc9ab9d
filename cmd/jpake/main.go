package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"golang.org/x/term"
)

type cli struct {
	Demo    demoCmd    `cmd:"" help:"Run a full two-round J-PAKE handshake between two in-process sessions."`
	DeriveS deriveSCmd `cmd:"" help:"Derive and print the scalar encoding of a password."`
}

func main() {
	var cli cli

	ctx := kong.Parse(&cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func askPassword(prompt string) (string, error) {
	defer func() { _, _ = fmt.Fprintln(os.Stderr) }()

	_, _ = fmt.Fprint(os.Stderr, prompt)

	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}

	return string(b), nil
}
