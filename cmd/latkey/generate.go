package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/urfave/cli/v2"
)

type outputGenerate struct {
	Address string `json:"address"`
}

var commandGenerate = &cli.Command{
	Name:      "generate",
	Usage:     "generate a new secp256k1 keyfile",
	ArgsUsage: "[ <keyfile> ]",
	Description: `
Generate a new secp256k1 private key and store it as a raw hex keyfile.
`,
	Flags: []cli.Flag{
		jsonFlag,
	},
	Action: func(ctx *cli.Context) error {
		keyfilepath := ctx.Args().First()
		if keyfilepath == "" {
			keyfilepath = defaultKeyfileName
		}
		if _, err := os.Stat(keyfilepath); err == nil {
			return fmt.Errorf("keyfile already exists at %s", keyfilepath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("error checking if keyfile exists: %v", err)
		}

		key, err := crypto.GenerateKey()
		if err != nil {
			return fmt.Errorf("failed to generate private key: %v", err)
		}
		if err := os.MkdirAll(filepath.Dir(keyfilepath), 0700); err != nil {
			return fmt.Errorf("could not create directory %s", filepath.Dir(keyfilepath))
		}
		if err := crypto.SaveECDSA(keyfilepath, key); err != nil {
			return fmt.Errorf("failed to write keyfile to %s: %v", keyfilepath, err)
		}

		out := outputGenerate{Address: crypto.PubkeyToAddress(key.PublicKey).Hex()}
		if ctx.Bool(jsonFlag.Name) {
			mustPrintJSON(out)
		} else {
			fmt.Println("Address:", out.Address)
		}
		return nil
	},
}

var commandInspect = &cli.Command{
	Name:      "inspect",
	Usage:     "inspect a keyfile",
	ArgsUsage: "<keyfile>",
	Flags: []cli.Flag{
		jsonFlag,
	},
	Action: func(ctx *cli.Context) error {
		key, err := crypto.LoadECDSA(ctx.Args().First())
		if err != nil {
			return fmt.Errorf("failed to load keyfile: %v", err)
		}
		out := outputGenerate{Address: crypto.PubkeyToAddress(key.PublicKey).Hex()}
		if ctx.Bool(jsonFlag.Name) {
			mustPrintJSON(out)
		} else {
			fmt.Println("Address:", out.Address)
		}
		return nil
	},
}

// mustPrintJSON prints v as indented JSON or exits.
func mustPrintJSON(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to marshal JSON:", err)
		os.Exit(1)
	}
	fmt.Println(string(b))
}
