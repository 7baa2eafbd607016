// latkey is the operator and signer tool for the latfi reward engine: it
// manages secp256k1 keyfiles, produces and checks claim authorizations, and
// builds the genesis INITIALIZE action from a TOML config.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

const defaultKeyfileName = "latkey.hex"

var app *cli.App

func init() {
	app = cli.NewApp()
	app.Name = "latkey"
	app.Usage = "a LAT rewards key and claim manager"
	app.Commands = []*cli.Command{
		commandGenerate,
		commandInspect,
		commandSignClaim,
		commandVerifyClaim,
		commandInitAction,
	}
}

// Commonly used command line flags.
var (
	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "output JSON instead of human-readable format",
	}
)

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
