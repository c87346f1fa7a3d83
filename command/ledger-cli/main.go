// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgerd/command/ledger-cli/rpccalls"
)

type metadata struct {
	connect string
	useTLS  bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "ledger-cli"
	app.Usage = "key management and transactions for a ledgerd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2130",
			Usage: " ledgerd host/IP and port, `HOST:PORT`",
		},
		cli.BoolFlag{
			Name:  "tls, t",
			Usage: " connect using TLS (certificate is not verified)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "keygen",
			Usage:     "generate key pair, print private key, public key and address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "type, k",
					Value: "secp256k1",
					Usage: " key algorithm `TYPE` [secp256k1|ed25519]",
				},
			},
			Action: runKeygen,
		},
		{
			Name:      "address",
			Usage:     "P2PKH address of a public key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "public-key, p",
					Value: "",
					Usage: "*public key `HEX`",
				},
			},
			Action: runAddress,
		},
		{
			Name:      "encode",
			Usage:     "base58 check encode hex data",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: "*data to encode `HEX`",
				},
			},
			Action: runEncode,
		},
		{
			Name:      "decode",
			Usage:     "base58 check decode to hex data",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "text, x",
					Value: "",
					Usage: "*base58 `TEXT` to decode",
				},
			},
			Action: runDecode,
		},
		{
			Name:      "key",
			Usage:     "binary record key in hex",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "path, p",
					Value: "",
					Usage: "*record `PATH`",
				},
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "+account record of asset `PATH`",
				},
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: "+data record `NAME`",
				},
			},
			Action: runKey,
		},
		{
			Name:      "sign",
			Usage:     "signature evidence for a packed mutation",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mutation, m",
					Value: "",
					Usage: "*packed mutation `HEX`",
				},
				cli.StringFlag{
					Name:  "private-key, k",
					Value: "",
					Usage: "*private `KEY` from keygen",
				},
			},
			Action: runSign,
		},
		{
			Name:      "post",
			Usage:     "submit a packed mutation with signatures",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mutation, m",
					Value: "",
					Usage: "*packed mutation `HEX`",
				},
				cli.StringSliceFlag{
					Name:  "signature, s",
					Usage: " signature evidence `PUBLIC:SIGNATURE` in hex, may be repeated",
				},
			},
			Action: runPost,
		},
		{
			Name:      "transfer",
			Usage:     "move an amount of an asset between two accounts",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: "*source account `PATH`",
				},
				cli.StringFlag{
					Name:  "to, r",
					Value: "",
					Usage: "*destination account `PATH`",
				},
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset `PATH`",
				},
				cli.Int64Flag{
					Name:  "amount, q",
					Value: 0,
					Usage: "*positive `AMOUNT` to move",
				},
				cli.StringSliceFlag{
					Name:  "private-key, k",
					Usage: "*signing `KEY` from keygen, may be repeated",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "records",
			Usage:     "current value and version of record keys",
			ArgsUsage: "KEY...\n   keys in hex",
			Action:    runRecords,
		},
		{
			Name:      "transactions",
			Usage:     "list committed transactions",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: " start after transaction `TXID`",
				},
			},
			Action: runTransactions,
		},
		{
			Name:   "last",
			Usage:  "most recent transaction id",
			Action: runLast,
		},
		{
			Name:   "info",
			Usage:  "display ledgerd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display ledger-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			useTLS:  c.GlobalBool("tls"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// connect to the configured ledgerd
func (m *metadata) client() (*rpccalls.Client, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s  tls: %v\n", m.connect, m.useTLS)
	}
	return rpccalls.NewClient(m.connect, m.useTLS, m.verbose, m.e)
}
