package main

import (
	"fmt"
	"os"

	emailaddr "github.com/foxcpp/go-emailaddr"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "emailaddrctl",
		Usage: "email address validation utility",
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "Validate one or more addresses",
				ArgsUsage: "ADDRESS...",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "Report through the exit status only",
					},
				},
				Action: checkCmd,
			},
			{
				Name:      "uri",
				Usage:     "Print the mailto URI form of an address",
				ArgsUsage: "ADDRESS",
				Action:    uriCmd,
			},
			{
				Name:      "idna",
				Usage:     "Convert the domain between A-label and U-label forms",
				ArgsUsage: "ADDRESS",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "unicode",
						Usage: "Convert to the U-label (Unicode) form instead of A-label",
					},
				},
				Action: idnaCmd,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func checkCmd(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return cli.Exit("Error: at least one ADDRESS is required", 2)
	}

	ok := true
	for _, arg := range ctx.Args().Slice() {
		addr, err := emailaddr.Parse(arg)
		if err != nil {
			ok = false
			if !ctx.Bool("quiet") {
				fmt.Fprintf(os.Stderr, "%s: %v\n", arg, err)
			}
			continue
		}
		if !ctx.Bool("quiet") {
			fmt.Printf("OK local=%s domain=%s\n", addr.LocalPart(), addr.Domain())
		}
	}

	if !ok {
		return cli.Exit("", 1)
	}
	return nil
}

func uriCmd(ctx *cli.Context) error {
	addr, err := parseArg(ctx)
	if err != nil {
		return err
	}
	fmt.Println(addr.URI())
	return nil
}

func idnaCmd(ctx *cli.Context) error {
	addr, err := parseArg(ctx)
	if err != nil {
		return err
	}

	converted, err := emailaddr.SelectIDNA(ctx.Bool("unicode"), addr)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	fmt.Println(converted)
	return nil
}

func parseArg(ctx *cli.Context) (emailaddr.EmailAddress, error) {
	arg := ctx.Args().First()
	if arg == "" {
		return emailaddr.EmailAddress{}, cli.Exit("Error: ADDRESS is required", 2)
	}
	addr, err := emailaddr.Parse(arg)
	if err != nil {
		return emailaddr.EmailAddress{}, cli.Exit(fmt.Sprintf("%s: %v", arg, err), 1)
	}
	return addr, nil
}
