package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	httpinterface "github.com/tdex-network/tdex-pooling/internal/interfaces/http"
)

var gentoken = cli.Command{
	Name:  "gentoken",
	Usage: "generate a bearer token for poolingd signed with the auth secret",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "secret",
			Usage:    "the auth secret of the daemon",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "account",
			Usage:    "the account the token is issued for",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "role",
			Usage: "the role of the account: operator or participant",
			Value: httpinterface.RoleParticipant,
		},
		&cli.DurationFlag{
			Name:  "ttl",
			Usage: "the validity of the token, 0 for no expiry",
		},
		&cli.BoolFlag{
			Name:  "save",
			Usage: "store token and account in the local state",
		},
	},
	Action: genTokenAction,
}

func genTokenAction(ctx *cli.Context) error {
	account := ctx.String("account")
	token, err := httpinterface.GenerateToken(
		ctx.String("secret"), account, ctx.String("role"), ctx.Duration("ttl"),
	)
	if err != nil {
		return err
	}

	if ctx.Bool("save") {
		if err := setState(map[string]string{
			"token":   token,
			"account": account,
		}); err != nil {
			return err
		}
	}

	fmt.Println(token)
	return nil
}
