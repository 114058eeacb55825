package main

import (
	"net/http"
	"strconv"

	"github.com/urfave/cli/v2"
)

var deposit = cli.Command{
	Name:  "deposit",
	Usage: "fund the custody account of a pool, available only with in-memory custody",
	Flags: []cli.Flag{
		&poolFlag,
		&assetFlag,
		&cli.Uint64Flag{
			Name:     "amount",
			Usage:    "the amount to deposit in base units",
			Required: true,
		},
	},
	Action: depositAction,
}

func depositAction(ctx *cli.Context) error {
	poolID, err := getPool(ctx)
	if err != nil {
		return err
	}

	return call(http.MethodPost, "/v1/custody/deposit", map[string]string{
		"pool_id": poolID,
		"asset":   ctx.String("asset"),
		"amount":  strconv.FormatUint(ctx.Uint64("amount"), 10),
	})
}
