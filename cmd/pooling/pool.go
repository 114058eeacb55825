package main

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/urfave/cli/v2"
)

var createpool = cli.Command{
	Name:  "createpool",
	Usage: "create a new pool with fixed participants and shares",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "custody",
			Usage:    "the custody account holding the pooled funds",
			Required: true,
		},
		&cli.StringSliceFlag{
			Name:     "participant",
			Usage:    "the account of a participant, repeat for every one",
			Required: true,
		},
		&cli.StringSliceFlag{
			Name:     "share",
			Usage:    "the percentage share of the participant at the same position",
			Required: true,
		},
	},
	Action: createPoolAction,
}

var listpools = cli.Command{
	Name:   "listpools",
	Usage:  "list all pools",
	Action: listPoolsAction,
}

var pool = cli.Command{
	Name:   "pool",
	Usage:  "get info about a pool and its assets",
	Flags:  []cli.Flag{&poolFlag},
	Action: poolAction,
}

var share = cli.Command{
	Name:  "share",
	Usage: "get the percentage share of a participant",
	Flags: []cli.Flag{
		&poolFlag,
		&cli.StringFlag{
			Name:  "account",
			Usage: "the participant account, defaults to the one in the local state",
		},
	},
	Action: shareAction,
}

func createPoolAction(ctx *cli.Context) error {
	shares, err := parseShares(ctx.StringSlice("share"))
	if err != nil {
		return err
	}

	return call(http.MethodPost, "/v1/pools", map[string]interface{}{
		"custody_account": ctx.String("custody"),
		"participants":    ctx.StringSlice("participant"),
		"shares":          shares,
	})
}

func listPoolsAction(ctx *cli.Context) error {
	return call(http.MethodGet, "/v1/pools", nil)
}

func poolAction(ctx *cli.Context) error {
	poolID, err := getPool(ctx)
	if err != nil {
		return err
	}

	return call(http.MethodGet, poolPath(poolID), nil)
}

func shareAction(ctx *cli.Context) error {
	poolID, err := getPool(ctx)
	if err != nil {
		return err
	}
	account, err := getAccount(ctx)
	if err != nil {
		return err
	}

	return call(
		http.MethodGet,
		fmt.Sprintf("%s/participants/%s/share", poolPath(poolID), url.PathEscape(account)),
		nil,
	)
}

func parseShares(list []string) ([]uint32, error) {
	shares := make([]uint32, 0, len(list))
	for _, s := range list {
		share, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid share %q", s)
		}
		shares = append(shares, uint32(share))
	}
	return shares, nil
}

func poolPath(poolID string) string {
	return "/v1/pools/" + url.PathEscape(poolID)
}

func assetPath(poolID, asset string) string {
	return fmt.Sprintf("%s/assets/%s", poolPath(poolID), url.PathEscape(asset))
}
