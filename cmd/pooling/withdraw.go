package main

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/urfave/cli/v2"
)

var assetFlag = cli.StringFlag{
	Name:     "asset",
	Usage:    "the asset of the pooled funds",
	Required: true,
}

var accountQueryFlag = cli.StringFlag{
	Name:  "account",
	Usage: "the participant account, defaults to the one in the local state",
}

var deposited = cli.Command{
	Name:   "deposited",
	Usage:  "get the total amount of an asset ever deposited into a pool",
	Flags:  []cli.Flag{&poolFlag, &assetFlag},
	Action: depositedAction,
}

var claimable = cli.Command{
	Name:   "claimable",
	Usage:  "get the amount of an asset a participant can withdraw",
	Flags:  []cli.Flag{&poolFlag, &assetFlag, &accountQueryFlag},
	Action: claimableAction,
}

var withdrawn = cli.Command{
	Name:   "withdrawn",
	Usage:  "get the amount of an asset a participant has already withdrawn",
	Flags:  []cli.Flag{&poolFlag, &assetFlag, &accountQueryFlag},
	Action: withdrawnAction,
}

var withdraw = cli.Command{
	Name:   "withdraw",
	Usage:  "withdraw the whole claimable amount of an asset to the caller",
	Flags:  []cli.Flag{&poolFlag, &assetFlag},
	Action: withdrawAction,
}

var listwithdrawals = cli.Command{
	Name:  "listwithdrawals",
	Usage: "list the withdrawals of a pool, newest first",
	Flags: []cli.Flag{
		&poolFlag,
		&cli.StringFlag{
			Name:  "account",
			Usage: "list only withdrawals of this account",
		},
		&cli.IntFlag{
			Name:  "page",
			Usage: "the number of the page to fetch, starting from 1",
		},
		&cli.IntFlag{
			Name:  "size",
			Usage: "the number of withdrawals per page",
		},
	},
	Action: listWithdrawalsAction,
}

func depositedAction(ctx *cli.Context) error {
	poolID, err := getPool(ctx)
	if err != nil {
		return err
	}

	return call(
		http.MethodGet, assetPath(poolID, ctx.String("asset"))+"/deposited", nil,
	)
}

func claimableAction(ctx *cli.Context) error {
	return accountAmountAction(ctx, "claimable")
}

func withdrawnAction(ctx *cli.Context) error {
	return accountAmountAction(ctx, "withdrawn")
}

func accountAmountAction(ctx *cli.Context, kind string) error {
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
		fmt.Sprintf(
			"%s/%s/%s", assetPath(poolID, ctx.String("asset")), kind,
			url.PathEscape(account),
		),
		nil,
	)
}

func withdrawAction(ctx *cli.Context) error {
	poolID, err := getPool(ctx)
	if err != nil {
		return err
	}

	return call(
		http.MethodPost, assetPath(poolID, ctx.String("asset"))+"/withdraw", nil,
	)
}

func listWithdrawalsAction(ctx *cli.Context) error {
	poolID, err := getPool(ctx)
	if err != nil {
		return err
	}

	query := url.Values{}
	if account := ctx.String("account"); account != "" {
		query.Set("account", account)
	}
	page, size := ctx.Int("page"), ctx.Int("size")
	if page < 0 || size < 0 {
		return errors.New("page and size must be positive")
	}
	if page > 0 {
		query.Set("page", fmt.Sprint(page))
	}
	if size > 0 {
		query.Set("size", fmt.Sprint(size))
	}

	path := poolPath(poolID) + "/withdrawals"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return call(http.MethodGet, path, nil)
}
