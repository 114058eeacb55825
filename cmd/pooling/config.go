package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
)

var (
	rpcFlag = cli.StringFlag{
		Name:  "rpcserver",
		Usage: "poolingd REST interface base URL",
		Value: "http://localhost:9090",
	}

	tokenFlag = cli.StringFlag{
		Name:  "token",
		Usage: "bearer token used to authenticate against poolingd",
		Value: "",
	}

	accountFlag = cli.StringFlag{
		Name:  "account",
		Usage: "the account of the caller, used when poolingd runs without auth",
		Value: "",
	}
)

var config = cli.Command{
	Name:   "config",
	Usage:  "Print local configuration of the pooling CLI",
	Action: configAction,
	Subcommands: []*cli.Command{
		{
			Name:   "set",
			Usage:  "set a <key> <value> in the local state",
			Action: configSetAction,
		},
		{
			Name:   "init",
			Usage:  "initialize the local state with flags",
			Action: configInitAction,
			Flags: []cli.Flag{
				&rpcFlag,
				&tokenFlag,
				&accountFlag,
			},
		},
	},
}

func configAction(ctx *cli.Context) error {
	state, err := getState()
	if err != nil {
		return err
	}

	for key, value := range state {
		fmt.Println(key + ": " + value)
	}

	return nil
}

func configInitAction(c *cli.Context) error {
	return setState(map[string]string{
		"rpcserver": c.String("rpcserver"),
		"token":     c.String("token"),
		"account":   c.String("account"),
	})
}

func configSetAction(c *cli.Context) error {
	if c.NArg() < 2 {
		return errors.New("key and value are missing")
	}

	key := c.Args().Get(0)
	value := c.Args().Get(1)

	if err := setState(map[string]string{key: value}); err != nil {
		return err
	}

	fmt.Printf("%s %s has been set\n", key, value)

	return nil
}

// getPool returns the pool given by flag, falling back to the one in the
// local state.
func getPool(ctx *cli.Context) (string, error) {
	if poolID := ctx.String("pool"); poolID != "" {
		return poolID, nil
	}
	state, err := getState()
	if err != nil {
		return "", err
	}
	poolID, ok := state["pool"]
	if !ok || poolID == "" {
		return "", errors.New("set pool with --pool or `config set pool`")
	}
	return poolID, nil
}

// getAccount returns the account given by flag, falling back to the one in
// the local state.
func getAccount(ctx *cli.Context) (string, error) {
	if account := ctx.String("account"); account != "" {
		return account, nil
	}
	state, err := getState()
	if err != nil {
		return "", err
	}
	account, ok := state["account"]
	if !ok || account == "" {
		return "", errors.New("set account with --account or `config set account`")
	}
	return account, nil
}

var poolFlag = cli.StringFlag{
	Name:  "pool",
	Usage: "the id of the pool, defaults to the one in the local state",
}
