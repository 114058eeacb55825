package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/urfave/cli/v2"

	httpinterface "github.com/tdex-network/tdex-pooling/internal/interfaces/http"
	"github.com/tdex-network/tdex-pooling/pkg/util"
)

const requestTimeout = 30 * time.Second

var (
	poolingDataDir = btcutil.AppDataDir("pooling-cli", false)
	statePath      = filepath.Join(poolingDataDir, "state.json")
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Version = "0.0.1"
	app.Name = "pooling CLI"
	app.Usage = "Command line interface for poolingd operators and participants"
	app.Commands = append(
		app.Commands,
		&config,
		&gentoken,
		&createpool,
		&listpools,
		&pool,
		&share,
		&deposited,
		&claimable,
		&withdrawn,
		&withdraw,
		&listwithdrawals,
		&deposit,
		&addwebhook,
		&removewebhook,
		&listwebhooks,
	)
	return app
}

func getState() (map[string]string, error) {
	data := map[string]string{}

	file, err := os.ReadFile(statePath)
	if err != nil {
		return nil, errors.New("get config state error: try 'config init'")
	}
	if err := json.Unmarshal(file, &data); err != nil {
		return nil, fmt.Errorf("invalid config state: %w", err)
	}

	return data, nil
}

func setState(data map[string]string) error {
	if err := os.MkdirAll(poolingDataDir, os.ModeDir|0755); err != nil {
		return err
	}

	currentData, err := getState()
	if err != nil {
		currentData = map[string]string{}
	}

	mergedData := merge(currentData, data)

	jsonString, err := json.Marshal(mergedData)
	if err != nil {
		return err
	}
	if err := os.WriteFile(statePath, jsonString, 0600); err != nil {
		return fmt.Errorf("writing to file: %w", err)
	}

	return nil
}

func merge(maps ...map[string]string) map[string]string {
	merge := make(map[string]string, 0)
	for _, m := range maps {
		for k, v := range m {
			merge[k] = v
		}
	}
	return merge
}

type daemonClient struct {
	baseURL string
	token   string
	account string
	client  *http.Client
}

func getClient() (*daemonClient, error) {
	state, err := getState()
	if err != nil {
		return nil, err
	}
	address, ok := state["rpcserver"]
	if !ok || address == "" {
		return nil, errors.New("set rpcserver with `config set rpcserver`")
	}

	return &daemonClient{
		baseURL: strings.TrimSuffix(address, "/"),
		token:   state["token"],
		account: state["account"],
		client:  &http.Client{Timeout: requestTimeout},
	}, nil
}

func (c *daemonClient) do(method, path string, in, out interface{}) error {
	header := map[string]string{}
	if c.token != "" {
		header["Authorization"] = "Bearer " + c.token
	}
	if c.account != "" {
		header[httpinterface.AccountHeader] = c.account
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	return util.DoJSON(ctx, c.client, method, c.baseURL+path, header, in, out)
}

// call sends the request and prints the JSON response.
func call(method, path string, in interface{}) error {
	client, err := getClient()
	if err != nil {
		return err
	}

	var reply interface{}
	if err := client.do(method, path, in, &reply); err != nil {
		return err
	}

	printRespJSON(reply)
	return nil
}

func printRespJSON(resp interface{}) {
	if resp == nil {
		return
	}
	jsonBytes, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		fmt.Println("unable to decode response: ", err)
		return
	}

	fmt.Println(string(jsonBytes))
}

type invalidUsageError struct {
	ctx     *cli.Context
	command string
}

func (e *invalidUsageError) Error() string {
	return fmt.Sprintf("invalid usage of command %s", e.command)
}

func fatal(err error) {
	var e *invalidUsageError
	if errors.As(err, &e) {
		_ = cli.ShowCommandHelp(e.ctx, e.command)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "[pooling] %v\n", err)
	}
	os.Exit(1)
}
