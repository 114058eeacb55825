package main

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/urfave/cli/v2"
)

var addwebhook = cli.Command{
	Name:  "addwebhook",
	Usage: "add a webhook registered for some event",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "endpoint",
			Usage:    "the endpoint where to notify the webhook",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "secret",
			Usage: "the eventual secret to authenticate requests",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "event",
			Usage: "the event for which the webhook gets notified: WITHDRAWAL or *",
			Value: "WITHDRAWAL",
		},
	},
	Action: addWebhookAction,
}

var removewebhook = cli.Command{
	Name:  "removewebhook",
	Usage: "remove some webhook",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "id",
			Usage:    "the id of the webhook to remove",
			Required: true,
		},
	},
	Action: removeWebhookAction,
}

var listwebhooks = cli.Command{
	Name:  "listwebhooks",
	Usage: "list all webhooks registered for some event",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "event",
			Usage: "the event to filter hooks by",
		},
	},
	Action: listWebhooksAction,
}

func addWebhookAction(ctx *cli.Context) error {
	return call(http.MethodPost, "/v1/webhooks", map[string]string{
		"event":    ctx.String("event"),
		"endpoint": ctx.String("endpoint"),
		"secret":   ctx.String("secret"),
	})
}

func removeWebhookAction(ctx *cli.Context) error {
	client, err := getClient()
	if err != nil {
		return err
	}

	id := ctx.String("id")
	if err := client.do(
		http.MethodDelete, "/v1/webhooks/"+url.PathEscape(id), nil, nil,
	); err != nil {
		return err
	}

	fmt.Printf("webhook %s has been removed\n", id)
	return nil
}

func listWebhooksAction(ctx *cli.Context) error {
	path := "/v1/webhooks"
	if event := ctx.String("event"); event != "" {
		path += "?event=" + url.QueryEscape(event)
	}
	return call(http.MethodGet, path, nil)
}
