package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	stacclient "github.com/robert-malhotra/go-stac-search/client"
)

func newItemsCommand() *cli.Command {
	return &cli.Command{
		Name:  "items",
		Usage: "Work with STAC items",
		Commands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "List items in a collection",
				ArgsUsage: "<collection-id>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Page size requested from the service",
					},
					&cli.IntFlag{
						Name:  "max-items",
						Usage: "Stop after this many items",
						Value: 100,
					},
				},
				Action: listItemsAction,
			},
			{
				Name:      "get",
				Usage:     "Fetch an item by collection and ID",
				ArgsUsage: "<collection-id> <item-id>",
				Action:    getItemAction,
			},
		},
	}
}

func listItemsAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected 1 argument: collection id")
	}

	client, err := clientFromCommand(cmd)
	if err != nil {
		return err
	}

	seq := client.Items().List(ctx, cmd.Args().First(), stacclient.ItemPageOptions{
		Limit: cmd.Int("limit"),
	})
	items, err := collectItems(seq, cmd.Int("max-items"))
	if err != nil {
		return err
	}
	return printJSON(items)
}

func getItemAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("expected 2 arguments: collection id and item id")
	}

	client, err := clientFromCommand(cmd)
	if err != nil {
		return err
	}

	item, err := client.Items().GetOne(ctx, cmd.Args().Get(0), cmd.Args().Get(1))
	if err != nil {
		return err
	}
	return printJSON(item)
}
