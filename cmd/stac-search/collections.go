package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func newCollectionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "collections",
		Usage: "Work with STAC collections",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all collections",
				Action: listCollectionsAction,
			},
			{
				Name:      "get",
				Usage:     "Fetch a collection by ID",
				ArgsUsage: "<collection-id>",
				Action:    getCollectionAction,
			},
		},
	}
}

func listCollectionsAction(ctx context.Context, cmd *cli.Command) error {
	client, err := clientFromCommand(cmd)
	if err != nil {
		return err
	}

	result, err := client.Collections().List(ctx)
	if err != nil {
		return err
	}
	return printJSON(result.Collections)
}

func getCollectionAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected 1 argument: collection id")
	}

	client, err := clientFromCommand(cmd)
	if err != nil {
		return err
	}

	collection, err := client.Collections().Get(ctx, cmd.Args().First())
	if err != nil {
		return err
	}
	return printJSON(collection)
}
