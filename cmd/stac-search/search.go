package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/robert-malhotra/go-stac-search/search"
)

func newSearchCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search items across collections",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "collections",
				Aliases: []string{"c"},
				Usage:   "Collection IDs to search",
			},
			&cli.StringSliceFlag{
				Name:  "ids",
				Usage: "Item IDs to search",
			},
			&cli.StringFlag{
				Name:  "datetime",
				Usage: "RFC 3339 instant or start/end interval (\"..\" for an open bound)",
			},
			&cli.StringFlag{
				Name:  "bbox",
				Usage: "Bounding box as 4 or 6 comma-separated numbers",
			},
			&cli.StringFlag{
				Name:  "intersects",
				Usage: "GeoJSON geometry to intersect with (implies POST)",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Page size requested from the service",
				Value: -1,
			},
			&cli.StringFlag{
				Name:  "method",
				Usage: "HTTP method to search with (GET or POST)",
				Value: "GET",
			},
			&cli.IntFlag{
				Name:  "max-items",
				Usage: "Stop after this many items (0 prints one page)",
			},
		},
		Action: searchAction,
	}
}

func searchAction(ctx context.Context, cmd *cli.Command) error {
	client, err := clientFromCommand(cmd)
	if err != nil {
		return err
	}

	base, err := client.Open(ctx)
	if err != nil {
		return err
	}

	switch verb := strings.ToUpper(cmd.String("method")); verb {
	case "GET":
	case "POST":
		base = base.WithVerb(search.VerbPost)
	default:
		return fmt.Errorf("unsupported method %q, want GET or POST", verb)
	}

	filters := search.Filters{
		Collections: cmd.StringSlice("collections"),
		IDs:         cmd.StringSlice("ids"),
		Datetime:    cmd.String("datetime"),
	}
	if raw := cmd.String("bbox"); raw != "" {
		bbox, err := parseBBoxFlag(raw)
		if err != nil {
			return err
		}
		filters.BBox = bbox
	}
	if geom := cmd.String("intersects"); geom != "" {
		filters.Intersects = geom
	}
	if limit := cmd.Int("limit"); limit >= 0 {
		filters.Limit = &limit
	}

	q, err := search.Build(base, filters)
	if err != nil {
		return err
	}

	svc := client.Search()
	maxItems := cmd.Int("max-items")
	if maxItems <= 0 {
		doc, err := svc.Do(ctx, q)
		if err != nil {
			return err
		}
		return printJSON(doc.Collection)
	}

	items, err := collectItems(svc.Items(ctx, q), maxItems)
	if err != nil {
		return err
	}
	return printJSON(items)
}

func parseBBoxFlag(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	bbox := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid bbox coordinate %q", part)
		}
		bbox = append(bbox, v)
	}
	return bbox, nil
}
