package main

import (
	"encoding/json"
	"fmt"
	"iter"
	"os"

	stac "github.com/planetlabs/go-stac"
)

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}

// collectItems drains up to max items from the sequence. A max of zero or
// less collects everything.
func collectItems(seq iter.Seq2[*stac.Item, error], max int) ([]*stac.Item, error) {
	var (
		items   []*stac.Item
		iterErr error
	)
	seq(func(item *stac.Item, err error) bool {
		if err != nil {
			iterErr = err
			return false
		}
		items = append(items, item)
		return max <= 0 || len(items) < max
	})
	if iterErr != nil {
		return nil, iterErr
	}
	return items, nil
}
