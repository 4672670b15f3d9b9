package stats

import (
	"context"

	"github.com/predaa/martine/internal/batch"
)

const adventureBatchSize = 25

// adventureActions maps save-record counters to their published labels.
var adventureActions = []struct {
	field string
	label string
}{
	{"fight", "Physical Attacks"},
	{"spell", "Magical Attacks"},
	{"talk", "Diplomatic Attacks"},
	{"pray", "Prayers"},
	{"run", "Retreats"},
	{"fumbles", "Fumbles"},
}

// collectAdventure aggregates every user's adventure save. Does nothing when
// the adventure plugin is absent or light mode is on.
func (c *Collectors) collectAdventure(ctx context.Context) error {
	if c.Adventure == nil {
		return nil
	}

	if err := c.adventure(ctx); err != nil {
		c.Log.Errorf("adventure stats pass failed: %v", err)
	}

	return nil
}

func (c *Collectors) adventure(ctx context.Context) error {
	lightmode, err := c.Settings.Lightmode(ctx)
	if err != nil {
		return err
	}
	if lightmode {
		return nil
	}

	users, err := c.Adventure.AllUsers(ctx)
	if err != nil {
		return err
	}

	records := make([]map[string]any, 0, len(users))
	for _, record := range users {
		records = append(records, record)
	}

	counter := counters{
		"Wins":   0,
		"Losses": 0,
	}

	err = batch.Walk(ctx, records, adventureBatchSize, func(chunk []map[string]any) error {
		for _, record := range chunk {
			adventures := subRecord(record, "adventures")

			counter["Set Items"] += numeric(record["set_items"])
			counter["Rebirths"] += numeric(record["rebirths"])
			counter["Wins"] += numeric(adventures["wins"])
			counter["Losses"] += numeric(adventures["loses"])

			for _, action := range adventureActions {
				counter[action.label] += numeric(adventures[action.field])
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	total := counter["Wins"] + counter["Losses"]
	counter["Adventures"] = total
	if total > 0 {
		counter["Win Percentage"] = counter["Wins"] / total * 100
		counter["Loss Percentage"] = counter["Losses"] / total * 100
	} else {
		counter["Win Percentage"] = 0
		counter["Loss Percentage"] = 0
	}

	c.Store.Replace(CategoryAdventure, counter)
	return nil
}

// subRecord returns a nested mapping, or an empty one when the save predates
// the field. Old saves lack the adventures sub-record entirely; its counters
// all default to zero.
func subRecord(record map[string]any, key string) map[string]any {
	if sub, ok := record[key].(map[string]any); ok {
		return sub
	}

	return map[string]any{}
}

// numeric coerces the loosely typed values found in raw save records.
func numeric(value any) float64 {
	switch v := value.(type) {
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case float64:
		return v
	}

	return 0
}
