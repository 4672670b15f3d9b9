package stats

import (
	"context"

	"github.com/predaa/martine/bank"
	"github.com/predaa/martine/internal/batch"
)

const accountBatchSize = 50

// collectCurrency sums every user's balance and publishes the total amount
// of currency in circulation. Unlike the guild and audio passes this one is
// not individually wrapped: a bank read failure fails the whole cycle.
func (c *Collectors) collectCurrency(ctx context.Context) error {
	accounts, err := c.Bank.AllAccounts(ctx)
	if err != nil {
		return err
	}

	var overall int64
	err = batch.Walk(ctx, accounts, accountBatchSize, func(chunk []bank.Account) error {
		for _, account := range chunk {
			overall += account.Balance
		}

		return nil
	})
	if err != nil {
		return err
	}

	c.Store.Replace(CategoryCurrency, counters{
		"Currency In Circulation": float64(overall),
	})

	return nil
}
