package explorer

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"cosmosexplorer/internal/chainapi"
	"cosmosexplorer/internal/listview"

	"go.uber.org/zap"
)

const TopHolderCount = 5

type TokenData struct {
	Info  chainapi.TokenInfo  `json:"info"`
	Stats chainapi.TokenStats `json:"stats"`
}

type Tokens struct {
	summary *listview.Panel[TokenData]
	holders *listview.Pager[chainapi.Holder]
}

// NewTokens is a constructor function for the Tokens type.
func NewTokens(logger *zap.SugaredLogger, chain Chain, notifier Notifier) *Tokens {
	logger = logger.Named("tokens")

	fetch := func(ctx context.Context) (TokenData, error) {
		var data TokenData
		err := listview.Batch(ctx,
			func(ctx context.Context) error {
				info, err := chain.TokenInfo(ctx)
				if err != nil {
					return fmt.Errorf("fetch token info: %w", err)
				}
				data.Info = info
				return nil
			},
			func(ctx context.Context) error {
				stats, err := chain.TokenStats(ctx)
				if err != nil {
					return fmt.Errorf("fetch token stats: %w", err)
				}
				data.Stats = stats
				return nil
			},
		)
		return data, err
	}

	holders := listview.NewPager(logger, notifier, listview.Config[chainapi.Holder]{
		Name: "holders",
		Fetch: listview.Whole(func(ctx context.Context) ([]chainapi.Holder, error) {
			list, err := chain.Holders(ctx)
			if err != nil {
				return nil, err
			}
			return list.Holders, nil
		}),
		Key:      func(h chainapi.Holder) string { return h.Address },
		Fields:   func(h chainapi.Holder) []string { return []string{h.Address} },
		Describe: failedToFetch("token holders"),
	})

	return &Tokens{
		summary: listview.NewPanel(logger, notifier, "tokens", fetch, failedToFetch("token data")),
		holders: holders,
	}
}

// Refresh reloads the summary and the holders. Each part keeps its last good
// state when its own fetch fails.
func (t *Tokens) Refresh(ctx context.Context) error {
	return errors.Join(t.summary.Refresh(ctx), t.holders.Refresh(ctx))
}

func (t *Tokens) Ensure(ctx context.Context) error {
	return errors.Join(t.summary.Ensure(ctx), t.holders.Ensure(ctx))
}

func (t *Tokens) Summary() listview.PanelSnapshot[TokenData] {
	return t.summary.Snapshot()
}

func (t *Tokens) Holders(q listview.Query) listview.Snapshot[chainapi.Holder] {
	return t.holders.Snapshot(q)
}

// TopHolders returns the n largest balances.
func (t *Tokens) TopHolders(n int) []chainapi.Holder {
	holders := t.holders.Items()
	sort.SliceStable(holders, func(i, j int) bool {
		return holders[i].Balance > holders[j].Balance
	})
	if len(holders) > n {
		holders = holders[:n]
	}
	return holders
}

// CirculatingSupply is the supply used to compute holder shares.
func (t *Tokens) CirculatingSupply() float64 {
	data, _ := t.summary.Value()
	return data.Info.CirculatingSupply
}
