package explorer

import (
	"context"
	"fmt"

	"cosmosexplorer/internal/chainapi"
	"cosmosexplorer/internal/listview"

	"go.uber.org/zap"
)

// MiningData joins the miners with the wallets they are registered from.
// Both collections come from the same refresh so the derived sets never mix
// snapshots of different ages.
type MiningData struct {
	Miners  []chainapi.Miner      `json:"miners"`
	Status  chainapi.MiningStatus `json:"status"`
	Stats   chainapi.MiningStats  `json:"stats"`
	Wallets []chainapi.Wallet     `json:"wallets"`
}

func (d MiningData) UnregisteredWallets() []chainapi.Wallet {
	return UnregisteredWallets(d.Wallets, d.Miners)
}

func (d MiningData) RegisteredMiners() []chainapi.Miner {
	return RegisteredMiners(d.Miners)
}

// CurrentMiner is the address mining right now, if any.
func (d MiningData) CurrentMiner() (string, bool) {
	if !d.Status.IsMining || d.Status.CurrentMiner == nil {
		return "", false
	}
	return *d.Status.CurrentMiner, true
}

type Mining struct {
	*listview.Panel[MiningData]
	chain Chain
}

// NewMining is a constructor function for the Mining type.
func NewMining(logger *zap.SugaredLogger, chain Chain, notifier Notifier) *Mining {
	fetch := func(ctx context.Context) (MiningData, error) {
		var data MiningData
		err := listview.Batch(ctx,
			func(ctx context.Context) error {
				list, err := chain.Miners(ctx)
				if err != nil {
					return fmt.Errorf("fetch miners: %w", err)
				}
				data.Miners = list.Miners
				return nil
			},
			func(ctx context.Context) error {
				status, err := chain.MiningStatus(ctx)
				if err != nil {
					return fmt.Errorf("fetch mining status: %w", err)
				}
				data.Status = status
				return nil
			},
			func(ctx context.Context) error {
				stats, err := chain.MiningStats(ctx)
				if err != nil {
					return fmt.Errorf("fetch mining stats: %w", err)
				}
				data.Stats = stats
				return nil
			},
			func(ctx context.Context) error {
				list, err := chain.Wallets(ctx)
				if err != nil {
					return fmt.Errorf("fetch wallets: %w", err)
				}
				data.Wallets = list.Wallets
				return nil
			},
		)
		return data, err
	}

	return &Mining{
		Panel: listview.NewPanel(logger.Named("mining"), notifier, "mining", fetch, failedToFetch("mining data")),
		chain: chain,
	}
}

// Miners filters the loaded miners by address or name.
func (m *Mining) Miners(q listview.Query) []chainapi.Miner {
	data, _ := m.Value()
	return listview.Filter(data.Miners, q, func(miner chainapi.Miner) []string {
		return []string{miner.Address, miner.Name}
	}, nil)
}

func (m *Mining) Miner(ctx context.Context, address string) (chainapi.Miner, error) {
	miner, err := m.chain.Miner(ctx, address)
	if err != nil {
		return chainapi.Miner{}, fmt.Errorf("miner detail: %w", err)
	}
	return miner, nil
}
