package explorer

import (
	"context"
	"fmt"

	"cosmosexplorer/internal/chainapi"
	"cosmosexplorer/internal/listview"

	"go.uber.org/zap"
)

type DashboardData struct {
	Info         chainapi.BlockchainInfo `json:"info"`
	Blocks       []chainapi.Block        `json:"blocks"`
	Transactions []chainapi.Transaction  `json:"transactions"`
}

// Height is the index of the newest block.
func (d DashboardData) Height() int64 {
	return max(d.Info.Length-1, 0)
}

// Dashboard shows the chain summary with the newest blocks and transactions.
type Dashboard struct {
	*listview.Panel[DashboardData]
}

// NewDashboard is a constructor function for the Dashboard type.
func NewDashboard(logger *zap.SugaredLogger, chain Chain, notifier Notifier, blocks, transactions int) *Dashboard {
	fetch := func(ctx context.Context) (DashboardData, error) {
		var data DashboardData
		err := listview.Batch(ctx,
			func(ctx context.Context) error {
				info, err := chain.Info(ctx)
				if err != nil {
					return fmt.Errorf("fetch chain info: %w", err)
				}
				data.Info = info
				return nil
			},
			func(ctx context.Context) error {
				page, err := chain.Blocks(ctx, blocks, 0)
				if err != nil {
					return fmt.Errorf("fetch latest blocks: %w", err)
				}
				data.Blocks = page.Blocks
				return nil
			},
			func(ctx context.Context) error {
				page, err := chain.Transactions(ctx, transactions, "")
				if err != nil {
					return fmt.Errorf("fetch latest transactions: %w", err)
				}
				data.Transactions = page.Transactions
				return nil
			},
		)
		return data, err
	}

	return &Dashboard{
		Panel: listview.NewPanel(logger.Named("dashboard"), notifier, "dashboard", fetch, failedToFetch("dashboard data")),
	}
}

func failedToFetch(what string) func(error) string {
	return func(err error) string {
		return fmt.Sprintf("failed to fetch %s: %s", what, chainapi.Message(err))
	}
}
