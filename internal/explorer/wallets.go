package explorer

import (
	"context"
	"fmt"

	"cosmosexplorer/internal/chainapi"
	"cosmosexplorer/internal/listview"

	"go.uber.org/zap"
)

type WalletDetail struct {
	Wallet  chainapi.Wallet        `json:"wallet"`
	Balance float64                `json:"balance"`
	History []chainapi.Transaction `json:"history"`
}

type Wallets struct {
	*listview.Pager[chainapi.Wallet]
	chain Chain
}

// NewWallets is a constructor function for the Wallets type.
func NewWallets(logger *zap.SugaredLogger, chain Chain, notifier Notifier) *Wallets {
	logger = logger.Named("wallets")

	fetch := func(ctx context.Context) ([]chainapi.Wallet, error) {
		list, err := chain.Wallets(ctx)
		if err != nil {
			return nil, err
		}
		return fillBalances(ctx, logger, chain, list.Wallets), nil
	}

	pager := listview.NewPager(logger, notifier, listview.Config[chainapi.Wallet]{
		Name:  "wallets",
		Fetch: listview.Whole(fetch),
		Key:   func(w chainapi.Wallet) string { return w.Address },
		Fields: func(w chainapi.Wallet) []string {
			return []string{w.Address, w.ID}
		},
		Describe: failedToFetch("wallets"),
	})

	return &Wallets{
		Pager: pager,
		chain: chain,
	}
}

// fillBalances fetches the balances the wallet list did not embed. Wallets
// whose balance could not be fetched keep a nil balance.
func fillBalances(ctx context.Context, logs *zap.SugaredLogger, chain Chain, wallets []chainapi.Wallet) []chainapi.Wallet {
	var missing []string
	for _, w := range wallets {
		if w.Balance == nil {
			missing = append(missing, w.Address)
		}
	}
	if len(missing) == 0 {
		return wallets
	}

	balances, err := chain.Balances(ctx, missing)
	if err != nil {
		logs.Warnw("some wallet balances unavailable",
			"missing", len(missing),
			"fetched", len(balances),
			"error", err)
	}

	for i := range wallets {
		if wallets[i].Balance != nil {
			continue
		}
		if b, ok := balances[wallets[i].Address]; ok {
			wallets[i].Balance = &b
		}
	}
	return wallets
}

// Detail fetches a wallet together with its transfer history.
func (w *Wallets) Detail(ctx context.Context, address string) (WalletDetail, error) {
	var detail WalletDetail
	err := listview.Batch(ctx,
		func(ctx context.Context) error {
			res, err := w.chain.Wallet(ctx, address)
			if err != nil {
				return err
			}
			detail.Wallet = res.Wallet
			detail.Balance = res.Balance
			return nil
		},
		func(ctx context.Context) error {
			history, err := w.chain.TransferHistory(ctx, address)
			if err != nil {
				return err
			}
			detail.History = history.Transactions
			return nil
		},
	)
	if err != nil {
		return WalletDetail{}, fmt.Errorf("wallet detail: %w", err)
	}
	return detail, nil
}

// Addresses lists the addresses of the loaded wallets.
func (w *Wallets) Addresses() []string {
	wallets := w.Items()
	addresses := make([]string, len(wallets))
	for i, wallet := range wallets {
		addresses[i] = wallet.Address
	}
	return addresses
}
