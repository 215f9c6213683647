// Package explorer holds the views of the chain explorer and the forms that mutate the chain.
package explorer

import (
	"context"
	"time"

	"cosmosexplorer/internal/listview"

	"go.uber.org/zap"
)

type Options struct {
	DashboardBlocks       int
	DashboardTransactions int
	BlocksPage            int
	TransactionsPage      int
	PollInterval          time.Duration
}

// Explorer owns every view and form. Views are safe for concurrent use.
type Explorer struct {
	logs     *zap.SugaredLogger
	chain    Chain
	notifier Notifier
	opts     Options

	Dashboard    *Dashboard
	Blocks       *Blocks
	Transactions *Transactions
	Wallets      *Wallets
	Mining       *Mining
	Tokens       *Tokens

	Transfer        *Form[TransferInput]
	TokenOperation  *Form[TokenOperationInput]
	RegisterMiner   *Form[RegisterMinerInput]
	StartMining     *Form[MinerInput]
	StopMining      *Form[MinerInput]
	UnregisterMiner *Form[MinerInput]
	CreateWallet    *Form[CreateWalletInput]
	DeleteWallet    *Form[WalletInput]

	pollers []*listview.Poller
}

// New is a constructor function for the Explorer type.
func New(logger *zap.SugaredLogger, chain Chain, notifier Notifier, opts Options) *Explorer {
	e := &Explorer{
		logs:     logger,
		chain:    chain,
		notifier: notifier,
		opts:     opts,
	}

	e.Dashboard = NewDashboard(logger, chain, notifier, opts.DashboardBlocks, opts.DashboardTransactions)
	e.Blocks = NewBlocks(logger, chain, notifier, opts.BlocksPage)
	e.Transactions = NewTransactions(logger, chain, notifier, opts.TransactionsPage)
	e.Wallets = NewWallets(logger, chain, notifier)
	e.Mining = NewMining(logger, chain, notifier)
	e.Tokens = NewTokens(logger, chain, notifier)

	e.Transfer = e.newTransferForm()
	e.TokenOperation = e.newTokenOperationForm()
	e.RegisterMiner = e.newRegisterMinerForm()
	e.StartMining = e.newStartMiningForm()
	e.StopMining = e.newStopMiningForm()
	e.UnregisterMiner = e.newUnregisterMinerForm()
	e.CreateWallet = e.newCreateWalletForm()
	e.DeleteWallet = e.newDeleteWalletForm()

	return e
}

// Start begins polling the dashboard and the transactions. The other views
// load the first time they are shown.
func (e *Explorer) Start(ctx context.Context) {
	if e.opts.PollInterval <= 0 {
		return
	}
	e.pollers = []*listview.Poller{
		listview.NewPoller(e.logs, "dashboard", e.opts.PollInterval, func(ctx context.Context) {
			_ = e.Dashboard.Refresh(ctx)
		}),
		listview.NewPoller(e.logs, "transactions", e.opts.PollInterval, func(ctx context.Context) {
			_ = e.Transactions.Refresh(ctx)
			_ = e.Transactions.Pending().Refresh(ctx)
		}),
	}
	for _, p := range e.pollers {
		p.Start(ctx)
	}
}

// Stop cancels the pollers and waits for them.
func (e *Explorer) Stop() {
	for _, p := range e.pollers {
		p.Stop()
	}
	e.pollers = nil
}
