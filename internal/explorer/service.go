package explorer

import (
	"context"
	"errors"

	"cosmosexplorer/internal/chainapi"
	"cosmosexplorer/internal/listview"

	"github.com/jellydator/validation"
)

// MiningPage is the mining view with the miners matching a query.
type MiningPage struct {
	Summary listview.PanelSnapshot[MiningData]
	Miners  []chainapi.Miner
}

// TokensPage is the token view with the holders matching a query.
type TokensPage struct {
	Summary           listview.PanelSnapshot[TokenData]
	Holders           listview.Snapshot[chainapi.Holder]
	TopHolders        []chainapi.Holder
	CirculatingSupply float64
}

// bring refreshes a view when asked to and otherwise loads it only once.
func bring(ctx context.Context, refresh bool, ensureFn, refreshFn func(context.Context) error) error {
	if refresh {
		return refreshFn(ctx)
	}
	return ensureFn(ctx)
}

// more loads the next page. A page discarded as stale is not a failure.
func more(ctx context.Context, loadMore func(context.Context) error) error {
	if err := loadMore(ctx); err != nil && !errors.Is(err, listview.ErrStale) {
		return err
	}
	return nil
}

// submit sends in through f and reports the resulting form state. A failed
// submit still carries in.
func submit[In validation.Validatable](ctx context.Context, f *Form[In], in In) (FormState[In], error) {
	err := f.SubmitInput(ctx, in)
	state := f.State()
	if err != nil {
		state.Input = in
	}
	return state, err
}

func (e *Explorer) DashboardView(ctx context.Context, refresh bool) (listview.PanelSnapshot[DashboardData], error) {
	err := bring(ctx, refresh, e.Dashboard.Ensure, e.Dashboard.Refresh)
	return e.Dashboard.Snapshot(), err
}

func (e *Explorer) BlocksView(ctx context.Context, refresh bool, q listview.Query) (listview.Snapshot[chainapi.Block], error) {
	err := bring(ctx, refresh, e.Blocks.Ensure, e.Blocks.Refresh)
	return e.Blocks.Snapshot(q), err
}

func (e *Explorer) MoreBlocks(ctx context.Context, q listview.Query) (listview.Snapshot[chainapi.Block], error) {
	err := more(ctx, e.Blocks.LoadMore)
	return e.Blocks.Snapshot(q), err
}

func (e *Explorer) LatestBlock(ctx context.Context) (chainapi.Block, error) {
	return e.Blocks.Latest(ctx)
}

// LookupBlock fetches a block by its full hash.
func (e *Explorer) LookupBlock(ctx context.Context, hash string) (chainapi.Block, error) {
	return e.Blocks.Lookup(ctx, hash)
}

func (e *Explorer) TransactionsView(ctx context.Context, refresh bool, q listview.Query) (listview.Snapshot[chainapi.Transaction], error) {
	err := bring(ctx, refresh, e.Transactions.Ensure, e.Transactions.Refresh)
	return e.Transactions.Snapshot(q), err
}

func (e *Explorer) MoreTransactions(ctx context.Context, q listview.Query) (listview.Snapshot[chainapi.Transaction], error) {
	err := more(ctx, e.Transactions.LoadMore)
	return e.Transactions.Snapshot(q), err
}

func (e *Explorer) PendingView(ctx context.Context, refresh bool) (listview.PanelSnapshot[[]chainapi.Transaction], error) {
	pending := e.Transactions.Pending()
	err := bring(ctx, refresh, pending.Ensure, pending.Refresh)
	return pending.Snapshot(), err
}

func (e *Explorer) WalletsView(ctx context.Context, refresh bool, q listview.Query) (listview.Snapshot[chainapi.Wallet], error) {
	err := bring(ctx, refresh, e.Wallets.Ensure, e.Wallets.Refresh)
	return e.Wallets.Snapshot(q), err
}

func (e *Explorer) WalletDetail(ctx context.Context, address string) (WalletDetail, error) {
	return e.Wallets.Detail(ctx, address)
}

func (e *Explorer) MiningView(ctx context.Context, refresh bool, q listview.Query) (MiningPage, error) {
	err := bring(ctx, refresh, e.Mining.Ensure, e.Mining.Refresh)
	return MiningPage{
		Summary: e.Mining.Snapshot(),
		Miners:  e.Mining.Miners(q),
	}, err
}

func (e *Explorer) MinerDetail(ctx context.Context, address string) (chainapi.Miner, error) {
	return e.Mining.Miner(ctx, address)
}

func (e *Explorer) TokensView(ctx context.Context, refresh bool, q listview.Query) (TokensPage, error) {
	err := bring(ctx, refresh, e.Tokens.Ensure, e.Tokens.Refresh)
	return TokensPage{
		Summary:           e.Tokens.Summary(),
		Holders:           e.Tokens.Holders(q),
		TopHolders:        e.Tokens.TopHolders(TopHolderCount),
		CirculatingSupply: e.Tokens.CirculatingSupply(),
	}, err
}

func (e *Explorer) SubmitTransfer(ctx context.Context, in TransferInput) (FormState[TransferInput], error) {
	return submit(ctx, e.Transfer, in)
}

func (e *Explorer) SubmitTokenOperation(ctx context.Context, in TokenOperationInput) (FormState[TokenOperationInput], error) {
	return submit(ctx, e.TokenOperation, in)
}

func (e *Explorer) SubmitRegisterMiner(ctx context.Context, in RegisterMinerInput) (FormState[RegisterMinerInput], error) {
	return submit(ctx, e.RegisterMiner, in)
}

func (e *Explorer) SubmitStartMining(ctx context.Context, in MinerInput) (FormState[MinerInput], error) {
	return submit(ctx, e.StartMining, in)
}

func (e *Explorer) SubmitStopMining(ctx context.Context, in MinerInput) (FormState[MinerInput], error) {
	return submit(ctx, e.StopMining, in)
}

func (e *Explorer) SubmitUnregisterMiner(ctx context.Context, in MinerInput) (FormState[MinerInput], error) {
	return submit(ctx, e.UnregisterMiner, in)
}

func (e *Explorer) SubmitCreateWallet(ctx context.Context) (FormState[CreateWalletInput], error) {
	return submit(ctx, e.CreateWallet, CreateWalletInput{})
}

func (e *Explorer) SubmitDeleteWallet(ctx context.Context, in WalletInput) (FormState[WalletInput], error) {
	return submit(ctx, e.DeleteWallet, in)
}
