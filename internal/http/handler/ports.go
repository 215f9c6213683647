package handler

import (
	"context"
	"net/http"

	"cosmosexplorer/internal/chainapi"
	"cosmosexplorer/internal/explorer"
	"cosmosexplorer/internal/listview"
	"cosmosexplorer/internal/notify"

	"github.com/google/uuid"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

// ExplorerService reads the views and submits the forms. Views are brought
// up to date first: refreshed when refresh is set, loaded once otherwise.
//
//counterfeiter:generate -o fake -fake-name ExplorerService . ExplorerService
type ExplorerService interface {
	DashboardView(ctx context.Context, refresh bool) (listview.PanelSnapshot[explorer.DashboardData], error)
	BlocksView(ctx context.Context, refresh bool, q listview.Query) (listview.Snapshot[chainapi.Block], error)
	MoreBlocks(ctx context.Context, q listview.Query) (listview.Snapshot[chainapi.Block], error)
	LatestBlock(ctx context.Context) (chainapi.Block, error)
	LookupBlock(ctx context.Context, hash string) (chainapi.Block, error)
	TransactionsView(ctx context.Context, refresh bool, q listview.Query) (listview.Snapshot[chainapi.Transaction], error)
	MoreTransactions(ctx context.Context, q listview.Query) (listview.Snapshot[chainapi.Transaction], error)
	PendingView(ctx context.Context, refresh bool) (listview.PanelSnapshot[[]chainapi.Transaction], error)
	WalletsView(ctx context.Context, refresh bool, q listview.Query) (listview.Snapshot[chainapi.Wallet], error)
	WalletDetail(ctx context.Context, address string) (explorer.WalletDetail, error)
	MiningView(ctx context.Context, refresh bool, q listview.Query) (explorer.MiningPage, error)
	MinerDetail(ctx context.Context, address string) (chainapi.Miner, error)
	TokensView(ctx context.Context, refresh bool, q listview.Query) (explorer.TokensPage, error)
	EstimateFee(ctx context.Context, in explorer.TransferInput) (chainapi.FeeEstimate, error)

	SubmitTransfer(ctx context.Context, in explorer.TransferInput) (explorer.FormState[explorer.TransferInput], error)
	SubmitTokenOperation(ctx context.Context, in explorer.TokenOperationInput) (explorer.FormState[explorer.TokenOperationInput], error)
	SubmitRegisterMiner(ctx context.Context, in explorer.RegisterMinerInput) (explorer.FormState[explorer.RegisterMinerInput], error)
	SubmitStartMining(ctx context.Context, in explorer.MinerInput) (explorer.FormState[explorer.MinerInput], error)
	SubmitStopMining(ctx context.Context, in explorer.MinerInput) (explorer.FormState[explorer.MinerInput], error)
	SubmitUnregisterMiner(ctx context.Context, in explorer.MinerInput) (explorer.FormState[explorer.MinerInput], error)
	SubmitCreateWallet(ctx context.Context) (explorer.FormState[explorer.CreateWalletInput], error)
	SubmitDeleteWallet(ctx context.Context, in explorer.WalletInput) (explorer.FormState[explorer.WalletInput], error)
}

// NotificationStore is the read side of the notification bus.
type NotificationStore interface {
	Active() []notify.Notification
	Dismiss(id uuid.UUID) bool
}
