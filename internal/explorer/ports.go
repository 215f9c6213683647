package explorer

import (
	"context"

	"cosmosexplorer/internal/chainapi"
	"cosmosexplorer/internal/notify"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Notifier . Notifier
type Notifier interface {
	Success(message string) notify.Notification
	Error(message string) notify.Notification
}

// Chain is the part of the remote API the views read and write.
type Chain interface {
	Info(ctx context.Context) (chainapi.BlockchainInfo, error)
	Blocks(ctx context.Context, limit, offset int) (chainapi.BlockPage, error)
	Block(ctx context.Context, hash string) (chainapi.Block, error)
	LatestBlock(ctx context.Context) (chainapi.Block, error)
	Transactions(ctx context.Context, limit int, txType string) (chainapi.TransactionPage, error)
	PendingTransactions(ctx context.Context) (chainapi.TransactionList, error)

	CreateWallet(ctx context.Context) (chainapi.WalletCreated, error)
	Wallets(ctx context.Context) (chainapi.WalletList, error)
	Wallet(ctx context.Context, address string) (chainapi.WalletDetail, error)
	Balances(ctx context.Context, addresses []string) (map[string]float64, error)
	DeleteWallet(ctx context.Context, address string) (chainapi.Acknowledgement, error)

	TokenInfo(ctx context.Context) (chainapi.TokenInfo, error)
	Mint(ctx context.Context, toAddress string, amount float64) (chainapi.Receipt, error)
	Burn(ctx context.Context, fromAddress string, amount float64) (chainapi.Receipt, error)
	Holders(ctx context.Context) (chainapi.HolderList, error)
	TokenStats(ctx context.Context) (chainapi.TokenStats, error)

	Transfer(ctx context.Context, fromAddress, toAddress string, amount float64) (chainapi.Receipt, error)
	TransferHistory(ctx context.Context, address string) (chainapi.TransactionList, error)
	EstimateFee(ctx context.Context, fromAddress, toAddress string, amount float64) (chainapi.FeeEstimate, error)

	RegisterMiner(ctx context.Context, minerAddress, minerName string) (chainapi.MinerRegistered, error)
	StartMining(ctx context.Context, minerAddress string) (chainapi.MiningStarted, error)
	StopMining(ctx context.Context, minerAddress string) (chainapi.MiningStopped, error)
	MiningStatus(ctx context.Context) (chainapi.MiningStatus, error)
	Miners(ctx context.Context) (chainapi.MinerList, error)
	Miner(ctx context.Context, address string) (chainapi.Miner, error)
	MiningStats(ctx context.Context) (chainapi.MiningStats, error)
	UnregisterMiner(ctx context.Context, minerAddress string) (chainapi.Acknowledgement, error)
}

var _ Chain = (*chainapi.Client)(nil)
