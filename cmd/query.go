package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"cosmosexplorer/internal/chainapi"
	"cosmosexplorer/internal/explorer"
	"cosmosexplorer/internal/format"
	"cosmosexplorer/internal/listview"
	"cosmosexplorer/pkg/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

// QueryClient is the part of the chain API the one-shot commands read.
type QueryClient interface {
	Info(ctx context.Context) (chainapi.BlockchainInfo, error)
	Blocks(ctx context.Context, limit, offset int) (chainapi.BlockPage, error)
	Transactions(ctx context.Context, limit int, txType string) (chainapi.TransactionPage, error)
	MiningStatus(ctx context.Context) (chainapi.MiningStatus, error)
}

func queryClient(opts *rootOptions) (QueryClient, time.Duration, error) {
	cfg, err := opts.load()
	if err != nil {
		return nil, 0, err
	}
	logger := log.NewZapLogger("explorer", zapcore.ErrorLevel)
	return newClient(logger, cfg), cfg.APITimeout(), nil
}

func newBlocksCmd(opts *rootOptions) *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "blocks",
		Short: "Print the newest blocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, timeout, err := queryClient(opts)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			return PrintBlocks(ctx, cmd.OutOrStdout(), client, limit, offset, time.Now())
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of blocks")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of blocks to skip")
	return cmd
}

func newTransactionsCmd(opts *rootOptions) *cobra.Command {
	var (
		limit  int
		txType string
		search string
	)

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Print the newest transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !explorer.ValidTransactionType(txType) {
				return fmt.Errorf("unknown transaction type %q", txType)
			}
			client, timeout, err := queryClient(opts)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			q := listview.Query{Search: search, Type: txType}
			return PrintTransactions(ctx, cmd.OutOrStdout(), client, limit, q, time.Now())
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "number of transactions to fetch")
	cmd.Flags().StringVar(&txType, "type", listview.AllTypes, "transfer, mint, burn, mine or all")
	cmd.Flags().StringVar(&search, "search", "", "address or id fragment")
	return cmd
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the chain and mining status",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, timeout, err := queryClient(opts)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			return PrintStatus(ctx, cmd.OutOrStdout(), client)
		},
	}
}

func PrintBlocks(ctx context.Context, out io.Writer, client QueryClient, limit, offset int, now time.Time) error {
	page, err := client.Blocks(ctx, limit, offset)
	if err != nil {
		return fmt.Errorf("fetch blocks: %s", chainapi.Message(err))
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "HEIGHT\tHASH\tTXS\tAGE")
	for _, b := range page.Blocks {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", b.Height, format.Hash(b.Hash), len(b.Transactions), format.TimeAgo(b.Timestamp, now))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if page.HasMore {
		fmt.Fprintf(out, "%d of %d blocks, more with --offset %d\n", len(page.Blocks), page.Total, offset+limit)
	}
	return nil
}

// PrintTransactions fetches limit transactions and filters them the way the dashboard does.
func PrintTransactions(ctx context.Context, out io.Writer, client QueryClient, limit int, q listview.Query, now time.Time) error {
	page, err := client.Transactions(ctx, limit, "")
	if err != nil {
		return fmt.Errorf("fetch transactions: %s", chainapi.Message(err))
	}

	txs := listview.Filter(page.Transactions, q, func(tx chainapi.Transaction) []string {
		return []string{party(tx.FromAddress), party(tx.ToAddress), tx.ID}
	}, func(tx chainapi.Transaction) string {
		return tx.Type
	})

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tFROM\tTO\tAMOUNT\tAGE")
	for _, tx := range txs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			format.Hash(tx.ID),
			format.TransactionType(tx.Type),
			format.Party(tx.FromAddress, "System"),
			format.Party(tx.ToAddress, "Burned"),
			format.Balance(tx.Amount),
			format.TimeAgo(tx.Timestamp, now))
	}
	return tw.Flush()
}

func PrintStatus(ctx context.Context, out io.Writer, client QueryClient) error {
	var (
		info   chainapi.BlockchainInfo
		status chainapi.MiningStatus
	)
	err := listview.Batch(ctx,
		func(ctx context.Context) (err error) {
			info, err = client.Info(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			status, err = client.MiningStatus(ctx)
			return err
		},
	)
	if err != nil {
		return fmt.Errorf("fetch status: %s", chainapi.Message(err))
	}

	miner := "idle"
	if status.IsMining && status.CurrentMiner != nil {
		miner = format.Address(*status.CurrentMiner, format.ShortAddress)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "height\t%d\n", max(info.Length-1, 0))
	fmt.Fprintf(tw, "difficulty\t%d\n", info.Difficulty)
	fmt.Fprintf(tw, "pending\t%d\n", info.PendingTransactions)
	fmt.Fprintf(tw, "total supply\t%s\n", format.Balance(info.TotalSupply))
	fmt.Fprintf(tw, "circulating\t%s (%s)\n", format.Balance(info.CirculatingSupply), format.Share(info.CirculatingSupply, info.TotalSupply))
	fmt.Fprintf(tw, "miner\t%s\n", miner)
	return tw.Flush()
}

func party(addr *string) string {
	if addr == nil {
		return ""
	}
	return *addr
}
