package explorer

import (
	"context"
	"slices"

	"cosmosexplorer/internal/chainapi"
	"cosmosexplorer/internal/listview"

	"go.uber.org/zap"
)

// TransactionTypes are the values accepted by the type filter.
var TransactionTypes = []string{
	listview.AllTypes,
	chainapi.TxTransfer,
	chainapi.TxMint,
	chainapi.TxBurn,
	chainapi.TxMine,
}

func ValidTransactionType(t string) bool {
	return t == "" || slices.Contains(TransactionTypes, t)
}

// Transactions lists confirmed transactions. The endpoint takes a limit but
// no offset, so each further page asks for a longer prefix.
type Transactions struct {
	*listview.Pager[chainapi.Transaction]
	pending *listview.Panel[[]chainapi.Transaction]
}

// NewTransactions is a constructor function for the Transactions type.
func NewTransactions(logger *zap.SugaredLogger, chain Chain, notifier Notifier, pageSize int) *Transactions {
	logger = logger.Named("transactions")

	pager := listview.NewPager(logger, notifier, listview.Config[chainapi.Transaction]{
		Name:     "transactions",
		PageSize: pageSize,
		Fetch: listview.Window(func(ctx context.Context, limit int) ([]chainapi.Transaction, int64, error) {
			page, err := chain.Transactions(ctx, limit, "")
			if err != nil {
				return nil, 0, err
			}
			return page.Transactions, page.Total, nil
		}),
		Key: func(tx chainapi.Transaction) string { return tx.ID },
		Fields: func(tx chainapi.Transaction) []string {
			return []string{deref(tx.FromAddress), deref(tx.ToAddress), tx.ID}
		},
		Type:     func(tx chainapi.Transaction) string { return tx.Type },
		Describe: failedToFetch("transactions"),
	})

	pending := listview.NewPanel(logger, notifier, "pending transactions",
		func(ctx context.Context) ([]chainapi.Transaction, error) {
			list, err := chain.PendingTransactions(ctx)
			if err != nil {
				return nil, err
			}
			return list.Transactions, nil
		}, failedToFetch("pending transactions"))

	return &Transactions{
		Pager:   pager,
		pending: pending,
	}
}

func (t *Transactions) Pending() *listview.Panel[[]chainapi.Transaction] {
	return t.pending
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
