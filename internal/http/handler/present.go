package handler

import (
	"time"

	"cosmosexplorer/internal/chainapi"
	"cosmosexplorer/internal/explorer"
	"cosmosexplorer/internal/format"
	"cosmosexplorer/internal/listview"
)

// blockRow pairs the raw block with the strings the dashboard displays.
type blockRow struct {
	chainapi.Block
	ShortHash         string `json:"shortHash"`
	ShortPreviousHash string `json:"shortPreviousHash"`
	TransactionCount  int    `json:"transactionCount"`
	Time              string `json:"time"`
	Age               string `json:"age"`
}

type transactionRow struct {
	chainapi.Transaction
	ShortID    string `json:"shortId"`
	TypeLabel  string `json:"typeLabel"`
	From       string `json:"from"`
	To         string `json:"to"`
	AmountText string `json:"amountText"`
	Time       string `json:"time"`
	Age        string `json:"age"`
}

type walletRow struct {
	chainapi.Wallet
	ShortAddress string `json:"shortAddress"`
	BalanceText  string `json:"balanceText"`
}

type minerRow struct {
	chainapi.Miner
	ShortAddress string `json:"shortAddress"`
	Registered   string `json:"registered"`
	RewardsText  string `json:"rewardsText"`
}

type holderRow struct {
	chainapi.Holder
	Rank         int    `json:"rank"`
	ShortAddress string `json:"shortAddress"`
	BalanceText  string `json:"balanceText"`
	Share        string `json:"share"`
}

type listData[R any] struct {
	Items     []R            `json:"items"`
	State     listview.State `json:"state"`
	Loaded    bool           `json:"loaded"`
	Offset    int            `json:"offset"`
	HasMore   bool           `json:"hasMore"`
	Total     int64          `json:"total"`
	Error     string         `json:"error,omitempty"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Query     listview.Query `json:"query"`
}

func presentList[T, R any](s listview.Snapshot[T], q listview.Query, row func(T) R) listData[R] {
	return listData[R]{
		Items:     mapRows(s.Items, row),
		State:     s.State,
		Loaded:    s.Loaded,
		Offset:    s.Offset,
		HasMore:   s.HasMore,
		Total:     s.Total,
		Error:     s.Error,
		UpdatedAt: s.UpdatedAt,
		Query:     q,
	}
}

func mapRows[T, R any](items []T, row func(T) R) []R {
	rows := make([]R, len(items))
	for i, item := range items {
		rows[i] = row(item)
	}
	return rows
}

func presentBlock(now time.Time) func(chainapi.Block) blockRow {
	return func(b chainapi.Block) blockRow {
		return blockRow{
			Block:             b,
			ShortHash:         format.Hash(b.Hash),
			ShortPreviousHash: format.Hash(b.PreviousHash),
			TransactionCount:  len(b.Transactions),
			Time:              format.Timestamp(b.Timestamp),
			Age:               format.TimeAgo(b.Timestamp, now),
		}
	}
}

func presentTransaction(now time.Time) func(chainapi.Transaction) transactionRow {
	return func(tx chainapi.Transaction) transactionRow {
		return transactionRow{
			Transaction: tx,
			ShortID:     format.Hash(tx.ID),
			TypeLabel:   format.TransactionType(tx.Type),
			From:        format.Party(tx.FromAddress, "System"),
			To:          format.Party(tx.ToAddress, "Burned"),
			AmountText:  format.Balance(tx.Amount),
			Time:        format.Timestamp(tx.Timestamp),
			Age:         format.TimeAgo(tx.Timestamp, now),
		}
	}
}

func presentWallet(w chainapi.Wallet) walletRow {
	row := walletRow{
		Wallet:       w,
		ShortAddress: format.Address(w.Address, format.ShortAddress),
		BalanceText:  "-",
	}
	if w.Balance != nil {
		row.BalanceText = format.Balance(*w.Balance)
	}
	return row
}

func presentMiner(now time.Time) func(chainapi.Miner) minerRow {
	return func(m chainapi.Miner) minerRow {
		return minerRow{
			Miner:        m,
			ShortAddress: format.Address(m.Address, format.ShortAddress),
			Registered:   format.TimeAgo(m.RegisteredAt, now),
			RewardsText:  format.Balance(m.TotalRewards),
		}
	}
}

func presentHolders(holders []chainapi.Holder, circulating float64) []holderRow {
	rows := make([]holderRow, len(holders))
	for i, h := range holders {
		rows[i] = holderRow{
			Holder:       h,
			Rank:         i + 1,
			ShortAddress: format.Address(h.Address, format.ShortAddress),
			BalanceText:  format.Balance(h.Balance),
			Share:        format.Share(h.Balance, circulating),
		}
	}
	return rows
}

type dashboardStats struct {
	Height              int64  `json:"height"`
	Difficulty          int64  `json:"difficulty"`
	PendingTransactions int64  `json:"pendingTransactions"`
	TotalSupply         string `json:"totalSupply"`
	CirculatingSupply   string `json:"circulatingSupply"`
	Circulating         string `json:"circulating"`
}

type dashboardData struct {
	Stats        dashboardStats          `json:"stats"`
	Info         chainapi.BlockchainInfo `json:"info"`
	Blocks       []blockRow              `json:"blocks"`
	Transactions []transactionRow        `json:"transactions"`
	State        listview.State          `json:"state"`
	Loaded       bool                    `json:"loaded"`
	Error        string                  `json:"error,omitempty"`
	UpdatedAt    time.Time               `json:"updatedAt"`
}

func presentDashboard(s listview.PanelSnapshot[explorer.DashboardData], now time.Time) dashboardData {
	info := s.Value.Info
	return dashboardData{
		Stats: dashboardStats{
			Height:              s.Value.Height(),
			Difficulty:          info.Difficulty,
			PendingTransactions: info.PendingTransactions,
			TotalSupply:         format.Balance(info.TotalSupply),
			CirculatingSupply:   format.Balance(info.CirculatingSupply),
			Circulating:         format.Share(info.CirculatingSupply, info.TotalSupply),
		},
		Info:         info,
		Blocks:       mapRows(s.Value.Blocks, presentBlock(now)),
		Transactions: mapRows(s.Value.Transactions, presentTransaction(now)),
		State:        s.State,
		Loaded:       s.Loaded,
		Error:        s.Error,
		UpdatedAt:    s.UpdatedAt,
	}
}

type miningData struct {
	Status              chainapi.MiningStatus `json:"status"`
	Stats               chainapi.MiningStats  `json:"stats"`
	Miners              []minerRow            `json:"miners"`
	RegisteredMiners    []minerRow            `json:"registeredMiners"`
	UnregisteredWallets []walletRow           `json:"unregisteredWallets"`
	CurrentMiner        string                `json:"currentMiner,omitempty"`
	Rewards             string                `json:"rewards"`
	State               listview.State        `json:"state"`
	Loaded              bool                  `json:"loaded"`
	Error               string                `json:"error,omitempty"`
	UpdatedAt           time.Time             `json:"updatedAt"`
	Query               listview.Query        `json:"query"`
}

func presentMining(page explorer.MiningPage, q listview.Query, now time.Time) miningData {
	s := page.Summary
	current, _ := s.Value.CurrentMiner()
	return miningData{
		Status:              s.Value.Status,
		Stats:               s.Value.Stats,
		Miners:              mapRows(page.Miners, presentMiner(now)),
		RegisteredMiners:    mapRows(s.Value.RegisteredMiners(), presentMiner(now)),
		UnregisteredWallets: mapRows(s.Value.UnregisteredWallets(), presentWallet),
		CurrentMiner:        current,
		Rewards:             format.Balance(s.Value.Stats.TotalRewardsDistributed),
		State:               s.State,
		Loaded:              s.Loaded,
		Error:               s.Error,
		UpdatedAt:           s.UpdatedAt,
		Query:               q,
	}
}

type tokensData struct {
	Info              chainapi.TokenInfo  `json:"info"`
	Stats             chainapi.TokenStats `json:"stats"`
	TotalSupply       string              `json:"totalSupply"`
	CirculatingSupply string              `json:"circulatingSupply"`
	TopHolders        []holderRow         `json:"topHolders"`
	Holders           listData[holderRow] `json:"holders"`
	State             listview.State      `json:"state"`
	Loaded            bool                `json:"loaded"`
	Error             string              `json:"error,omitempty"`
}

func presentTokens(page explorer.TokensPage, q listview.Query) tokensData {
	summary := page.Summary
	circulating := page.CirculatingSupply
	list := page.Holders

	return tokensData{
		Info:              summary.Value.Info,
		Stats:             summary.Value.Stats,
		TotalSupply:       format.Balance(summary.Value.Info.TotalSupply),
		CirculatingSupply: format.Balance(circulating),
		TopHolders:        presentHolders(page.TopHolders, circulating),
		Holders: listData[holderRow]{
			Items:     presentHolders(list.Items, circulating),
			State:     list.State,
			Loaded:    list.Loaded,
			Offset:    list.Offset,
			HasMore:   list.HasMore,
			Total:     list.Total,
			Error:     list.Error,
			UpdatedAt: list.UpdatedAt,
			Query:     q,
		},
		State:  summary.State,
		Loaded: summary.Loaded,
		Error:  summary.Error,
	}
}
