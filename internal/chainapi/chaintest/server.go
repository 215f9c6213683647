// Package chaintest serves an in-memory rendition of the remote chain API for tests.
package chaintest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"time"

	"cosmosexplorer/internal/chainapi"
)

type failure struct {
	status int
	body   string
}

// Server is an httptest server backed by mutable chain state.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	seq      int64
	blocks   []chainapi.Block // oldest first
	txs      []chainapi.Transaction
	pending  []chainapi.Transaction
	wallets  []chainapi.Wallet
	balances map[string]float64
	miners   []chainapi.Miner
	status   chainapi.MiningStatus
	token    chainapi.TokenInfo
	failures map[string]failure
	requests []string
	bare     bool
}

func NewServer() *Server {
	s := &Server{
		balances: make(map[string]float64),
		failures: make(map[string]failure),
		token: chainapi.TokenInfo{
			Name:        "Cosmos Token",
			Symbol:      "COSMO",
			TotalSupply: 1000000,
			Decimal:     6,
		},
		status: chainapi.MiningStatus{Difficulty: 2, MiningReward: 100},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /blockchain/info", s.handleInfo)
	mux.HandleFunc("GET /blockchain/blocks", s.handleBlocks)
	mux.HandleFunc("GET /blockchain/blocks/latest", s.handleLatestBlock)
	mux.HandleFunc("GET /blockchain/blocks/{hash}", s.handleBlock)
	mux.HandleFunc("GET /blockchain/transactions", s.handleTransactions)
	mux.HandleFunc("GET /blockchain/transactions/pending", s.handlePending)
	mux.HandleFunc("POST /wallets/create", s.handleCreateWallet)
	mux.HandleFunc("GET /wallets", s.handleWallets)
	mux.HandleFunc("GET /wallets/{address}", s.handleWallet)
	mux.HandleFunc("GET /wallets/{address}/balance", s.handleBalance)
	mux.HandleFunc("DELETE /wallets/{address}", s.handleDeleteWallet)
	mux.HandleFunc("GET /tokens/info", s.handleTokenInfo)
	mux.HandleFunc("POST /tokens/mint", s.handleMint)
	mux.HandleFunc("POST /tokens/burn", s.handleBurn)
	mux.HandleFunc("GET /tokens/holders", s.handleHolders)
	mux.HandleFunc("GET /tokens/stats", s.handleTokenStats)
	mux.HandleFunc("POST /transfers", s.handleTransfer)
	mux.HandleFunc("GET /transfers/{address}/history", s.handleHistory)
	mux.HandleFunc("POST /transfers/estimate-fee", s.handleEstimateFee)
	mux.HandleFunc("GET /transfers/pending", s.handlePending)
	mux.HandleFunc("POST /mining/register", s.handleRegister)
	mux.HandleFunc("POST /mining/start", s.handleStart)
	mux.HandleFunc("POST /mining/stop", s.handleStop)
	mux.HandleFunc("GET /mining/status", s.handleStatus)
	mux.HandleFunc("GET /mining/miners", s.handleMiners)
	mux.HandleFunc("GET /mining/miners/{address}", s.handleMiner)
	mux.HandleFunc("GET /mining/stats", s.handleMiningStats)
	mux.HandleFunc("DELETE /mining/{address}", s.handleUnregister)

	s.Server = httptest.NewServer(s.intercept(mux))
	return s
}

// intercept records every request and answers injected failures before the real handler runs.
func (s *Server) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path

		s.mu.Lock()
		entry := key
		if r.URL.RawQuery != "" {
			entry += "?" + r.URL.RawQuery
		}
		s.requests = append(s.requests, entry)
		f, failing := s.failures[key]
		s.mu.Unlock()

		if failing {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(f.status)
			_, _ = w.Write([]byte(f.body))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Fail makes every request to "METHOD /path" answer with status and a raw body until Recover is called.
func (s *Server) Fail(route string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = failure{status: status, body: body}
}

func (s *Server) Recover(route string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failures, route)
}

// Requests lists the requests received so far as "METHOD /path?query".
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *Server) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

// AddBlocks appends n empty blocks.
func (s *Server) AddBlocks(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < n; i++ {
		s.appendBlock("", nil)
	}
}

// AddWallet registers a wallet holding balance and returns its address.
func (s *Server) AddWallet(balance float64) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addWallet(balance).Address
}

// AddTransactions appends n confirmed transactions of type txType.
func (s *Server) AddTransactions(n int, txType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < n; i++ {
		to := s.hash("to")[:40]
		s.recordTx(chainapi.Transaction{Type: txType, ToAddress: &to, Amount: 1})
	}
}

// OmitBalances makes the wallet list leave out balances, as older servers do.
func (s *Server) OmitBalances() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bare = true
}

func (s *Server) TransactionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.txs)
}

func (s *Server) Balance(address string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[address]
}

func (s *Server) hash(salt string) string {
	s.seq++
	sum := sha256.Sum256([]byte(salt + strconv.FormatInt(s.seq, 10)))
	return hex.EncodeToString(sum[:])
}

func (s *Server) now() int64 {
	return time.Now().UnixMilli()
}

func (s *Server) appendBlock(miner string, txs []chainapi.Transaction) chainapi.Block {
	prev := "0"
	if len(s.blocks) > 0 {
		prev = s.blocks[len(s.blocks)-1].Hash
	}
	if txs == nil {
		txs = []chainapi.Transaction{}
	}
	block := chainapi.Block{
		Hash:         s.hash("block"),
		PreviousHash: prev,
		Height:       int64(len(s.blocks)),
		Timestamp:    s.now(),
		Nonce:        s.seq,
		Transactions: txs,
		Miner:        miner,
	}
	s.blocks = append(s.blocks, block)
	return block
}

func (s *Server) addWallet(balance float64) chainapi.Wallet {
	w := chainapi.Wallet{
		ID:        s.hash("id")[:16],
		Address:   s.hash("wallet")[:40],
		PublicKey: s.hash("pub"),
	}
	s.wallets = append(s.wallets, w)
	s.balances[w.Address] = balance
	s.token.CirculatingSupply += balance
	return w
}

func (s *Server) recordTx(tx chainapi.Transaction) chainapi.Transaction {
	tx.ID = s.hash("tx")
	tx.Timestamp = s.now()
	s.txs = append([]chainapi.Transaction{tx}, s.txs...)
	return tx
}

func (s *Server) walletIndex(address string) int {
	for i, w := range s.wallets {
		if w.Address == address {
			return i
		}
	}
	return -1
}

func (s *Server) minerIndex(address string) int {
	for i, m := range s.miners {
		if m.Address == address {
			return i
		}
	}
	return -1
}

func writeData(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func writeFailure(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": msg})
}

func intParam(r *http.Request, name string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return fallback
	}
	return v
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := s.token
	writeData(w, chainapi.BlockchainInfo{
		Length:              int64(len(s.blocks)),
		Difficulty:          s.status.Difficulty,
		TotalSupply:         s.token.TotalSupply,
		CirculatingSupply:   s.token.CirculatingSupply,
		PendingTransactions: int64(len(s.pending)),
		Token:               &token,
	})
}

func (s *Server) handleBlocks(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	limit := intParam(r, "limit", 10)
	offset := intParam(r, "offset", 0)

	newest := make([]chainapi.Block, 0, len(s.blocks))
	for i := len(s.blocks) - 1; i >= 0; i-- {
		newest = append(newest, s.blocks[i])
	}
	page := []chainapi.Block{}
	if offset < len(newest) {
		end := offset + limit
		if end > len(newest) {
			end = len(newest)
		}
		page = newest[offset:end]
	}
	writeData(w, chainapi.BlockPage{
		Blocks:  page,
		Total:   int64(len(newest)),
		HasMore: offset+len(page) < len(newest),
	})
}

func (s *Server) handleLatestBlock(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.blocks) == 0 {
		writeFailure(w, http.StatusNotFound, "chain is empty")
		return
	}
	writeData(w, s.blocks[len(s.blocks)-1])
}

func (s *Server) handleBlock(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	hash := r.PathValue("hash")
	for _, b := range s.blocks {
		if b.Hash == hash {
			writeData(w, b)
			return
		}
	}
	writeFailure(w, http.StatusNotFound, "block not found")
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	limit := intParam(r, "limit", 20)
	txType := r.URL.Query().Get("type")

	matching := make([]chainapi.Transaction, 0, len(s.txs))
	for _, tx := range s.txs {
		if txType == "" || tx.Type == txType {
			matching = append(matching, tx)
		}
	}
	page := matching
	if len(page) > limit {
		page = page[:limit]
	}
	writeData(w, chainapi.TransactionPage{Transactions: page, Total: int64(len(matching))})
}

func (s *Server) handlePending(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pending := append([]chainapi.Transaction{}, s.pending...)
	writeData(w, chainapi.TransactionList{Transactions: pending, Count: int64(len(pending))})
}

func (s *Server) handleCreateWallet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wallet := s.addWallet(0)
	writeData(w, chainapi.WalletCreated{Wallet: wallet, Message: "wallet created"})
}

func (s *Server) handleWallets(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wallets := make([]chainapi.Wallet, len(s.wallets))
	for i, wallet := range s.wallets {
		if !s.bare {
			balance := s.balances[wallet.Address]
			wallet.Balance = &balance
		}
		wallets[i] = wallet
	}
	writeData(w, chainapi.WalletList{Wallets: wallets, Count: int64(len(wallets))})
}

func (s *Server) handleWallet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.walletIndex(r.PathValue("address"))
	if i < 0 {
		writeFailure(w, http.StatusNotFound, "wallet not found")
		return
	}
	wallet := s.wallets[i]
	writeData(w, chainapi.WalletDetail{Wallet: wallet, Balance: s.balances[wallet.Address]})
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	address := r.PathValue("address")
	if s.walletIndex(address) < 0 {
		writeFailure(w, http.StatusNotFound, "wallet not found")
		return
	}
	writeData(w, chainapi.Balance{Address: address, Balance: s.balances[address]})
}

func (s *Server) handleDeleteWallet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	address := r.PathValue("address")
	i := s.walletIndex(address)
	if i < 0 {
		writeFailure(w, http.StatusNotFound, "wallet not found")
		return
	}
	s.wallets = append(s.wallets[:i], s.wallets[i+1:]...)
	delete(s.balances, address)
	writeData(w, chainapi.Acknowledgement{Message: "wallet deleted"})
}

func (s *Server) handleTokenInfo(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeData(w, s.token)
}

type amountBody struct {
	FromAddress  string  `json:"fromAddress"`
	ToAddress    string  `json:"toAddress"`
	MinerAddress string  `json:"minerAddress"`
	MinerName    string  `json:"minerName"`
	Amount       float64 `json:"amount"`
}

func decodeBody(w http.ResponseWriter, r *http.Request) (amountBody, bool) {
	var body amountBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body")
		return body, false
	}
	return body, true
}

func (s *Server) handleMint(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.walletIndex(body.ToAddress) < 0 {
		writeFailure(w, http.StatusNotFound, "wallet not found")
		return
	}
	if body.Amount <= 0 {
		writeFailure(w, http.StatusBadRequest, "amount must be positive")
		return
	}
	if s.token.CirculatingSupply+body.Amount > s.token.TotalSupply {
		writeFailure(w, http.StatusBadRequest, "insufficient supply")
		return
	}
	s.balances[body.ToAddress] += body.Amount
	s.token.CirculatingSupply += body.Amount
	to := body.ToAddress
	tx := s.recordTx(chainapi.Transaction{Type: chainapi.TxMint, ToAddress: &to, Amount: body.Amount})
	writeData(w, chainapi.Receipt{Transaction: tx, Message: "tokens minted"})
}

func (s *Server) handleBurn(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.walletIndex(body.FromAddress) < 0 {
		writeFailure(w, http.StatusNotFound, "wallet not found")
		return
	}
	if s.balances[body.FromAddress] < body.Amount {
		writeFailure(w, http.StatusBadRequest, "insufficient balance")
		return
	}
	s.balances[body.FromAddress] -= body.Amount
	s.token.CirculatingSupply -= body.Amount
	from := body.FromAddress
	tx := s.recordTx(chainapi.Transaction{Type: chainapi.TxBurn, FromAddress: &from, Amount: body.Amount})
	writeData(w, chainapi.Receipt{Transaction: tx, Message: "tokens burned"})
}

func (s *Server) holders() []chainapi.Holder {
	holders := make([]chainapi.Holder, 0, len(s.wallets))
	for _, wallet := range s.wallets {
		if b := s.balances[wallet.Address]; b > 0 {
			holders = append(holders, chainapi.Holder{Address: wallet.Address, Balance: b})
		}
	}
	sort.SliceStable(holders, func(i, j int) bool { return holders[i].Balance > holders[j].Balance })
	return holders
}

func (s *Server) handleHolders(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	holders := s.holders()
	writeData(w, chainapi.HolderList{Holders: holders, Count: int64(len(holders))})
}

func (s *Server) handleTokenStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	holders := s.holders()
	top := holders
	if len(top) > 10 {
		top = top[:10]
	}
	avg := 0.0
	if len(holders) > 0 {
		avg = s.token.CirculatingSupply / float64(len(holders))
	}
	writeData(w, chainapi.TokenStats{
		TokenInfo:      s.token,
		Holders:        int64(len(holders)),
		TopHolders:     top,
		AverageBalance: strconv.FormatFloat(avg, 'f', 2, 64),
	})
}

func (s *Server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.walletIndex(body.FromAddress) < 0 {
		writeFailure(w, http.StatusNotFound, "sender wallet not found")
		return
	}
	if s.balances[body.FromAddress] < body.Amount {
		writeFailure(w, http.StatusBadRequest, "insufficient balance")
		return
	}
	s.balances[body.FromAddress] -= body.Amount
	s.balances[body.ToAddress] += body.Amount
	from, to := body.FromAddress, body.ToAddress
	tx := s.recordTx(chainapi.Transaction{Type: chainapi.TxTransfer, FromAddress: &from, ToAddress: &to, Amount: body.Amount})
	writeData(w, chainapi.Receipt{Transaction: tx, Message: "transfer submitted"})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	address := r.PathValue("address")
	history := []chainapi.Transaction{}
	for _, tx := range s.txs {
		if (tx.FromAddress != nil && *tx.FromAddress == address) || (tx.ToAddress != nil && *tx.ToAddress == address) {
			history = append(history, tx)
		}
	}
	writeData(w, chainapi.TransactionList{Transactions: history, Count: int64(len(history))})
}

func (s *Server) handleEstimateFee(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}
	fee := body.Amount * 0.001
	writeData(w, chainapi.FeeEstimate{Fee: fee, Total: body.Amount + fee})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.walletIndex(body.MinerAddress) < 0 {
		writeFailure(w, http.StatusNotFound, "wallet not found")
		return
	}
	if s.minerIndex(body.MinerAddress) >= 0 {
		writeFailure(w, http.StatusConflict, "miner already registered")
		return
	}
	miner := chainapi.Miner{Address: body.MinerAddress, Name: body.MinerName, RegisteredAt: s.now()}
	s.miners = append(s.miners, miner)
	writeData(w, chainapi.MinerRegistered{Miner: miner, Message: "miner registered"})
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.minerIndex(body.MinerAddress)
	if i < 0 {
		writeFailure(w, http.StatusNotFound, "miner not registered")
		return
	}
	if s.status.IsMining {
		writeFailure(w, http.StatusConflict, "mining already in progress")
		return
	}
	address := body.MinerAddress
	started := s.now()
	s.status.IsMining = true
	s.status.CurrentMiner = &address
	s.status.MiningStartTime = &started
	s.miners[i].IsActive = true
	writeData(w, chainapi.MiningStarted{
		Message:             "mining started",
		MinerAddress:        address,
		PendingTransactions: int64(len(s.pending)),
		Difficulty:          s.status.Difficulty,
	})
}

func (s *Server) handleStop(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.status.IsMining || s.status.CurrentMiner == nil || *s.status.CurrentMiner != body.MinerAddress {
		writeFailure(w, http.StatusConflict, "miner is not mining")
		return
	}
	if i := s.minerIndex(body.MinerAddress); i >= 0 {
		s.miners[i].IsActive = false
	}
	s.status.IsMining = false
	s.status.CurrentMiner = nil
	s.status.MiningStartTime = nil
	writeData(w, chainapi.MiningStopped{Message: "mining stopped", MinerAddress: body.MinerAddress})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status := s.status
	status.PendingTransactions = int64(len(s.pending))
	writeData(w, status)
}

func (s *Server) handleMiners(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	miners := append([]chainapi.Miner{}, s.miners...)
	writeData(w, chainapi.MinerList{Miners: miners, Count: int64(len(miners))})
}

func (s *Server) handleMiner(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.minerIndex(r.PathValue("address"))
	if i < 0 {
		writeFailure(w, http.StatusNotFound, "miner not found")
		return
	}
	writeData(w, s.miners[i])
}

func (s *Server) handleMiningStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var active, mined int64
	var rewards float64
	for _, m := range s.miners {
		if m.IsActive {
			active++
		}
		mined += m.BlocksMinedCount
		rewards += m.TotalRewards
	}
	var last int64
	if len(s.blocks) > 0 {
		last = s.blocks[len(s.blocks)-1].Timestamp
	}
	writeData(w, chainapi.MiningStats{
		TotalMiners:             int64(len(s.miners)),
		ActiveMiners:            active,
		TotalBlocksMined:        mined,
		TotalRewardsDistributed: rewards,
		NetworkHashrate:         fmt.Sprintf("%d H/s", s.status.Difficulty*1000),
		AverageBlockTime:        "10s",
		Difficulty:              s.status.Difficulty,
		LastBlockTime:           last,
		ChainLength:             int64(len(s.blocks)),
	})
}

func (s *Server) handleUnregister(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.minerIndex(r.PathValue("address"))
	if i < 0 {
		writeFailure(w, http.StatusNotFound, "miner not found")
		return
	}
	s.miners = append(s.miners[:i], s.miners[i+1:]...)
	writeData(w, chainapi.Acknowledgement{Message: "miner unregistered"})
}
