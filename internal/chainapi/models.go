package chainapi

// Transaction types reported by the remote chain.
const (
	TxTransfer = "transfer"
	TxMint     = "mint"
	TxBurn     = "burn"
	TxMine     = "mine"
)

// Transaction is a ledger entry. A nil FromAddress marks a system issuance,
// a nil ToAddress marks a burn.
type Transaction struct {
	ID          string  `json:"id"`
	FromAddress *string `json:"fromAddress"`
	ToAddress   *string `json:"toAddress"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Timestamp   int64   `json:"timestamp"`
	Signature   *string `json:"signature,omitempty"`
}

// Block links to its predecessor by hash only.
type Block struct {
	Hash          string        `json:"hash"`
	PreviousHash  string        `json:"previousHash"`
	Height        int64         `json:"height"`
	Timestamp     int64         `json:"timestamp"`
	Nonce         int64         `json:"nonce"`
	Transactions  []Transaction `json:"transactions"`
	Miner         string        `json:"miner,omitempty"`
	Confirmations int64         `json:"confirmations,omitempty"`
}

type Wallet struct {
	ID        string   `json:"id"`
	Address   string   `json:"address"`
	PublicKey string   `json:"publicKey"`
	Balance   *float64 `json:"balance,omitempty"`
}

type Miner struct {
	Address          string  `json:"address"`
	Name             string  `json:"name"`
	RegisteredAt     int64   `json:"registeredAt"`
	BlocksMinedCount int64   `json:"blocksMinedCount"`
	TotalRewards     float64 `json:"totalRewards"`
	IsActive         bool    `json:"isActive"`
	LastBlockTime    int64   `json:"lastBlockTime,omitempty"`
	CurrentBalance   float64 `json:"currentBalance,omitempty"`
}

type MiningStatus struct {
	IsMining             bool    `json:"isMining"`
	CurrentMiner         *string `json:"currentMiner"`
	MiningStartTime      *int64  `json:"miningStartTime"`
	Difficulty           int64   `json:"difficulty"`
	PendingTransactions  int64   `json:"pendingTransactions"`
	MiningReward         float64 `json:"miningReward"`
	EstimatedTimeToBlock *int64  `json:"estimatedTimeToBlock,omitempty"`
}

type MiningStats struct {
	TotalMiners             int64   `json:"totalMiners"`
	ActiveMiners            int64   `json:"activeMiners"`
	TotalBlocksMined        int64   `json:"totalBlocksMined"`
	TotalRewardsDistributed float64 `json:"totalRewardsDistributed"`
	NetworkHashrate         string  `json:"networkHashrate"`
	AverageBlockTime        string  `json:"averageBlockTime"`
	Difficulty              int64   `json:"difficulty"`
	LastBlockTime           int64   `json:"lastBlockTime"`
	ChainLength             int64   `json:"chainLength"`
}

type TokenInfo struct {
	Name              string  `json:"name"`
	Symbol            string  `json:"symbol"`
	TotalSupply       float64 `json:"totalSupply"`
	CirculatingSupply float64 `json:"circulatingSupply"`
	Decimal           int     `json:"decimal"`
}

type BlockchainInfo struct {
	Length              int64      `json:"length"`
	Difficulty          int64      `json:"difficulty"`
	TotalSupply         float64    `json:"totalSupply"`
	CirculatingSupply   float64    `json:"circulatingSupply"`
	PendingTransactions int64      `json:"pendingTransactions"`
	IsValid             *bool      `json:"isValid,omitempty"`
	Token               *TokenInfo `json:"token,omitempty"`
}

type Holder struct {
	Address string  `json:"address"`
	Balance float64 `json:"balance"`
}

type TokenStats struct {
	TokenInfo      TokenInfo `json:"tokenInfo"`
	Holders        int64     `json:"holders"`
	TopHolders     []Holder  `json:"topHolders"`
	AverageBalance string    `json:"averageBalance"`
}

type BlockPage struct {
	Blocks  []Block `json:"blocks"`
	Total   int64   `json:"total"`
	HasMore bool    `json:"hasMore"`
}

type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	Total        int64         `json:"total"`
}

type TransactionList struct {
	Transactions []Transaction `json:"transactions"`
	Count        int64         `json:"count"`
}

type WalletList struct {
	Wallets []Wallet `json:"wallets"`
	Count   int64    `json:"count"`
}

type WalletCreated struct {
	Wallet  Wallet `json:"wallet"`
	Message string `json:"message"`
}

type WalletDetail struct {
	Wallet  Wallet  `json:"wallet"`
	Balance float64 `json:"balance"`
}

type Balance struct {
	Address string  `json:"address"`
	Balance float64 `json:"balance"`
}

type HolderList struct {
	Holders []Holder `json:"holders"`
	Count   int64    `json:"count"`
}

type MinerList struct {
	Miners []Miner `json:"miners"`
	Count  int64   `json:"count"`
}

type MinerRegistered struct {
	Miner   Miner  `json:"miner"`
	Message string `json:"message"`
}

// Receipt is returned by every call that appends a transaction.
type Receipt struct {
	Transaction Transaction `json:"transaction"`
	Message     string      `json:"message"`
}

type FeeEstimate struct {
	Fee   float64 `json:"fee"`
	Total float64 `json:"total"`
}

type MiningStarted struct {
	Message             string `json:"message"`
	MinerAddress        string `json:"minerAddress"`
	PendingTransactions int64  `json:"pendingTransactions"`
	Difficulty          int64  `json:"difficulty"`
}

type MiningStopped struct {
	Message      string `json:"message"`
	MinerAddress string `json:"minerAddress"`
}

type Acknowledgement struct {
	Message string `json:"message"`
}

type transferRequest struct {
	FromAddress string  `json:"fromAddress"`
	ToAddress   string  `json:"toAddress"`
	Amount      float64 `json:"amount"`
}

type mintRequest struct {
	ToAddress string  `json:"toAddress"`
	Amount    float64 `json:"amount"`
}

type burnRequest struct {
	FromAddress string  `json:"fromAddress"`
	Amount      float64 `json:"amount"`
}

type minerRequest struct {
	MinerAddress string `json:"minerAddress"`
	MinerName    string `json:"minerName,omitempty"`
}
