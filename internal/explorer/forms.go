package explorer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cosmosexplorer/internal/chainapi"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

const (
	OperationMint = "mint"
	OperationBurn = "burn"
)

var (
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrNotAnAmount    = errors.New("amount must be a number")
	ErrAlreadyMiner   = errors.New("wallet is already a registered miner")
	ErrUnknownWallet  = errors.New("wallet is not loaded")
	ErrNotRegistered  = errors.New("miner is not registered")
	ErrNotMining      = errors.New("no miner is currently mining")
	ErrSameParty      = errors.New("sender and recipient must differ")
)

// ParseAmount reads a non-negative decimal amount typed by the user.
func ParseAmount(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrNotAnAmount
	}
	if d.IsNegative() {
		return 0, ErrNegativeAmount
	}
	return d.InexactFloat64(), nil
}

func amountRule(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	_, err := ParseAmount(s)
	return err
}

func differentFrom(other string) validation.RuleFunc {
	return func(value any) error {
		if s, _ := value.(string); s != "" && s == other {
			return ErrSameParty
		}
		return nil
	}
}

type TransferInput struct {
	From   string `json:"fromAddress"`
	To     string `json:"toAddress"`
	Amount string `json:"amount"`
}

func (in TransferInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.From, validation.Required),
		validation.Field(&in.To, validation.Required, validation.By(differentFrom(in.From))),
		validation.Field(&in.Amount, validation.Required, validation.By(amountRule)),
	)
}

type TokenOperationInput struct {
	Operation string `json:"operation"`
	Wallet    string `json:"wallet"`
	Amount    string `json:"amount"`
}

func (in TokenOperationInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Operation, validation.Required, validation.In(OperationMint, OperationBurn)),
		validation.Field(&in.Wallet, validation.Required),
		validation.Field(&in.Amount, validation.Required, validation.By(amountRule)),
	)
}

type RegisterMinerInput struct {
	Address string `json:"minerAddress"`
	Name    string `json:"minerName"`
}

func (in RegisterMinerInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Address, validation.Required),
		validation.Field(&in.Name, validation.Length(0, 64)),
	)
}

// MinerInput selects a miner for start, stop or unregister. Stop accepts an
// empty address and falls back to the current miner.
type MinerInput struct {
	Address string `json:"minerAddress"`
}

func (in MinerInput) Validate() error {
	return nil
}

func (in MinerInput) required() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Address, validation.Required),
	)
}

type CreateWalletInput struct{}

func (CreateWalletInput) Validate() error {
	return nil
}

type WalletInput struct {
	Address string `json:"address"`
}

func (in WalletInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Address, validation.Required),
	)
}

func (e *Explorer) newTransferForm() *Form[TransferInput] {
	return NewForm(e.logs, e.notifier, FormConfig[TransferInput]{
		Name: "transfer",
		Submit: func(ctx context.Context, in TransferInput) (string, error) {
			amount, _ := ParseAmount(in.Amount)
			if _, err := e.chain.Transfer(ctx, in.From, in.To, amount); err != nil {
				return "", err
			}
			return "transfer submitted", nil
		},
		Refresh: []func(context.Context) error{
			e.Transactions.Refresh,
			e.Wallets.Refresh,
			e.Dashboard.Refresh,
		},
	})
}

// EstimateFee asks the server what the transfer would cost. The input is
// validated first and the form is left untouched.
func (e *Explorer) EstimateFee(ctx context.Context, in TransferInput) (chainapi.FeeEstimate, error) {
	if err := in.Validate(); err != nil {
		return chainapi.FeeEstimate{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	amount, _ := ParseAmount(in.Amount)
	estimate, err := e.chain.EstimateFee(ctx, in.From, in.To, amount)
	if err != nil {
		return chainapi.FeeEstimate{}, fmt.Errorf("estimate fee: %w", err)
	}
	return estimate, nil
}

func (e *Explorer) newTokenOperationForm() *Form[TokenOperationInput] {
	return NewForm(e.logs, e.notifier, FormConfig[TokenOperationInput]{
		Name: "token operation",
		Submit: func(ctx context.Context, in TokenOperationInput) (string, error) {
			amount, _ := ParseAmount(in.Amount)
			if in.Operation == OperationMint {
				if _, err := e.chain.Mint(ctx, in.Wallet, amount); err != nil {
					return "", err
				}
				return "tokens minted", nil
			}
			if _, err := e.chain.Burn(ctx, in.Wallet, amount); err != nil {
				return "", err
			}
			return "tokens burned", nil
		},
		Refresh: []func(context.Context) error{
			e.Tokens.Refresh,
			e.Wallets.Refresh,
			e.Transactions.Refresh,
		},
	})
}

func (e *Explorer) newRegisterMinerForm() *Form[RegisterMinerInput] {
	return NewForm(e.logs, e.notifier, FormConfig[RegisterMinerInput]{
		Name: "miner registration",
		Guard: func(in RegisterMinerInput) error {
			data, loaded := e.Mining.Value()
			if !loaded {
				return nil
			}
			if isRegistered(data.Miners, in.Address) {
				return ErrAlreadyMiner
			}
			if !hasWallet(data.UnregisteredWallets(), in.Address) {
				return ErrUnknownWallet
			}
			return nil
		},
		Submit: func(ctx context.Context, in RegisterMinerInput) (string, error) {
			if _, err := e.chain.RegisterMiner(ctx, in.Address, in.Name); err != nil {
				return "", err
			}
			return "miner registered", nil
		},
		Refresh: []func(context.Context) error{e.Mining.Refresh},
	})
}

func (e *Explorer) newStartMiningForm() *Form[MinerInput] {
	return NewForm(e.logs, e.notifier, FormConfig[MinerInput]{
		Name: "start mining",
		Guard: func(in MinerInput) error {
			if err := in.required(); err != nil {
				return err
			}
			data, loaded := e.Mining.Value()
			if loaded && !isRegistered(data.RegisteredMiners(), in.Address) {
				return ErrNotRegistered
			}
			return nil
		},
		Submit: func(ctx context.Context, in MinerInput) (string, error) {
			if _, err := e.chain.StartMining(ctx, in.Address); err != nil {
				return "", err
			}
			return "mining started", nil
		},
		Refresh: []func(context.Context) error{e.Mining.Refresh},
	})
}

func (e *Explorer) newStopMiningForm() *Form[MinerInput] {
	current := func(in MinerInput) (string, bool) {
		if in.Address != "" {
			return in.Address, true
		}
		data, _ := e.Mining.Value()
		return data.CurrentMiner()
	}

	return NewForm(e.logs, e.notifier, FormConfig[MinerInput]{
		Name: "stop mining",
		Guard: func(in MinerInput) error {
			if _, ok := current(in); !ok {
				return ErrNotMining
			}
			return nil
		},
		Submit: func(ctx context.Context, in MinerInput) (string, error) {
			address, _ := current(in)
			if _, err := e.chain.StopMining(ctx, address); err != nil {
				return "", err
			}
			return "mining stopped", nil
		},
		Refresh: []func(context.Context) error{e.Mining.Refresh},
	})
}

func (e *Explorer) newUnregisterMinerForm() *Form[MinerInput] {
	return NewForm(e.logs, e.notifier, FormConfig[MinerInput]{
		Name:  "miner removal",
		Guard: MinerInput.required,
		Submit: func(ctx context.Context, in MinerInput) (string, error) {
			if _, err := e.chain.UnregisterMiner(ctx, in.Address); err != nil {
				return "", err
			}
			return "miner unregistered", nil
		},
		Refresh: []func(context.Context) error{e.Mining.Refresh},
	})
}

func (e *Explorer) newCreateWalletForm() *Form[CreateWalletInput] {
	return NewForm(e.logs, e.notifier, FormConfig[CreateWalletInput]{
		Name: "wallet creation",
		Submit: func(ctx context.Context, _ CreateWalletInput) (string, error) {
			if _, err := e.chain.CreateWallet(ctx); err != nil {
				return "", err
			}
			return "wallet created", nil
		},
		Refresh: []func(context.Context) error{e.Wallets.Refresh, e.Mining.Refresh},
	})
}

func (e *Explorer) newDeleteWalletForm() *Form[WalletInput] {
	return NewForm(e.logs, e.notifier, FormConfig[WalletInput]{
		Name: "wallet deletion",
		Submit: func(ctx context.Context, in WalletInput) (string, error) {
			if _, err := e.chain.DeleteWallet(ctx, in.Address); err != nil {
				return "", err
			}
			return "wallet deleted", nil
		},
		Refresh: []func(context.Context) error{e.Wallets.Refresh, e.Mining.Refresh},
	})
}
