package payload

import (
	"encoding/json"

	"cosmosexplorer/internal/explorer"
	"cosmosexplorer/internal/listview"

	"github.com/jellydator/validation"
)

const maxFieldLength = 256

// ListRequest carries the client-side filter of a list view.
type ListRequest struct {
	Search string
	Type   string
}

func (l ListRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Search, validation.Length(0, maxFieldLength)),
		validation.Field(&l.Type, validation.By(func(value any) error {
			if t, _ := value.(string); !explorer.ValidTransactionType(t) {
				return validation.NewError("validation_type_invalid", "unknown transaction type")
			}
			return nil
		})),
	)
}

func (l ListRequest) ToQuery() listview.Query {
	return listview.Query{Search: l.Search, Type: l.Type}
}

type TransferRequest struct {
	FromAddress string      `json:"fromAddress"`
	ToAddress   string      `json:"toAddress"`
	Amount      json.Number `json:"amount"`
}

func (t TransferRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.FromAddress, validation.Length(0, maxFieldLength)),
		validation.Field(&t.ToAddress, validation.Length(0, maxFieldLength)),
	)
}

func (t TransferRequest) ToInput() explorer.TransferInput {
	return explorer.TransferInput{
		From:   t.FromAddress,
		To:     t.ToAddress,
		Amount: t.Amount.String(),
	}
}

type TokenOperationRequest struct {
	Address string      `json:"address"`
	Amount  json.Number `json:"amount"`
}

func (t TokenOperationRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Address, validation.Length(0, maxFieldLength)),
	)
}

func (t TokenOperationRequest) ToInput(operation string) explorer.TokenOperationInput {
	return explorer.TokenOperationInput{
		Operation: operation,
		Wallet:    t.Address,
		Amount:    t.Amount.String(),
	}
}

type RegisterMinerRequest struct {
	MinerAddress string `json:"minerAddress"`
	MinerName    string `json:"minerName"`
}

func (m RegisterMinerRequest) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.MinerAddress, validation.Length(0, maxFieldLength)),
	)
}

func (m RegisterMinerRequest) ToInput() explorer.RegisterMinerInput {
	return explorer.RegisterMinerInput{
		Address: m.MinerAddress,
		Name:    m.MinerName,
	}
}

// MinerRequest selects the miner to start or stop. Stop may omit it.
type MinerRequest struct {
	MinerAddress string `json:"minerAddress"`
}

func (m MinerRequest) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.MinerAddress, validation.Length(0, maxFieldLength)),
	)
}

func (m MinerRequest) ToInput() explorer.MinerInput {
	return explorer.MinerInput{Address: m.MinerAddress}
}
