package chainapi

import (
	"context"
	"fmt"
)

func (c *Client) Transfer(ctx context.Context, fromAddress, toAddress string, amount float64) (Receipt, error) {
	var receipt Receipt
	body := transferRequest{FromAddress: fromAddress, ToAddress: toAddress, Amount: amount}
	if err := c.post(ctx, "/transfers", body, &receipt); err != nil {
		return Receipt{}, fmt.Errorf("create transfer: %w", err)
	}
	return receipt, nil
}

func (c *Client) TransferHistory(ctx context.Context, address string) (TransactionList, error) {
	var list TransactionList
	if err := c.get(ctx, "/transfers/"+escape(address)+"/history", nil, &list); err != nil {
		return TransactionList{}, fmt.Errorf("get transfer history of %q: %w", address, err)
	}
	return list, nil
}

func (c *Client) EstimateFee(ctx context.Context, fromAddress, toAddress string, amount float64) (FeeEstimate, error) {
	var estimate FeeEstimate
	body := transferRequest{FromAddress: fromAddress, ToAddress: toAddress, Amount: amount}
	if err := c.post(ctx, "/transfers/estimate-fee", body, &estimate); err != nil {
		return FeeEstimate{}, fmt.Errorf("estimate transfer fee: %w", err)
	}
	return estimate, nil
}

func (c *Client) PendingTransfers(ctx context.Context) (TransactionList, error) {
	var list TransactionList
	if err := c.get(ctx, "/transfers/pending", nil, &list); err != nil {
		return TransactionList{}, fmt.Errorf("get pending transfers: %w", err)
	}
	return list, nil
}
