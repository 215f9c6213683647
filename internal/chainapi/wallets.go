package chainapi

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

func (c *Client) CreateWallet(ctx context.Context) (WalletCreated, error) {
	var created WalletCreated
	if err := c.post(ctx, "/wallets/create", nil, &created); err != nil {
		return WalletCreated{}, fmt.Errorf("create wallet: %w", err)
	}
	return created, nil
}

func (c *Client) Wallets(ctx context.Context) (WalletList, error) {
	var list WalletList
	if err := c.get(ctx, "/wallets", nil, &list); err != nil {
		return WalletList{}, fmt.Errorf("get wallets: %w", err)
	}
	return list, nil
}

func (c *Client) Wallet(ctx context.Context, address string) (WalletDetail, error) {
	var detail WalletDetail
	if err := c.get(ctx, "/wallets/"+escape(address), nil, &detail); err != nil {
		return WalletDetail{}, fmt.Errorf("get wallet %q: %w", address, err)
	}
	return detail, nil
}

func (c *Client) WalletBalance(ctx context.Context, address string) (Balance, error) {
	var balance Balance
	if err := c.get(ctx, "/wallets/"+escape(address)+"/balance", nil, &balance); err != nil {
		return Balance{}, fmt.Errorf("get balance of %q: %w", address, err)
	}
	return balance, nil
}

func (c *Client) DeleteWallet(ctx context.Context, address string) (Acknowledgement, error) {
	var ack Acknowledgement
	if err := c.delete(ctx, "/wallets/"+escape(address), &ack); err != nil {
		return Acknowledgement{}, fmt.Errorf("delete wallet %q: %w", address, err)
	}
	return ack, nil
}

type balanceResult struct {
	balance Balance
	err     error
}

// Balances fetches the balance of every address concurrently. Balances that
// could be fetched are returned together with the joined errors of the rest.
func (c *Client) Balances(ctx context.Context, addresses []string) (map[string]float64, error) {
	resultsChan := make(chan balanceResult)

	var wg sync.WaitGroup
	for _, address := range addresses {
		wg.Add(1)
		go func(address string) {
			defer wg.Done()
			balance, err := c.WalletBalance(ctx, address)
			if balance.Address == "" {
				balance.Address = address
			}
			resultsChan <- balanceResult{balance: balance, err: err}
		}(address)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	balances := make(map[string]float64, len(addresses))
	var aggrErr error
	for result := range resultsChan {
		if result.err != nil {
			aggrErr = errors.Join(aggrErr, result.err)
			continue
		}
		balances[result.balance.Address] = result.balance.Balance
	}

	return balances, aggrErr
}
