package chainapi

import (
	"context"
	"fmt"
)

func (c *Client) TokenInfo(ctx context.Context) (TokenInfo, error) {
	var info TokenInfo
	if err := c.get(ctx, "/tokens/info", nil, &info); err != nil {
		return TokenInfo{}, fmt.Errorf("get token info: %w", err)
	}
	return info, nil
}

func (c *Client) Mint(ctx context.Context, toAddress string, amount float64) (Receipt, error) {
	var receipt Receipt
	body := mintRequest{ToAddress: toAddress, Amount: amount}
	if err := c.post(ctx, "/tokens/mint", body, &receipt); err != nil {
		return Receipt{}, fmt.Errorf("mint tokens: %w", err)
	}
	return receipt, nil
}

func (c *Client) Burn(ctx context.Context, fromAddress string, amount float64) (Receipt, error) {
	var receipt Receipt
	body := burnRequest{FromAddress: fromAddress, Amount: amount}
	if err := c.post(ctx, "/tokens/burn", body, &receipt); err != nil {
		return Receipt{}, fmt.Errorf("burn tokens: %w", err)
	}
	return receipt, nil
}

func (c *Client) Holders(ctx context.Context) (HolderList, error) {
	var list HolderList
	if err := c.get(ctx, "/tokens/holders", nil, &list); err != nil {
		return HolderList{}, fmt.Errorf("get token holders: %w", err)
	}
	return list, nil
}

func (c *Client) TokenStats(ctx context.Context) (TokenStats, error) {
	var stats TokenStats
	if err := c.get(ctx, "/tokens/stats", nil, &stats); err != nil {
		return TokenStats{}, fmt.Errorf("get token stats: %w", err)
	}
	return stats, nil
}
