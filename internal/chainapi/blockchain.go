package chainapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

func (c *Client) Info(ctx context.Context) (BlockchainInfo, error) {
	var info BlockchainInfo
	if err := c.get(ctx, "/blockchain/info", nil, &info); err != nil {
		return BlockchainInfo{}, fmt.Errorf("get blockchain info: %w", err)
	}
	return info, nil
}

// Blocks returns one page of the chain, newest first.
func (c *Client) Blocks(ctx context.Context, limit, offset int) (BlockPage, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	var page BlockPage
	if err := c.get(ctx, "/blockchain/blocks", query, &page); err != nil {
		return BlockPage{}, fmt.Errorf("get blocks: %w", err)
	}
	return page, nil
}

func (c *Client) Block(ctx context.Context, hash string) (Block, error) {
	var block Block
	if err := c.get(ctx, "/blockchain/blocks/"+escape(hash), nil, &block); err != nil {
		return Block{}, fmt.Errorf("get block %q: %w", hash, err)
	}
	return block, nil
}

func (c *Client) LatestBlock(ctx context.Context) (Block, error) {
	var block Block
	if err := c.get(ctx, "/blockchain/blocks/latest", nil, &block); err != nil {
		return Block{}, fmt.Errorf("get latest block: %w", err)
	}
	return block, nil
}

// Transactions returns the newest confirmed transactions. An empty txType means every type.
func (c *Client) Transactions(ctx context.Context, limit int, txType string) (TransactionPage, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if txType != "" {
		query.Set("type", txType)
	}

	var page TransactionPage
	if err := c.get(ctx, "/blockchain/transactions", query, &page); err != nil {
		return TransactionPage{}, fmt.Errorf("get transactions: %w", err)
	}
	return page, nil
}

func (c *Client) PendingTransactions(ctx context.Context) (TransactionList, error) {
	var list TransactionList
	if err := c.get(ctx, "/blockchain/transactions/pending", nil, &list); err != nil {
		return TransactionList{}, fmt.Errorf("get pending transactions: %w", err)
	}
	return list, nil
}
