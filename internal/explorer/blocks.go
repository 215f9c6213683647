package explorer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cosmosexplorer/internal/chainapi"
	"cosmosexplorer/internal/listview"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
)

var ErrNotBlockHash = errors.New("search term is not a block hash")

type Blocks struct {
	*listview.Pager[chainapi.Block]
	chain Chain
}

// NewBlocks is a constructor function for the Blocks type.
func NewBlocks(logger *zap.SugaredLogger, chain Chain, notifier Notifier, pageSize int) *Blocks {
	pager := listview.NewPager(logger.Named("blocks"), notifier, listview.Config[chainapi.Block]{
		Name:     "blocks",
		PageSize: pageSize,
		Fetch: func(ctx context.Context, page listview.Page) (listview.Result[chainapi.Block], error) {
			res, err := chain.Blocks(ctx, page.Limit, page.Offset)
			if err != nil {
				return listview.Result[chainapi.Block]{}, err
			}
			return listview.Result[chainapi.Block]{Items: res.Blocks, HasMore: res.HasMore, Total: res.Total}, nil
		},
		Key: func(b chainapi.Block) string { return b.Hash },
		Fields: func(b chainapi.Block) []string {
			return []string{b.Hash, b.PreviousHash}
		},
		Describe: failedToFetch("blocks"),
	})

	return &Blocks{
		Pager: pager,
		chain: chain,
	}
}

// IsBlockHash reports whether s is a full 32 byte hex hash, with or without 0x.
func IsBlockHash(s string) bool {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	raw, err := hexutil.Decode(s)
	return err == nil && len(raw) == common.HashLength
}

// Lookup finds a block by its full hash, from the loaded pages when possible.
func (b *Blocks) Lookup(ctx context.Context, hash string) (chainapi.Block, error) {
	if !IsBlockHash(hash) {
		return chainapi.Block{}, ErrNotBlockHash
	}
	hash = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(hash), "0x"), "0X")

	for _, block := range b.Items() {
		if strings.EqualFold(block.Hash, hash) {
			return block, nil
		}
	}

	block, err := b.chain.Block(ctx, hash)
	if err != nil {
		return chainapi.Block{}, fmt.Errorf("lookup block: %w", err)
	}
	return block, nil
}

func (b *Blocks) Latest(ctx context.Context) (chainapi.Block, error) {
	block, err := b.chain.LatestBlock(ctx)
	if err != nil {
		return chainapi.Block{}, fmt.Errorf("latest block: %w", err)
	}
	return block, nil
}
