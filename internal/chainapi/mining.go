package chainapi

import (
	"context"
	"fmt"
)

func (c *Client) RegisterMiner(ctx context.Context, minerAddress, minerName string) (MinerRegistered, error) {
	var registered MinerRegistered
	body := minerRequest{MinerAddress: minerAddress, MinerName: minerName}
	if err := c.post(ctx, "/mining/register", body, &registered); err != nil {
		return MinerRegistered{}, fmt.Errorf("register miner %q: %w", minerAddress, err)
	}
	return registered, nil
}

func (c *Client) StartMining(ctx context.Context, minerAddress string) (MiningStarted, error) {
	var started MiningStarted
	if err := c.post(ctx, "/mining/start", minerRequest{MinerAddress: minerAddress}, &started); err != nil {
		return MiningStarted{}, fmt.Errorf("start mining for %q: %w", minerAddress, err)
	}
	return started, nil
}

func (c *Client) StopMining(ctx context.Context, minerAddress string) (MiningStopped, error) {
	var stopped MiningStopped
	if err := c.post(ctx, "/mining/stop", minerRequest{MinerAddress: minerAddress}, &stopped); err != nil {
		return MiningStopped{}, fmt.Errorf("stop mining for %q: %w", minerAddress, err)
	}
	return stopped, nil
}

func (c *Client) MiningStatus(ctx context.Context) (MiningStatus, error) {
	var status MiningStatus
	if err := c.get(ctx, "/mining/status", nil, &status); err != nil {
		return MiningStatus{}, fmt.Errorf("get mining status: %w", err)
	}
	return status, nil
}

func (c *Client) Miners(ctx context.Context) (MinerList, error) {
	var list MinerList
	if err := c.get(ctx, "/mining/miners", nil, &list); err != nil {
		return MinerList{}, fmt.Errorf("get miners: %w", err)
	}
	return list, nil
}

func (c *Client) Miner(ctx context.Context, address string) (Miner, error) {
	var miner Miner
	if err := c.get(ctx, "/mining/miners/"+escape(address), nil, &miner); err != nil {
		return Miner{}, fmt.Errorf("get miner %q: %w", address, err)
	}
	return miner, nil
}

func (c *Client) MiningStats(ctx context.Context) (MiningStats, error) {
	var stats MiningStats
	if err := c.get(ctx, "/mining/stats", nil, &stats); err != nil {
		return MiningStats{}, fmt.Errorf("get mining stats: %w", err)
	}
	return stats, nil
}

func (c *Client) UnregisterMiner(ctx context.Context, minerAddress string) (Acknowledgement, error) {
	var ack Acknowledgement
	if err := c.delete(ctx, "/mining/"+escape(minerAddress), &ack); err != nil {
		return Acknowledgement{}, fmt.Errorf("unregister miner %q: %w", minerAddress, err)
	}
	return ack, nil
}
