package explorer

import "cosmosexplorer/internal/chainapi"

// UnregisteredWallets returns the wallets whose address is not a registered miner.
func UnregisteredWallets(wallets []chainapi.Wallet, miners []chainapi.Miner) []chainapi.Wallet {
	registered := make(map[string]struct{}, len(miners))
	for _, m := range miners {
		registered[m.Address] = struct{}{}
	}

	out := make([]chainapi.Wallet, 0, len(wallets))
	for _, w := range wallets {
		if _, ok := registered[w.Address]; !ok {
			out = append(out, w)
		}
	}
	return out
}

// RegisteredMiners returns every miner the server lists. Registration is
// decided by the server, nothing is subtracted locally.
func RegisteredMiners(miners []chainapi.Miner) []chainapi.Miner {
	return append([]chainapi.Miner{}, miners...)
}

func isRegistered(miners []chainapi.Miner, address string) bool {
	for _, m := range miners {
		if m.Address == address {
			return true
		}
	}
	return false
}

func hasWallet(wallets []chainapi.Wallet, address string) bool {
	for _, w := range wallets {
		if w.Address == address {
			return true
		}
	}
	return false
}
