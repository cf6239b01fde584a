package solana

import (
	"context"

	"nft-launchpad/internal/pkg/config"
	"nft-launchpad/internal/pkg/errs"

	"github.com/blocto/solana-go-sdk/client"
)

// BlockhashSource yields a recent blockhash for transaction assembly.
// Tests substitute a fixed hash so builds are deterministic offline.
type BlockhashSource interface {
	LatestBlockhash(ctx context.Context) (string, error)
}

// RPCClient wraps the cluster connection shared by the payment builder,
// the confirmer and the asset minter.
type RPCClient struct {
	rpc *client.Client
	cfg config.SolanaConfig
}

func NewRPCClient(cfg config.SolanaConfig) *RPCClient {
	return &RPCClient{
		rpc: client.NewClient(cfg.RPCURL),
		cfg: cfg,
	}
}

func (c *RPCClient) LatestBlockhash(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.RPCTimeout)
	defer cancel()

	resp, err := c.rpc.GetLatestBlockhash(ctx)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "failed to fetch latest blockhash"), errs.ErrTransientNetwork)
	}
	return resp.Blockhash, nil
}
