package solana

import (
	"context"

	"nft-launchpad/internal/domain/mint"
	"nft-launchpad/internal/pkg/errs"

	"github.com/blocto/solana-go-sdk/rpc"
)

// Confirmer resolves the settlement state of a payment signature against
// the cluster.
type Confirmer struct {
	client *RPCClient
}

func NewConfirmer(client *RPCClient) *Confirmer {
	return &Confirmer{client: client}
}

func (c *Confirmer) SignatureState(ctx context.Context, signature string) (mint.SignatureState, error) {
	ctx, cancel := context.WithTimeout(ctx, c.client.cfg.RPCTimeout)
	defer cancel()

	status, err := c.client.rpc.GetSignatureStatus(ctx, signature)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "failed to fetch signature status"), errs.ErrTransientNetwork)
	}
	if status == nil {
		return mint.SignatureNotFound, nil
	}
	if status.Err != nil {
		return mint.SignatureFailed, nil
	}
	if status.ConfirmationStatus != nil {
		switch *status.ConfirmationStatus {
		case rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
			return mint.SignatureSettled, nil
		}
	}
	return mint.SignaturePending, nil
}
