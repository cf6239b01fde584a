package solana

import (
	"context"
	"encoding/base64"
	"fmt"

	"nft-launchpad/internal/domain/mint"
	"nft-launchpad/internal/pkg/errs"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/memo"
	"github.com/blocto/solana-go-sdk/program/system"
	"github.com/blocto/solana-go-sdk/types"
)

// PaymentParams is everything needed to assemble one mint payment.
type PaymentParams struct {
	BuyerWallet    string
	CreatorWallet  string
	PlatformWallet string
	CollectionName string
	Quantity       int32
	Fees           mint.FeeBreakdown
}

// PaymentBuilder assembles the unsigned payment transaction the buyer signs
// client-side. The buyer is the fee payer; the server never holds buyer keys.
type PaymentBuilder struct {
	blockhashes BlockhashSource
}

func NewPaymentBuilder(blockhashes BlockhashSource) *PaymentBuilder {
	return &PaymentBuilder{blockhashes: blockhashes}
}

// BuildTransaction returns the base64-encoded unsigned transaction: one
// transfer to the creator for their share, one to the platform for its share
// plus the flat fee, and a memo describing the purchase. Zero-lamport
// transfers are omitted so free mints produce a memo-only transaction.
func (b *PaymentBuilder) BuildTransaction(ctx context.Context, params PaymentParams) (string, error) {
	blockhash, err := b.blockhashes.LatestBlockhash(ctx)
	if err != nil {
		return "", err
	}

	buyer := common.PublicKeyFromString(params.BuyerWallet)
	creator := common.PublicKeyFromString(params.CreatorWallet)
	platform := common.PublicKeyFromString(params.PlatformWallet)

	instructions := []types.Instruction{}
	if params.Fees.CreatorShareLamports > 0 {
		instructions = append(instructions, system.Transfer(system.TransferParam{
			From:   buyer,
			To:     creator,
			Amount: params.Fees.CreatorShareLamports,
		}))
	}
	platformTotal := params.Fees.PlatformShareLamports + params.Fees.PlatformFeeLamports
	if platformTotal > 0 {
		instructions = append(instructions, system.Transfer(system.TransferParam{
			From:   buyer,
			To:     platform,
			Amount: platformTotal,
		}))
	}
	instructions = append(instructions, memo.BuildMemo(memo.BuildMemoParam{
		SignerPubkeys: []common.PublicKey{buyer},
		Memo:          []byte(fmt.Sprintf("Mint %dx %s", params.Quantity, params.CollectionName)),
	}))

	message := types.NewMessage(types.NewMessageParam{
		FeePayer:        buyer,
		RecentBlockhash: blockhash,
		Instructions:    instructions,
	})

	// Placeholder signatures keep the wire format valid; the buyer's wallet
	// replaces them at signing time.
	signatures := make([]types.Signature, message.Header.NumRequireSignatures)
	for i := range signatures {
		signatures[i] = make(types.Signature, 64)
	}

	tx := types.Transaction{Message: message, Signatures: signatures}
	raw, err := tx.Serialize()
	if err != nil {
		return "", errs.Wrap(err, "failed to serialize payment transaction")
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}
