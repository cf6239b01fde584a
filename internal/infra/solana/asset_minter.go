package solana

import (
	"context"

	"nft-launchpad/internal/pkg/errs"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/associated_token_account"
	"github.com/blocto/solana-go-sdk/program/metaplex/token_metadata"
	"github.com/blocto/solana-go-sdk/program/system"
	"github.com/blocto/solana-go-sdk/program/token"
	"github.com/blocto/solana-go-sdk/types"
)

// AssetParams describes one on-chain asset to create.
type AssetParams struct {
	Name        string
	Symbol      string
	MetadataURI string
	OwnerWallet string
}

// AssetMinter creates the on-chain assets after payment settles. The
// platform's mint authority signs and pays rent; the buyer only receives.
type AssetMinter struct {
	client    *RPCClient
	authority types.Account
}

func NewAssetMinter(client *RPCClient) (*AssetMinter, error) {
	authority, err := types.AccountFromBase58(client.cfg.MintAuthorityKey)
	if err != nil {
		return nil, errs.Wrap(err, "invalid mint authority key")
	}
	return &AssetMinter{client: client, authority: authority}, nil
}

// CreateAssets mints one asset per entry, in order, and returns the new mint
// addresses aligned with the input. Creation stops at the first failure so
// the caller can retry the whole batch under the same idempotency key.
func (m *AssetMinter) CreateAssets(ctx context.Context, assets []AssetParams) ([]string, error) {
	addresses := make([]string, 0, len(assets))
	for _, asset := range assets {
		addr, err := m.createAsset(ctx, asset)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "asset creation failed"), errs.ErrOnChainFailure)
		}
		addresses = append(addresses, addr)
	}
	return addresses, nil
}

func (m *AssetMinter) createAsset(ctx context.Context, asset AssetParams) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, m.client.cfg.RPCTimeout)
	defer cancel()

	owner := common.PublicKeyFromString(asset.OwnerWallet)
	mintAccount := types.NewAccount()
	feePayer := m.authority

	ata, _, err := common.FindAssociatedTokenAddress(owner, mintAccount.PublicKey)
	if err != nil {
		return "", errs.Wrap(err, "failed to derive associated token address")
	}
	metadataPubkey, err := token_metadata.GetTokenMetaPubkey(mintAccount.PublicKey)
	if err != nil {
		return "", errs.Wrap(err, "failed to derive metadata address")
	}
	masterEditionPubkey, err := token_metadata.GetMasterEdition(mintAccount.PublicKey)
	if err != nil {
		return "", errs.Wrap(err, "failed to derive master edition address")
	}

	mintRent, err := m.client.rpc.GetMinimumBalanceForRentExemption(ctx, token.MintAccountSize)
	if err != nil {
		return "", errs.Wrap(err, "failed to fetch rent exemption")
	}
	recent, err := m.client.rpc.GetLatestBlockhash(ctx)
	if err != nil {
		return "", errs.Wrap(err, "failed to fetch latest blockhash")
	}

	// One asset is one token: supply fixed at a single edition.
	maxSupply := uint64(1)

	tx, err := types.NewTransaction(types.NewTransactionParam{
		Signers: []types.Account{mintAccount, feePayer},
		Message: types.NewMessage(types.NewMessageParam{
			FeePayer:        feePayer.PublicKey,
			RecentBlockhash: recent.Blockhash,
			Instructions: []types.Instruction{
				system.CreateAccount(system.CreateAccountParam{
					From:     feePayer.PublicKey,
					New:      mintAccount.PublicKey,
					Owner:    common.TokenProgramID,
					Lamports: mintRent,
					Space:    token.MintAccountSize,
				}),
				token.InitializeMint(token.InitializeMintParam{
					Decimals:   0,
					Mint:       mintAccount.PublicKey,
					MintAuth:   feePayer.PublicKey,
					FreezeAuth: &feePayer.PublicKey,
				}),
				token_metadata.CreateMetadataAccountV3(token_metadata.CreateMetadataAccountV3Param{
					Metadata:                metadataPubkey,
					Mint:                    mintAccount.PublicKey,
					MintAuthority:           feePayer.PublicKey,
					UpdateAuthority:         feePayer.PublicKey,
					Payer:                   feePayer.PublicKey,
					UpdateAuthorityIsSigner: true,
					IsMutable:               true,
					Data: token_metadata.DataV2{
						Name:                 asset.Name,
						Symbol:               asset.Symbol,
						Uri:                  asset.MetadataURI,
						SellerFeeBasisPoints: 0,
						Creators: &[]token_metadata.Creator{
							{
								Address:  feePayer.PublicKey,
								Verified: true,
								Share:    100,
							},
						},
					},
					CollectionDetails: nil,
				}),
				associated_token_account.CreateAssociatedTokenAccount(
					associated_token_account.CreateAssociatedTokenAccountParam{
						Funder:                 feePayer.PublicKey,
						Owner:                  owner,
						Mint:                   mintAccount.PublicKey,
						AssociatedTokenAccount: ata,
					},
				),
				token.MintTo(token.MintToParam{
					Mint:   mintAccount.PublicKey,
					To:     ata,
					Auth:   feePayer.PublicKey,
					Amount: 1,
				}),
				token_metadata.CreateMasterEditionV3(token_metadata.CreateMasterEditionParam{
					Edition:         masterEditionPubkey,
					Mint:            mintAccount.PublicKey,
					UpdateAuthority: feePayer.PublicKey,
					MintAuthority:   feePayer.PublicKey,
					Metadata:        metadataPubkey,
					Payer:           feePayer.PublicKey,
					MaxSupply:       &maxSupply,
				}),
			},
		}),
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to build asset transaction")
	}

	if _, err := m.client.rpc.SendTransaction(ctx, tx); err != nil {
		return "", errs.Wrap(err, "failed to send asset transaction")
	}
	return mintAccount.PublicKey.ToBase58(), nil
}
