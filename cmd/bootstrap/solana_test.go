//go:build unit

package bootstrap_test

import (
	"testing"

	"nft-launchpad/cmd/bootstrap"
	"nft-launchpad/internal/infra/solana"
	"nft-launchpad/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestChainModule_SharesOneRPCClient(t *testing.T) {
	var (
		client      *solana.RPCClient
		blockhashes solana.BlockhashSource
	)

	app := fx.New(
		fx.Provide(func() config.SolanaConfig { return config.NewTestConfig().Solana }),
		bootstrap.ChainModule,
		fx.Populate(&client, &blockhashes),
		fx.NopLogger,
	)
	require.NoError(t, app.Err())

	assert.Same(t, client, blockhashes)
}
