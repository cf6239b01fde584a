//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"nft-launchpad/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	t.Run("sees marks that stdlib errors.Is cannot", func(t *testing.T) {
		err := errs.Mark(errs.New("reservation returned 0 rows"), errs.ErrCollectionNotActive)

		assert.False(t, errors.Is(err, errs.ErrCollectionNotActive))
		assert.True(t, errs.Is(err, errs.ErrCollectionNotActive))
	})

	t.Run("matches through wrap chains", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errs.New("no rows"), errs.ErrCollectionNotFound), "loading collection")
		assert.True(t, errs.Is(err, errs.ErrCollectionNotFound))
	})

	t.Run("matches plain sentinels", func(t *testing.T) {
		assert.True(t, errs.Is(errs.ErrMintRequestNotFound, errs.ErrMintRequestNotFound))
	})

	t.Run("does not match an unrelated sentinel", func(t *testing.T) {
		err := errs.Mark(errs.New("no rows"), errs.ErrCollectionNotFound)
		assert.False(t, errs.Is(err, errs.ErrMintRequestNotFound))
	})
}
