//go:build e2e

package collection_test

import (
	"net/http"
	"testing"

	resdto "nft-launchpad/internal/handler/dto/response"
	"nft-launchpad/tests/common/authtest"
	"nft-launchpad/tests/common/builder"
	"nft-launchpad/tests/common/dbtest"
	"nft-launchpad/tests/common/httptest"
	"nft-launchpad/tests/common/testutil"
	"nft-launchpad/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const collectionsURL = "/api/collections"

type CollectionSuite struct {
	e2e.SharedSuite
}

func TestCollectionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CollectionSuite))
}

func (s *CollectionSuite) TestCreateCollection() {
	s.Run("Normal case: creator can publish a collection with its items", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "creator@example.com", "creator")

		reqBody := builder.NewCollectionBuilder().WithTotalSupply(5).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, collectionsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created map[string]string
		httptest.DecodeResponseBody(t, w.Body, &created)
		require.NotEmpty(t, created["id"])

		// The collection is publicly readable by address.
		gw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			collectionsURL+"/"+reqBody.Address, nil, "")
		require.Equal(t, http.StatusOK, gw.Code)

		var col resdto.CollectionResponse
		httptest.DecodeResponseBody(t, gw.Body, &col)

		expected := &resdto.CollectionResponse{
			Address:           reqBody.Address,
			CreatorWallet:     reqBody.CreatorWallet,
			Name:              reqBody.Name,
			Symbol:            reqBody.Symbol,
			BasePriceLamports: int64(reqBody.BasePriceLamports),
			TotalSupply:       5,
			MintedCount:       0,
			Status:            "draft",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(resdto.CollectionResponse{}, "ID", "Phases", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &col, opts...); diff != "" {
			t.Errorf("Collection response mismatch (-want +got):\n%s", diff)
		}

		// All five items start available.
		iw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			collectionsURL+"/"+reqBody.Address+"/items", nil, "")
		require.Equal(t, http.StatusOK, iw.Code)

		var items []resdto.ItemResponse
		httptest.DecodeResponseBody(t, iw.Body, &items)
		require.Len(t, items, 5)
		for _, item := range items {
			require.Equal(t, "available", item.State)
		}
	})

	s.Run("Error case: anonymous request is rejected", func() {
		t := s.T()
		reqBody := builder.NewCollectionBuilder().WithTotalSupply(2).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, collectionsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("Error case: duplicate address is rejected", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "creator@example.com", "creator")

		reqBody := builder.NewCollectionBuilder().WithTotalSupply(2).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, collectionsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		dw := httptest.PerformRequest(t, s.Router, http.MethodPost, collectionsURL, reqBody, token)
		require.Equal(t, http.StatusConflict, dw.Code, dw.Body.String())
	})

	s.Run("Error case: item count must match total supply", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "creator@example.com", "creator")

		reqBody := builder.NewCollectionBuilder().WithTotalSupply(3).BuildCreateRequestDTO()
		body := testutil.DtoMap(t, reqBody, testutil.Field("totalSupply", 4))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, collectionsURL, body, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})
}

func (s *CollectionSuite) TestUpdateStatus() {
	s.Run("Normal case: owner activates a draft collection", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "creator@example.com", "creator")

		reqBody := builder.NewCollectionBuilder().WithTotalSupply(2).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, collectionsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		uw := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			collectionsURL+"/"+reqBody.Address+"/status",
			map[string]string{"status": "active"}, token)
		require.Equal(t, http.StatusNoContent, uw.Code, uw.Body.String())

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			collectionsURL+"/"+reqBody.Address, nil, "")
		var col resdto.CollectionResponse
		httptest.DecodeResponseBody(t, gw.Body, &col)
		require.Equal(t, "active", col.Status)
	})

	s.Run("Error case: another creator cannot change the status", func() {
		t := s.T()
		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", "creator")
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", "creator")

		reqBody := builder.NewCollectionBuilder().WithTotalSupply(2).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, collectionsURL, reqBody, ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		uw := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			collectionsURL+"/"+reqBody.Address+"/status",
			map[string]string{"status": "active"}, otherToken)
		require.Equal(t, http.StatusForbidden, uw.Code, uw.Body.String())
	})
}

func (s *CollectionSuite) TestListMyCollections() {
	s.Run("Normal case: only the caller's collections are listed", func() {
		t := s.T()
		mineToken := authtest.CreateAndLogin(t, s.DB, s.Router, "mine@example.com", "creator")
		otherID := dbtest.CreateTestUser(t, s.DB, "other@example.com", "creator")
		dbtest.CreateTestCollection(t, s.DB, otherID, "Peer111111111111111111111111111111111111111", 2)

		reqBody := builder.NewCollectionBuilder().WithTotalSupply(2).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, collectionsURL, reqBody, mineToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, collectionsURL, nil, mineToken)
		require.Equal(t, http.StatusOK, lw.Code)

		var cols []resdto.CollectionResponse
		httptest.DecodeResponseBody(t, lw.Body, &cols)
		require.Len(t, cols, 1)
		require.Equal(t, reqBody.Address, cols[0].Address)
	})
}
