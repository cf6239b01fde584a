//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"nft-launchpad/internal/handler/api"
	resdto "nft-launchpad/internal/handler/dto/response"
	"nft-launchpad/internal/pkg/clock"
	"nft-launchpad/internal/pkg/errs"
	"nft-launchpad/internal/usecase/commands"
	"nft-launchpad/internal/usecase/readmodel"
	"nft-launchpad/tests/common/builder"
	"nft-launchpad/tests/common/httptest"
	"nft-launchpad/tests/common/testutil"
	commandsmock "nft-launchpad/tests/mock/commands"
	queriesmock "nft-launchpad/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testExpiry = 10 * time.Minute

type CollectionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCollectionCommands
	mockQueries  *queriesmock.MockCollectionQueries
	clock        *clock.MockClock
	handler      *api.CollectionHandler
	creatorID    uuid.UUID
}

func (s *CollectionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCollectionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCollectionQueries(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.handler = api.NewCollectionHandler(s.mockCommands, s.mockQueries, s.clock, testExpiry)
	s.creatorID = uuid.New()

	// Mock middleware behavior: a bearer token binds the suite's creator.
	authed := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.creatorID)
			}
			next(c)
		}
	}

	s.router.POST("/collections", authed(s.handler.CreateCollection))
	s.router.GET("/collections", authed(s.handler.ListMyCollections))
	s.router.GET("/collections/:address", s.handler.GetCollection)
	s.router.PATCH("/collections/:address/status", authed(s.handler.UpdateStatus))
	s.router.GET("/collections/:address/items", s.handler.ListItems)
}

func (s *CollectionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCollectionHandlerSuite(t *testing.T) {
	suite.Run(t, new(CollectionHandlerTestSuite))
}

func (s *CollectionHandlerTestSuite) TestCreateCollection() {
	url := "/collections"

	s.Run("success: returns 201 Created with the collection id", func() {
		cb := builder.NewCollectionBuilder().WithTotalSupply(3)
		reqBody := cb.BuildCreateRequestDTO()

		s.mockCommands.EXPECT().CreateCollection(gomock.Any(), s.creatorID, gomock.Any()).
			Return(cb.ID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "test-token")
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		base := builder.NewCollectionBuilder().WithTotalSupply(2).BuildCreateRequestDTO()
		cases := []struct {
			name       string
			mutate     func(m map[string]any)
			expectCode int
		}{
			{name: "missing address", mutate: testutil.Field("address", nil), expectCode: http.StatusBadRequest},
			{name: "missing creatorWallet", mutate: testutil.Field("creatorWallet", nil), expectCode: http.StatusBadRequest},
			{name: "zero totalSupply", mutate: testutil.Field("totalSupply", 0), expectCode: http.StatusBadRequest},
			{name: "empty items", mutate: testutil.Field("items", []any{}), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), base, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "test-token")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("error: 409 Conflict for a duplicate address", func() {
		reqBody := builder.NewCollectionBuilder().WithTotalSupply(2).BuildCreateRequestDTO()

		s.mockCommands.EXPECT().CreateCollection(gomock.Any(), s.creatorID, gomock.Any()).
			Return(uuid.Nil, commands.ErrDuplicateCollection).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "test-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: 422 when the item count does not match the supply", func() {
		reqBody := builder.NewCollectionBuilder().WithTotalSupply(2).BuildCreateRequestDTO()
		reqBody.TotalSupply = 5

		s.mockCommands.EXPECT().CreateCollection(gomock.Any(), s.creatorID, gomock.Any()).
			Return(uuid.Nil, errs.Mark(errs.New("2 items for supply 5"), errs.ErrInvalidSupply)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "test-token")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("error: 500 without an authenticated creator", func() {
		reqBody := builder.NewCollectionBuilder().WithTotalSupply(2).BuildCreateRequestDTO()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *CollectionHandlerTestSuite) TestUpdateStatus() {
	url := "/collections/" + builder.TestCollectionAddress + "/status"
	reqBody := map[string]string{"status": "active"}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), s.creatorID, builder.TestCollectionAddress, "active").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "test-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 when the caller does not own the collection", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), s.creatorID, builder.TestCollectionAddress, "active").
			Return(commands.ErrNotCollectionOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "test-token")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("error: 404 for an unknown address", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), s.creatorID, builder.TestCollectionAddress, "active").
			Return(errs.Mark(errs.New("no rows"), errs.ErrCollectionNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "test-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 422 for an invalid transition", func() {
		body := map[string]string{"status": "bogus"}
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), s.creatorID, builder.TestCollectionAddress, "bogus").
			Return(errs.Mark(errs.New("unknown status"), errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "test-token")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})
}

func (s *CollectionHandlerTestSuite) TestGetCollection() {
	s.Run("success: returns 200 OK with the collection", func() {
		rm := builder.NewCollectionBuilder().BuildRM()

		s.mockQueries.EXPECT().GetByAddress(gomock.Any(), rm.Address).
			Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/collections/"+rm.Address, nil, "")

		var response resdto.CollectionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(rm.Address, response.Address)
		s.Equal(rm.TotalSupply, response.TotalSupply)
	})

	s.Run("error: 404 for an unknown address", func() {
		s.mockQueries.EXPECT().GetByAddress(gomock.Any(), builder.TestCollectionAddress).
			Return(nil, errs.Mark(errs.New("no rows"), errs.ErrCollectionNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/collections/"+builder.TestCollectionAddress, nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *CollectionHandlerTestSuite) TestListMyCollections() {
	s.Run("success: returns the creator's collections", func() {
		rms := []*readmodel.CollectionRM{
			builder.NewCollectionBuilder().WithCreatorID(s.creatorID).BuildRM(),
			builder.NewCollectionBuilder().WithCreatorID(s.creatorID).WithAddress("CoLLe2222222222222222222222222222222222222").BuildRM(),
		}

		s.mockQueries.EXPECT().ListByCreator(gomock.Any(), s.creatorID).
			Return(rms, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/collections", nil, "test-token")

		var response []resdto.CollectionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})
}

func (s *CollectionHandlerTestSuite) TestListItems() {
	url := "/collections/" + builder.TestCollectionAddress + "/items"

	itemRM := func(minted bool, owner *string, updatedAt time.Time) *readmodel.ItemRM {
		return &readmodel.ItemRM{
			ID:          uuid.New(),
			Name:        "Genesis Apes #0",
			Minted:      minted,
			OwnerWallet: owner,
			UpdatedAt:   updatedAt,
		}
	}

	s.Run("success: classifies item states against the clock", func() {
		now := s.clock.Now()
		wallet := builder.TestBuyerWallet
		available := itemRM(false, nil, now)
		reserved := itemRM(false, &wallet, now.Add(-time.Minute))
		lapsed := itemRM(false, &wallet, now.Add(-2*testExpiry))
		minted := itemRM(true, &wallet, now.Add(-3*time.Hour))
		rms := []*readmodel.ItemRM{available, reserved, lapsed, minted}

		s.mockQueries.EXPECT().ListItems(gomock.Any(), builder.TestCollectionAddress, int32(50), int32(0)).
			Return(rms, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.ItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 4)
		s.Equal("available", response[0].State)
		s.Equal("reserved", response[1].State)
		s.Equal("available", response[2].State)
		s.Equal("minted", response[3].State)
		s.Nil(response[1].OwnerWallet)
		s.NotNil(response[3].OwnerWallet)
	})

	s.Run("success: pagination parameters are passed through", func() {
		s.mockQueries.EXPECT().ListItems(gomock.Any(), builder.TestCollectionAddress, int32(10), int32(20)).
			Return([]*readmodel.ItemRM{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=10&offset=20", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 404 for an unknown address", func() {
		s.mockQueries.EXPECT().ListItems(gomock.Any(), builder.TestCollectionAddress, int32(50), int32(0)).
			Return(nil, errs.Mark(errs.New("no rows"), errs.ErrCollectionNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
