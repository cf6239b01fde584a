//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"nft-launchpad/internal/handler/api"
	resdto "nft-launchpad/internal/handler/dto/response"
	"nft-launchpad/internal/pkg/errs"
	"nft-launchpad/internal/usecase/commands"
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

type MintHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMintCommands
	mockQueries  *queriesmock.MockMintQueries
	handler      *api.MintHandler
}

func (s *MintHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMintCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockMintQueries(s.mockCtrl)
	s.handler = api.NewMintHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/collections/:address/mint", s.handler.CreateMintRequest)
	s.router.POST("/mint/:key/signature", s.handler.AttachSignature)
	s.router.GET("/mint/:key", s.handler.GetMintRequest)
}

func (s *MintHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMintHandlerSuite(t *testing.T) {
	suite.Run(t, new(MintHandlerTestSuite))
}

func idempotencyHeader(key uuid.UUID) map[string]string {
	return map[string]string{"Idempotency-Key": key.String()}
}

func (s *MintHandlerTestSuite) TestCreateMintRequest() {
	url := "/collections/" + builder.TestCollectionAddress + "/mint"

	s.Run("success: returns 201 Created with the unsigned transaction", func() {
		mb := builder.NewMintRequestBuilder()
		ready := builder.NewMintRequestBuilder().WithKey(mb.IdempotencyKey).AsTransactionReady().BuildRM()
		reqBody := mb.BuildCreateRequestDTO()

		s.mockCommands.EXPECT().CreateMintRequest(gomock.Any(), mb.IdempotencyKey, gomock.Any()).
			Return(&commands.CreateMintResult{Request: ready}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "", idempotencyHeader(mb.IdempotencyKey))

		var response resdto.MintRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(mb.IdempotencyKey, response.IdempotencyKey)
		s.Equal("transaction_ready", response.Status)
	})

	s.Run("replay: returns 200 OK with the stored record", func() {
		mb := builder.NewMintRequestBuilder()
		stored := builder.NewMintRequestBuilder().WithKey(mb.IdempotencyKey).AsConfirmed().BuildRM()
		reqBody := mb.BuildCreateRequestDTO()

		s.mockCommands.EXPECT().CreateMintRequest(gomock.Any(), mb.IdempotencyKey, gomock.Any()).
			Return(&commands.CreateMintResult{Request: stored, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "", idempotencyHeader(mb.IdempotencyKey))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 without an Idempotency-Key header", func() {
		reqBody := builder.NewMintRequestBuilder().BuildCreateRequestDTO()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 when the key is not a UUID", func() {
		reqBody := builder.NewMintRequestBuilder().BuildCreateRequestDTO()

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "",
			map[string]string{"Idempotency-Key": "not-a-uuid"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 on validation errors", func() {
		key := uuid.New()
		base := builder.NewMintRequestBuilder().BuildCreateRequestDTO()
		cases := []struct {
			name       string
			mutate     func(m map[string]any)
			expectCode int
		}{
			{name: "missing buyerWallet", mutate: testutil.Field("buyerWallet", nil), expectCode: http.StatusBadRequest},
			{name: "missing quantity", mutate: testutil.Field("quantity", nil), expectCode: http.StatusBadRequest},
			{name: "zero quantity", mutate: testutil.Field("quantity", 0), expectCode: http.StatusBadRequest},
			{name: "negative quantity", mutate: testutil.Field("quantity", -1), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), base, tc.mutate)
				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, "", idempotencyHeader(key))
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("error: command failures map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "collection not found", err: errs.ErrCollectionNotFound, expectCode: http.StatusNotFound},
			{name: "collection not active", err: errs.ErrCollectionNotActive, expectCode: http.StatusConflict},
			{name: "sold out", err: errs.ErrInsufficientInventory, expectCode: http.StatusConflict},
			{name: "key reuse conflict", err: errs.ErrMintRequestConflict, expectCode: http.StatusConflict},
			{name: "rate unavailable", err: commands.ErrRateUnavailable, expectCode: http.StatusServiceUnavailable},
			{name: "unexpected", err: errs.New("boom"), expectCode: http.StatusInternalServerError},
		}
		reqBody := builder.NewMintRequestBuilder().BuildCreateRequestDTO()
		for _, tc := range cases {
			s.Run(tc.name, func() {
				key := uuid.New()
				s.mockCommands.EXPECT().CreateMintRequest(gomock.Any(), key, gomock.Any()).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "", idempotencyHeader(key))
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("error: sold out carries an explanatory message", func() {
		key := uuid.New()
		reqBody := builder.NewMintRequestBuilder().BuildCreateRequestDTO()
		s.mockCommands.EXPECT().CreateMintRequest(gomock.Any(), key, gomock.Any()).
			Return(nil, errs.Mark(errs.New("0 of 5 reserved"), errs.ErrInsufficientInventory)).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "", idempotencyHeader(key))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Not enough NFTs available")
	})
}

func (s *MintHandlerTestSuite) TestAttachSignature() {
	signature := "5ig" + uuid.NewString()

	s.Run("success: returns 200 OK with the updated record", func() {
		mb := builder.NewMintRequestBuilder().AsConfirmed()
		confirmed := mb.BuildRM()

		s.mockCommands.EXPECT().AttachSignature(gomock.Any(), mb.IdempotencyKey, signature).
			Return(confirmed, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/mint/"+mb.IdempotencyKey.String()+"/signature",
			map[string]string{"transactionSignature": signature}, "")
		var response resdto.MintRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: 400 on missing signature", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/mint/"+uuid.NewString()+"/signature",
			map[string]string{}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 on malformed key", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/mint/not-a-uuid/signature",
			map[string]string{"transactionSignature": signature}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 409 when no transaction exists yet", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().AttachSignature(gomock.Any(), key, signature).
			Return(nil, commands.ErrNoTransaction).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/mint/"+key.String()+"/signature",
			map[string]string{"transactionSignature": signature}, "")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: 502 when the payment failed on-chain", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().AttachSignature(gomock.Any(), key, signature).
			Return(nil, errs.Mark(errs.New("signature failed"), errs.ErrOnChainFailure)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/mint/"+key.String()+"/signature",
			map[string]string{"transactionSignature": signature}, "")
		s.Equal(http.StatusBadGateway, rec.Code)
	})
}

func (s *MintHandlerTestSuite) TestGetMintRequest() {
	s.Run("success: returns 200 OK with the stored state", func() {
		mb := builder.NewMintRequestBuilder().AsTransactionReady()
		stored := mb.BuildRM()

		s.mockQueries.EXPECT().GetByKey(gomock.Any(), mb.IdempotencyKey).
			Return(stored, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/mint/"+mb.IdempotencyKey.String(), nil, "")
		var response resdto.MintRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("transaction_ready", response.Status)
		s.NotEmpty(response.Body)
	})

	s.Run("error: 404 for an unknown key", func() {
		key := uuid.New()
		s.mockQueries.EXPECT().GetByKey(gomock.Any(), key).
			Return(nil, errs.Mark(errs.New("no rows"), errs.ErrMintRequestNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/mint/"+key.String(), nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 400 for a malformed key", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/mint/not-a-uuid", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
