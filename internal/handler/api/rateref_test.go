//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resource-backend/internal/handler/api"
	resdto "resource-backend/internal/handler/dto/response"
	"resource-backend/internal/usecase"
	"resource-backend/internal/usecase/mocks"
	"resource-backend/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RateRefHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockUC   *mocks.MockRateRefUseCase
	handler  *api.RateRefHandler
}

func (s *RateRefHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = mocks.NewMockRateRefUseCase(s.mockCtrl)
	s.handler = api.NewRateRefHandler(s.mockUC)

	s.router.GET("/resources/:id/rates", s.handler.List)
	s.router.POST("/resources/:id/rates", s.handler.Create)
	s.router.GET("/resources/:id/rates/:rateRefId", s.handler.Read)
	s.router.DELETE("/resources/:id/rates/:rateRefId", s.handler.Delete)
}

func (s *RateRefHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRateRefHandlerSuite(t *testing.T) {
	suite.Run(t, new(RateRefHandlerTestSuite))
}

func (s *RateRefHandlerTestSuite) perform(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func sampleRateRefRM() *readmodel.RateRefRM {
	return &readmodel.RateRefRM{
		ID:        "rr-1",
		RateID:    "R7",
		RateTitle: "Standard",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		CreatedBy: "system",
	}
}

func (s *RateRefHandlerTestSuite) TestCreate() {
	url := "/resources/r-1/rates"
	reqBody := map[string]any{"rate_id": "R7"}

	s.Run("success: returns 201 Created", func() {
		s.mockUC.EXPECT().
			Create(gomock.Any(), "r-1", usecase.CreateRateRefInput{RateID: "R7"}).
			Return(sampleRateRefRM(), nil).Times(1)

		rec := s.perform(http.MethodPost, url, reqBody)

		s.Equal(http.StatusCreated, rec.Code)
		var response resdto.RateRefResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("rr-1", response.ID)
		s.Equal("R7", response.RateID)
		s.Equal("Standard", response.RateTitle)
	})

	s.Run("error: 404 Not Found when parent is missing", func() {
		s.mockUC.EXPECT().Create(gomock.Any(), "r-1", gomock.Any()).
			Return(nil, usecase.ErrResourceNotFound).Times(1)

		rec := s.perform(http.MethodPost, url, reqBody)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 400 Bad Request for unknown rate id", func() {
		s.mockUC.EXPECT().Create(gomock.Any(), "r-1", gomock.Any()).
			Return(nil, usecase.ErrValidation).Times(1)

		rec := s.perform(http.MethodPost, url, reqBody)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 409 Conflict for duplicate id", func() {
		s.mockUC.EXPECT().Create(gomock.Any(), "r-1", gomock.Any()).
			Return(nil, usecase.ErrDuplicateID).Times(1)

		rec := s.perform(http.MethodPost, url, reqBody)
		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *RateRefHandlerTestSuite) TestRead() {
	s.Run("success: returns 200 OK", func() {
		s.mockUC.EXPECT().Read(gomock.Any(), "r-1", "rr-1").
			Return(sampleRateRefRM(), nil).Times(1)

		rec := s.perform(http.MethodGet, "/resources/r-1/rates/rr-1", nil)

		s.Equal(http.StatusOK, rec.Code)
		var response resdto.RateRefResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("Standard", response.RateTitle)
	})

	s.Run("error: 404 Not Found for unknown rate reference", func() {
		s.mockUC.EXPECT().Read(gomock.Any(), "r-1", "nope").
			Return(nil, usecase.ErrRateRefNotFound).Times(1)

		rec := s.perform(http.MethodGet, "/resources/r-1/rates/nope", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *RateRefHandlerTestSuite) TestList() {
	s.Run("success: returns 200 OK with items", func() {
		s.mockUC.EXPECT().List(gomock.Any(), "r-1", gomock.Any()).
			Return([]*readmodel.RateRefRM{sampleRateRefRM()}, nil).Times(1)

		rec := s.perform(http.MethodGet, "/resources/r-1/rates", nil)

		s.Equal(http.StatusOK, rec.Code)
		var response []resdto.RateRefResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Require().Len(response, 1)
		s.Equal("rr-1", response[0].ID)
	})

	s.Run("error: 404 Not Found when parent is missing", func() {
		s.mockUC.EXPECT().List(gomock.Any(), "nope", gomock.Any()).
			Return(nil, usecase.ErrResourceNotFound).Times(1)

		rec := s.perform(http.MethodGet, "/resources/nope/rates", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *RateRefHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204 No Content", func() {
		s.mockUC.EXPECT().Delete(gomock.Any(), "r-1", "rr-1").
			Return(nil).Times(1)

		rec := s.perform(http.MethodDelete, "/resources/r-1/rates/rr-1", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown rate reference", func() {
		s.mockUC.EXPECT().Delete(gomock.Any(), "r-1", "nope").
			Return(usecase.ErrRateRefNotFound).Times(1)

		rec := s.perform(http.MethodDelete, "/resources/r-1/rates/nope", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
