//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
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

type ResourceHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockUC   *mocks.MockResourceUseCase
	handler  *api.ResourceHandler
}

func (s *ResourceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = mocks.NewMockResourceUseCase(s.mockCtrl)
	s.handler = api.NewResourceHandler(s.mockUC)

	s.router.GET("/resources", s.handler.List)
	s.router.POST("/resources", s.handler.Create)
	s.router.GET("/resources/:id", s.handler.Read)
	s.router.PUT("/resources/:id", s.handler.Update)
	s.router.DELETE("/resources/:id", s.handler.Delete)
}

func (s *ResourceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestResourceHandlerSuite(t *testing.T) {
	suite.Run(t, new(ResourceHandlerTestSuite))
}

func (s *ResourceHandlerTestSuite) perform(method, url string, body any) *httptest.ResponseRecorder {
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

func sampleRM() *readmodel.ResourceRM {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &readmodel.ResourceRM{
		ID:         "r-1",
		Name:       "Jane Doe",
		FirstName:  "Jane",
		LastName:   "Doe",
		ContactID:  "c-1",
		CreatedAt:  now,
		CreatedBy:  "system",
		ModifiedAt: now,
		ModifiedBy: "system",
	}
}

func (s *ResourceHandlerTestSuite) TestCreate() {
	url := "/resources"
	reqBody := map[string]any{
		"first_name": "Jane",
		"last_name":  "Doe",
		"contact_id": "c-1",
	}

	s.Run("success: returns 201 Created", func() {
		s.mockUC.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(sampleRM(), nil).Times(1)

		rec := s.perform(http.MethodPost, url, reqBody)

		s.Equal(http.StatusCreated, rec.Code)
		var response resdto.ResourceResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("r-1", response.ID)
		s.Equal("Jane Doe", response.Name)
		s.Equal("c-1", response.ContactID)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
		}{
			{"validation error", usecase.ErrValidation, http.StatusBadRequest},
			{"duplicate id", usecase.ErrDuplicateID, http.StatusConflict},
			{"store failure", usecase.ErrStoreFailure, http.StatusInternalServerError},
			{"unknown error", errors.New("database error"), http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUC.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.usecaseError).Times(1)

				rec := s.perform(http.MethodPost, url, reqBody)
				s.Equal(tc.expectedStatus, rec.Code)
			})
		}
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ResourceHandlerTestSuite) TestRead() {
	s.Run("success: returns 200 OK", func() {
		s.mockUC.EXPECT().Read(gomock.Any(), "r-1").
			Return(sampleRM(), nil).Times(1)

		rec := s.perform(http.MethodGet, "/resources/r-1", nil)

		s.Equal(http.StatusOK, rec.Code)
		var response resdto.ResourceResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("Jane", response.FirstName)
		s.Equal("Doe", response.LastName)
	})

	s.Run("error: 404 Not Found for unknown id", func() {
		s.mockUC.EXPECT().Read(gomock.Any(), "nope").
			Return(nil, usecase.ErrResourceNotFound).Times(1)

		rec := s.perform(http.MethodGet, "/resources/nope", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *ResourceHandlerTestSuite) TestList() {
	s.Run("success: returns 200 OK with items", func() {
		s.mockUC.EXPECT().List(gomock.Any(), gomock.Any()).
			Return([]*readmodel.ResourceRM{sampleRM()}, nil).Times(1)

		rec := s.perform(http.MethodGet, "/resources", nil)

		s.Equal(http.StatusOK, rec.Code)
		var response []resdto.ResourceResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Require().Len(response, 1)
		s.Equal("r-1", response[0].ID)
	})

	s.Run("passes pagination and filter through", func() {
		s.mockUC.EXPECT().
			List(gomock.Any(), usecase.ListQuery{Query: "jane", Position: 5, Size: 10}).
			Return(nil, nil).Times(1)

		rec := s.perform(http.MethodGet, "/resources?position=5&size=10&query=jane", nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("defaults the page size", func() {
		s.mockUC.EXPECT().
			List(gomock.Any(), usecase.ListQuery{Size: usecase.DefaultListSize}).
			Return(nil, nil).Times(1)

		rec := s.perform(http.MethodGet, "/resources", nil)
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *ResourceHandlerTestSuite) TestUpdate() {
	url := "/resources/r-1"
	reqBody := map[string]any{"name": "Renamed", "contact_id": "c-2"}

	s.Run("success: returns 200 OK", func() {
		s.mockUC.EXPECT().
			Update(gomock.Any(), "r-1", usecase.UpdateResourceInput{Name: "Renamed", ContactID: "c-2"}).
			Return(sampleRM(), nil).Times(1)

		rec := s.perform(http.MethodPut, url, reqBody)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown id", func() {
		s.mockUC.EXPECT().Update(gomock.Any(), "r-1", gomock.Any()).
			Return(nil, usecase.ErrResourceNotFound).Times(1)

		rec := s.perform(http.MethodPut, url, reqBody)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 400 Bad Request on validation failure", func() {
		s.mockUC.EXPECT().Update(gomock.Any(), "r-1", gomock.Any()).
			Return(nil, usecase.ErrValidation).Times(1)

		rec := s.perform(http.MethodPut, url, reqBody)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ResourceHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204 No Content", func() {
		s.mockUC.EXPECT().Delete(gomock.Any(), "r-1").
			Return(nil).Times(1)

		rec := s.perform(http.MethodDelete, "/resources/r-1", nil)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.Bytes())
	})

	s.Run("error: 404 Not Found for unknown id", func() {
		s.mockUC.EXPECT().Delete(gomock.Any(), "nope").
			Return(usecase.ErrResourceNotFound).Times(1)

		rec := s.perform(http.MethodDelete, "/resources/nope", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
