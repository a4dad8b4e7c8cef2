package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"postcode-api/internal/models"
)

// MockPostcodeAnalyser is a mock implementation of the PostcodeAnalyser
// interface
type MockPostcodeAnalyser struct {
	mock.Mock
}

func (m *MockPostcodeAnalyser) Analyse(raw string) models.Analysis {
	args := m.Called(raw)
	return args.Get(0).(models.Analysis)
}

func TestAnalyseHandler_Analyse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		postcode       string
		mockResult     models.Analysis
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "missing query parameter",
			postcode:       "",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "missing required query parameter 'postcode'"}`,
		},
		{
			name:     "full postcode",
			postcode: "EC1Y 8PQ",
			mockResult: models.Analysis{
				Postcode:      "EC1Y 8PQ",
				Fragments:     models.Fragments{Area: "EC", District: "1Y", Sector: "8", Unit: "PQ"},
				Forms:         []string{"EC1Y 8PQ", "EC1Y 8", "EC1Y", "EC"},
				ValidFragment: true,
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"postcode": "EC1Y 8PQ",
				"fragments": {"area": "EC", "district": "1Y", "sector": "8", "unit": "PQ"},
				"forms": ["EC1Y 8PQ", "EC1Y 8", "EC1Y", "EC"],
				"valid_fragment": true
			}`,
		},
		{
			name:     "undecomposable input",
			postcode: "???",
			mockResult: models.Analysis{
				Postcode:      "???",
				ValidFragment: false,
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"postcode": "???",
				"fragments": {},
				"forms": null,
				"valid_fragment": false
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockPostcodeAnalyser)
			handler := NewAnalyseHandler(mockSvc)

			if tt.postcode != "" {
				mockSvc.On("Analyse", tt.postcode).Return(tt.mockResult)
			}

			req := httptest.NewRequest(http.MethodGet, "/analyse", nil)
			if tt.postcode != "" {
				q := req.URL.Query()
				q.Add("postcode", tt.postcode)
				req.URL.RawQuery = q.Encode()
			}
			w := httptest.NewRecorder()

			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.Analyse(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())

			if tt.postcode != "" {
				mockSvc.AssertExpectations(t)
			}
		})
	}
}
