package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"arch_ai_server/internal/ai"
	"arch_ai_server/internal/ai/mocks"
	"arch_ai_server/internal/api"
	"arch_ai_server/internal/types"
)

const planReplyJSON = `{
	"recommendedNumberOfRooms": 2,
	"roomDetails": [
		{"type": "bedroom", "size": "12x12 feet"},
		{"type": "kitchen", "size": "10x12 feet"}
	],
	"floorPlanLayoutDescription": "Compact two-room layout.",
	"estimatedCost": 120000
}`

func setupRouter(t *testing.T) (*gin.Engine, *mocks.MockModelClient) {
	gin.SetMode(gin.TestMode)
	mockModel := mocks.NewMockModelClient(t)
	generator := ai.NewGenerator(mockModel, zerolog.Nop())
	handler := api.NewAPIHandler(generator, zerolog.Nop())

	router := gin.New()
	api.RegisterRoutes(router, handler)
	return router, mockModel
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGeneratePlanEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, mockModel := setupRouter(t)
		mockModel.On("GenerateStructured", mock.Anything, mock.Anything).Return(planReplyJSON, nil).Once()
		mockModel.On("GenerateImage", mock.Anything, mock.Anything).
			Return("data:image/png;base64,aGVsbG8=", nil).Once()

		rec := postJSON(router, "/plan/generate", `{"landLength": 60, "landWidth": 40, "architecturalStyle": "Modern"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var plan types.BuildingPlan
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
		assert.Equal(t, 2, plan.RecommendedNumberOfRooms)
		assert.NotEmpty(t, plan.PlanImageURI)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		router, mockModel := setupRouter(t)

		rec := postJSON(router, "/plan/generate", `{"landLength": 60}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockModel.AssertNotCalled(t, "GenerateStructured", mock.Anything, mock.Anything)
	})

	t.Run("upstream failure normalized to coarse error", func(t *testing.T) {
		router, mockModel := setupRouter(t)
		mockModel.On("GenerateStructured", mock.Anything, mock.Anything).
			Return("", ai.ErrUpstreamCall).Once()

		rec := postJSON(router, "/plan/generate", `{"landLength": 60, "landWidth": 40, "architecturalStyle": "Modern"}`)
		assert.Equal(t, http.StatusBadGateway, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Failed to generate building plan.", body["error"])
	})

	t.Run("schema failure normalized to coarse error", func(t *testing.T) {
		router, mockModel := setupRouter(t)
		mockModel.On("GenerateStructured", mock.Anything, mock.Anything).
			Return("not json", nil).Once()

		rec := postJSON(router, "/plan/generate", `{"landLength": 60, "landWidth": 40, "architecturalStyle": "Modern"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		// No internal diagnostic detail reaches the caller.
		assert.Equal(t, "Failed to generate building plan.", body["error"])
	})
}

func TestRefinePlanEndpoint(t *testing.T) {
	t.Run("success returns replacement plan", func(t *testing.T) {
		router, mockModel := setupRouter(t)
		mockModel.On("GenerateStructured", mock.Anything, mock.Anything).Return(planReplyJSON, nil).Once()
		mockModel.On("GenerateImage", mock.Anything, mock.Anything).
			Return("data:image/png;base64,aGVsbG8=", nil).Once()

		rec := postJSON(router, "/plan/refine", `{
			"currentPlan": {
				"recommendedNumberOfRooms": 1,
				"roomDetails": [{"type": "studio", "size": "20x20 feet"}],
				"floorPlanLayoutDescription": "Single open studio.",
				"estimatedCost": 90000
			},
			"userRequest": "Split the studio into a bedroom and kitchen"
		}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var plan types.BuildingPlan
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
		assert.Equal(t, 2, plan.RecommendedNumberOfRooms)
	})

	t.Run("missing userRequest rejected", func(t *testing.T) {
		router, _ := setupRouter(t)
		rec := postJSON(router, "/plan/refine", `{"currentPlan": {"recommendedNumberOfRooms": 1}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFindNearbyShopsEndpoint(t *testing.T) {
	router, mockModel := setupRouter(t)
	mockModel.On("GenerateStructured", mock.Anything, mock.Anything).Return(`{"shops": [
		{"name": "Greenway Grocery", "category": "Grocery", "address": "12 Elm St"}
	]}`, nil).Once()

	rec := postJSON(router, "/shops/nearby", `{"address": "1600 Amphitheatre Parkway, Mountain View, CA"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body api.ShopsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Shops, 1)
	assert.Equal(t, "Greenway Grocery", body.Shops[0].Name)
}

func TestSearchPropertyEndpoint(t *testing.T) {
	t.Run("empty result is 200 with empty list", func(t *testing.T) {
		router, mockModel := setupRouter(t)
		mockModel.On("GenerateStructured", mock.Anything, mock.Anything).
			Return(`{"properties": []}`, nil).Once()

		rec := postJSON(router, "/property/search", `{"location": "Nowhere", "minPrice": 0, "maxPrice": 100}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body api.PropertiesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotNil(t, body.Properties)
		assert.Empty(t, body.Properties)
	})

	t.Run("omitted maxPrice defaults to an open upper bound", func(t *testing.T) {
		router, mockModel := setupRouter(t)
		mockModel.On("GenerateStructured", mock.Anything, mock.Anything).
			Return(`{"properties": [
				{"address": "14 Cedar Loop, Austin", "price": 3200000, "bedrooms": 3, "bathrooms": 2, "area": 1650}
			]}`, nil).Once()

		rec := postJSON(router, "/property/search", `{"location": "Austin", "minPrice": 1000000}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body api.PropertiesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Properties, 1)
		assert.Equal(t, "14 Cedar Loop, Austin", body.Properties[0].Address)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		router, mockModel := setupRouter(t)

		rec := postJSON(router, "/property/search", `{"location": "Austin", "minPrice": 500, "maxPrice": 100}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockModel.AssertNotCalled(t, "GenerateStructured", mock.Anything, mock.Anything)
	})
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
