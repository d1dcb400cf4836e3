package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/bmicare/internal/domain/models"
	"github.com/mamadbah2/bmicare/internal/repository/memory"
	"github.com/mamadbah2/bmicare/internal/server/handlers"
	"github.com/mamadbah2/bmicare/internal/service/assessment"
	"github.com/mamadbah2/bmicare/internal/service/history"
	"github.com/mamadbah2/bmicare/internal/service/insight"
)

type mockCompleter struct {
	mock.Mock
}

func (m *mockCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	args := m.Called(ctx, system, prompt)
	return args.String(0), args.Error(1)
}

type testApp struct {
	engine  *gin.Engine
	history *history.Store
}

func newTestApp(t *testing.T, client insight.Completer) testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := history.NewStore(memory.NewStore(), "", 0, nil)
	requester := insight.NewRequester(client, insight.OpenAI, nil)
	svc := assessment.NewService(store, requester, nil)

	engine := New(Handlers{
		Assessment: handlers.NewAssessmentHandler(svc, requester, nil),
		History:    handlers.NewHistoryHandler(store, svc, nil),
	}, nil)
	return testApp{engine: engine, history: store}
}

func (a testApp) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.engine.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t, nil)
	rec := app.do(t, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	app := newTestApp(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	app.engine.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestAssessmentFlow(t *testing.T) {
	client := new(mockCompleter)
	client.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("**Fertility** note.", nil)
	app := newTestApp(t, client)

	rec := app.do(t, http.MethodPost, "/api/assessments", handlers.AssessmentRequest{
		Age: 28, Weight: 60, WeightUnit: "kg", Height: 165, HeightUnit: "cm",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decode[assessment.Assessment](t, rec)
	assert.Equal(t, 22.0, got.Result.BMI)
	assert.Equal(t, models.CategoryNormal, got.Result.Category)
	assert.Equal(t, "**Fertility** note.", got.Insight.Text)
	assert.NotEmpty(t, got.Impact.Impacts.Fertility)

	list := app.do(t, http.MethodGet, "/api/history", nil)
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), `"color":"#10B981"`)
	assert.Contains(t, list.Body.String(), `"count":1`)
}

func TestAssessmentImperialUnits(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.do(t, http.MethodPost, "/api/assessments", handlers.AssessmentRequest{
		Age: 30, Weight: 132.2772, WeightUnit: "lbs", Height: 5, Inches: 6, HeightUnit: "ft",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decode[assessment.Assessment](t, rec)
	assert.InDelta(t, 167.64, got.Measurement.HeightCm, 1e-6)
	assert.InDelta(t, 60.0, got.Measurement.WeightKg, 1e-3)
	assert.Equal(t, "configuration", got.Insight.Kind)
}

func TestAssessmentValidationErrors(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.do(t, http.MethodPost, "/api/assessments", handlers.AssessmentRequest{Age: 10, Weight: 10, Height: 500})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decode[models.ErrorResponse](t, rec)
	assert.Equal(t, "Age must be between 15 and 40 years", body.Fields["age"])
	assert.Equal(t, "Weight must be between 30 and 200 kg", body.Fields["weight"])
	assert.Equal(t, "Height must be between 100 and 250 cm", body.Fields["height"])
	assert.Empty(t, app.history.List(context.Background()))
}

func TestAssessmentBadRequests(t *testing.T) {
	app := newTestApp(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/assessments", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	app.engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(t, http.MethodPost, "/api/assessments", handlers.AssessmentRequest{
		Age: 28, Weight: 60, WeightUnit: "stone", Height: 165,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyze(t *testing.T) {
	client := new(mockCompleter)
	client.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("", nil).Once()
	app := newTestApp(t, client)

	rec := app.do(t, http.MethodPost, "/api/analyze", models.InsightRequest{BMI: 22, Category: "Normal Weight", Age: 28})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, insight.FallbackText, decode[models.InsightResponse](t, rec).Analysis)
}

func TestAnalyzeErrors(t *testing.T) {
	app := newTestApp(t, nil)
	rec := app.do(t, http.MethodPost, "/api/analyze", models.InsightRequest{BMI: 22, Category: "Normal Weight", Age: 28})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t,
		"OpenAI API key not configured. Please add OPENAI_API_KEY to your environment variables.",
		decode[models.ErrorResponse](t, rec).Error)

	client := new(mockCompleter)
	client.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("connection refused"))
	app = newTestApp(t, client)
	rec = app.do(t, http.MethodPost, "/api/analyze", models.InsightRequest{BMI: 22, Category: "Normal Weight", Age: 28})

	require.Equal(t, http.StatusBadGateway, rec.Code)
	body := decode[models.ErrorResponse](t, rec)
	assert.Equal(t, "Failed to generate AI analysis", body.Error)
	assert.Equal(t, "connection refused", body.Details)
}

func TestKnowledgeRoutes(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.do(t, http.MethodGet, "/api/knowledge/obese", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	impact := decode[models.ReproductiveHealthImpact](t, rec)
	assert.Equal(t, "Obese (BMI ≥ 30)", impact.Category)
	assert.NotEmpty(t, impact.Statistics)

	rec = app.do(t, http.MethodGet, "/api/knowledge/giant", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"label":"Normal Weight"`)
	assert.Contains(t, rec.Body.String(), `"min":18.5`)
}

func TestHistoryRoutes(t *testing.T) {
	client := new(mockCompleter)
	client.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("ok", nil)
	app := newTestApp(t, client)
	ctx := context.Background()

	for _, weight := range []float64{60, 80} {
		rec := app.do(t, http.MethodPost, "/api/assessments", handlers.AssessmentRequest{Age: 25, Weight: weight, Height: 170})
		require.Equal(t, http.StatusOK, rec.Code)
	}
	entries := app.history.List(ctx)
	require.Len(t, entries, 2)

	desc := app.do(t, http.MethodGet, "/api/history?order=desc", nil)
	require.Equal(t, http.StatusOK, desc.Code)
	listed := decode[struct {
		Entries []models.HistoryEntry `json:"entries"`
	}](t, desc)
	require.Len(t, listed.Entries, 2)
	assert.Equal(t, entries[1].ID, listed.Entries[0].ID)

	rec := app.do(t, http.MethodGet, "/api/history/"+entries[0].ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = app.do(t, http.MethodGet, "/api/history/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodPost, "/api/history/"+entries[0].ID+"/recalculate", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, app.history.List(ctx), 3)
	rec = app.do(t, http.MethodPost, "/api/history/nope/recalculate", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodDelete, "/api/history/nope", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, app.history.List(ctx), 3)

	rec = app.do(t, http.MethodDelete, "/api/history/"+entries[0].ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, app.history.List(ctx), 2)

	rec = app.do(t, http.MethodDelete, "/api/history", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, app.history.List(ctx))
}
