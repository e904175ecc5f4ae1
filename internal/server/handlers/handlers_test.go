package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/flockbook/internal/domain/models"
	"github.com/mamadbah2/flockbook/internal/server/handlers"
	"github.com/mamadbah2/flockbook/internal/server/router"
	"github.com/mamadbah2/flockbook/internal/service/farm"
)

func newTestRouter(t *testing.T) (*gin.Engine, *farm.Service) {
	t.Helper()
	svc := farm.NewService(models.NewFarmState(1250), nil, nil, nil)
	farmHandler := handlers.NewFarmHandler(svc, nil)
	analyticsHandler := handlers.NewAnalyticsHandler(svc, nil)
	return router.New(farmHandler, analyticsHandler, nil), svc
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestCreateRecordEndpoint(t *testing.T) {
	engine, svc := newTestRouter(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/records", map[string]any{
		"date":          "2025-08-25",
		"eggsCollected": "100",
		"eggsSold":      "80",
		"eggPrice":      "0.5",
		"fowlDeaths":    "2",
		"newHatches":    "5",
		"feedCost":      "10",
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var created models.DailyRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.EggsCollected != 100 || created.ID == "" {
		t.Fatalf("unexpected record: %+v", created)
	}

	snap := svc.Snapshot()
	if snap.TotalFowls != 1253 || snap.TotalEggs != 100 || snap.TotalProfit != 30.0 {
		t.Fatalf("aggregates not updated: %+v", snap)
	}
}

func TestScheduleEndpoints(t *testing.T) {
	engine, _ := newTestRouter(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/schedules", map[string]any{
		"type":   "inspection",
		"title":  "Night Check",
		"time":   "21:00",
		"active": true,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}

	var created models.Schedule
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}

	rec = doJSON(t, engine, http.MethodPatch, "/api/schedules/"+created.ID, map[string]any{"title": "Final Check"})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("patch status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, engine, http.MethodDelete, "/api/schedules/"+created.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}

	rec = doJSON(t, engine, http.MethodDelete, "/api/schedules/"+created.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}
}

func TestCreateScheduleRejectsUnknownType(t *testing.T) {
	engine, _ := newTestRouter(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/schedules", map[string]any{
		"type":  "harvest",
		"title": "Corn Day",
		"time":  "10:00",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestMetricsEndpointEmptyState(t *testing.T) {
	engine, _ := newTestRouter(t)

	rec := doJSON(t, engine, http.MethodGet, "/api/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var metrics models.Metrics
	if err := json.Unmarshal(rec.Body.Bytes(), &metrics); err != nil {
		t.Fatal(err)
	}
	if metrics != (models.Metrics{}) {
		t.Fatalf("expected all-zero metrics, got %+v", metrics)
	}
}

func TestAnalyticsEndpoint(t *testing.T) {
	engine, _ := newTestRouter(t)

	doJSON(t, engine, http.MethodPost, "/api/records", map[string]any{
		"date":          "2025-08-25",
		"eggsCollected": "100",
	})

	rec := doJSON(t, engine, http.MethodGet, "/api/analytics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var payload struct {
		Weekly   []models.WeekSummary `json:"weekly"`
		Insights []any                `json:"insights"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if len(payload.Weekly) != 1 || payload.Weekly[0].TotalEggs != 100 {
		t.Fatalf("unexpected weekly rollup: %+v", payload.Weekly)
	}
	if payload.Insights == nil {
		t.Fatal("insights must encode as an array, not null")
	}
}
