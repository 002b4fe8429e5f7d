package adapthttp_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	adapthttp "consumption/internal/adapter/http"
	"consumption/internal/adapter/memory"
	"consumption/internal/app"
	"consumption/internal/domain"
	"consumption/internal/eventlog"
)

func newTestServer(t *testing.T) (http.Handler, *app.TrackerService, *eventlog.Capture) {
	t.Helper()
	store := memory.New()
	sink := eventlog.NewCapture()
	tracker := app.NewTrackerService(store, sink)
	totals := app.NewTotalsService(store, 1500)
	return adapthttp.New(tracker, totals, nil).Handler(), tracker, sink
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	h, _, _ := newTestServer(t)
	w := doJSON(t, h, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAddAndListItems(t *testing.T) {
	h, _, sink := newTestServer(t)

	w := doJSON(t, h, http.MethodPost, "/api/items", map[string]any{
		"category": "food", "name": "Cake", "calories": 600,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	msgs := sink.Messages()
	if len(msgs) != 2 || msgs[1] != "⚠️ Alert: Cake is high in calories!" {
		t.Errorf("expected high-calorie alert, got %v", msgs)
	}

	w = doJSON(t, h, http.MethodGet, "/api/items", nil)
	var resp struct {
		Items []domain.Consumable `json:"items"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Name != "Cake" {
		t.Errorf("unexpected items: %v", resp.Items)
	}

	w = doJSON(t, h, http.MethodGet, "/api/items/list", nil)
	var listResp struct {
		List string `json:"list"`
	}
	if err := json.NewDecoder(w.Body).Decode(&listResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if listResp.List != "Cake (600 cal)" {
		t.Errorf("list = %q", listResp.List)
	}
}

func TestAddItemValidation(t *testing.T) {
	h, _, _ := newTestServer(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"unknown category", map[string]any{"category": "snack", "name": "X", "calories": 1}},
		{"empty name", map[string]any{"category": "food", "name": "  ", "calories": 1}},
		{"negative calories", map[string]any{"category": "food", "name": "X", "calories": -1}},
		{"sugary food", map[string]any{"category": "food", "name": "X", "calories": 1, "sugary": true}},
		{"unknown field", map[string]any{"category": "food", "name": "X", "calories": 1, "extra": true}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, h, http.MethodPost, "/api/items", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestDeleteAtIsLogOnlyNoOp(t *testing.T) {
	h, tracker, sink := newTestServer(t)
	tracker.Add(context.Background(), domain.NewFood("Apple", 95))
	sink.Reset()

	w := doJSON(t, h, http.MethodPost, "/api/items/delete-at", map[string]any{"index": 5})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for out-of-range index, got %d", w.Code)
	}

	msgs := sink.Messages()
	if len(msgs) != 1 || msgs[0] != "Invalid index: 5" {
		t.Errorf("unexpected log channel contents: %v", msgs)
	}

	var resp struct {
		Items []domain.Consumable `json:"items"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Items) != 1 {
		t.Errorf("collection changed by out-of-range delete: %v", resp.Items)
	}
}

func TestDeleteByName(t *testing.T) {
	h, _, sink := newTestServer(t)
	doJSON(t, h, http.MethodPost, "/api/items", map[string]any{
		"category": "drink", "name": "Coffee", "calories": 5,
	})
	sink.Reset()

	w := doJSON(t, h, http.MethodPost, "/api/items/delete-by-name", map[string]any{"name": "coffee"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Items []domain.Consumable `json:"items"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Items) != 0 {
		t.Errorf("expected empty tracker, got %v", resp.Items)
	}
	if msgs := sink.Messages(); len(msgs) != 1 || msgs[0] != "Coffee removed." {
		t.Errorf("unexpected log channel contents: %v", msgs)
	}
}

func TestTotals(t *testing.T) {
	h, _, _ := newTestServer(t)
	doJSON(t, h, http.MethodPost, "/api/items", map[string]any{"category": "food", "name": "Apple", "calories": 95})
	doJSON(t, h, http.MethodPost, "/api/items", map[string]any{"category": "drink", "name": "Cola", "calories": 150, "sugary": true})
	doJSON(t, h, http.MethodPost, "/api/items", map[string]any{"category": "food", "name": "Cake", "calories": 1400})

	w := doJSON(t, h, http.MethodGet, "/api/totals", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var sum app.Summary
	if err := json.NewDecoder(w.Body).Decode(&sum); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sum.FoodCalories != 1495 || sum.DrinkCalories != 150 || sum.GrandTotal != 1645 {
		t.Errorf("unexpected totals: %+v", sum)
	}
	if !sum.OverLimit || sum.Overage != 145 {
		t.Errorf("expected overage of 145, got %+v", sum)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h, _, _ := newTestServer(t)

	tests := []struct {
		method, path string
	}{
		{http.MethodDelete, "/api/items"},
		{http.MethodPost, "/api/items/list"},
		{http.MethodGet, "/api/items/delete-at"},
		{http.MethodGet, "/api/items/delete-by-name"},
		{http.MethodPost, "/api/totals"},
	}
	for _, tc := range tests {
		w := doJSON(t, h, tc.method, tc.path, nil)
		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s %s: expected 405, got %d", tc.method, tc.path, w.Code)
		}
	}
}
