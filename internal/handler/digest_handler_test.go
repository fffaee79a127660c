package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
	"github.com/tomekjam/ai-digest/internal/model"
)

type fakeHistoryReader struct {
	history model.History
}

func (f *fakeHistoryReader) Load() model.History {
	return f.history
}

func newTestRouter(store HistoryReader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewDigestHandler(store)
	r.GET("/digest/latest", h.GetLatest)
	r.GET("/digest/history", h.GetHistory)
	r.GET("/health", h.GetHealth)
	return r
}

func TestGetLatest_EmptyHistory(t *testing.T) {
	r := newTestRouter(&fakeHistoryReader{history: model.History{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/digest/latest", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetLatest_ReturnsMostRecentDay(t *testing.T) {
	store := &fakeHistoryReader{
		history: model.History{
			"2026-08-23": {{Title: "Older story", URL: "https://example.com/old"}},
			"2026-08-25": {
				{Title: "Newest story", URL: "https://example.com/new"},
				{Title: "Second story", URL: "https://example.com/second"},
			},
		},
	}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/digest/latest", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res DigestDayResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, "2026-08-25", res.Date)
	assert.Equal(t, 2, len(res.Stories))
	assert.Equal(t, "Newest story", res.Stories[0].Title)
}

func TestGetHistory_SortedDescWithTotal(t *testing.T) {
	store := &fakeHistoryReader{
		history: model.History{
			"2026-08-23": {{Title: "A", URL: ""}},
			"2026-08-24": {{Title: "B", URL: ""}, {Title: "C", URL: ""}},
			"2026-08-25": {{Title: "D", URL: ""}},
		},
	}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/digest/history", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res HistoryResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, 3, len(res.Days))
	assert.Equal(t, "2026-08-25", res.Days[0].Date)
	assert.Equal(t, "2026-08-23", res.Days[2].Date)
	assert.Equal(t, 4, res.Total)
}

func TestGetHistory_Empty(t *testing.T) {
	r := newTestRouter(&fakeHistoryReader{history: model.History{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/digest/history", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res HistoryResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, 0, len(res.Days))
	assert.Equal(t, 0, res.Total)
}

func TestGetHealth(t *testing.T) {
	r := newTestRouter(&fakeHistoryReader{history: model.History{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
