package handler

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/tomekjam/ai-digest/internal/model"
)

type HistoryReader interface {
	Load() model.History
}

// DigestHandler serves the retained digest history read-only. It never
// writes; the digest binary remains the only writer of the history file.
type DigestHandler struct {
	store HistoryReader
}

func NewDigestHandler(store HistoryReader) *DigestHandler {
	return &DigestHandler{store: store}
}

type StoryRefResponse struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type DigestDayResponse struct {
	Date    string             `json:"date"`
	Stories []StoryRefResponse `json:"stories"`
}

type HistoryResponse struct {
	Days  []DigestDayResponse `json:"days"`
	Total int                 `json:"total"`
}

func toDayResponse(date string, refs []model.StoryRef) DigestDayResponse {
	stories := make([]StoryRefResponse, 0, len(refs))
	for _, ref := range refs {
		stories = append(stories, StoryRefResponse{Title: ref.Title, URL: ref.URL})
	}
	return DigestDayResponse{Date: date, Stories: stories}
}

func sortedDatesDesc(h model.History) []string {
	dates := make([]string, 0, len(h))
	for date := range h {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

func (h *DigestHandler) GetLatest(c *gin.Context) {
	history := h.store.Load()

	dates := sortedDatesDesc(history)
	if len(dates) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No digest history"})
		return
	}

	latest := dates[0]
	c.JSON(http.StatusOK, toDayResponse(latest, history[latest]))
}

func (h *DigestHandler) GetHistory(c *gin.Context) {
	history := h.store.Load()

	res := HistoryResponse{Days: []DigestDayResponse{}}
	for _, date := range sortedDatesDesc(history) {
		res.Days = append(res.Days, toDayResponse(date, history[date]))
		res.Total += len(history[date])
	}

	c.JSON(http.StatusOK, res)
}

func (h *DigestHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
