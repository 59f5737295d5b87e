package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRankInterns(t *testing.T) {
	ranked := rankInterns(interns)
	if len(ranked) != len(interns) {
		t.Fatalf("len=%d want=%d", len(ranked), len(interns))
	}
	wantOrder := []int{5, 2, 1, 3, 4}
	for i, ri := range ranked {
		if ri.ID != wantOrder[i] {
			t.Fatalf("pos %d: id=%d want=%d", i, ri.ID, wantOrder[i])
		}
		if ri.Rank != i+1 {
			t.Fatalf("pos %d: rank=%d want=%d", i, ri.Rank, i+1)
		}
	}
}

func TestInternStats(t *testing.T) {
	stats, ok := internStats(interns, 1)
	if !ok {
		t.Fatalf("intern 1 should exist")
	}
	if stats.RankPosition != 3 {
		t.Fatalf("rankPosition=%d want=3", stats.RankPosition)
	}
	if stats.TotalInterns != 5 {
		t.Fatalf("totalInterns=%d want=5", stats.TotalInterns)
	}
	if stats.MonthlyGrowth < 10 || stats.MonthlyGrowth > 39 {
		t.Fatalf("growth=%d outside [10,39]", stats.MonthlyGrowth)
	}
	if stats.ReferralCode != "sarah2025" {
		t.Fatalf("referralCode=%q want=sarah2025", stats.ReferralCode)
	}
	if _, ok := internStats(interns, 99); ok {
		t.Fatalf("intern 99 should not exist")
	}
}

func TestGetInternNotFound(t *testing.T) {
	e := echo.New()
	for _, id := range []string{"99", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/intern/"+id, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(id)
		if err := getIntern(c); err != nil {
			t.Fatalf("handler: %v", err)
		}
		if rec.Code != http.StatusNotFound {
			t.Fatalf("id=%s status=%d want=404", id, rec.Code)
		}
	}
}
