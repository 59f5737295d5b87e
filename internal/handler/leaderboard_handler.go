package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shecanfoundation/intern-backend/internal/leaderboard"
	"github.com/shecanfoundation/intern-backend/internal/service"
)

type LeaderboardHandler struct {
	svc service.StatsService
}

func NewLeaderboardHandler(svc service.StatsService) *LeaderboardHandler {
	return &LeaderboardHandler{svc: svc}
}

type LeaderboardEntryResponse struct {
	UserResponse
	Rank int `json:"rank"`
}

// StatsResponse keeps the numeric position (rankPosition) and the stored tier
// (tierLabel) as separate fields.
type StatsResponse struct {
	TotalRaised   float64 `json:"totalRaised"`
	TierLabel     string  `json:"tierLabel"`
	RankPosition  int     `json:"rankPosition"`
	TotalInterns  int     `json:"totalInterns"`
	MonthlyGrowth int     `json:"monthlyGrowth"`
	ReferralCode  string  `json:"referralCode"`
}

func (h *LeaderboardHandler) List(c echo.Context) error {
	entries, err := h.svc.Leaderboard(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch leaderboard"))
	}
	resp := make([]LeaderboardEntryResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, LeaderboardEntryResponse{
			UserResponse: toUserResponse(&entries[i].User),
			Rank:         entries[i].Rank,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *LeaderboardHandler) MyStats(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	return c.JSON(http.StatusOK, toStatsResponse(h.svc.UserStats(c.Request().Context(), uid)))
}

func toStatsResponse(s leaderboard.Stats) StatsResponse {
	return StatsResponse{
		TotalRaised:   s.TotalRaised,
		TierLabel:     s.TierLabel,
		RankPosition:  s.RankPosition,
		TotalInterns:  s.TotalInterns,
		MonthlyGrowth: s.MonthlyGrowth,
		ReferralCode:  s.ReferralCode,
	}
}
