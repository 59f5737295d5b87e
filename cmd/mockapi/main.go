// Command mockapi serves the standalone demo dataset: five hardcoded interns
// behind three read-only endpoints. It shares no state with the main API and
// exists only as a fallback/demo target.
package main

import (
	"log"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Intern struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	ReferralCode    string  `json:"referralCode"`
	DonationsRaised float64 `json:"donationsRaised"`
	JoinDate        string  `json:"joinDate"`
	Avatar          string  `json:"avatar"`
}

type RankedIntern struct {
	Intern
	Rank int `json:"rank"`
}

// StatsResponse uses rankPosition for the numeric position; the tier label of
// the main API is a different concept and has no place here.
type StatsResponse struct {
	DonationsRaised float64 `json:"donationsRaised"`
	RankPosition    int     `json:"rankPosition"`
	TotalInterns    int     `json:"totalInterns"`
	MonthlyGrowth   int     `json:"monthlyGrowth"`
	ReferralCode    string  `json:"referralCode"`
}

var interns = []Intern{
	{
		ID:              1,
		Name:            "Sarah Johnson",
		Email:           "sarah@shecanfoundation.org",
		ReferralCode:    "sarah2025",
		DonationsRaised: 15420,
		JoinDate:        "2024-01-15",
		Avatar:          "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
	},
	{
		ID:              2,
		Name:            "Maria Garcia",
		Email:           "maria@shecanfoundation.org",
		ReferralCode:    "maria2025",
		DonationsRaised: 18750,
		JoinDate:        "2024-01-20",
		Avatar:          "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
	},
	{
		ID:              3,
		Name:            "Emily Chen",
		Email:           "emily@shecanfoundation.org",
		ReferralCode:    "emily2025",
		DonationsRaised: 12300,
		JoinDate:        "2024-02-01",
		Avatar:          "https://images.pexels.com/photos/1130626/pexels-photo-1130626.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
	},
	{
		ID:              4,
		Name:            "Aisha Patel",
		Email:           "aisha@shecanfoundation.org",
		ReferralCode:    "aisha2025",
		DonationsRaised: 9850,
		JoinDate:        "2024-02-10",
		Avatar:          "https://images.pexels.com/photos/1181519/pexels-photo-1181519.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
	},
	{
		ID:              5,
		Name:            "Jessica Williams",
		Email:           "jessica@shecanfoundation.org",
		ReferralCode:    "jessica2025",
		DonationsRaised: 21600,
		JoinDate:        "2024-01-05",
		Avatar:          "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
	},
}

func rankInterns(list []Intern) []RankedIntern {
	sorted := make([]Intern, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DonationsRaised > sorted[j].DonationsRaised
	})
	ranked := make([]RankedIntern, 0, len(sorted))
	for i, it := range sorted {
		ranked = append(ranked, RankedIntern{Intern: it, Rank: i + 1})
	}
	return ranked
}

func internStats(list []Intern, id int) (StatsResponse, bool) {
	for _, ri := range rankInterns(list) {
		if ri.ID != id {
			continue
		}
		return StatsResponse{
			DonationsRaised: ri.DonationsRaised,
			RankPosition:    ri.Rank,
			TotalInterns:    len(list),
			MonthlyGrowth:   rand.Intn(30) + 10,
			ReferralCode:    ri.ReferralCode,
		}, true
	}
	return StatsResponse{}, false
}

func getIntern(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Intern not found"})
	}
	for _, it := range interns {
		if it.ID == id {
			return c.JSON(http.StatusOK, it)
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": "Intern not found"})
}

func getLeaderboard(c echo.Context) error {
	return c.JSON(http.StatusOK, rankInterns(interns))
}

func getInternStats(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Intern not found"})
	}
	stats, ok := internStats(interns, id)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Intern not found"})
	}
	return c.JSON(http.StatusOK, stats)
}

func main() {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	e.GET("/api/intern/:id", getIntern)
	e.GET("/api/leaderboard", getLeaderboard)
	e.GET("/api/intern/:id/stats", getInternStats)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Printf("mock server running on port %s", port)
	if err := e.Start(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
