package services

import (
	"context"
	"time"

	"smarttoll/internal/cache"
	"smarttoll/internal/domain/models"
	"smarttoll/internal/store"
	"smarttoll/internal/utils"
)

// AdminStats backs the admin dashboard tiles.
type AdminStats struct {
	TotalRevenue float64 `json:"totalRevenue"`
	BoothCount   int     `json:"boothCount"`
	ActiveUsers  int     `json:"activeUsers"`
	Transactions int     `json:"transactions"`
}

// OperatorStats backs the operator dashboard tiles for one lane session.
type OperatorStats struct {
	VehiclesProcessed int     `json:"vehiclesProcessed"`
	RevenueCollected  float64 `json:"revenueCollected"`
	InFlight          int     `json:"inFlight"`
	Failed            int     `json:"failed"`
}

const adminStatsKey = "stats:admin"

// StatsService computes dashboard aggregates from the live snapshots. The
// admin view goes through an optional Redis read cache since it scans both
// collections; commands that change the numbers invalidate it.
type StatsService struct {
	Store      *store.Store
	Auth       *AuthService
	AdminCache *cache.ViewCache[AdminStats]
	RequestID  string
}

func (s StatsService) Admin(ctx context.Context) AdminStats {
	if v, ok := s.AdminCache.Get(ctx, adminStatsKey); ok {
		return v
	}
	stats := AdminStats{BoothCount: len(s.Store.Booths())}
	if s.Auth != nil {
		stats.ActiveUsers = s.Auth.Count()
	}
	for _, p := range s.Store.Passes() {
		stats.Transactions++
		if p.Status == models.PassPaid {
			stats.TotalRevenue = utils.RoundCents(stats.TotalRevenue + p.Amount)
		}
	}
	s.AdminCache.Set(ctx, adminStatsKey, stats)
	return stats
}

func (s StatsService) Operator() OperatorStats {
	stats := OperatorStats{}
	for _, p := range s.Store.Passes() {
		switch p.Status {
		case models.PassPaid:
			stats.VehiclesProcessed++
			stats.RevenueCollected = utils.RoundCents(stats.RevenueCollected + p.Amount)
		case models.PassFailed:
			stats.VehiclesProcessed++
			stats.Failed++
		case models.PassProcessing, models.PassDetected:
			stats.InFlight++
		}
	}
	return stats
}

// Invalidate drops cached projections after a mutating command.
func (s StatsService) Invalidate(ctx context.Context) {
	s.AdminCache.Delete(ctx, adminStatsKey)
}

// CacheTTL is the default freshness window for cached dashboard views.
const CacheTTL = 5 * time.Second
