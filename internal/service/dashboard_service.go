package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/dto"
	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	dashboardCacheKey = "dashboard:stats"
	dashboardCacheTTL = time.Minute

	upcomingEventsLimit  = 5
	popularPackagesLimit = 5
)

// spanishMonths maps month numbers to the display names the dashboard shows.
var spanishMonths = [...]string{
	"", "Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type dashboardService struct {
	repo  repository.DashboardRepository
	cache *redis.Client
	now   func() time.Time
}

// NewDashboardService builds the stats aggregator. cache may be nil; stats
// are then recomputed on every request.
func NewDashboardService(repo repository.DashboardRepository, cache *redis.Client) DashboardService {
	return &dashboardService{repo: repo, cache: cache, now: time.Now}
}

func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var cached dto.DashboardStatsResponse
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Msg("cache del dashboard no disponible")
		}
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, dashboardCacheKey, raw, dashboardCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("no se pudo cachear el dashboard")
			}
		}
	}
	return stats, nil
}

func (s *dashboardService) compute(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	counts, err := s.repo.EventCounts(ctx)
	if err != nil {
		return nil, err
	}

	allRevenue, err := s.repo.RevenueEvents(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	totalRevenue := decimal.Zero
	for i := range allRevenue {
		totalRevenue = totalRevenue.Add(allRevenue[i].TotalEventPrice())
	}

	monthEvents, err := s.repo.RevenueEvents(ctx, &monthStart, &monthEnd)
	if err != nil {
		return nil, err
	}
	monthlyRevenue := decimal.Zero
	for i := range monthEvents {
		monthlyRevenue = monthlyRevenue.Add(monthEvents[i].TotalEventPrice())
	}

	monthlyExpenses, err := s.repo.ExpenseTotal(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	gameCounts, err := s.repo.GameCounts(ctx)
	if err != nil {
		return nil, err
	}
	packageCount, err := s.repo.PackageCount(ctx)
	if err != nil {
		return nil, err
	}
	uniqueClients, err := s.repo.UniqueClients(ctx)
	if err != nil {
		return nil, err
	}

	popularRows, err := s.repo.PopularPackages(ctx, popularPackagesLimit)
	if err != nil {
		return nil, err
	}
	popular := make([]dto.PopularPackage, 0, len(popularRows))
	for _, row := range popularRows {
		pct := int64(0)
		if counts.Total > 0 {
			pct = row.Bookings * 100 / counts.Total
		}
		popular = append(popular, dto.PopularPackage{
			Name:       row.Name,
			Bookings:   row.Bookings,
			Percentage: pct,
		})
	}

	upcomingRows, err := s.repo.UpcomingEvents(ctx, now, upcomingEventsLimit)
	if err != nil {
		return nil, err
	}
	upcoming := make([]dto.UpcomingEvent, 0, len(upcomingRows))
	for i := range upcomingRows {
		e := &upcomingRows[i]
		item := dto.UpcomingEvent{
			ID:     e.ID.String(),
			Client: e.ContactName,
			Date:   e.EventDate.Format("2006-01-02"),
			Time:   e.StartTime,
			Status: e.Status,
			Amount: e.TotalEventPrice(),
		}
		if e.Package != nil {
			item.Package = e.Package.Name
		}
		upcoming = append(upcoming, item)
	}

	return &dto.DashboardStatsResponse{
		TotalEvents:     counts.Total,
		PendingEvents:   counts.Pending,
		ConfirmedEvents: counts.Confirmed,
		CompletedEvents: counts.Completed,

		TotalRevenue:    totalRevenue,
		MonthlyRevenue:  monthlyRevenue,
		MonthlyExpenses: monthlyExpenses,
		MonthlyProfit:   monthlyRevenue.Sub(monthlyExpenses),

		TotalGames:         gameCounts.TotalGames,
		AvailableGames:     gameCounts.AvailableCount,
		GamesInMaintenance: gameCounts.MaintenanceCount,
		TotalPackages:      packageCount,
		UniqueClients:      uniqueClients,

		PopularPackages: popular,
		UpcomingEvents:  upcoming,

		CurrentMonth: spanishMonths[now.Month()],
		CurrentDate:  now.Format("2006-01-02"),
	}, nil
}
