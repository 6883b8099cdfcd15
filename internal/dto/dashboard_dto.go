package dto

import "github.com/shopspring/decimal"

type PopularPackage struct {
	Name       string `json:"name"`
	Bookings   int64  `json:"bookings"`
	Percentage int64  `json:"percentage"`
}

type UpcomingEvent struct {
	ID      string          `json:"id"`
	Client  string          `json:"client"`
	Date    string          `json:"date"`
	Time    string          `json:"time"`
	Package string          `json:"package"`
	Status  string          `json:"status"`
	Amount  decimal.Decimal `json:"amount"`
}

// DashboardStatsResponse is the aggregate view served at /api/dashboard/stats.
type DashboardStatsResponse struct {
	TotalEvents     int64 `json:"totalEvents"`
	PendingEvents   int64 `json:"pendingEvents"`
	ConfirmedEvents int64 `json:"confirmedEvents"`
	CompletedEvents int64 `json:"completedEvents"`

	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	MonthlyRevenue  decimal.Decimal `json:"monthlyRevenue"`
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses"`
	MonthlyProfit   decimal.Decimal `json:"monthlyProfit"`

	TotalGames         int64 `json:"totalGames"`
	AvailableGames     int64 `json:"availableGames"`
	GamesInMaintenance int64 `json:"gamesInMaintenance"`
	TotalPackages      int64 `json:"totalPackages"`
	UniqueClients      int64 `json:"uniqueClients"`

	PopularPackages []PopularPackage `json:"popularPackages"`
	UpcomingEvents  []UpcomingEvent  `json:"upcomingEvents"`

	CurrentMonth string `json:"currentMonth"`
	CurrentDate  string `json:"currentDate"`
}
