// Package analytics derives daily visitor statistics from the raw visit log.
//
// Stats are always recomputed from the full visit list rather than
// maintained incrementally, so they can never drift from the stored
// visits. The visit log for this site is small (tens of visits per day),
// which keeps the O(n) recomputation cheap.
package analytics

import (
	"sort"
	"time"

	"VoiceTalent-Backend/internal/domain"
)

// DateLayout is the calendar-date key format used for grouping (UTC).
const DateLayout = "2006-01-02"

// Summary is the dashboard payload returned by GET /api/analytics.
type Summary struct {
	TotalVisits         int                `json:"totalVisits"`
	TotalUniqueIPs      int                `json:"totalUniqueIPs"`
	TotalUniqueSessions int                `json:"totalUniqueSessions"`
	DailyStats          []*domain.DailyStat `json:"dailyStats"`
	Today               *domain.DailyStat   `json:"today"`
}

type dayAccumulator struct {
	visits         int
	uniqueAgents   map[string]struct{}
	uniqueIPs      map[string]struct{}
	uniqueSessions map[string]struct{}
}

// ComputeDailyStats groups visits by their UTC calendar date and returns
// one row per date that has at least one visit, sorted most recent first.
func ComputeDailyStats(visits []*domain.Visit) []*domain.DailyStat {
	days := make(map[string]*dayAccumulator)

	for _, visit := range visits {
		date := visit.Date()
		acc, ok := days[date]
		if !ok {
			acc = &dayAccumulator{
				uniqueAgents:   make(map[string]struct{}),
				uniqueIPs:      make(map[string]struct{}),
				uniqueSessions: make(map[string]struct{}),
			}
			days[date] = acc
		}
		acc.visits++
		if visit.UserAgent != "" {
			acc.uniqueAgents[visit.UserAgent] = struct{}{}
		}
		if visit.IP != "" {
			acc.uniqueIPs[visit.IP] = struct{}{}
		}
		if visit.SessionID != "" {
			acc.uniqueSessions[visit.SessionID] = struct{}{}
		}
	}

	stats := make([]*domain.DailyStat, 0, len(days))
	for date, acc := range days {
		stats = append(stats, &domain.DailyStat{
			Date:                date,
			Visits:              acc.visits,
			UniqueVisits:        len(acc.uniqueAgents),
			UniqueIPVisits:      len(acc.uniqueIPs),
			UniqueSessionVisits: len(acc.uniqueSessions),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Date > stats[j].Date
	})

	return stats
}

// ShouldCount reports whether a visit from (ip, sessionID) counts as new
// against the given same-day visits. Admission is granted unless BOTH the
// IP and the session have independently already visited that day:
//
//	shouldCount = !ipSeen || !sessionSeen
func ShouldCount(todays []*domain.Visit, ip, sessionID string) bool {
	var ipSeen, sessionSeen bool
	for _, visit := range todays {
		if visit.IP == ip {
			ipSeen = true
		}
		if visit.SessionID == sessionID {
			sessionSeen = true
		}
		if ipSeen && sessionSeen {
			return false
		}
	}
	return !ipSeen || !sessionSeen
}

// BuildSummary computes the dashboard summary for the given visit list.
// recentDays bounds the number of daily rows returned; truncation happens
// after sorting, so a sparse history still yields at most recentDays rows.
// The today row is zero-filled when no visit has been recorded yet today.
func BuildSummary(visits []*domain.Visit, recentDays int, now time.Time) *Summary {
	stats := ComputeDailyStats(visits)

	uniqueIPs := make(map[string]struct{})
	uniqueSessions := make(map[string]struct{})
	for _, visit := range visits {
		uniqueIPs[visit.IP] = struct{}{}
		uniqueSessions[visit.SessionID] = struct{}{}
	}

	today := now.UTC().Format(DateLayout)
	todayStat := &domain.DailyStat{Date: today}
	for _, stat := range stats {
		if stat.Date == today {
			todayStat = stat
			break
		}
	}

	if recentDays > 0 && len(stats) > recentDays {
		stats = stats[:recentDays]
	}

	return &Summary{
		TotalVisits:         len(visits),
		TotalUniqueIPs:      len(uniqueIPs),
		TotalUniqueSessions: len(uniqueSessions),
		DailyStats:          stats,
		Today:               todayStat,
	}
}

// StartOfDay returns the UTC midnight that begins the calendar day of t.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
