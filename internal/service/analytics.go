package service

import (
	"context"
	"fmt"
	"time"

	"VoiceTalent-Backend/internal/analytics"
	"VoiceTalent-Backend/internal/domain"
	"VoiceTalent-Backend/internal/repository"
	"VoiceTalent-Backend/pkg/useragent"

	"go.uber.org/zap"
)

// AnalyticsService records page-view events and serves the dashboard
// summary. Admission follows the daily uniqueness rule: an event is
// dropped only when both its IP and its session were already seen today.
type AnalyticsService struct {
	storage    repository.Storage
	parser     *useragent.Parser // nil when no regexes file is available
	log        *zap.Logger
	recentDays int
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(storage repository.Storage, parser *useragent.Parser, log *zap.Logger, recentDays int) *AnalyticsService {
	return &AnalyticsService{
		storage:    storage,
		parser:     parser,
		log:        log,
		recentDays: recentDays,
	}
}

// RecordVisit applies the admission rule and appends the visit when it
// counts. Returns counted=false when the event is acknowledged but
// dropped because neither counter would change.
func (s *AnalyticsService) RecordVisit(ctx context.Context, page, userAgent, ip, sessionID string) (bool, error) {
	now := time.Now().UTC()

	todays, err := s.storage.ListVisitsSince(ctx, analytics.StartOfDay(now))
	if err != nil {
		return false, fmt.Errorf("failed to load today's visits: %w", err)
	}

	if !analytics.ShouldCount(todays, ip, sessionID) {
		s.log.Debug("visit not counted",
			zap.String("ip", ip),
			zap.String("session_id", sessionID),
			zap.String("page", page))
		return false, nil
	}

	if page == "" {
		page = "/"
	}

	visit := &domain.Visit{
		Timestamp: now,
		Page:      page,
		UserAgent: userAgent,
		IP:        ip,
		SessionID: sessionID,
	}
	if err := s.storage.AppendVisit(ctx, visit); err != nil {
		return false, fmt.Errorf("failed to record visit: %w", err)
	}

	s.log.Debug("visit recorded",
		zap.String("ip", ip),
		zap.String("session_id", sessionID),
		zap.String("page", page))
	return true, nil
}

// Summary builds the dashboard summary from the full visit history.
func (s *AnalyticsService) Summary(ctx context.Context) (*analytics.Summary, error) {
	visits, err := s.storage.ListVisits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load visits: %w", err)
	}
	return analytics.BuildSummary(visits, s.recentDays, time.Now()), nil
}

// DeviceBreakdown classifies every recorded visit by device type.
func (s *AnalyticsService) DeviceBreakdown(ctx context.Context) (map[string]int, error) {
	visits, err := s.storage.ListVisits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load visits: %w", err)
	}

	devices := make(map[string]int)
	for _, visit := range visits {
		var device string
		if s.parser != nil {
			device = s.parser.DeviceType(visit.UserAgent)
		} else {
			device = useragent.Classify(visit.UserAgent)
		}
		devices[device]++
	}
	return devices, nil
}
