package dashboard

import "context"

type Service interface {
	GetStats(ctx context.Context) (*Stats, error)
	GetReports(ctx context.Context, r DateRange) (*Reports, error)
	GetAnalytics(ctx context.Context) (*Analytics, error)
	ExportTicketSales(ctx context.Context, format string, r DateRange) ([]byte, string, string, error)
}

type service struct {
	repo     Repository
	exporter Exporter
}

func NewService(repo Repository, exporter Exporter) Service {
	return &service{repo: repo, exporter: exporter}
}

func (s *service) GetStats(ctx context.Context) (*Stats, error) {
	return s.repo.Stats(ctx)
}

func (s *service) GetReports(ctx context.Context, r DateRange) (*Reports, error) {
	byCategory, err := s.repo.EventsByCategory(ctx, r)
	if err != nil {
		return nil, err
	}
	byVenue, err := s.repo.EventsByVenue(ctx, r)
	if err != nil {
		return nil, err
	}
	revenue, err := s.repo.RevenueByMonth(ctx, r)
	if err != nil {
		return nil, err
	}
	trend, err := s.repo.TicketSalesTrend(ctx, r)
	if err != nil {
		return nil, err
	}

	return &Reports{
		EventsByCategory: byCategory,
		EventsByVenue:    byVenue,
		RevenueByMonth:   revenue,
		TicketSalesTrend: trend,
	}, nil
}

func (s *service) GetAnalytics(ctx context.Context) (*Analytics, error) {
	topEvents, err := s.repo.TopEvents(ctx, 10)
	if err != nil {
		return nil, err
	}
	topVenues, err := s.repo.TopVenues(ctx, 10)
	if err != nil {
		return nil, err
	}
	registrations, err := s.repo.UserRegistrationTrend(ctx, 30)
	if err != nil {
		return nil, err
	}
	methods, err := s.repo.PaymentMethodBreakdown(ctx)
	if err != nil {
		return nil, err
	}

	return &Analytics{
		TopEvents:             topEvents,
		TopVenues:             topVenues,
		UserRegistrationTrend: registrations,
		PaymentMethods:        methods,
	}, nil
}

func (s *service) ExportTicketSales(ctx context.Context, format string, r DateRange) ([]byte, string, string, error) {
	rows, err := s.repo.TicketSaleRows(ctx, r)
	if err != nil {
		return nil, "", "", err
	}
	return s.exporter.ExportTicketSales(format, rows)
}
