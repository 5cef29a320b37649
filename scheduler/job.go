package scheduler

import (
	"context"
	"fmt"
	"time"

	"kai-ticket-watcher/config"
	"kai-ticket-watcher/models"
	"kai-ticket-watcher/notifier"
	"kai-ticket-watcher/scraper"
	"kai-ticket-watcher/services"
	"kai-ticket-watcher/utils"
)

// Job runs the search workflow over every configured route, one route at a
// time. Notifier failures never affect the computed results.
type Job struct {
	cfg      *config.Config
	source   scraper.Source
	mapper   *services.RowMapper
	telegram *notifier.TelegramNotifier // nil when not configured
	email    *notifier.EmailNotifier
	alerted  *utils.AlertTracker
	logger   *utils.Logger
}

// NewJob wires a search job from its collaborators
func NewJob(cfg *config.Config, source scraper.Source, telegram *notifier.TelegramNotifier, email *notifier.EmailNotifier, logger *utils.Logger) *Job {
	return &Job{
		cfg:      cfg,
		source:   source,
		mapper:   services.NewRowMapper(logger),
		telegram: telegram,
		email:    email,
		alerted:  utils.NewAlertTracker(),
		logger:   logger,
	}
}

// RunOnce executes one search cycle and returns every matching ticket.
// A failing route is logged and skipped; the remaining routes still run.
func (j *Job) RunOnce(ctx context.Context) ([]*models.TicketOption, error) {
	var allMatches []*models.TicketOption
	for _, route := range j.cfg.Routes() {
		if err := ctx.Err(); err != nil {
			return allMatches, err
		}

		results, err := j.searchRoute(ctx, route)
		if err != nil {
			j.logger.Warn("Search failed for %s -> %s: %v", route.Origin, route.Destination, err)
			continue
		}

		filtered := services.FilterTickets(results.Tickets, j.cfg, route)
		if len(filtered) == 0 {
			j.logger.Info("No matches for %s -> %s", route.Origin, route.Destination)
			continue
		}

		j.logger.Info("Found %d matching tickets for %s -> %s", len(filtered), route.Origin, route.Destination)
		fmt.Println(services.FormatTicketTable(filtered))
		j.notify(ctx, results, filtered)
		allMatches = append(allMatches, filtered...)
	}
	return allMatches, nil
}

// Watch polls every configured interval until ctx is cancelled
func (j *Job) Watch(ctx context.Context) error {
	interval := j.cfg.PollingInterval
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		started := time.Now()
		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.Error("Search cycle failed: %v", err)
		}
		j.logger.Info("Cycle took %.1fs", time.Since(started).Seconds())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (j *Job) searchRoute(ctx context.Context, route config.RoutePreference) (*models.TrainSearchResults, error) {
	summary, rows, err := j.source.Fetch(ctx, route)
	if err != nil {
		return nil, err
	}
	trains := j.mapper.MapRows(rows, j.cfg, route)
	tickets := services.ProjectTickets(trains, j.cfg, route)
	j.logger.Info("Scraped %d trains (%d available) for %s -> %s on %s",
		len(trains), len(tickets), summary.OriginLabel, summary.DestinationLabel, summary.DateLabel)
	return &models.TrainSearchResults{Summary: summary, Trains: trains, Tickets: tickets}, nil
}

// notify dispatches the full summary plus an alert for tickets not yet
// announced in an earlier cycle
func (j *Job) notify(ctx context.Context, results *models.TrainSearchResults, filtered []*models.TicketOption) {
	fresh := j.freshTickets(filtered)

	if j.telegram != nil {
		if err := j.telegram.SendTrainResultsSummary(ctx, results.Summary, results.Trains); err != nil {
			j.logger.Error("Telegram summary failed: %v", err)
		}
		if len(fresh) > 0 {
			if err := j.telegram.SendTicketAlert(ctx, fresh); err != nil {
				j.logger.Error("Telegram alert failed: %v", err)
			}
		}
	}
	if j.email != nil && len(fresh) > 0 {
		if err := j.email.SendTicketAlert(fresh); err != nil {
			j.logger.Error("Email alert failed: %v", err)
		}
	}
}

func (j *Job) freshTickets(tickets []*models.TicketOption) []*models.TicketOption {
	var fresh []*models.TicketOption
	for _, ticket := range tickets {
		key := fmt.Sprintf("%s|%s|%s|%d",
			ticket.TrainName,
			ticket.ClassName,
			ticket.DepartureDatetime.Format("2006-01-02 15:04"),
			ticket.Price,
		)
		if j.alerted.Add(key) {
			fresh = append(fresh, ticket)
		}
	}
	return fresh
}
