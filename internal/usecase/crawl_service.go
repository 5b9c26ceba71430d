package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/ruckdata/rugby-crawler/internal/domain/scorecard"
	"github.com/ruckdata/rugby-crawler/internal/platform/logging"
)

// League identifies one competition as the provider describes it.
type League struct {
	Slug         string
	Abbreviation string
	Name         string
}

// EventStub is one match reference from the day's score panel.
type EventStub struct {
	ID   string
	Name string
}

// DayScoreboard is one league's block of the day panel. A zero-value League
// means the block carried no usable league descriptor; the allow-list filter
// drops it.
type DayScoreboard struct {
	League League
	Events []EventStub
}

// MatchSource feeds the pipeline: the day panel, and one flattened match
// record per event (fetch plus extraction; derived stats are computed here).
type MatchSource interface {
	DayScoreboards(ctx context.Context, date time.Time) ([]DayScoreboard, error)
	MatchRecord(ctx context.Context, date time.Time, league League, event EventStub) (scorecard.Match, error)
}

// RecordSink appends one finished record. Each append is self-contained.
type RecordSink interface {
	Append(m scorecard.Match) error
}

// ErrorLog records a day-level failure.
type ErrorLog interface {
	Append(now time.Time, date string, err error) error
}

type CrawlConfig struct {
	Leagues    []string
	MaxWorkers int
}

// CrawlService walks a date range backward and runs the match pipeline for
// every allow-listed match of each day. Dates are strictly serialized; within
// a day all matches fan out on a bounded worker pool.
type CrawlService struct {
	source  MatchSource
	sink    RecordSink
	errLog  ErrorLog
	cfg     CrawlConfig
	logger  *logging.Logger
	allowed map[string]struct{}
	now     func() time.Time
}

func NewCrawlService(
	source MatchSource,
	sink RecordSink,
	errLog ErrorLog,
	cfg CrawlConfig,
	logger *logging.Logger,
) *CrawlService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.MaxWorkers < 1 {
		cfg.MaxWorkers = 1
	}

	allowed := make(map[string]struct{}, len(cfg.Leagues))
	for _, slug := range cfg.Leagues {
		allowed[slug] = struct{}{}
	}

	return &CrawlService{
		source:  source,
		sink:    sink,
		errLog:  errLog,
		cfg:     cfg,
		logger:  logger,
		allowed: allowed,
		now:     time.Now,
	}
}

// Run processes every day of the range. A usage error fails before any
// network activity. The first day-level failure is written to the error log
// and stops the run; later days are never attempted.
func (s *CrawlService) Run(ctx context.Context, start, end time.Time) error {
	dates, err := DateSequence(start, end)
	if err != nil {
		return err
	}

	for _, date := range dates {
		if err := s.processDay(ctx, date); err != nil {
			day := date.Format(DayFormat)
			s.logger.ErrorContext(ctx, "day failed, stopping", "date", day, "error", err)
			if logErr := s.errLog.Append(s.now(), day, err); logErr != nil {
				s.logger.ErrorContext(ctx, "error log write failed", "date", day, "error", logErr)
			}
			return fmt.Errorf("process day %s: %w", day, err)
		}
	}

	s.logger.InfoContext(ctx, "job done", "days", len(dates))
	return nil
}

func (s *CrawlService) processDay(ctx context.Context, date time.Time) error {
	day := date.Format(DayFormat)
	s.logger.InfoContext(ctx, "getting data for date", "date", day)

	boards, err := s.source.DayScoreboards(ctx, date)
	if err != nil {
		return err
	}
	if len(boards) == 0 {
		s.logger.InfoContext(ctx, "empty data received", "date", day)
		return nil
	}

	type matchTask struct {
		league League
		event  EventStub
	}
	tasks := make([]matchTask, 0, 16)
	retained := 0
	for _, board := range boards {
		if _, ok := s.allowed[board.League.Slug]; !ok {
			continue
		}
		retained++
		for _, event := range board.Events {
			tasks = append(tasks, matchTask{league: board.League, event: event})
		}
	}
	if retained == 0 {
		s.logger.InfoContext(ctx, "no leagues of interest", "date", day)
		return nil
	}
	if len(tasks) == 0 {
		s.logger.InfoContext(ctx, "day complete", "date", day, "matches", 0)
		return nil
	}

	workers := s.cfg.MaxWorkers
	if workers > len(tasks) {
		workers = len(tasks)
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	taskErrs := make(chan error, len(tasks))
	var submitErr error
	var wg sync.WaitGroup
	for _, task := range tasks {
		task := task
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			s.logger.InfoContext(ctx, "processing match",
				"date", day, "league", task.league.Name, "event", task.event.Name)
			if err := s.processMatch(ctx, date, task.league, task.event); err != nil {
				taskErrs <- err
			}
		}); err != nil {
			wg.Done()
			submitErr = fmt.Errorf("submit match to worker pool: %w", err)
			break
		}
	}

	wg.Wait()
	close(taskErrs)
	if submitErr != nil {
		return submitErr
	}
	for err := range taskErrs {
		if err != nil {
			return err
		}
	}

	s.logger.InfoContext(ctx, "day complete", "date", day, "matches", len(tasks))
	return nil
}

func (s *CrawlService) processMatch(ctx context.Context, date time.Time, league League, event EventStub) error {
	match, err := s.source.MatchRecord(ctx, date, league, event)
	if err != nil {
		return err
	}

	match.Home.DeriveStats()
	match.Away.DeriveStats()

	if err := s.sink.Append(match); err != nil {
		return fmt.Errorf("append record game=%s: %w", event.ID, err)
	}

	s.logger.InfoContext(ctx, "stored match",
		"league", league.Abbreviation, "home", match.Home.Name, "away", match.Away.Name,
		"date", date.Format(DayFormat))
	return nil
}
