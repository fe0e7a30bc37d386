package throwlog

import (
	"context"
	"sort"
	"time"

	"github.com/throwlab/backend/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=throwlog_test

type throwLogsRepo interface {
	ListAll(ctx context.Context, params ListParams) (_ []ThrowLog, err error)
}

// FilterParams narrows the analyzed throw logs to one athlete and a
// trailing time window. Zero values mean "no filtering".
type FilterParams struct {
	AthleteID  string
	WindowDays int
}

type DailyBestEntry struct {
	Date         string  `json:"date"`
	BestDistance float64 `json:"bestDistance"`
}

type WeeklyVolumeEntry struct {
	WeekStart string `json:"weekStart"`
	Throws    int    `json:"throws"`
}

type Summary struct {
	TotalThrows     int     `json:"totalThrows"`
	ValidThrows     int     `json:"validThrows"`
	TotalFouls      int     `json:"totalFouls"`
	FoulRatePct     float64 `json:"foulRatePct"`
	BestDistance    float64 `json:"bestDistance"`
	AverageDistance float64 `json:"averageDistance"`
}

// Report bundles all chart series and summary stats for the dashboard.
type Report struct {
	DailyBest     []DailyBestEntry    `json:"dailyBest"`
	FoulHistogram map[FoulReason]int  `json:"foulHistogram"`
	WeeklyVolume  []WeeklyVolumeEntry `json:"weeklyVolume"`
	Summary       Summary             `json:"summary"`
}

// Analyzer computes throw statistics over persisted throw logs.
// Degenerate input (no logs, all fouls, unmeasured throws) yields
// zero values and empty series, never an error.
type Analyzer struct {
	repo throwLogsRepo
	// injectable clock for the trailing window (unit testing)
	NowFunc func() time.Time
}

func NewAnalyzer(repo throwLogsRepo) *Analyzer {
	return &Analyzer{
		repo:    repo,
		NowFunc: time.Now,
	}
}

func (a *Analyzer) listParams(params FilterParams) ListParams {
	listParams := ListParams{
		AthleteID: params.AthleteID,
	}
	if params.WindowDays > 0 {
		from := a.NowFunc().AddDate(0, 0, -params.WindowDays)
		listParams.From = &from
	}
	return listParams
}

// DailyBest returns the best valid distance per day, ascending by date.
func (a *Analyzer) DailyBest(ctx context.Context, params FilterParams) (_ []DailyBestEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.throwlog.dailyBest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	logs, err := a.repo.ListAll(ctx, a.listParams(params))
	if err != nil {
		return nil, err
	}

	return dailyBest(logs), nil
}

// FoulHistogram returns the count of fouls per foul reason.
func (a *Analyzer) FoulHistogram(ctx context.Context, params FilterParams) (_ map[FoulReason]int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.throwlog.foulHistogram")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	logs, err := a.repo.ListAll(ctx, a.listParams(params))
	if err != nil {
		return nil, err
	}

	return foulHistogram(logs), nil
}

// WeeklyVolume returns the number of throws per week, ascending by
// week start. Weeks start on Monday (ISO convention).
func (a *Analyzer) WeeklyVolume(ctx context.Context, params FilterParams) (_ []WeeklyVolumeEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.throwlog.weeklyVolume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	logs, err := a.repo.ListAll(ctx, a.listParams(params))
	if err != nil {
		return nil, err
	}

	return weeklyVolume(logs), nil
}

func (a *Analyzer) Summary(ctx context.Context, params FilterParams) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.throwlog.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("athlete_id", params.AthleteID))
	span.SetAttributes(attribute.Int("window_days", params.WindowDays))

	logs, err := a.repo.ListAll(ctx, a.listParams(params))
	if err != nil {
		return nil, err
	}

	s := summary(logs)
	return &s, nil
}

// Report computes all series and the summary from a single fetch.
func (a *Analyzer) Report(ctx context.Context, params FilterParams) (_ *Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.throwlog.report")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("athlete_id", params.AthleteID))
	span.SetAttributes(attribute.Int("window_days", params.WindowDays))

	logs, err := a.repo.ListAll(ctx, a.listParams(params))
	if err != nil {
		return nil, err
	}

	return &Report{
		DailyBest:     dailyBest(logs),
		FoulHistogram: foulHistogram(logs),
		WeeklyVolume:  weeklyVolume(logs),
		Summary:       summary(logs),
	}, nil
}

func dailyBest(logs []ThrowLog) []DailyBestEntry {
	day2best := make(map[string]float64)
	for _, tl := range logs {
		if !tl.Measured() {
			continue
		}
		day := tl.CreatedAt.Format(dateLayout)
		if *tl.Distance > day2best[day] {
			day2best[day] = *tl.Distance
		}
	}

	entries := make([]DailyBestEntry, 0, len(day2best))
	for day, best := range day2best {
		entries = append(entries, DailyBestEntry{
			Date:         day,
			BestDistance: best,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})

	return entries
}

func foulHistogram(logs []ThrowLog) map[FoulReason]int {
	histogram := make(map[FoulReason]int)
	for _, tl := range logs {
		// fouls with no recorded reason are left out of the histogram
		if !tl.IsFoul || tl.FoulReason == nil {
			continue
		}
		histogram[*tl.FoulReason]++
	}
	return histogram
}

func weeklyVolume(logs []ThrowLog) []WeeklyVolumeEntry {
	week2throws := make(map[string]int)
	for _, tl := range logs {
		week := weekStart(tl.CreatedAt).Format(dateLayout)
		week2throws[week]++
	}

	entries := make([]WeeklyVolumeEntry, 0, len(week2throws))
	for week, throws := range week2throws {
		entries = append(entries, WeeklyVolumeEntry{
			WeekStart: week,
			Throws:    throws,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].WeekStart < entries[j].WeekStart
	})

	return entries
}

func summary(logs []ThrowLog) Summary {
	s := Summary{
		TotalThrows: len(logs),
	}
	if len(logs) == 0 {
		return s
	}

	var distanceSum float64
	var measured int
	for _, tl := range logs {
		if tl.IsFoul {
			s.TotalFouls++
			continue
		}
		if tl.Distance == nil {
			continue
		}
		// a valid throw is a non-foul with a measured distance
		s.ValidThrows++
		measured++
		distanceSum += *tl.Distance
		if *tl.Distance > s.BestDistance {
			s.BestDistance = *tl.Distance
		}
	}

	s.FoulRatePct = truncate2(float64(s.TotalFouls) / float64(s.TotalThrows) * 100)
	if measured > 0 {
		s.AverageDistance = truncate2(distanceSum / float64(measured))
	}

	return s
}

// weekStart returns the Monday of the week containing t.
func weekStart(t time.Time) time.Time {
	year, month, day := t.Date()
	date := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -offset)
}

// leave only 2 decimals
func truncate2(v float64) float64 {
	return float64(int(v*100)) / 100
}
