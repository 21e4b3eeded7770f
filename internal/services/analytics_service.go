// Package services - AnalyticsService
//
// This file implements the analytics aggregator: a single pass over a token's
// mood logs and journal entries that derives summary statistics, a
// weekday-bucketed mood trend, a mood-value histogram, a month-bucketed
// journal-activity histogram, a day-streak count, and a short list of
// templated insights.
//
// Aggregate is pure and deterministic given (now, logs, entries); the service
// wraps it with repository reads and a span. Trend windows are count-based
// (the most recent 7 logs vs the preceding 7), not calendar-aligned. When
// fewer than 8 logs exist there is no older window and the trend reports
// "stable" instead of a spurious "up" against a zero baseline.
package services

import (
	"context"
	"math"
	"strconv"
	"time"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/guptaakarshan/mental-health/internal/domain"
	"github.com/guptaakarshan/mental-health/internal/repo"
)

// Trend directions.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// streakLookbackDays bounds the backward walk when counting consecutive
// logging days.
const streakLookbackDays = 30

// moodColors assigns a fixed chart color to each mood score value.
var moodColors = map[int]string{
	1:  "#ef4444",
	2:  "#f97316",
	3:  "#f59e0b",
	4:  "#eab308",
	5:  "#84cc16",
	6:  "#22c55e",
	7:  "#10b981",
	8:  "#06b6d4",
	9:  "#3b82f6",
	10: "#8b5cf6",
}

// MoodBucket is one bar of the mood-value histogram.
type MoodBucket struct {
	Mood  string `json:"mood"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// WeekdayMood is the mean mood for one day of the week (Monday-first).
type WeekdayMood struct {
	Day  string  `json:"day"`
	Mood float64 `json:"mood"`
}

// MonthActivity is the journal-entry count for one calendar month. Months
// with zero entries are omitted from the output.
type MonthActivity struct {
	Month   string `json:"month"`
	Entries int    `json:"entries"`
}

// AnalyticsSummary is the derived view served to the dashboard.
type AnalyticsSummary struct {
	TotalMoodLogs       int             `json:"totalMoodLogs"`
	TotalJournalEntries int             `json:"totalJournalEntries"`
	AverageMood         float64         `json:"averageMood"`
	MoodTrend           string          `json:"moodTrend"`
	StreakDays          int             `json:"streakDays"`
	MoodDistribution    []MoodBucket    `json:"moodDistribution"`
	WeeklyMoodData      []WeekdayMood   `json:"weeklyMoodData"`
	MonthlyJournalData  []MonthActivity `json:"monthlyJournalData"`
	RecentInsights      []string        `json:"recentInsights"`
}

// AnalyticsService loads a token's records and derives the dashboard summary.
type AnalyticsService struct {
	// DB is the GORM handle used for reads.
	DB *gorm.DB
}

// Overview aggregates the token's mood logs and journal entries, optionally
// restricted to records created at or after since. It is a read-only derived
// view; nothing is written.
func (s *AnalyticsService) Overview(ctx context.Context, token string, since *time.Time) (AnalyticsSummary, error) {
	tr := otel.Tracer("services/AnalyticsService")
	ctx, span := tr.Start(ctx, "Overview")
	defer span.End()

	logs, err := repo.ListMoodLogs(ctx, s.DB, token, since)
	if err != nil {
		return AnalyticsSummary{}, err
	}
	entries, err := repo.ListJournalEntries(ctx, s.DB, token, since)
	if err != nil {
		return AnalyticsSummary{}, err
	}
	span.SetAttributes(
		attribute.Int("analytics.mood_logs", len(logs)),
		attribute.Int("analytics.journal_entries", len(entries)),
	)

	return Aggregate(time.Now().UTC(), logs, entries), nil
}

// Aggregate derives the full analytics summary from a token's mood logs
// (oldest-first) and journal entries. now anchors the streak walk.
func Aggregate(now time.Time, logs []domain.MoodLog, entries []domain.JournalEntry) AnalyticsSummary {
	avg := averageMood(logs)
	trend := moodTrend(logs)

	return AnalyticsSummary{
		TotalMoodLogs:       len(logs),
		TotalJournalEntries: len(entries),
		AverageMood:         avg,
		MoodTrend:           trend,
		StreakDays:          streakDays(now, logs),
		MoodDistribution:    moodDistribution(logs),
		WeeklyMoodData:      weeklyMood(logs),
		MonthlyJournalData:  monthlyJournalActivity(entries),
		RecentInsights:      insights(logs, entries, avg, trend),
	}
}

// averageMood is the arithmetic mean of all scores, rounded to one decimal;
// 0 when there are no logs.
func averageMood(logs []domain.MoodLog) float64 {
	if len(logs) == 0 {
		return 0
	}
	sum := 0
	for _, l := range logs {
		sum += l.MoodScore
	}
	return round1(float64(sum) / float64(len(logs)))
}

// moodTrend compares the mean of the most recent 7 logs against the mean of
// the 7 before them. Windows are positional, counted from the end of the
// sequence. With no complete older window the trend is "stable".
func moodTrend(logs []domain.MoodLog) string {
	n := len(logs)
	recent := logs[maxInt(0, n-7):]
	older := logs[maxInt(0, n-14):maxInt(0, n-7)]
	if len(recent) == 0 || len(older) == 0 {
		return TrendStable
	}

	recentAvg := meanScore(recent)
	olderAvg := meanScore(older)
	switch {
	case recentAvg > olderAvg+0.5:
		return TrendUp
	case recentAvg < olderAvg-0.5:
		return TrendDown
	default:
		return TrendStable
	}
}

// streakDays counts consecutive calendar days with at least one log, walking
// backward from today for at most 30 days. A gap on day 0 (today) does not
// break the streak; the first gap on any earlier day stops the walk without
// resetting the count.
func streakDays(now time.Time, logs []domain.MoodLog) int {
	if len(logs) == 0 {
		return 0
	}

	days := make(map[string]struct{}, len(logs))
	for _, l := range logs {
		days[l.CreatedAt.UTC().Format("2006-01-02")] = struct{}{}
	}

	streak := 0
	day := now.UTC()
	for i := 0; i < streakLookbackDays; i++ {
		if _, ok := days[day.Format("2006-01-02")]; ok {
			streak++
		} else if i > 0 {
			break
		}
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// moodDistribution builds the score histogram, ascending by score, skipping
// scores that never occur. Each bucket carries its fixed chart color.
func moodDistribution(logs []domain.MoodLog) []MoodBucket {
	counts := make(map[int]int, 10)
	for _, l := range logs {
		counts[l.MoodScore]++
	}

	out := make([]MoodBucket, 0, len(counts))
	for score := 1; score <= 10; score++ {
		if counts[score] == 0 {
			continue
		}
		out = append(out, MoodBucket{
			Mood:  strconv.Itoa(score) + "/10",
			Count: counts[score],
			Color: moodColors[score],
		})
	}
	return out
}

// weekdayNames is Monday-first, matching the dashboard's week layout.
var weekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// weeklyMood buckets logs by day of week and returns the per-day mean
// (1 decimal), 0 for days with no data. Always emits all seven days.
func weeklyMood(logs []domain.MoodLog) []WeekdayMood {
	var sums, counts [7]int
	for _, l := range logs {
		// Go weekday is Sunday-first; rotate to Monday-first.
		idx := (int(l.CreatedAt.UTC().Weekday()) + 6) % 7
		sums[idx] += l.MoodScore
		counts[idx]++
	}

	out := make([]WeekdayMood, 7)
	for i := range out {
		out[i].Day = weekdayNames[i]
		if counts[i] > 0 {
			out[i].Mood = round1(float64(sums[i]) / float64(counts[i]))
		}
	}
	return out
}

// monthlyJournalActivity buckets entries by calendar month name (Jan..Dec)
// and omits empty months.
func monthlyJournalActivity(entries []domain.JournalEntry) []MonthActivity {
	var counts [12]int
	for _, e := range entries {
		counts[int(e.CreatedAt.UTC().Month())-1]++
	}

	out := make([]MonthActivity, 0, 12)
	for m := time.January; m <= time.December; m++ {
		if c := counts[int(m)-1]; c > 0 {
			out = append(out, MonthActivity{Month: m.String()[:3], Entries: c})
		}
	}
	return out
}

// insights selects at most three templated observations. Selection order is
// fixed: empty-input trio, average-mood tier, trend direction, journaling
// ratio, then low-mood frequency within the last 7 logs.
func insights(logs []domain.MoodLog, entries []domain.JournalEntry, avg float64, trend string) []string {
	out := make([]string, 0, 4)

	if len(logs) == 0 {
		return []string{
			"Start logging your mood daily to track patterns and improve your mental wellbeing.",
			"Consider taking our mental health survey to get personalized recommendations.",
			"Regular mood tracking can help you identify triggers and positive patterns.",
		}
	}

	switch {
	case avg >= 7:
		out = append(out, "Your overall mood has been quite positive! Keep up the great work.")
	case avg >= 5:
		out = append(out, "Your mood has been fairly balanced. Consider what activities boost your wellbeing.")
	default:
		out = append(out, "Your mood has been lower recently. Remember that it's okay to seek support when needed.")
	}

	switch trend {
	case TrendUp:
		out = append(out, "Great news! Your mood trend is improving over time.")
	case TrendDown:
		out = append(out, "Your mood has been declining lately. Consider reaching out for support or trying new coping strategies.")
	}

	if float64(len(entries)) > float64(len(logs))*0.5 {
		out = append(out, "You're doing great with journaling! Writing regularly can help process emotions.")
	}

	recent := logs[maxInt(0, len(logs)-7):]
	lowDays := 0
	for _, l := range recent {
		if l.MoodScore <= 4 {
			lowDays++
		}
	}
	if lowDays >= 3 {
		out = append(out, "You've had several challenging days recently. Consider talking to someone you trust.")
	}

	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

func meanScore(logs []domain.MoodLog) float64 {
	if len(logs) == 0 {
		return 0
	}
	sum := 0
	for _, l := range logs {
		sum += l.MoodScore
	}
	return float64(sum) / float64(len(logs))
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
