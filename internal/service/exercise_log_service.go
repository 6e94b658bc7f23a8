package service

import (
	"context"
	"strings"
	"time"

	"fitness_tracker/internal/apperr"
	"fitness_tracker/internal/logger"
	"fitness_tracker/internal/logparse"
	"fitness_tracker/internal/models"
	"fitness_tracker/internal/repository"
)

const (
	maxMemoLen     = 500
	maxSets        = 1000
	maxReps        = 10000
	maxWeightKg    = 1000
	maxDurationSec = 24 * 60 * 60
)

// ImportResult reports what an Import created and which lines were rejected.
type ImportResult struct {
	Created []models.ExerciseLog `json:"created"`
	Errors  []logparse.LineError `json:"errors"`
}

type scoreKeeper interface {
	AddScore(ctx context.Context, userID int64, delta int) (float64, error)
}

type expKeeper interface {
	AddExp(ctx context.Context, userID int64, delta int) error
}

type ExerciseLogService struct {
	logs      repository.ExerciseLogs
	exercises repository.Exercises
	ranking   scoreKeeper
	exp       expKeeper
	log       *logger.Logger
}

func NewExerciseLogService(logs repository.ExerciseLogs, exercises repository.Exercises, ranking scoreKeeper, exp expKeeper, log *logger.Logger) *ExerciseLogService {
	return &ExerciseLogService{logs: logs, exercises: exercises, ranking: ranking, exp: exp, log: log}
}

var errInvalidDateRange = apperr.Validation("invalid date range: from must be <= to")

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// formatDay renders t as YYYY-MM-DD, or "" for the zero time.
func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// normalizeAndValidateFilter converts the filter to repository day bounds and validates the range.
func normalizeAndValidateFilter(userID int64, f LogFilter) (repository.LogQuery, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return repository.LogQuery{}, errInvalidDateRange
	}
	return repository.LogQuery{
		UserID:     userID,
		From:       formatDay(from),
		To:         formatDay(to),
		ExerciseID: f.ExerciseID,
	}, nil
}

// logDay validates a YYYY-MM-DD date; empty means today in UTC.
func logDay(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now().UTC().Format(dateLayout), nil
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", apperr.Validation("date must be YYYY-MM-DD, got %q", s)
	}
	return s, nil
}

// award is the leaderboard score for a log: exercise points per set, at least one set.
func award(ex *models.Exercise, sets int) int {
	if sets < 1 {
		sets = 1
	}
	return ex.Points * sets
}

// build validates input and returns the log row it describes.
func (s *ExerciseLogService) build(ctx context.Context, userID int64, in LogInput) (models.ExerciseLog, error) {
	if in.Sets < 0 || in.Reps < 0 || in.DurationSec < 0 || in.WeightKg < 0 {
		return models.ExerciseLog{}, apperr.Validation("sets, reps, weight and duration must be >= 0")
	}
	if in.Sets > maxSets || in.Reps > maxReps || in.WeightKg > maxWeightKg || in.DurationSec > maxDurationSec {
		return models.ExerciseLog{}, apperr.Validation(
			"sets <= %d, reps <= %d, weight <= %dkg and duration <= %ds required", maxSets, maxReps, maxWeightKg, maxDurationSec)
	}
	memo := strings.TrimSpace(in.Memo)
	if len([]rune(memo)) > maxMemoLen {
		return models.ExerciseLog{}, apperr.Validation("memo must be at most %d characters", maxMemoLen)
	}
	day, err := logDay(in.Date)
	if err != nil {
		return models.ExerciseLog{}, err
	}
	ex, err := s.exercises.GetByID(ctx, in.ExerciseID)
	if err != nil {
		return models.ExerciseLog{}, err
	}
	if ex == nil {
		return models.ExerciseLog{}, notFound("exercise", in.ExerciseID)
	}
	return models.ExerciseLog{
		UserID:      userID,
		ExerciseID:  ex.ID,
		LogDate:     day,
		Sets:        in.Sets,
		Reps:        in.Reps,
		WeightKg:    in.WeightKg,
		DurationSec: in.DurationSec,
		Memo:        memo,
		Points:      award(ex, in.Sets),
	}, nil
}

// reward pushes a score change to the leaderboard and the user's character.
// The log row is already committed, so failures are logged, not returned.
func (s *ExerciseLogService) reward(ctx context.Context, userID int64, delta int) {
	if delta == 0 {
		return
	}
	if _, err := s.ranking.AddScore(ctx, userID, delta); err != nil {
		s.log.Warnw("ranking update failed", "user_id", userID, "delta", delta, "err", err)
	}
	if err := s.exp.AddExp(ctx, userID, delta); err != nil {
		s.log.Warnw("character exp update failed", "user_id", userID, "delta", delta, "err", err)
	}
}

func (s *ExerciseLogService) Create(ctx context.Context, userID int64, in LogInput) (*models.ExerciseLog, error) {
	l, err := s.build(ctx, userID, in)
	if err != nil {
		return nil, err
	}
	l.CreatedAt = time.Now().UTC()
	if l.ID, err = s.logs.Create(ctx, l); err != nil {
		return nil, translate(err, "exercise log")
	}
	s.reward(ctx, userID, l.Points)
	return &l, nil
}

// owned loads a log and checks that userID wrote it.
func (s *ExerciseLogService) owned(ctx context.Context, userID, id int64) (*models.ExerciseLog, error) {
	l, err := s.logs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, notFound("exercise log", id)
	}
	if l.UserID != userID {
		return nil, apperr.Forbidden("exercise log %d belongs to another user", id)
	}
	return l, nil
}

func (s *ExerciseLogService) Update(ctx context.Context, userID, id int64, in LogInput) (*models.ExerciseLog, error) {
	old, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Date) == "" {
		in.Date = old.LogDate
	}
	l, err := s.build(ctx, userID, in)
	if err != nil {
		return nil, err
	}
	l.ID = old.ID
	l.CreatedAt = old.CreatedAt
	if err := s.logs.Update(ctx, l); err != nil {
		return nil, translate(err, "exercise log")
	}
	s.reward(ctx, userID, l.Points-old.Points)
	return &l, nil
}

func (s *ExerciseLogService) Delete(ctx context.Context, userID, id int64) error {
	old, err := s.owned(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.logs.Delete(ctx, id); err != nil {
		return translate(err, "exercise log")
	}
	s.reward(ctx, userID, -old.Points)
	return nil
}

func (s *ExerciseLogService) List(ctx context.Context, userID int64, f LogFilter) ([]models.ExerciseLog, error) {
	q, err := normalizeAndValidateFilter(userID, f)
	if err != nil {
		return nil, err
	}
	return s.logs.List(ctx, q)
}

// Daily returns one day's logs with totals. An empty date means today (UTC).
func (s *ExerciseLogService) Daily(ctx context.Context, userID int64, date string) (*models.DailySummary, error) {
	day, err := logDay(date)
	if err != nil {
		return nil, err
	}
	logs, err := s.logs.List(ctx, repository.LogQuery{UserID: userID, From: day, To: day})
	if err != nil {
		return nil, err
	}
	sum := &models.DailySummary{Date: day, Count: len(logs), Logs: logs}
	for _, l := range logs {
		sum.TotalSets += l.Sets
		sum.TotalReps += l.Sets * l.Reps
		sum.DurationSec += l.DurationSec
		sum.Points += l.Points
	}
	return sum, nil
}

// Import parses a text journal and creates a log per valid line.
// Lines that fail to parse or validate are reported back, not fatal.
func (s *ExerciseLogService) Import(ctx context.Context, userID int64, text string) (*ImportResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperr.Validation("journal is empty")
	}
	entries, bad, err := logparse.Parse(strings.NewReader(text))
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeValidation, "journal could not be read", err)
	}

	res := &ImportResult{Created: []models.ExerciseLog{}, Errors: append([]logparse.LineError{}, bad...)}
	ids := map[string]int64{}
	for _, e := range entries {
		exID, ok := ids[e.Exercise]
		if !ok {
			ex, err := s.exercises.GetByName(ctx, e.Exercise)
			if err != nil {
				return nil, err
			}
			if ex != nil {
				exID = ex.ID
			}
			ids[e.Exercise] = exID
		}
		if exID == 0 {
			res.Errors = append(res.Errors, logparse.LineError{Line: e.Line, Text: e.Text, Reason: "unknown exercise " + e.Exercise})
			continue
		}

		l, err := s.Create(ctx, userID, LogInput{
			ExerciseID:  exID,
			Date:        e.Date,
			Sets:        e.Sets,
			Reps:        e.Reps,
			WeightKg:    e.WeightKg,
			DurationSec: e.DurationSec,
		})
		if err != nil {
			if apperr.IsCode(err, apperr.CodeInternal) {
				return nil, err
			}
			res.Errors = append(res.Errors, logparse.LineError{Line: e.Line, Text: e.Text, Reason: apperr.PublicMessage(err)})
			continue
		}
		res.Created = append(res.Created, *l)
	}
	return res, nil
}
