package logs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/trainingtracker/internal/telemetry/tracing"
	"github.com/2beens/trainingtracker/internal/training/onerm"
	"github.com/2beens/trainingtracker/internal/training/setmatrix"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrLogNotFound     = errors.New("exercise log not found")
	ErrProfileNotFound = errors.New("profile not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// AddLog creates an empty log. Zero weeks take the profile's program length.
func (r *Repo) AddLog(ctx context.Context, profileID int, exerciseName string, weeks int, startDate time.Time) (_ *setmatrix.ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("profile.id", profileID),
		attribute.String("exercise", exerciseName),
	)

	var id, storedWeeks int
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO exercise_log (profile_id, exercise_name, weeks, start_date)
			SELECT p.id, $2, COALESCE(NULLIF($3, 0), p.weeks), $4
			FROM profile p WHERE p.id = $1
			RETURNING id, weeks;`,
		profileID, exerciseName, weeks, startDate,
	).Scan(&id, &storedWeeks)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("insert exercise log: %w", err)
	}

	l := setmatrix.NewExerciseLog(exerciseName, storedWeeks, startDate)
	l.ID = id
	l.ProfileID = profileID
	return l, nil
}

func (r *Repo) GetLog(ctx context.Context, id int) (_ *setmatrix.ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	logs, err := r.query(ctx, `WHERE l.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(logs) != 1 {
		return nil, ErrLogNotFound
	}
	return logs[0], nil
}

// ListForProfile returns every log of the profile with all its cells, ordered
// by exercise name.
func (r *Repo) ListForProfile(ctx context.Context, profileID int) (_ []*setmatrix.ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("profile.id", profileID))

	logs, err := r.query(ctx, `WHERE l.profile_id = $1`, profileID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("count", len(logs)))
	return logs, nil
}

// ExerciseNames returns the distinct exercises the profile keeps logs for.
func (r *Repo) ExerciseNames(ctx context.Context, profileID int) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.exercisenames")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("profile.id", profileID))

	rows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT exercise_name FROM exercise_log
			WHERE profile_id = $1
			ORDER BY exercise_name;`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect exercise names: %w", err)
	}
	return names, nil
}

func (r *Repo) query(ctx context.Context, where string, arg int) ([]*setmatrix.ExerciseLog, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT l.id, l.profile_id, l.exercise_name, l.weeks, l.start_date,
				e.week, e.day, e.set_index, e.reps, e.weight_kg
			FROM exercise_log l
			LEFT JOIN set_entry e ON e.log_id = l.id
			`+where+`
			ORDER BY l.exercise_name, l.id, e.week, e.day, e.set_index;`,
		arg,
	)
	if err != nil {
		return nil, fmt.Errorf("query logs: %w", err)
	}
	defer rows.Close()

	var logs []*setmatrix.ExerciseLog
	byID := make(map[int]*setmatrix.ExerciseLog)
	for rows.Next() {
		var (
			id, profileID, weeks int
			name                 string
			startDate            time.Time
			week, day, set, reps *int
			weight               *float64
		)
		if err := rows.Scan(&id, &profileID, &name, &weeks, &startDate, &week, &day, &set, &reps, &weight); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		l, ok := byID[id]
		if !ok {
			l = setmatrix.NewExerciseLog(name, weeks, startDate)
			l.ID = id
			l.ProfileID = profileID
			byID[id] = l
			logs = append(logs, l)
		}
		if week == nil {
			continue
		}

		slot := setmatrix.Slot{Week: *week, Day: *day, Set: *set}
		if err := l.Set(slot, setmatrix.Cell{Reps: *reps, WeightKg: *weight}); err != nil {
			return nil, fmt.Errorf("log %d: %w", id, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}

// SetEntry writes one cell. An all-zero cell removes the stored entry.
func (r *Repo) SetEntry(ctx context.Context, logID int, slot setmatrix.Slot, cell setmatrix.Cell) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.setentry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("log.id", logID),
		attribute.Int("week", slot.Week),
		attribute.Int("day", slot.Day),
		attribute.Int("set", slot.Set),
	)

	if cell.Reps == 0 && cell.WeightKg == 0 {
		_, err = r.db.Exec(
			ctx,
			`DELETE FROM set_entry WHERE log_id = $1 AND week = $2 AND day = $3 AND set_index = $4;`,
			logID, slot.Week, slot.Day, slot.Set,
		)
		return err
	}

	_, err = r.db.Exec(ctx, upsertEntrySQL, logID, slot.Week, slot.Day, slot.Set, cell.Reps, cell.WeightKg)
	if err != nil {
		return fmt.Errorf("upsert entry: %w", err)
	}
	return nil
}

const upsertEntrySQL = `
	INSERT INTO set_entry (log_id, week, day, set_index, reps, weight_kg)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (log_id, week, day, set_index)
		DO UPDATE SET reps = EXCLUDED.reps, weight_kg = EXCLUDED.weight_kg;`

// FillWeeks writes sets into the given day of every listed week in one
// transaction. Set i of the input lands on set index i+1.
func (r *Repo) FillWeeks(ctx context.Context, logID int, weeks []int, day int, sets []onerm.Set) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.fillweeks")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("log.id", logID),
		attribute.IntSlice("weeks", weeks),
		attribute.Int("day", day),
		attribute.Int("sets", len(sets)),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	batch := &pgx.Batch{}
	for _, week := range weeks {
		for i, s := range sets {
			batch.Queue(upsertEntrySQL, logID, week, day, i+1, s.Reps, s.WeightKg)
		}
	}
	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("fill entries: %w", err)
	}

	return tx.Commit(ctx)
}

// DeleteLog removes the log with its entries and returns the owning profile.
func (r *Repo) DeleteLog(ctx context.Context, id int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var profileID int
	err = r.db.QueryRow(ctx, `DELETE FROM exercise_log WHERE id = $1 RETURNING profile_id;`, id).Scan(&profileID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrLogNotFound
		}
		return 0, err
	}
	return profileID, nil
}
