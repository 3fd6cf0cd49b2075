package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/trainingtracker/internal/telemetry/tracing"
	"github.com/2beens/trainingtracker/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const sessionColumns = `id, profile_id, date, duration_min, energy, mood, soreness, notes`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// AddSession stores the session and all its sets in one transaction.
func (r *Repo) AddSession(ctx context.Context, session *Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("profile.id", session.ProfileID),
		attribute.Int("exercises", len(session.Exercises)),
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

	err = tx.QueryRow(
		ctx,
		`INSERT INTO training_session (profile_id, date, duration_min, energy, mood, soreness, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		session.ProfileID, session.Date, session.DurationMin,
		session.Energy, session.Mood, session.Soreness, session.Notes,
	).Scan(&session.ID)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			err = ErrProfileNotFound
			return err
		}
		return fmt.Errorf("insert session: %w", err)
	}

	if err = insertSets(ctx, tx, session); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *Repo) GetSession(ctx context.Context, profileID, id int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("profile.id", profileID), attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+sessionColumns+` FROM training_session WHERE id = $1 AND profile_id = $2;`,
		id, profileID,
	)
	if err != nil {
		return nil, err
	}
	session, err := pgx.CollectExactlyOneRow(rows, scanSession)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("collect session: %w", err)
	}
	if err := loadSets(ctx, r.db, []*Session{session}); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateSession rewrites the session and replaces all of its sets in one
// transaction.
func (r *Repo) UpdateSession(ctx context.Context, session *Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("profile.id", session.ProfileID),
		attribute.Int("id", session.ID),
		attribute.Int("exercises", len(session.Exercises)),
	)

	return r.inTx(ctx, func(tx pgx.Tx) error {
		return writeSession(ctx, tx, session)
	})
}

// EditSession loads the session under a row lock, applies edit and stores
// the result within the same transaction.
func (r *Repo) EditSession(ctx context.Context, profileID, id int, edit func(*Session) error) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.edit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("profile.id", profileID), attribute.Int("id", id))

	var session *Session
	err = r.inTx(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(
			ctx,
			`SELECT `+sessionColumns+` FROM training_session WHERE id = $1 AND profile_id = $2 FOR UPDATE;`,
			id, profileID,
		)
		if err != nil {
			return err
		}
		session, err = pgx.CollectExactlyOneRow(rows, scanSession)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("collect session: %w", err)
		}
		if err := loadSets(ctx, tx, []*Session{session}); err != nil {
			return err
		}
		if err := edit(session); err != nil {
			return err
		}
		return writeSession(ctx, tx, session)
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (r *Repo) DeleteSession(ctx context.Context, profileID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("profile.id", profileID), attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM training_session WHERE id = $1 AND profile_id = $2;`, id, profileID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *Repo) inTx(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func writeSession(ctx context.Context, tx pgx.Tx, session *Session) error {
	tag, err := tx.Exec(
		ctx,
		`UPDATE training_session
			SET date = $3, duration_min = $4, energy = $5, mood = $6, soreness = $7, notes = $8
			WHERE id = $1 AND profile_id = $2;`,
		session.ID, session.ProfileID, session.Date, session.DurationMin,
		session.Energy, session.Mood, session.Soreness, session.Notes,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM training_session_set WHERE session_id = $1;`, session.ID); err != nil {
		return fmt.Errorf("clear session sets: %w", err)
	}
	return insertSets(ctx, tx, session)
}

func insertSets(ctx context.Context, tx pgx.Tx, session *Session) error {
	batch := &pgx.Batch{}
	setIndex := 0
	for i, e := range session.Exercises {
		for _, set := range e.Sets {
			setIndex++
			batch.Queue(
				`INSERT INTO training_session_set (session_id, exercise_index, exercise, set_index, weight_kg, reps, rpe)
					VALUES ($1, $2, $3, $4, $5, $6, $7);`,
				session.ID, i+1, e.Exercise, setIndex, set.WeightKg, set.Reps, set.RPE,
			)
		}
	}
	if batch.Len() == 0 {
		return nil
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert session sets: %w", err)
	}
	return nil
}

func scanSession(row pgx.CollectableRow) (*Session, error) {
	var s Session
	err := row.Scan(&s.ID, &s.ProfileID, &s.Date, &s.DurationMin, &s.Energy, &s.Mood, &s.Soreness, &s.Notes)
	return &s, err
}

// ListPage returns the sessions of a 1-based page, newest first, and whether
// more pages follow.
func (r *Repo) ListPage(ctx context.Context, profileID, page, size int) (_ []*Session, hasMore bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.listpage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("profile.id", profileID),
		attribute.Int("page", page),
		attribute.Int("size", size),
	)

	rows, err := r.db.Query(
		ctx,
		`SELECT `+sessionColumns+`
			FROM training_session
			WHERE profile_id = $1
			ORDER BY date DESC, id DESC
			LIMIT $2 OFFSET $3;`,
		profileID, size+1, (page-1)*size,
	)
	if err != nil {
		return nil, false, err
	}
	sessions, err := pgx.CollectRows(rows, scanSession)
	if err != nil {
		return nil, false, fmt.Errorf("collect sessions: %w", err)
	}

	if len(sessions) > size {
		sessions, hasMore = sessions[:size], true
	}
	if err := loadSets(ctx, r.db, sessions); err != nil {
		return nil, false, err
	}

	span.SetAttributes(attribute.Int("count", len(sessions)))
	return sessions, hasMore, nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func loadSets(ctx context.Context, q querier, sessions []*Session) error {
	if len(sessions) == 0 {
		return nil
	}

	byID := make(map[int]*Session, len(sessions))
	ids := make([]int, 0, len(sessions))
	for _, s := range sessions {
		byID[s.ID] = s
		ids = append(ids, s.ID)
	}

	rows, err := q.Query(
		ctx,
		`SELECT session_id, exercise_index, exercise, weight_kg, reps, rpe
			FROM training_session_set
			WHERE session_id = ANY($1)
			ORDER BY session_id, exercise_index, set_index;`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("query session sets: %w", err)
	}

	var (
		sessionID     int
		exerciseIndex int
		exercise      string
		set           SetRecord
	)
	lastIndex := make(map[int]int, len(sessions))
	_, err = pgx.ForEachRow(rows, []any{&sessionID, &exerciseIndex, &exercise, &set.WeightKg, &set.Reps, &set.RPE}, func() error {
		s := byID[sessionID]
		if n := len(s.Exercises); n == 0 || lastIndex[sessionID] != exerciseIndex {
			s.Exercises = append(s.Exercises, ExerciseSets{Exercise: exercise})
			lastIndex[sessionID] = exerciseIndex
		}
		last := &s.Exercises[len(s.Exercises)-1]
		last.Sets = append(last.Sets, set)
		set.RPE = nil
		return nil
	})
	if err != nil {
		return fmt.Errorf("scan session sets: %w", err)
	}
	return nil
}
