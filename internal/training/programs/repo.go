package programs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/trainingtracker/internal/telemetry/tracing"
	"github.com/2beens/trainingtracker/internal/training/calendar"
	"github.com/2beens/trainingtracker/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const (
	programColumns  = `id, profile_id, name, start_date, end_date, is_active`
	exerciseColumns = `id, program_id, exercise, day_of_week, sort_order, sets, reps, weight_kg, notes`
	sessionColumns  = `id, program_id, date, completed, notes, updated_at`
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add stores the program. An active program is inserted and activated in the
// same transaction so a failed activation leaves nothing behind.
func (r *Repo) Add(ctx context.Context, program calendar.Program) (_ *calendar.Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("profile.id", program.ProfileID),
		attribute.Bool("active", program.IsActive),
	)

	err = r.inTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(
			ctx,
			`INSERT INTO training_program (profile_id, name, start_date, end_date)
				VALUES ($1, $2, $3, $4)
				RETURNING id;`,
			program.ProfileID, program.Name, program.StartDate, program.EndDate,
		).Scan(&program.ID)
		if err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				return ErrProfileNotFound
			}
			return fmt.Errorf("insert program: %w", err)
		}
		if !program.IsActive {
			return nil
		}
		_, err = activate(ctx, tx, program.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &program, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *calendar.Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(ctx, `SELECT `+programColumns+` FROM training_program WHERE id = $1;`, id)
	if err != nil {
		return nil, err
	}
	program, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByPos[calendar.Program])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, calendar.ErrProgramNotFound
		}
		return nil, fmt.Errorf("collect program: %w", err)
	}
	return &program, nil
}

func (r *Repo) ListForProfile(ctx context.Context, profileID int) (_ []calendar.Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("profile.id", profileID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+programColumns+` FROM training_program
			WHERE profile_id = $1
			ORDER BY start_date DESC, id DESC;`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	programs, err := pgx.CollectRows(rows, pgx.RowToStructByPos[calendar.Program])
	if err != nil {
		return nil, fmt.Errorf("collect programs: %w", err)
	}
	return programs, nil
}

// Update stores the name, dates and active flag of the program. Turning the
// flag on deactivates the profile's other programs within the same
// transaction.
func (r *Repo) Update(ctx context.Context, program *calendar.Program) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("id", program.ID),
		attribute.Bool("active", program.IsActive),
	)

	return r.inTx(ctx, func(tx pgx.Tx) error {
		var wasActive bool
		err := tx.QueryRow(
			ctx,
			`UPDATE training_program
				SET name = $2, start_date = $3, end_date = $4, is_active = is_active AND $5
				WHERE id = $1
				RETURNING profile_id, is_active;`,
			program.ID, program.Name, program.StartDate, program.EndDate, program.IsActive,
		).Scan(&program.ProfileID, &wasActive)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return calendar.ErrProgramNotFound
			}
			return fmt.Errorf("update program: %w", err)
		}
		if program.IsActive && !wasActive {
			if _, err := activate(ctx, tx, program.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM training_program WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return calendar.ErrProgramNotFound
	}
	return nil
}

// Activate marks the program active and deactivates its siblings in one
// transaction.
func (r *Repo) Activate(ctx context.Context, id int) (_ *calendar.Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.activate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var target *calendar.Program
	err = r.inTx(ctx, func(tx pgx.Tx) error {
		var txErr error
		target, txErr = activate(ctx, tx, id)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return target, nil
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

// activate locks the profile's programs and flips the active flag onto id.
// Siblings are cleared first to keep the one-active index happy.
func activate(ctx context.Context, tx pgx.Tx, id int) (*calendar.Program, error) {
	rows, err := tx.Query(
		ctx,
		`SELECT `+programColumns+` FROM training_program
			WHERE profile_id = (SELECT profile_id FROM training_program WHERE id = $1)
			ORDER BY id
			FOR UPDATE;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	siblings, err := pgx.CollectRows(rows, pgx.RowToStructByPos[calendar.Program])
	if err != nil {
		return nil, fmt.Errorf("collect programs: %w", err)
	}

	activated, err := calendar.Activate(siblings, id)
	if err != nil {
		return nil, err
	}

	var target calendar.Program
	for i, p := range activated {
		if p.ID == id {
			target = p
			continue
		}
		if siblings[i].IsActive && !p.IsActive {
			if _, err = tx.Exec(ctx, `UPDATE training_program SET is_active = FALSE WHERE id = $1;`, p.ID); err != nil {
				return nil, fmt.Errorf("deactivate program %d: %w", p.ID, err)
			}
		}
	}
	if _, err = tx.Exec(ctx, `UPDATE training_program SET is_active = TRUE WHERE id = $1;`, id); err != nil {
		return nil, fmt.Errorf("activate program: %w", err)
	}
	return &target, nil
}

func (r *Repo) AddExercise(ctx context.Context, exercise calendar.ProgramExercise) (_ *calendar.ProgramExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.addexercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("program.id", exercise.ProgramID),
		attribute.Int("day", exercise.DayOfWeek),
	)

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO program_exercise (program_id, exercise, day_of_week, sort_order, sets, reps, weight_kg, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id;`,
		exercise.ProgramID, exercise.Exercise, exercise.DayOfWeek, exercise.Order,
		exercise.Sets, exercise.Reps, exercise.WeightKg, exercise.Notes,
	).Scan(&exercise.ID)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, calendar.ErrProgramNotFound
		}
		return nil, fmt.Errorf("insert program exercise: %w", err)
	}
	return &exercise, nil
}

func (r *Repo) ListExercises(ctx context.Context, programID int) (_ []calendar.ProgramExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.listexercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("program.id", programID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+` FROM program_exercise
			WHERE program_id = $1
			ORDER BY day_of_week, sort_order, id;`,
		programID,
	)
	if err != nil {
		return nil, err
	}
	exercises, err := pgx.CollectRows(rows, pgx.RowToStructByPos[calendar.ProgramExercise])
	if err != nil {
		return nil, fmt.Errorf("collect program exercises: %w", err)
	}
	return exercises, nil
}

func (r *Repo) UpdateExercise(ctx context.Context, exercise *calendar.ProgramExercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.updateexercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("program.id", exercise.ProgramID),
		attribute.Int("exercise.id", exercise.ID),
	)

	tag, err := r.db.Exec(
		ctx,
		`UPDATE program_exercise
			SET exercise = $3, day_of_week = $4, sort_order = $5, sets = $6, reps = $7, weight_kg = $8, notes = $9
			WHERE id = $1 AND program_id = $2;`,
		exercise.ID, exercise.ProgramID, exercise.Exercise, exercise.DayOfWeek, exercise.Order,
		exercise.Sets, exercise.Reps, exercise.WeightKg, exercise.Notes,
	)
	if err != nil {
		return fmt.Errorf("update program exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (r *Repo) DeleteExercise(ctx context.Context, programID, exerciseID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.deleteexercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("program.id", programID),
		attribute.Int("exercise.id", exerciseID),
	)

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM program_exercise WHERE id = $1 AND program_id = $2;`,
		exerciseID, programID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (r *Repo) UpsertSession(ctx context.Context, session calendar.Session) (_ *calendar.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.upsertsession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("program.id", session.ProgramID),
		attribute.String("date", session.Date.Format(calendar.DateLayout)),
		attribute.Bool("completed", session.Completed),
	)

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO program_session (program_id, date, completed, notes)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (program_id, date)
			DO UPDATE SET completed = EXCLUDED.completed, notes = EXCLUDED.notes, updated_at = now()
			RETURNING `+sessionColumns+`;`,
		session.ProgramID, calendar.Date(session.Date), session.Completed, session.Notes,
	)
	if err != nil {
		return nil, err
	}
	stored, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByPos[calendar.Session])
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, calendar.ErrProgramNotFound
		}
		return nil, fmt.Errorf("upsert session: %w", err)
	}
	return &stored, nil
}

// SessionsOn returns every row stored for the program on the given day.
func (r *Repo) SessionsOn(ctx context.Context, programID int, date time.Time) (_ []calendar.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.sessionson")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("program.id", programID))

	return r.listSessions(ctx, programID, calendar.Date(date), calendar.Date(date).AddDate(0, 0, 1))
}

// ListSessions returns one canonical session per day of the given month.
func (r *Repo) ListSessions(ctx context.Context, programID, year int, month time.Month) (_ []calendar.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.listsessions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("program.id", programID),
		attribute.Int("year", year),
		attribute.Int("month", int(month)),
	)

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	sessions, err := r.listSessions(ctx, programID, from, from.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}
	return calendar.CanonicalByDate(sessions), nil
}

func (r *Repo) listSessions(ctx context.Context, programID int, from, to time.Time) ([]calendar.Session, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+sessionColumns+` FROM program_session
			WHERE program_id = $1 AND date >= $2 AND date < $3
			ORDER BY date, id;`,
		programID, from, to,
	)
	if err != nil {
		return nil, err
	}
	sessions, err := pgx.CollectRows(rows, pgx.RowToStructByPos[calendar.Session])
	if err != nil {
		return nil, fmt.Errorf("collect sessions: %w", err)
	}
	return sessions, nil
}

func (r *Repo) DeleteSession(ctx context.Context, programID int, date time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.deletesession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("program.id", programID),
		attribute.String("date", date.Format(calendar.DateLayout)),
	)

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM program_session WHERE program_id = $1 AND date = $2;`,
		programID, calendar.Date(date),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}
