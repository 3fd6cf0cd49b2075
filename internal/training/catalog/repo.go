package catalog

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

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("name", exercise.Name))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO exercise_catalog (name, description, category, muscle_group, is_custom)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		exercise.Name, exercise.Description, exercise.Category, exercise.MuscleGroup, exercise.IsCustom,
	).Scan(&exercise.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrExerciseExists
		}
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	return &exercise, nil
}

func (r *Repo) List(ctx context.Context, muscleGroup string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("muscle_group", muscleGroup))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, description, category, muscle_group, is_custom
			FROM exercise_catalog
			WHERE ($1::text = '' OR muscle_group = $1)
			ORDER BY muscle_group, name;`,
		muscleGroup,
	)
	if err != nil {
		return nil, err
	}

	exercises, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Exercise])
	if err != nil {
		return nil, fmt.Errorf("collect exercises: %w", err)
	}
	return exercises, nil
}

// Delete removes a custom exercise. Predefined ones are kept.
func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var isCustom bool
	err = r.db.QueryRow(ctx, `SELECT is_custom FROM exercise_catalog WHERE id = $1;`, id).Scan(&isCustom)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrExerciseNotFound
		}
		return err
	}
	if !isCustom {
		return ErrExercisePredefined
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM exercise_catalog WHERE id = $1 AND is_custom;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

// Seed inserts the given exercises when the catalog is empty and returns
// how many were added.
func (r *Repo) Seed(ctx context.Context, exercises []Exercise) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.seed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM exercise_catalog;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count catalog: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, e := range exercises {
		batch.Queue(
			`INSERT INTO exercise_catalog (name, description, category, muscle_group, is_custom)
				VALUES ($1, $2, $3, $4, FALSE)
				ON CONFLICT (name) DO NOTHING;`,
			e.Name, e.Description, e.Category, e.MuscleGroup,
		)
	}
	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return 0, fmt.Errorf("seed catalog: %w", err)
	}

	span.SetAttributes(attribute.Int("seeded", len(exercises)))
	return len(exercises), nil
}

// MuscleGroups maps every catalog exercise name to its muscle group.
func (r *Repo) MuscleGroups(ctx context.Context) (_ map[string]string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.musclegroups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT name, muscle_group FROM exercise_catalog;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make(map[string]string)
	for rows.Next() {
		var name, group string
		if err := rows.Scan(&name, &group); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		groups[name] = group
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(groups)))
	return groups, nil
}
