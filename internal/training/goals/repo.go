package goals

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

const goalColumns = `id, profile_id, title, description, type, exercise, target_value,
	current_value, unit, target_date, achieved, achieved_date, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, goal *Goal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("profile.id", goal.ProfileID),
		attribute.String("type", string(goal.Type)),
	)

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO goal (profile_id, title, description, type, exercise, target_value,
				current_value, unit, target_date, achieved, achieved_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id, created_at;`,
		goal.ProfileID, goal.Title, goal.Description, goal.Type, goal.Exercise, goal.TargetValue,
		goal.CurrentValue, goal.Unit, goal.TargetDate, goal.Achieved, goal.AchievedDate,
	).Scan(&goal.ID, &goal.CreatedAt)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("insert goal: %w", err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(ctx, `SELECT `+goalColumns+` FROM goal WHERE id = $1;`, id)
	if err != nil {
		return nil, err
	}
	goal, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByPos[Goal])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("collect goal: %w", err)
	}
	return goal, nil
}

// ListForProfile returns open goals first, each group ordered by target date.
func (r *Repo) ListForProfile(ctx context.Context, profileID int) (_ []*Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("profile.id", profileID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+goalColumns+` FROM goal
			WHERE profile_id = $1
			ORDER BY achieved, target_date, id;`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	goals, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[Goal])
	if err != nil {
		return nil, fmt.Errorf("collect goals: %w", err)
	}
	return goals, nil
}

func (r *Repo) UpdateProgress(ctx context.Context, goal *Goal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.updateprogress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("id", goal.ID),
		attribute.Bool("achieved", goal.Achieved),
	)

	tag, err := r.db.Exec(
		ctx,
		`UPDATE goal SET current_value = $2, achieved = $3, achieved_date = $4 WHERE id = $1;`,
		goal.ID, goal.CurrentValue, goal.Achieved, goal.AchievedDate,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *Repo) Update(ctx context.Context, goal *Goal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("id", goal.ID),
		attribute.String("type", string(goal.Type)),
	)

	tag, err := r.db.Exec(
		ctx,
		`UPDATE goal SET title = $2, description = $3, type = $4, exercise = $5, target_value = $6,
				unit = $7, target_date = $8, achieved = $9, achieved_date = $10
			WHERE id = $1;`,
		goal.ID, goal.Title, goal.Description, goal.Type, goal.Exercise, goal.TargetValue,
		goal.Unit, goal.TargetDate, goal.Achieved, goal.AchievedDate,
	)
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM goal WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}
