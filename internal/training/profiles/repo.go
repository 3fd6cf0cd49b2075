package profiles

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

const profileColumns = `id, name, age, gender, weight_kg, height_cm, goal, experience, weeks, notes, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, profile Profile) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO profile
				(name, age, gender, weight_kg, height_cm, goal, experience, weeks, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, created_at, updated_at;`,
		profile.Name, profile.Age, profile.Gender, profile.WeightKg, profile.HeightCm,
		profile.Goal, profile.Experience, profile.Weeks, profile.Notes,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if pkg.IsCheckViolationError(err) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidProfile, err)
		}
		return nil, fmt.Errorf("insert profile: %w", err)
	}

	span.SetAttributes(attribute.Int("profile.id", profile.ID))
	return &profile, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(ctx, `SELECT `+profileColumns+` FROM profile WHERE id = $1;`, id)
	if err != nil {
		return nil, err
	}

	profile, err := pgx.CollectExactlyOneRow(rows, scanProfile)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *Repo) List(ctx context.Context) (_ []Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+profileColumns+` FROM profile ORDER BY id;`)
	if err != nil {
		return nil, err
	}

	profiles, err := pgx.CollectRows(rows, scanProfile)
	if err != nil {
		return nil, fmt.Errorf("collect profiles: %w", err)
	}
	return profiles, nil
}

func (r *Repo) Update(ctx context.Context, profile *Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", profile.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE profile
			SET name = $1, age = $2, gender = $3, weight_kg = $4, height_cm = $5,
				goal = $6, experience = $7, weeks = $8, notes = $9, updated_at = now()
			WHERE id = $10;`,
		profile.Name, profile.Age, profile.Gender, profile.WeightKg, profile.HeightCm,
		profile.Goal, profile.Experience, profile.Weeks, profile.Notes, profile.ID,
	)
	if err != nil {
		if pkg.IsCheckViolationError(err) {
			return fmt.Errorf("%w: %s", ErrInvalidProfile, err)
		}
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM profile WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func scanProfile(row pgx.CollectableRow) (Profile, error) {
	var p Profile
	err := row.Scan(
		&p.ID, &p.Name, &p.Age, &p.Gender, &p.WeightKg, &p.HeightCm,
		&p.Goal, &p.Experience, &p.Weeks, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}
