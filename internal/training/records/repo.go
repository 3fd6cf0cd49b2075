package records

import (
	"context"
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

// AddRecord stores the record only when it beats the best weight stored for
// the same exercise, otherwise ErrNotImproving.
func (r *Repo) AddRecord(ctx context.Context, record *PersonalRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("profile.id", record.ProfileID),
		attribute.String("exercise", record.Exercise),
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

	// serializes concurrent records of the same profile
	if _, err = tx.Exec(ctx, `SELECT id FROM profile WHERE id = $1 FOR UPDATE;`, record.ProfileID); err != nil {
		return err
	}

	var best *float64
	err = tx.QueryRow(
		ctx,
		`SELECT max(weight_kg) FROM personal_record
			WHERE profile_id = $1 AND lower(exercise) = lower($2);`,
		record.ProfileID, record.Exercise,
	).Scan(&best)
	if err != nil {
		return fmt.Errorf("select best record: %w", err)
	}
	if !record.Beats(best) {
		err = ErrNotImproving
		return err
	}

	err = tx.QueryRow(
		ctx,
		`INSERT INTO personal_record (profile_id, exercise, weight_kg, reps, date)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		record.ProfileID, record.Exercise, record.WeightKg, record.Reps, record.Date,
	).Scan(&record.ID)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			err = ErrProfileNotFound
			return err
		}
		return fmt.Errorf("insert record: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *Repo) ListRecords(ctx context.Context, profileID int) (_ []*PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("profile.id", profileID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, profile_id, exercise, weight_kg, reps, date FROM personal_record
			WHERE profile_id = $1
			ORDER BY date DESC, id DESC;`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	records, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[PersonalRecord])
	if err != nil {
		return nil, fmt.Errorf("collect records: %w", err)
	}
	return records, nil
}

func (r *Repo) DeleteRecord(ctx context.Context, profileID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("profile.id", profileID), attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM personal_record WHERE id = $1 AND profile_id = $2;`, id, profileID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// UpsertBodyWeight keeps a single entry per profile and date.
func (r *Repo) UpsertBodyWeight(ctx context.Context, entry *BodyWeight) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.upsertbodyweight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("profile.id", entry.ProfileID))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO body_weight (profile_id, date, weight_kg, notes)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (profile_id, date)
			DO UPDATE SET weight_kg = EXCLUDED.weight_kg, notes = EXCLUDED.notes
			RETURNING id;`,
		entry.ProfileID, entry.Date, entry.WeightKg, entry.Notes,
	).Scan(&entry.ID)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("upsert body weight: %w", err)
	}
	return nil
}

func (r *Repo) ListBodyWeight(ctx context.Context, profileID int) (_ []*BodyWeight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.listbodyweight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("profile.id", profileID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, profile_id, date, weight_kg, notes FROM body_weight
			WHERE profile_id = $1
			ORDER BY date;`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	entries, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[BodyWeight])
	if err != nil {
		return nil, fmt.Errorf("collect body weight: %w", err)
	}
	return entries, nil
}

// UpdateBodyWeight rewrites an existing entry. Moving it onto a date that
// already holds another entry fails with ErrBodyWeightTaken.
func (r *Repo) UpdateBodyWeight(ctx context.Context, entry *BodyWeight) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.updatebodyweight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("profile.id", entry.ProfileID), attribute.Int("id", entry.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE body_weight SET date = $3, weight_kg = $4, notes = $5
			WHERE id = $1 AND profile_id = $2;`,
		entry.ID, entry.ProfileID, entry.Date, entry.WeightKg, entry.Notes,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrBodyWeightTaken
		}
		return fmt.Errorf("update body weight: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBodyWeightNotFound
	}
	return nil
}

func (r *Repo) DeleteBodyWeight(ctx context.Context, profileID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.deletebodyweight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("profile.id", profileID), attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM body_weight WHERE id = $1 AND profile_id = $2;`, id, profileID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBodyWeightNotFound
	}
	return nil
}
