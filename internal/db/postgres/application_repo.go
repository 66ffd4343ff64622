package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"Harbor/internal/core/people"
)

type applicationRepo struct {
	db Querier
}

// NewApplicationRepository creates a registration application repository.
func NewApplicationRepository(db Querier) people.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new registration application.
func (r *applicationRepo) Create(ctx context.Context, app *people.RegistrationApplication) (*people.RegistrationApplication, error) {
	query := `
		INSERT INTO registration_applications (person_id, answer, status, admin_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		app.PersonID,
		app.Answer,
		string(app.Status),
		app.AdminID,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create registration application: %w", err)
	}

	return app, nil
}

// GetByID retrieves a registration application.
func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*people.RegistrationApplication, error) {
	app := &people.RegistrationApplication{}
	var status string
	query := `
		SELECT id, person_id, answer, status, admin_id, created_at, updated_at
		FROM registration_applications
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&app.ID,
		&app.PersonID,
		&app.Answer,
		&status,
		&app.AdminID,
		&app.CreatedAt,
		&app.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, people.ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get registration application: %w", err)
	}

	app.Status = people.ApplicationStatus(status)
	return app, nil
}

// Update writes a reviewed application's status and reviewing admin.
func (r *applicationRepo) Update(ctx context.Context, app *people.RegistrationApplication) error {
	query := `
		UPDATE registration_applications
		SET status = $2, admin_id = $3, updated_at = now()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, app.ID, string(app.Status), app.AdminID)
	if err != nil {
		return fmt.Errorf("failed to update registration application: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check application update: %w", err)
	}
	if affected == 0 {
		return people.ErrApplicationNotFound
	}

	return nil
}

// CountByStatus counts applications in the given status.
func (r *applicationRepo) CountByStatus(ctx context.Context, status people.ApplicationStatus) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM registration_applications WHERE status = $1`

	if err := r.db.QueryRowContext(ctx, query, string(status)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count registration applications: %w", err)
	}

	return count, nil
}

// ListByStatus retrieves applications in the given status, oldest first.
func (r *applicationRepo) ListByStatus(ctx context.Context, status people.ApplicationStatus) ([]people.RegistrationApplication, error) {
	query := `
		SELECT id, person_id, answer, status, admin_id, created_at, updated_at
		FROM registration_applications
		WHERE status = $1
		ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list registration applications: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Printf("Failed to close rows: %v", closeErr)
		}
	}()

	result := []people.RegistrationApplication{}
	for rows.Next() {
		app := people.RegistrationApplication{}
		var rowStatus string

		scanErr := rows.Scan(
			&app.ID,
			&app.PersonID,
			&app.Answer,
			&rowStatus,
			&app.AdminID,
			&app.CreatedAt,
			&app.UpdatedAt,
		)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan registration application: %w", scanErr)
		}

		app.Status = people.ApplicationStatus(rowStatus)
		result = append(result, app)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registration applications: %w", err)
	}

	return result, nil
}
