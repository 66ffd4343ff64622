package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/lib/pq"

	"Harbor/internal/core/people"
)

type personRepo struct {
	db Querier
}

// NewPersonRepository creates a person repository over db, which may be a
// *sql.DB or an open transaction.
func NewPersonRepository(db Querier) people.Repository {
	return &personRepo{db: db}
}

const personColumns = `
	p.id, p.activity_pub_id, p.username, p.display_name, p.email, p.password_hash,
	p.public_key, p.private_key, p.instance_id, p.role_id, p.local, p.deleted,
	p.created_at, p.updated_at,
	r.id, r.name, r.description, r.permissions, r.created_at`

func scanPerson(row interface{ Scan(...interface{}) error }) (*people.Person, error) {
	person := &people.Person{}
	var displayName, email sql.NullString
	var perms []string

	err := row.Scan(
		&person.ID,
		&person.ActivityPubID,
		&person.Username,
		&displayName,
		&email,
		&person.PasswordHash,
		&person.PublicKey,
		&person.PrivateKey,
		&person.InstanceID,
		&person.RoleID,
		&person.Local,
		&person.Deleted,
		&person.CreatedAt,
		&person.UpdatedAt,
		&person.Role.ID,
		&person.Role.Name,
		&person.Role.Description,
		pq.Array(&perms),
		&person.Role.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	person.DisplayName = displayName.String
	person.Email = email.String
	person.Role.Permissions = make([]people.Permission, 0, len(perms))
	for _, p := range perms {
		person.Role.Permissions = append(person.Role.Permissions, people.Permission(p))
	}

	return person, nil
}

// GetByID retrieves a person with their role loaded.
func (r *personRepo) GetByID(ctx context.Context, id int64) (*people.Person, error) {
	query := `
		SELECT` + personColumns + `
		FROM people p
		JOIN roles r ON r.id = p.role_id
		WHERE p.id = $1`

	person, err := scanPerson(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, people.ErrPersonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	return person, nil
}

// GetByUsername retrieves a local person by username.
func (r *personRepo) GetByUsername(ctx context.Context, username string) (*people.Person, error) {
	query := `
		SELECT` + personColumns + `
		FROM people p
		JOIN roles r ON r.id = p.role_id
		WHERE p.username = $1 AND p.local = true`

	person, err := scanPerson(r.db.QueryRowContext(ctx, query, username))
	if err == sql.ErrNoRows {
		return nil, people.ErrPersonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person by username: %w", err)
	}

	return person, nil
}

// Create inserts a new person.
func (r *personRepo) Create(ctx context.Context, person *people.Person) (*people.Person, error) {
	query := `
		INSERT INTO people (
			activity_pub_id, username, display_name, email, password_hash,
			public_key, private_key, instance_id, role_id, local, deleted
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		person.ActivityPubID,
		person.Username,
		nullString(person.DisplayName),
		nullString(person.Email),
		person.PasswordHash,
		person.PublicKey,
		person.PrivateKey,
		person.InstanceID,
		person.RoleID,
		person.Local,
		person.Deleted,
	).Scan(&person.ID, &person.CreatedAt, &person.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, people.ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	return person, nil
}

// UpdateRole reassigns a person's role.
func (r *personRepo) UpdateRole(ctx context.Context, personID, roleID int64) error {
	query := `UPDATE people SET role_id = $2, updated_at = now() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, personID, roleID)
	if err != nil {
		return fmt.Errorf("failed to update person role: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check role update: %w", err)
	}
	if affected == 0 {
		return people.ErrPersonNotFound
	}

	return nil
}

// ListByRoleName retrieves all persons holding the named role.
func (r *personRepo) ListByRoleName(ctx context.Context, roleName string) ([]people.Person, error) {
	query := `
		SELECT` + personColumns + `
		FROM people p
		JOIN roles r ON r.id = p.role_id
		WHERE r.name = $1
		ORDER BY p.id ASC`

	rows, err := r.db.QueryContext(ctx, query, roleName)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons by role: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Printf("Failed to close rows: %v", closeErr)
		}
	}()

	result := []people.Person{}
	for rows.Next() {
		person, scanErr := scanPerson(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan person: %w", scanErr)
		}
		result = append(result, *person)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating persons: %w", err)
	}

	return result, nil
}

// GetRoleByName retrieves a role by its distinguished name.
func (r *personRepo) GetRoleByName(ctx context.Context, name string) (*people.Role, error) {
	role := &people.Role{}
	var perms []string
	query := `SELECT id, name, description, permissions, created_at FROM roles WHERE name = $1`

	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&role.ID,
		&role.Name,
		&role.Description,
		pq.Array(&perms),
		&role.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, people.ErrRoleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	role.Permissions = make([]people.Permission, 0, len(perms))
	for _, p := range perms {
		role.Permissions = append(role.Permissions, people.Permission(p))
	}

	return role, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
