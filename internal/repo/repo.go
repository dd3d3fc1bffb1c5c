package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type Preset struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Scenario  json.RawMessage `json:"scenario"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)

	CreatePreset(ctx context.Context, userID int, name string, scenario json.RawMessage) (int, error)
	ListPresets(ctx context.Context, userID int) ([]Preset, error)
	DeletePreset(ctx context.Context, userID, presetID int) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) CreatePreset(ctx context.Context, userID int, name string, scenario json.RawMessage) (int, error) {
	var id int
	query := "INSERT INTO presets (user_id, name, scenario, created_at) VALUES ($1, $2, $3, NOW()) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, name, []byte(scenario)).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListPresets(ctx context.Context, userID int) ([]Preset, error) {
	query := "SELECT id, name, scenario, created_at FROM presets WHERE user_id=$1 ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []Preset
	for rows.Next() {
		var p Preset
		var scenario []byte
		if err := rows.Scan(&p.ID, &p.Name, &scenario, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Scenario = json.RawMessage(scenario)
		presets = append(presets, p)
	}
	return presets, rows.Err()
}

func (r *PostgresRepository) DeletePreset(ctx context.Context, userID, presetID int) error {
	query := "DELETE FROM presets WHERE id=$1 AND user_id=$2"
	res, err := r.db.ExecContext(ctx, query, presetID, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
