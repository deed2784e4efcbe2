package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Profile is a stored user measurement record from the details form.
type Profile struct {
	ID        int64     `json:"id"`
	Height    float64   `json:"height"`
	BodyShape string    `json:"bodyShape"`
	SkinTone  string    `json:"skinTone"`
	Gender    string    `json:"gender"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProfileStore defines the interface for profile persistence.
type ProfileStore interface {
	Create(profile *Profile) (*Profile, error)
	Get(id int64) (*Profile, error)
	Close() error
}

// SQLiteStore implements ProfileStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based profile store at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	// Configure SQLite with WAL mode and busy timeout for better concurrency
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}

	if err := store.init(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) init() error {
	query := `
	CREATE TABLE IF NOT EXISTS profiles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		height REAL NOT NULL,
		body_shape TEXT NOT NULL,
		skin_tone TEXT NOT NULL,
		gender TEXT NOT NULL,
		age INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// Create inserts a profile record and returns it with the generated id.
func (s *SQLiteStore) Create(profile *Profile) (*Profile, error) {
	now := time.Now()
	res, err := s.db.Exec(
		`INSERT INTO profiles (height, body_shape, skin_tone, gender, age, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		profile.Height, profile.BodyShape, profile.SkinTone, profile.Gender, profile.Age, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert profile: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile id: %w", err)
	}

	created := *profile
	created.ID = id
	created.CreatedAt = now
	return &created, nil
}

// Get returns the profile with the given id, or nil when it does not exist.
func (s *SQLiteStore) Get(id int64) (*Profile, error) {
	var p Profile
	err := s.db.QueryRow(
		`SELECT id, height, body_shape, skin_tone, gender, age, created_at
		 FROM profiles WHERE id = ?`, id,
	).Scan(&p.ID, &p.Height, &p.BodyShape, &p.SkinTone, &p.Gender, &p.Age, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
