package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

var ErrNoDatabaseURL = errors.New("database connection string not set")

type Storage struct {
	DB *sql.DB
}

// New wraps an already opened database.
func New(db *sql.DB) *Storage {
	return &Storage{DB: db}
}

// Open connects to the libsql database at url.
func Open(url string) (*Storage, error) {
	if url == "" {
		return nil, ErrNoDatabaseURL
	}

	db, err := sql.Open("libsql", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	log.Debugf("opened libsql database")

	return New(db), nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// Tables lists every table in dependency-free order, used for import and export.
var Tables = []string{"workouts", "body_composition", "maxes", "sleep", "hormones", "supplements"}

func (s *Storage) InitializeDB(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS workouts (
            id TEXT PRIMARY KEY,
            date TEXT NOT NULL,
            week INTEGER NOT NULL,
            day INTEGER NOT NULL,
            exercise TEXT NOT NULL,
            sets INTEGER NOT NULL,
            reps INTEGER NOT NULL,
            weight REAL NOT NULL
        );

        CREATE INDEX IF NOT EXISTS workouts_exercise_date ON workouts (exercise, date);

        CREATE TABLE IF NOT EXISTS body_composition (
            id TEXT PRIMARY KEY,
            date TEXT NOT NULL,
            week INTEGER NOT NULL,
            weight REAL NOT NULL,
            body_fat_navy REAL,
            body_fat_calipers REAL
        );

        CREATE TABLE IF NOT EXISTS maxes (
            id TEXT PRIMARY KEY,
            lift TEXT NOT NULL CHECK (lift IN ('Bench', 'Squat', 'Deadlift')),
            weight REAL NOT NULL,
            body_weight REAL NOT NULL,
            month TEXT NOT NULL,
            date TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS sleep (
            id TEXT PRIMARY KEY,
            date TEXT NOT NULL,
            month TEXT NOT NULL,
            overall REAL NOT NULL,
            awake REAL NOT NULL,
            core REAL NOT NULL,
            rem REAL NOT NULL,
            deep REAL NOT NULL
        );

        CREATE TABLE IF NOT EXISTS hormones (
            id TEXT PRIMARY KEY,
            total_testosterone REAL NOT NULL,
            free_testosterone REAL NOT NULL,
            sex_hormone_binding_globulin REAL NOT NULL,
            fai REAL NOT NULL,
            date TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS supplements (
            id TEXT PRIMARY KEY,
            type TEXT NOT NULL,
            supplement TEXT NOT NULL,
            dosage TEXT NOT NULL,
            increased_dosage TEXT,
            date_of_increase TEXT
        );
    `)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	return nil
}
