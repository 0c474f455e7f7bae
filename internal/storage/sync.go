package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fraserkalirai/fraser-2025-recap/internal/models"
	"github.com/fraserkalirai/fraser-2025-recap/internal/utils"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ExportDataset reads every table into a single snapshot.
func (s *Storage) ExportDataset(ctx context.Context) (*models.Dataset, error) {
	var ds models.Dataset
	var err error

	if ds.Workouts, err = s.FetchWorkouts(ctx); err != nil {
		return nil, err
	}
	if ds.BodyComposition, err = s.FetchBodyComposition(ctx); err != nil {
		return nil, err
	}
	if ds.Maxes, err = s.FetchMaxes(ctx); err != nil {
		return nil, err
	}
	if ds.Sleep, err = s.FetchSleep(ctx); err != nil {
		return nil, err
	}
	if ds.Hormones, err = s.FetchHormones(ctx); err != nil {
		return nil, err
	}
	if ds.Supplements, err = s.FetchSupplements(ctx); err != nil {
		return nil, err
	}

	return &ds, nil
}

// ImportDataset replaces the content of every table with the dataset.
// Records without an id get a fresh one.
func (s *Storage) ImportDataset(ctx context.Context, ds *models.Dataset) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range Tables {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s;", table)); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}

	for _, w := range ds.Workouts {
		if err := insert(ctx, tx, "workouts",
			[]string{"id", "date", "week", "day", "exercise", "sets", "reps", "weight"},
			recordID(w.ID), utils.FormatDate(w.Date), w.Week, w.Day, w.Exercise, w.Sets, w.Reps, w.Weight,
		); err != nil {
			return err
		}
	}

	for _, b := range ds.BodyComposition {
		if err := insert(ctx, tx, "body_composition",
			[]string{"id", "date", "week", "weight", "body_fat_navy", "body_fat_calipers"},
			recordID(b.ID), utils.FormatDate(b.Date), b.Week, b.Weight, nullFloat(b.BodyFatNavy), nullFloat(b.BodyFatCalipers),
		); err != nil {
			return err
		}
	}

	for _, m := range ds.Maxes {
		if !m.Lift.Valid() {
			return fmt.Errorf("invalid lift %q", m.Lift)
		}
		if err := insert(ctx, tx, "maxes",
			[]string{"id", "lift", "weight", "body_weight", "month", "date"},
			recordID(m.ID), string(m.Lift), m.Weight, m.BodyWeight, m.Month, utils.FormatDate(m.Date),
		); err != nil {
			return err
		}
	}

	for _, sl := range ds.Sleep {
		if err := insert(ctx, tx, "sleep",
			[]string{"id", "date", "month", "overall", "awake", "core", "rem", "deep"},
			recordID(sl.ID), utils.FormatDate(sl.Date), sl.Month, sl.Overall, sl.Awake, sl.Core, sl.REM, sl.Deep,
		); err != nil {
			return err
		}
	}

	for _, h := range ds.Hormones {
		if err := insert(ctx, tx, "hormones",
			[]string{"id", "total_testosterone", "free_testosterone", "sex_hormone_binding_globulin", "fai", "date"},
			recordID(h.ID), h.TotalTestosterone, h.FreeTestosterone, h.SexHormoneBindingGlobulin, h.FAI, utils.FormatDate(h.Date),
		); err != nil {
			return err
		}
	}

	for _, sp := range ds.Supplements {
		var increased, increasedOn sql.NullString
		if sp.IncreasedDosage != nil {
			increased = sql.NullString{String: *sp.IncreasedDosage, Valid: true}
		}
		if sp.DateOfIncrease != nil {
			increasedOn = sql.NullString{String: utils.FormatDate(*sp.DateOfIncrease), Valid: true}
		}
		if err := insert(ctx, tx, "supplements",
			[]string{"id", "type", "supplement", "dosage", "increased_dosage", "date_of_increase"},
			recordID(sp.ID), sp.Type, sp.Supplement, sp.Dosage, increased, increasedOn,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"workouts":         len(ds.Workouts),
		"body_composition": len(ds.BodyComposition),
		"maxes":            len(ds.Maxes),
		"sleep":            len(ds.Sleep),
		"hormones":         len(ds.Hormones),
		"supplements":      len(ds.Supplements),
	}).Info("dataset imported")
	return nil
}

func insert(ctx context.Context, tx *sql.Tx, table string, columns []string, values ...any) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);", table, strings.Join(columns, ", "), placeholders)
	if _, err := tx.ExecContext(ctx, query, values...); err != nil {
		return fmt.Errorf("failed to insert into table %s: %w", table, err)
	}
	return nil
}

func recordID(id string) string {
	if id == "" {
		return uuid.New().String()
	}
	return id
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

// LoadDataset decodes a TOML dump file.
func LoadDataset(path string) (*models.Dataset, error) {
	var ds models.Dataset
	if _, err := toml.DecodeFile(path, &ds); err != nil {
		return nil, fmt.Errorf("decoding TOML %s: %w", path, err)
	}
	return &ds, nil
}

// ImportFromTOML rebuilds the database from the TOML dump at path.
func (s *Storage) ImportFromTOML(ctx context.Context, path string) error {
	ds, err := LoadDataset(path)
	if err != nil {
		return err
	}
	return s.ImportDataset(ctx, ds)
}

// ExportToTOML writes every table to a TOML dump at outputPath.
func (s *Storage) ExportToTOML(ctx context.Context, outputPath string) error {
	ds, err := s.ExportDataset(ctx)
	if err != nil {
		return err
	}

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(ds); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}

	// Make the output path absolute relative to the current directory.
	outputPath, err = filepath.Abs(outputPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}

	log.WithField("path", outputPath).Info("dataset exported")
	return nil
}
