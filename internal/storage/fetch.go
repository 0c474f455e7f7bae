package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fraserkalirai/fraser-2025-recap/internal/models"
	"github.com/fraserkalirai/fraser-2025-recap/internal/utils"
	log "github.com/sirupsen/logrus"
)

// queryRows runs query and scans every row with scan.
func queryRows[T any](ctx context.Context, db *sql.DB, what string, scan func(*sql.Rows) (T, error), query string, args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}
	defer rows.Close()

	result := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", what, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", what, err)
	}

	log.Debugf("fetched %d %s", len(result), what)
	return result, nil
}

// FetchExerciseTypes returns every exercise name, most logged first.
func (s *Storage) FetchExerciseTypes(ctx context.Context) ([]models.ExerciseCount, error) {
	return queryRows(ctx, s.DB, "exercise types", func(rows *sql.Rows) (models.ExerciseCount, error) {
		var c models.ExerciseCount
		err := rows.Scan(&c.Exercise, &c.Count)
		return c, err
	}, `
        SELECT exercise, COUNT(*) AS entries
        FROM workouts
        GROUP BY exercise
        ORDER BY entries DESC, exercise ASC`)
}

func scanWorkout(rows *sql.Rows) (models.Workout, error) {
	var w models.Workout
	var date string
	if err := rows.Scan(&w.ID, &date, &w.Week, &w.Day, &w.Exercise, &w.Sets, &w.Reps, &w.Weight); err != nil {
		return w, err
	}

	var err error
	w.Date, err = utils.ParseDate(date)
	return w, err
}

// FetchExercise returns every logged entry of one exercise, oldest first.
func (s *Storage) FetchExercise(ctx context.Context, exercise string) ([]models.Workout, error) {
	return queryRows(ctx, s.DB, "workouts", scanWorkout, `
        SELECT id, date, week, day, exercise, sets, reps, weight
        FROM workouts
        WHERE exercise = ?
        ORDER BY date ASC`, exercise)
}

func (s *Storage) FetchWorkouts(ctx context.Context) ([]models.Workout, error) {
	return queryRows(ctx, s.DB, "workouts", scanWorkout, `
        SELECT id, date, week, day, exercise, sets, reps, weight
        FROM workouts
        ORDER BY date ASC`)
}

// FetchWeeklyVolume sums sets × reps × weight across all exercises per week.
func (s *Storage) FetchWeeklyVolume(ctx context.Context) ([]models.WeeklyVolume, error) {
	return queryRows(ctx, s.DB, "weekly volume", func(rows *sql.Rows) (models.WeeklyVolume, error) {
		var v models.WeeklyVolume
		err := rows.Scan(&v.WeekNumber, &v.TotalVolume)
		return v, err
	}, `
        SELECT week, COALESCE(SUM(sets * reps * weight), 0)
        FROM workouts
        GROUP BY week
        ORDER BY week ASC`)
}

func (s *Storage) FetchMaxes(ctx context.Context) ([]models.Max, error) {
	return queryRows(ctx, s.DB, "maxes", func(rows *sql.Rows) (models.Max, error) {
		var m models.Max
		var date string
		if err := rows.Scan(&m.ID, &m.Lift, &m.Weight, &m.BodyWeight, &m.Month, &date); err != nil {
			return m, err
		}

		var err error
		m.Date, err = utils.ParseDate(date)
		return m, err
	}, `
        SELECT id, lift, weight, body_weight, month, date
        FROM maxes
        ORDER BY date ASC`)
}

func (s *Storage) FetchSleep(ctx context.Context) ([]models.Sleep, error) {
	return queryRows(ctx, s.DB, "sleep", func(rows *sql.Rows) (models.Sleep, error) {
		var sl models.Sleep
		var date string
		if err := rows.Scan(&sl.ID, &date, &sl.Month, &sl.Overall, &sl.Awake, &sl.Core, &sl.REM, &sl.Deep); err != nil {
			return sl, err
		}

		var err error
		sl.Date, err = utils.ParseDate(date)
		return sl, err
	}, `
        SELECT id, date, month, overall, awake, core, rem, deep
        FROM sleep
        ORDER BY date ASC`)
}

func (s *Storage) FetchHormones(ctx context.Context) ([]models.Hormone, error) {
	return queryRows(ctx, s.DB, "hormones", func(rows *sql.Rows) (models.Hormone, error) {
		var h models.Hormone
		var date string
		if err := rows.Scan(&h.ID, &h.TotalTestosterone, &h.FreeTestosterone, &h.SexHormoneBindingGlobulin, &h.FAI, &date); err != nil {
			return h, err
		}

		var err error
		h.Date, err = utils.ParseDate(date)
		return h, err
	}, `
        SELECT id, total_testosterone, free_testosterone, sex_hormone_binding_globulin, fai, date
        FROM hormones
        ORDER BY date ASC`)
}

func (s *Storage) FetchBodyComposition(ctx context.Context) ([]models.BodyComposition, error) {
	return queryRows(ctx, s.DB, "body composition", func(rows *sql.Rows) (models.BodyComposition, error) {
		var b models.BodyComposition
		var date string
		var navy, calipers sql.NullFloat64
		if err := rows.Scan(&b.ID, &date, &b.Week, &b.Weight, &navy, &calipers); err != nil {
			return b, err
		}
		if navy.Valid {
			b.BodyFatNavy = &navy.Float64
		}
		if calipers.Valid {
			b.BodyFatCalipers = &calipers.Float64
		}

		var err error
		b.Date, err = utils.ParseDate(date)
		return b, err
	}, `
        SELECT id, date, week, weight, body_fat_navy, body_fat_calipers
        FROM body_composition
        ORDER BY date ASC`)
}

func (s *Storage) FetchSupplements(ctx context.Context) ([]models.Supplement, error) {
	return queryRows(ctx, s.DB, "supplements", func(rows *sql.Rows) (models.Supplement, error) {
		var sp models.Supplement
		var increased, increasedOn sql.NullString
		if err := rows.Scan(&sp.ID, &sp.Type, &sp.Supplement, &sp.Dosage, &increased, &increasedOn); err != nil {
			return sp, err
		}
		if increased.Valid {
			sp.IncreasedDosage = &increased.String
		}
		if increasedOn.Valid && increasedOn.String != "" {
			d, err := utils.ParseDate(increasedOn.String)
			if err != nil {
				return sp, err
			}
			sp.DateOfIncrease = &d
		}
		return sp, nil
	}, `
        SELECT id, type, supplement, dosage, increased_dosage, date_of_increase
        FROM supplements
        ORDER BY type ASC, supplement ASC`)
}
