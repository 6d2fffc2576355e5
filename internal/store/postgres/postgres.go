// Package postgres implements the store interfaces on a PostgreSQL database
// using the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/SamratSK/better-bites/internal/model"
	"github.com/SamratSK/better-bites/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies
// connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a Postgres store backed directly by database/sql.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Profiles() store.Profiles         { return &profiles{db: s.db} }
func (s *pgStore) Goals() store.Goals               { return &goals{db: s.db} }
func (s *pgStore) Measurements() store.Measurements { return &measurements{db: s.db} }
func (s *pgStore) Meals() store.Meals               { return &meals{db: s.db} }
func (s *pgStore) Water() store.Water               { return &water{db: s.db} }
func (s *pgStore) Activities() store.Activities     { return &activities{db: s.db} }
func (s *pgStore) Summaries() store.Summaries       { return &summaries{db: s.db} }
func (s *pgStore) Streaks() store.Streaks           { return &streaks{db: s.db} }
func (s *pgStore) Flagged() store.Flagged           { return &flagged{db: s.db} }
func (s *pgStore) Motivations() store.Motivations   { return &motivations{db: s.db} }
func (s *pgStore) Foods() store.Foods               { return &foods{db: s.db} }
func (s *pgStore) ReportShares() store.ReportShares { return &reportShares{db: s.db} }

func (s *pgStore) HealthPing(ctx context.Context) error { return s.db.PingContext(ctx) }

func mapNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrNotFound
	}
	return err
}

// --- Profiles ---

type profiles struct{ db *sql.DB }

func (p *profiles) Upsert(ctx context.Context, m *model.Profile) (*model.Profile, error) {
	out := *m
	if out.Role == "" {
		out.Role = "member"
	}
	row := p.db.QueryRowContext(ctx, `
        INSERT INTO profiles (user_id, display_name, role, gender, timezone, activity_level)
        VALUES ($1,$2,$3,$4,$5,$6)
        ON CONFLICT (user_id) DO UPDATE SET
            display_name=EXCLUDED.display_name,
            gender=EXCLUDED.gender,
            timezone=EXCLUDED.timezone,
            activity_level=EXCLUDED.activity_level
        RETURNING role, created_at
    `, out.UserID, out.DisplayName, out.Role, out.Gender, out.Timezone, out.ActivityLevel)
	if err := row.Scan(&out.Role, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *profiles) Get(ctx context.Context, userID string) (*model.Profile, error) {
	var out model.Profile
	row := p.db.QueryRowContext(ctx, `
        SELECT user_id, display_name, role, gender, timezone, activity_level, created_at
        FROM profiles WHERE user_id=$1
    `, userID)
	if err := row.Scan(&out.UserID, &out.DisplayName, &out.Role, &out.Gender, &out.Timezone, &out.ActivityLevel, &out.CreatedAt); err != nil {
		return nil, mapNoRows(err)
	}
	return &out, nil
}

func (p *profiles) List(ctx context.Context, excludeUserID string) ([]model.Profile, error) {
	rows, err := p.db.QueryContext(ctx, `
        SELECT user_id, display_name, role, gender, timezone, activity_level, created_at
        FROM profiles WHERE user_id<>$1 ORDER BY created_at DESC
    `, excludeUserID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []model.Profile
	for rows.Next() {
		var m model.Profile
		if err := rows.Scan(&m.UserID, &m.DisplayName, &m.Role, &m.Gender, &m.Timezone, &m.ActivityLevel, &m.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, rows.Err()
}

func (p *profiles) CountByRole(ctx context.Context, role string) (int, error) {
	var n int
	err := p.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles WHERE role=$1`, role).Scan(&n)
	return n, err
}

func (p *profiles) Count(ctx context.Context) (int, error) {
	var n int
	err := p.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&n)
	return n, err
}

func (p *profiles) Delete(ctx context.Context, userID string) error {
	tables := []string{
		"meal_entries", "water_entries", "activity_entries", "body_measurements",
		"streaks", "daily_goals", "report_shares", "flagged_items",
	}
	tx, err := p.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	for _, t := range tables {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+t+` WHERE user_id=$1`, userID); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM profiles WHERE user_id=$1`, userID); err != nil {
		return err
	}
	return tx.Commit()
}

// --- Goals ---

type goals struct{ db *sql.DB }

func (g *goals) Upsert(ctx context.Context, m *model.DailyGoals) (*model.DailyGoals, error) {
	out := *m
	_, err := g.db.ExecContext(ctx, `
        INSERT INTO daily_goals (user_id, calories_target, protein_target, carbs_target, fat_target, water_ml_target, steps_target)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        ON CONFLICT (user_id) DO UPDATE SET
            calories_target=EXCLUDED.calories_target,
            protein_target=EXCLUDED.protein_target,
            carbs_target=EXCLUDED.carbs_target,
            fat_target=EXCLUDED.fat_target,
            water_ml_target=EXCLUDED.water_ml_target,
            steps_target=EXCLUDED.steps_target
    `, out.UserID, out.CaloriesTarget, out.ProteinTarget, out.CarbsTarget, out.FatTarget, out.WaterMlTarget, out.StepsTarget)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *goals) Get(ctx context.Context, userID string) (*model.DailyGoals, error) {
	var out model.DailyGoals
	row := g.db.QueryRowContext(ctx, `
        SELECT user_id, calories_target, protein_target, carbs_target, fat_target, water_ml_target, steps_target
        FROM daily_goals WHERE user_id=$1
    `, userID)
	if err := row.Scan(&out.UserID, &out.CaloriesTarget, &out.ProteinTarget, &out.CarbsTarget, &out.FatTarget, &out.WaterMlTarget, &out.StepsTarget); err != nil {
		return nil, mapNoRows(err)
	}
	return &out, nil
}

// --- Measurements ---

type measurements struct{ db *sql.DB }

func (m *measurements) Create(ctx context.Context, in *model.BodyMeasurement) (*model.BodyMeasurement, error) {
	out := *in
	out.ID = uuid.New().String()
	if out.RecordedAt.IsZero() {
		out.RecordedAt = time.Now().UTC()
	}
	_, err := m.db.ExecContext(ctx, `
        INSERT INTO body_measurements (id, user_id, recorded_at, height_cm, weight_kg, body_fat_pct, waist_cm)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
    `, out.ID, out.UserID, out.RecordedAt, out.HeightCm, out.WeightKg, out.BodyFatPct, out.WaistCm)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *measurements) Latest(ctx context.Context, userID string) (*model.BodyMeasurement, error) {
	res, err := m.List(ctx, userID, 1)
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return nil, model.ErrNotFound
	}
	return &res[0], nil
}

func (m *measurements) List(ctx context.Context, userID string, limit int) ([]model.BodyMeasurement, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := m.db.QueryContext(ctx, `
        SELECT id, user_id, recorded_at, height_cm, weight_kg, body_fat_pct, waist_cm
        FROM body_measurements WHERE user_id=$1 ORDER BY recorded_at DESC LIMIT $2
    `, userID, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []model.BodyMeasurement
	for rows.Next() {
		var bm model.BodyMeasurement
		if err := rows.Scan(&bm.ID, &bm.UserID, &bm.RecordedAt, &bm.HeightCm, &bm.WeightKg, &bm.BodyFatPct, &bm.WaistCm); err != nil {
			return nil, err
		}
		res = append(res, bm)
	}
	return res, rows.Err()
}

// --- Meals ---

type meals struct{ db *sql.DB }

func (m *meals) Create(ctx context.Context, in *model.MealEntry) (*model.MealEntry, error) {
	out := *in
	out.ID = uuid.New().String()
	if out.Source == "" {
		out.Source = "manual"
	}
	row := m.db.QueryRowContext(ctx, `
        INSERT INTO meal_entries (id, user_id, log_date, meal_type, description, calories, protein_g, carbs_g, fat_g, source, food_ref_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING created_at
    `, out.ID, out.UserID, out.LogDate, out.MealType, out.Description, out.Calories, out.Protein, out.Carbs, out.Fat, out.Source, out.FoodRefID)
	if err := row.Scan(&out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *meals) ListByDate(ctx context.Context, userID, logDate string) ([]model.MealEntry, error) {
	rows, err := m.db.QueryContext(ctx, `
        SELECT id, user_id, log_date, meal_type, description, calories, protein_g, carbs_g, fat_g, source, food_ref_id, created_at
        FROM meal_entries WHERE user_id=$1 AND log_date=$2 ORDER BY created_at DESC
    `, userID, logDate)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []model.MealEntry
	for rows.Next() {
		var e model.MealEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.LogDate, &e.MealType, &e.Description, &e.Calories, &e.Protein, &e.Carbs, &e.Fat, &e.Source, &e.FoodRefID, &e.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}

func (m *meals) Delete(ctx context.Context, entryID string) error {
	_, err := m.db.ExecContext(ctx, `DELETE FROM meal_entries WHERE id=$1`, entryID)
	return err
}

// --- Water ---

type water struct{ db *sql.DB }

func (w *water) Create(ctx context.Context, in *model.WaterEntry) (*model.WaterEntry, error) {
	out := *in
	out.ID = uuid.New().String()
	if out.LoggedAt.IsZero() {
		out.LoggedAt = time.Now().UTC()
	}
	_, err := w.db.ExecContext(ctx, `
        INSERT INTO water_entries (id, user_id, volume_ml, logged_at) VALUES ($1,$2,$3,$4)
    `, out.ID, out.UserID, out.VolumeMl, out.LoggedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (w *water) ListByRange(ctx context.Context, userID string, from, to time.Time) ([]model.WaterEntry, error) {
	rows, err := w.db.QueryContext(ctx, `
        SELECT id, user_id, volume_ml, logged_at
        FROM water_entries WHERE user_id=$1 AND logged_at>=$2 AND logged_at<$3 ORDER BY logged_at DESC
    `, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []model.WaterEntry
	for rows.Next() {
		var e model.WaterEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.VolumeMl, &e.LoggedAt); err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}

func (w *water) Delete(ctx context.Context, entryID string) error {
	_, err := w.db.ExecContext(ctx, `DELETE FROM water_entries WHERE id=$1`, entryID)
	return err
}

// --- Activities ---

type activities struct{ db *sql.DB }

func (a *activities) Create(ctx context.Context, in *model.ActivityEntry) (*model.ActivityEntry, error) {
	out := *in
	out.ID = uuid.New().String()
	if out.LoggedAt.IsZero() {
		out.LoggedAt = time.Now().UTC()
	}
	row := a.db.QueryRowContext(ctx, `
        INSERT INTO activity_entries (id, user_id, log_date, logged_at, activity_type, duration_min, intensity, calories_burned, steps, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING created_at
    `, out.ID, out.UserID, out.LogDate, out.LoggedAt, out.ActivityType, out.DurationMin, out.Intensity, out.CaloriesBurned, out.Steps, out.Notes)
	if err := row.Scan(&out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *activities) ListByDate(ctx context.Context, userID, logDate string) ([]model.ActivityEntry, error) {
	rows, err := a.db.QueryContext(ctx, `
        SELECT id, user_id, log_date, logged_at, activity_type, duration_min, intensity, calories_burned, steps, notes, created_at
        FROM activity_entries WHERE user_id=$1 AND log_date=$2 ORDER BY logged_at DESC
    `, userID, logDate)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []model.ActivityEntry
	for rows.Next() {
		var e model.ActivityEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.LogDate, &e.LoggedAt, &e.ActivityType, &e.DurationMin, &e.Intensity, &e.CaloriesBurned, &e.Steps, &e.Notes, &e.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}

func (a *activities) Delete(ctx context.Context, entryID string) error {
	_, err := a.db.ExecContext(ctx, `DELETE FROM activity_entries WHERE id=$1`, entryID)
	return err
}

// --- Summaries ---

type summaries struct{ db *sql.DB }

func (s *summaries) Get(ctx context.Context, userID, logDate string) (*model.DailySummary, error) {
	day, err := time.Parse("2006-01-02", logDate)
	if err != nil {
		return nil, model.ErrValidation
	}
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	out := model.DailySummary{UserID: userID, LogDate: logDate}
	row := s.db.QueryRowContext(ctx, `
        SELECT COALESCE(SUM(calories),0), COALESCE(SUM(protein_g),0), COALESCE(SUM(carbs_g),0), COALESCE(SUM(fat_g),0)
        FROM meal_entries WHERE user_id=$1 AND log_date=$2
    `, userID, logDate)
	if err := row.Scan(&out.CaloriesConsumed, &out.ProteinGrams, &out.CarbsGrams, &out.FatGrams); err != nil {
		return nil, err
	}
	row = s.db.QueryRowContext(ctx, `
        SELECT COALESCE(SUM(volume_ml),0) FROM water_entries WHERE user_id=$1 AND logged_at>=$2 AND logged_at<$3
    `, userID, from, to)
	if err := row.Scan(&out.WaterMl); err != nil {
		return nil, err
	}
	row = s.db.QueryRowContext(ctx, `
        SELECT COALESCE(SUM(steps),0), COALESCE(SUM(duration_min),0) FROM activity_entries WHERE user_id=$1 AND log_date=$2
    `, userID, logDate)
	if err := row.Scan(&out.Steps, &out.ActiveMinutes); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *summaries) Range(ctx context.Context, userID, startDate, endDate string) ([]model.DailySummary, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, model.ErrValidation
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, model.ErrValidation
	}
	var res []model.DailySummary
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		sum, err := s.Get(ctx, userID, d.Format("2006-01-02"))
		if err != nil {
			return nil, err
		}
		res = append(res, *sum)
	}
	return res, nil
}

// --- Streaks ---

type streaks struct{ db *sql.DB }

func (st *streaks) List(ctx context.Context, userID string) ([]model.Streak, error) {
	rows, err := st.db.QueryContext(ctx, `
        SELECT id, user_id, streak_type, current_streak, best_streak, last_met_date
        FROM streaks WHERE user_id=$1 ORDER BY streak_type
    `, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []model.Streak
	for rows.Next() {
		var m model.Streak
		if err := rows.Scan(&m.ID, &m.UserID, &m.StreakType, &m.CurrentStreak, &m.BestStreak, &m.LastMetDate); err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, rows.Err()
}

func (st *streaks) Upsert(ctx context.Context, m *model.Streak) (*model.Streak, error) {
	out := *m
	if out.ID == "" {
		out.ID = uuid.New().String()
	}
	_, err := st.db.ExecContext(ctx, `
        INSERT INTO streaks (id, user_id, streak_type, current_streak, best_streak, last_met_date)
        VALUES ($1,$2,$3,$4,$5,$6)
        ON CONFLICT (user_id, streak_type) DO UPDATE SET
            current_streak=EXCLUDED.current_streak,
            best_streak=EXCLUDED.best_streak,
            last_met_date=EXCLUDED.last_met_date
    `, out.ID, out.UserID, out.StreakType, out.CurrentStreak, out.BestStreak, out.LastMetDate)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Flagged items ---

type flagged struct{ db *sql.DB }

func (f *flagged) Create(ctx context.Context, in *model.FlaggedItem) (*model.FlaggedItem, error) {
	out := *in
	out.ID = uuid.New().String()
	if out.Status == "" {
		out.Status = "open"
	}
	if out.Reason == "" {
		out.Reason = "Needs review"
	}
	row := f.db.QueryRowContext(ctx, `
        INSERT INTO flagged_items (id, user_id, item_type, reason, status, handled_at, handled_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING created_at
    `, out.ID, out.UserID, out.ItemType, out.Reason, out.Status, out.HandledAt, out.HandledBy)
	if err := row.Scan(&out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (f *flagged) ListRecent(ctx context.Context, limit int) ([]model.FlaggedItem, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := f.db.QueryContext(ctx, `
        SELECT id, user_id, item_type, reason, status, created_at, handled_at, handled_by
        FROM flagged_items ORDER BY created_at DESC LIMIT $1
    `, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []model.FlaggedItem
	for rows.Next() {
		var m model.FlaggedItem
		if err := rows.Scan(&m.ID, &m.UserID, &m.ItemType, &m.Reason, &m.Status, &m.CreatedAt, &m.HandledAt, &m.HandledBy); err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, rows.Err()
}

// --- Motivations ---

type motivations struct{ db *sql.DB }

func (m *motivations) Create(ctx context.Context, message string) (string, error) {
	id := uuid.New().String()
	_, err := m.db.ExecContext(ctx, `
        INSERT INTO motivational_messages (id, message) VALUES ($1,$2)
    `, id, message)
	return id, err
}

func (m *motivations) Random(ctx context.Context) (string, error) {
	var msg string
	err := m.db.QueryRowContext(ctx, `SELECT message FROM motivational_messages ORDER BY RANDOM() LIMIT 1`).Scan(&msg)
	if errors.Is(err, sql.ErrNoRows) {
		return "", model.ErrNotFound
	}
	return msg, err
}

func (m *motivations) Count(ctx context.Context) (int, error) {
	var n int
	err := m.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM motivational_messages`).Scan(&n)
	return n, err
}

// --- Foods ---

type foods struct{ db *sql.DB }

func (f *foods) GetByBarcode(ctx context.Context, barcode string) (*model.FoodProduct, error) {
	row := f.db.QueryRowContext(ctx, `
        SELECT barcode, name, brand, serving_size, calories, macros, micros, source, last_synced_at
        FROM food_references WHERE barcode=$1
    `, barcode)
	return scanFood(row.Scan)
}

func (f *foods) Upsert(ctx context.Context, in *model.FoodProduct) (*model.FoodProduct, error) {
	out := *in
	if out.LastSyncedAt.IsZero() {
		out.LastSyncedAt = time.Now().UTC()
	}
	if out.Source == "" {
		out.Source = "open_food_facts"
	}
	macros, err := json.Marshal(out.Macros)
	if err != nil {
		return nil, err
	}
	micros, err := json.Marshal(out.Micros)
	if err != nil {
		return nil, err
	}
	_, err = f.db.ExecContext(ctx, `
        INSERT INTO food_references (barcode, name, brand, serving_size, calories, macros, micros, source, last_synced_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        ON CONFLICT (barcode) DO UPDATE SET
            name=EXCLUDED.name,
            brand=EXCLUDED.brand,
            serving_size=EXCLUDED.serving_size,
            calories=EXCLUDED.calories,
            macros=EXCLUDED.macros,
            micros=EXCLUDED.micros,
            source=EXCLUDED.source,
            last_synced_at=EXCLUDED.last_synced_at
    `, out.Barcode, out.Name, out.Brand, out.ServingSize, out.Calories, string(macros), string(micros), out.Source, out.LastSyncedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (f *foods) Search(ctx context.Context, query string, limit int) ([]model.FoodProduct, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	rows, err := f.db.QueryContext(ctx, `
        SELECT barcode, name, brand, serving_size, calories, macros, micros, source, last_synced_at
        FROM food_references WHERE name ILIKE '%' || $1 || '%'
        ORDER BY last_synced_at DESC LIMIT $2
    `, query, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []model.FoodProduct
	for rows.Next() {
		fp, err := scanFood(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, *fp)
	}
	return res, rows.Err()
}

func (f *foods) Count(ctx context.Context) (int, error) {
	var n int
	err := f.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM food_references`).Scan(&n)
	return n, err
}

func scanFood(scan func(dest ...any) error) (*model.FoodProduct, error) {
	var out model.FoodProduct
	var macros, micros string
	err := scan(&out.Barcode, &out.Name, &out.Brand, &out.ServingSize, &out.Calories, &macros, &micros, &out.Source, &out.LastSyncedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	if err := json.Unmarshal([]byte(macros), &out.Macros); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(micros), &out.Micros); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Report shares ---

type reportShares struct{ db *sql.DB }

func (r *reportShares) GetOrCreate(ctx context.Context, userID string) (*model.ReportShare, error) {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO report_shares (user_id, share_token, share_enabled)
        VALUES ($1,$2,FALSE)
        ON CONFLICT (user_id) DO NOTHING
    `, userID, uuid.New().String())
	if err != nil {
		return nil, err
	}
	return r.get(ctx, userID)
}

func (r *reportShares) SetEnabled(ctx context.Context, userID string, enabled bool) (*model.ReportShare, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE report_shares SET share_enabled=$1, updated_at=now() WHERE user_id=$2
    `, enabled, userID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, model.ErrNotFound
	}
	return r.get(ctx, userID)
}

func (r *reportShares) GetByToken(ctx context.Context, token string) (*model.ReportShare, error) {
	var out model.ReportShare
	row := r.db.QueryRowContext(ctx, `
        SELECT user_id, share_token, share_enabled FROM report_shares WHERE share_token=$1
    `, token)
	if err := row.Scan(&out.UserID, &out.ShareToken, &out.ShareEnabled); err != nil {
		return nil, mapNoRows(err)
	}
	return &out, nil
}

func (r *reportShares) get(ctx context.Context, userID string) (*model.ReportShare, error) {
	var out model.ReportShare
	row := r.db.QueryRowContext(ctx, `
        SELECT user_id, share_token, share_enabled FROM report_shares WHERE user_id=$1
    `, userID)
	if err := row.Scan(&out.UserID, &out.ShareToken, &out.ShareEnabled); err != nil {
		return nil, mapNoRows(err)
	}
	return &out, nil
}
