package sqlite

// schemaDDL mirrors the postgres migrations in internal/store/migrations.
// SQLite is used for local development and tests only.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS profiles (
    user_id        TEXT PRIMARY KEY,
    display_name   TEXT NOT NULL DEFAULT '',
    role           TEXT NOT NULL DEFAULT 'member',
    gender         TEXT NOT NULL DEFAULT '',
    timezone       TEXT NOT NULL DEFAULT '',
    activity_level TEXT NOT NULL DEFAULT '',
    created_at     TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS daily_goals (
    user_id         TEXT PRIMARY KEY,
    calories_target INTEGER,
    protein_target  INTEGER,
    carbs_target    INTEGER,
    fat_target      INTEGER,
    water_ml_target INTEGER,
    steps_target    INTEGER
);

CREATE TABLE IF NOT EXISTS body_measurements (
    id           TEXT PRIMARY KEY,
    user_id      TEXT NOT NULL,
    recorded_at  TIMESTAMP NOT NULL,
    height_cm    REAL NOT NULL,
    weight_kg    REAL NOT NULL,
    body_fat_pct REAL,
    waist_cm     REAL
);
CREATE INDEX IF NOT EXISTS idx_measurements_user_time ON body_measurements(user_id, recorded_at DESC);

CREATE TABLE IF NOT EXISTS meal_entries (
    id          TEXT PRIMARY KEY,
    user_id     TEXT NOT NULL,
    log_date    TEXT NOT NULL,
    meal_type   TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    calories    REAL NOT NULL DEFAULT 0,
    protein_g   REAL NOT NULL DEFAULT 0,
    carbs_g     REAL NOT NULL DEFAULT 0,
    fat_g       REAL NOT NULL DEFAULT 0,
    source      TEXT NOT NULL DEFAULT 'manual',
    food_ref_id TEXT,
    created_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_meals_user_date ON meal_entries(user_id, log_date);

CREATE TABLE IF NOT EXISTS water_entries (
    id        TEXT PRIMARY KEY,
    user_id   TEXT NOT NULL,
    volume_ml REAL NOT NULL,
    logged_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_water_user_time ON water_entries(user_id, logged_at);

CREATE TABLE IF NOT EXISTS activity_entries (
    id              TEXT PRIMARY KEY,
    user_id         TEXT NOT NULL,
    log_date        TEXT NOT NULL,
    logged_at       TIMESTAMP NOT NULL,
    activity_type   TEXT NOT NULL,
    duration_min    REAL NOT NULL DEFAULT 0,
    intensity       TEXT NOT NULL DEFAULT '',
    calories_burned REAL NOT NULL DEFAULT 0,
    steps           REAL NOT NULL DEFAULT 0,
    notes           TEXT NOT NULL DEFAULT '',
    created_at      TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_activity_user_date ON activity_entries(user_id, log_date);

CREATE TABLE IF NOT EXISTS streaks (
    id             TEXT PRIMARY KEY,
    user_id        TEXT NOT NULL,
    streak_type    TEXT NOT NULL,
    current_streak INTEGER NOT NULL DEFAULT 0,
    best_streak    INTEGER NOT NULL DEFAULT 0,
    last_met_date  TEXT NOT NULL DEFAULT '',
    UNIQUE(user_id, streak_type)
);

CREATE TABLE IF NOT EXISTS flagged_items (
    id         TEXT PRIMARY KEY,
    user_id    TEXT NOT NULL,
    item_type  TEXT NOT NULL,
    reason     TEXT NOT NULL DEFAULT 'Needs review',
    status     TEXT NOT NULL DEFAULT 'open',
    created_at TIMESTAMP NOT NULL,
    handled_at TIMESTAMP,
    handled_by TEXT
);

CREATE TABLE IF NOT EXISTS motivational_messages (
    id         TEXT PRIMARY KEY,
    message    TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS report_shares (
    user_id       TEXT PRIMARY KEY,
    share_token   TEXT NOT NULL UNIQUE,
    share_enabled INTEGER NOT NULL DEFAULT 0,
    updated_at    TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS food_references (
    barcode        TEXT PRIMARY KEY,
    name           TEXT NOT NULL,
    brand          TEXT,
    serving_size   TEXT,
    calories       REAL,
    macros         TEXT NOT NULL DEFAULT '{}',
    micros         TEXT NOT NULL DEFAULT '{}',
    source         TEXT NOT NULL DEFAULT 'open_food_facts',
    last_synced_at TIMESTAMP NOT NULL
);
`
