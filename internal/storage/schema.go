// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines workouts, exercises, workout_exercises and sets with cascade/restrict keys.
package storage

import "context"

// initSchema creates or updates the database schema.
func (d *DB) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS workouts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		date TEXT NOT NULL,
		started_at TEXT,
		completed_at TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS exercises (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS workout_exercises (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		workout_id INTEGER NOT NULL,
		exercise_id INTEGER NOT NULL,
		position INTEGER NOT NULL CHECK (position > 0),
		created_at TEXT NOT NULL,
		FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE,
		FOREIGN KEY (exercise_id) REFERENCES exercises(id) ON DELETE RESTRICT
	);

	CREATE TABLE IF NOT EXISTS sets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		workout_exercise_id INTEGER NOT NULL,
		set_number INTEGER NOT NULL CHECK (set_number > 0),
		reps INTEGER NOT NULL CHECK (reps > 0),
		weight REAL NOT NULL CHECK (weight >= 0),
		completed INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		FOREIGN KEY (workout_exercise_id) REFERENCES workout_exercises(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_workouts_user ON workouts(user_id);
	CREATE INDEX IF NOT EXISTS idx_workouts_user_date ON workouts(user_id, date);
	CREATE INDEX IF NOT EXISTS idx_workout_exercises_workout ON workout_exercises(workout_id);
	CREATE INDEX IF NOT EXISTS idx_workout_exercises_exercise ON workout_exercises(exercise_id);
	CREATE INDEX IF NOT EXISTS idx_sets_workout_exercise ON sets(workout_exercise_id);
	`

	_, err := d.db.ExecContext(ctx, schema)
	return err
}
