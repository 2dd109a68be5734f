// Package persistence provides SQLite-based session state storage. It is the
// external collaborator the engine delegates saves to: the full ledger,
// theory progress, active effects, mastery, achievements and evolution
// progress round-trip through here bit-for-bit (REAL columns are IEEE 754
// doubles, so float64 values survive unchanged).
package persistence

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/cosmogenesis/internal/cosmos"
	"github.com/talgya/cosmogenesis/internal/engine"
)

// DB wraps a SQLite connection for session state persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS ledger (
		key TEXT PRIMARY KEY,
		amount REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS theories (
		id TEXT PRIMARY KEY,
		progress REAL NOT NULL,
		unlocked INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS effects (
		idx INTEGER PRIMARY KEY,
		source TEXT NOT NULL,
		kind TEXT NOT NULL,
		magnitude REAL NOT NULL,
		duration REAL NOT NULL,
		target TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS mastery (
		skill TEXT PRIMARY KEY,
		level REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS abilities (
		name TEXT PRIMARY KEY
	);

	CREATE TABLE IF NOT EXISTS achievements (
		id TEXT PRIMARY KEY
	);

	CREATE TABLE IF NOT EXISTS evolution (
		path TEXT PRIMARY KEY,
		progress REAL NOT NULL,
		stage INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS session_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// HasState reports whether a saved session exists.
func (db *DB) HasState() bool {
	var count int
	if err := db.conn.Get(&count, "SELECT COUNT(*) FROM session_meta"); err != nil {
		return false
	}
	return count > 0
}

// SaveState writes the full session state (full replace, one transaction).
func (db *DB) SaveState(st engine.State) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	tables := []string{"ledger", "theories", "effects", "mastery", "abilities", "achievements", "evolution", "session_meta"}
	for _, table := range tables {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, k := range cosmos.Keys {
		if _, err := tx.Exec("INSERT INTO ledger (key, amount) VALUES (?, ?)", string(k), st.Resources[k]); err != nil {
			return fmt.Errorf("insert ledger %s: %w", k, err)
		}
	}

	for _, ts := range st.Theories {
		unlocked := 0
		if ts.Unlocked {
			unlocked = 1
		}
		if _, err := tx.Exec("INSERT INTO theories (id, progress, unlocked) VALUES (?, ?, ?)",
			ts.ID, ts.Progress, unlocked); err != nil {
			return fmt.Errorf("insert theory %s: %w", ts.ID, err)
		}
	}

	for i, ef := range st.Effects {
		if _, err := tx.Exec("INSERT INTO effects (idx, source, kind, magnitude, duration, target) VALUES (?, ?, ?, ?, ?, ?)",
			i, ef.Source, string(ef.Kind), ef.Magnitude, ef.Duration, ef.Target); err != nil {
			return fmt.Errorf("insert effect %d: %w", i, err)
		}
	}

	for skill, level := range st.Skills {
		if _, err := tx.Exec("INSERT INTO mastery (skill, level) VALUES (?, ?)", skill, level); err != nil {
			return fmt.Errorf("insert mastery %s: %w", skill, err)
		}
	}

	for _, ab := range st.Abilities {
		if _, err := tx.Exec("INSERT INTO abilities (name) VALUES (?)", ab); err != nil {
			return fmt.Errorf("insert ability %s: %w", ab, err)
		}
	}

	for _, id := range st.Achievements {
		if _, err := tx.Exec("INSERT INTO achievements (id) VALUES (?)", id); err != nil {
			return fmt.Errorf("insert achievement %s: %w", id, err)
		}
	}

	for _, ps := range st.Paths {
		if _, err := tx.Exec("INSERT INTO evolution (path, progress, stage) VALUES (?, ?, ?)",
			ps.ID, ps.Progress, ps.Stage); err != nil {
			return fmt.Errorf("insert evolution %s: %w", ps.ID, err)
		}
	}

	meta := map[string]any{
		"session_id":    st.SessionID,
		"cosmic_time":   st.CosmicTime,
		"entropy_level": st.EntropyLevel,
		"fluctuation":   st.Fluctuation,
		"current_tier":  st.CurrentTier,
	}
	for key, value := range meta {
		if _, err := tx.Exec("INSERT INTO session_meta (key, value) VALUES (?, ?)",
			key, fmt.Sprintf("%v", value)); err != nil {
			return fmt.Errorf("insert meta %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	slog.Info("session state saved", "session", st.SessionID, "cosmic_time", st.CosmicTime)
	return nil
}

// LoadState reads the saved session state back.
func (db *DB) LoadState() (engine.State, error) {
	var st engine.State

	st.Resources = cosmos.Delta{}
	rows, err := db.conn.Queryx("SELECT key, amount FROM ledger")
	if err != nil {
		return st, fmt.Errorf("load ledger: %w", err)
	}
	for rows.Next() {
		var key string
		var amount float64
		if err := rows.Scan(&key, &amount); err != nil {
			rows.Close()
			return st, err
		}
		st.Resources[cosmos.Key(key)] = amount
	}
	rows.Close()

	type theoryRow struct {
		ID       string  `db:"id"`
		Progress float64 `db:"progress"`
		Unlocked int     `db:"unlocked"`
	}
	var theoryRows []theoryRow
	if err := db.conn.Select(&theoryRows, "SELECT id, progress, unlocked FROM theories"); err != nil {
		return st, fmt.Errorf("load theories: %w", err)
	}
	for _, tr := range theoryRows {
		st.Theories = append(st.Theories, engine.TheoryState{
			ID: tr.ID, Progress: tr.Progress, Unlocked: tr.Unlocked != 0,
		})
	}

	type effectRow struct {
		Source    string  `db:"source"`
		Kind      string  `db:"kind"`
		Magnitude float64 `db:"magnitude"`
		Duration  float64 `db:"duration"`
		Target    string  `db:"target"`
	}
	var effectRows []effectRow
	if err := db.conn.Select(&effectRows, "SELECT source, kind, magnitude, duration, target FROM effects ORDER BY idx"); err != nil {
		return st, fmt.Errorf("load effects: %w", err)
	}
	for _, er := range effectRows {
		st.Effects = append(st.Effects, engine.Effect{
			Source: er.Source, Kind: engine.EffectKind(er.Kind),
			Magnitude: er.Magnitude, Duration: er.Duration, Target: er.Target,
		})
	}

	st.Skills = map[string]float64{}
	rows, err = db.conn.Queryx("SELECT skill, level FROM mastery")
	if err != nil {
		return st, fmt.Errorf("load mastery: %w", err)
	}
	for rows.Next() {
		var skill string
		var level float64
		if err := rows.Scan(&skill, &level); err != nil {
			rows.Close()
			return st, err
		}
		st.Skills[skill] = level
	}
	rows.Close()

	if err := db.conn.Select(&st.Abilities, "SELECT name FROM abilities ORDER BY name"); err != nil {
		return st, fmt.Errorf("load abilities: %w", err)
	}
	if err := db.conn.Select(&st.Achievements, "SELECT id FROM achievements ORDER BY rowid"); err != nil {
		return st, fmt.Errorf("load achievements: %w", err)
	}

	type pathRow struct {
		Path     string  `db:"path"`
		Progress float64 `db:"progress"`
		Stage    int     `db:"stage"`
	}
	var pathRows []pathRow
	if err := db.conn.Select(&pathRows, "SELECT path, progress, stage FROM evolution"); err != nil {
		return st, fmt.Errorf("load evolution: %w", err)
	}
	for _, pr := range pathRows {
		st.Paths = append(st.Paths, engine.PathState{ID: pr.Path, Progress: pr.Progress, Stage: pr.Stage})
	}

	if err := db.loadMeta(&st); err != nil {
		return st, err
	}

	return st, nil
}

func (db *DB) loadMeta(st *engine.State) error {
	get := func(key string) (string, error) {
		var value string
		err := db.conn.Get(&value, "SELECT value FROM session_meta WHERE key = ?", key)
		return value, err
	}

	var err error
	if st.SessionID, err = get("session_id"); err != nil {
		return fmt.Errorf("load meta session_id: %w", err)
	}

	floats := map[string]*float64{
		"cosmic_time":   &st.CosmicTime,
		"entropy_level": &st.EntropyLevel,
		"fluctuation":   &st.Fluctuation,
	}
	for key, dst := range floats {
		value, err := get(key)
		if err != nil {
			return fmt.Errorf("load meta %s: %w", key, err)
		}
		if _, err := fmt.Sscanf(value, "%g", dst); err != nil {
			return fmt.Errorf("parse meta %s=%q: %w", key, value, err)
		}
	}

	value, err := get("current_tier")
	if err != nil {
		return fmt.Errorf("load meta current_tier: %w", err)
	}
	if _, err := fmt.Sscanf(value, "%d", &st.CurrentTier); err != nil {
		return fmt.Errorf("parse meta current_tier=%q: %w", value, err)
	}

	return nil
}
