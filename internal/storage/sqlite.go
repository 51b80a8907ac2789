// Package storage provides SQLite-based persistence for player profiles
// and the auction win log. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies.
//
// A profile row stores the engine's full state snapshot as JSON,
// verbatim: every monotonic counter rides along, so achievements and
// challenges cannot re-grant after a reload.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-tycoon/internal/sim"
)

// ErrNoProfile is returned when the requested profile does not exist.
var ErrNoProfile = errors.New("storage: profile not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// WinRecord is one logged auction win.
type WinRecord struct {
	ID        int64
	Profile   string
	ItemName  string
	Rarity    string
	Amount    float64
	CreatedAt time.Time
}

// ProfileInfo describes one saved profile.
type ProfileInfo struct {
	Name      string
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profiles (
			name TEXT PRIMARY KEY,
			state TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS auction_wins (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile TEXT NOT NULL,
			item_name TEXT NOT NULL,
			rarity TEXT NOT NULL,
			amount REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_auction_wins_profile ON auction_wins(profile);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveProfile upserts the full state snapshot for a profile.
func (s *Store) SaveProfile(name string, snap sim.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("storage: cannot encode state: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO profiles (name, state, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET state = excluded.state, updated_at = CURRENT_TIMESTAMP`,
		name, string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save profile %s: %w", name, err)
	}
	return nil
}

// LoadProfile retrieves the saved snapshot for a profile.
func (s *Store) LoadProfile(name string) (sim.Snapshot, error) {
	var data string
	err := s.db.QueryRow("SELECT state FROM profiles WHERE name = ?", name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return sim.Snapshot{}, ErrNoProfile
	}
	if err != nil {
		return sim.Snapshot{}, fmt.Errorf("storage: cannot load profile %s: %w", name, err)
	}
	var snap sim.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return sim.Snapshot{}, fmt.Errorf("storage: corrupt state for profile %s: %w", name, err)
	}
	return snap, nil
}

// DeleteProfile removes a profile and its auction win log.
func (s *Store) DeleteProfile(name string) error {
	if _, err := s.db.Exec("DELETE FROM profiles WHERE name = ?", name); err != nil {
		return fmt.Errorf("storage: cannot delete profile %s: %w", name, err)
	}
	if _, err := s.db.Exec("DELETE FROM auction_wins WHERE profile = ?", name); err != nil {
		return fmt.Errorf("storage: cannot delete win log for %s: %w", name, err)
	}
	return nil
}

// Profiles lists saved profiles, most recently updated first.
func (s *Store) Profiles() ([]ProfileInfo, error) {
	rows, err := s.db.Query("SELECT name, updated_at FROM profiles ORDER BY updated_at DESC")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list profiles: %w", err)
	}
	defer rows.Close()

	var infos []ProfileInfo
	for rows.Next() {
		var info ProfileInfo
		if err := rows.Scan(&info.Name, &info.UpdatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan profile row: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// LogAuctionWin records one won item for a profile.
func (s *Store) LogAuctionWin(profile string, won sim.WonItem) error {
	_, err := s.db.Exec(
		"INSERT INTO auction_wins (profile, item_name, rarity, amount) VALUES (?, ?, ?, ?)",
		profile, won.Name, won.Rarity, won.Amount,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot log auction win: %w", err)
	}
	return nil
}

// RecentWins retrieves the latest logged wins for a profile.
func (s *Store) RecentWins(profile string, limit int) ([]WinRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		"SELECT id, profile, item_name, rarity, amount, created_at FROM auction_wins WHERE profile = ? ORDER BY id DESC LIMIT ?",
		profile, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query wins: %w", err)
	}
	defer rows.Close()

	var wins []WinRecord
	for rows.Next() {
		var w WinRecord
		if err := rows.Scan(&w.ID, &w.Profile, &w.ItemName, &w.Rarity, &w.Amount, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan win row: %w", err)
		}
		wins = append(wins, w)
	}
	return wins, rows.Err()
}

// WinsByRarity aggregates the win log for a profile per rarity tier.
func (s *Store) WinsByRarity(profile string) (map[string]int, error) {
	rows, err := s.db.Query(
		"SELECT rarity, COUNT(*) FROM auction_wins WHERE profile = ? GROUP BY rarity",
		profile,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot aggregate wins: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var rarity string
		var n int
		if err := rows.Scan(&rarity, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan aggregate row: %w", err)
		}
		counts[rarity] = n
	}
	return counts, rows.Err()
}
