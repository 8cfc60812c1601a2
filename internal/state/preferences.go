package state

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	dbutil "github.com/llehouerou/wavetube/internal/db"
	"github.com/llehouerou/wavetube/internal/queue"
)

// Preferences are the settings restored into the session at startup.
type Preferences struct {
	Volume    int
	Shuffle   bool
	Repeat    queue.RepeatMode
	LastQuery string
}

func getPreferences(ctx context.Context, db *sql.DB) (Preferences, bool, error) {
	var (
		p      Preferences
		repeat string
	)
	row := db.QueryRowContext(ctx, `
		SELECT volume, shuffle, repeat_mode, last_query FROM preferences WHERE id = 1
	`)
	err := row.Scan(&p.Volume, &p.Shuffle, &repeat, &p.LastQuery)
	if errors.Is(err, sql.ErrNoRows) {
		return Preferences{}, false, nil
	}
	if err != nil {
		return Preferences{}, false, err
	}
	// A value written by a newer version falls back to no repeat.
	p.Repeat, _ = queue.ParseRepeatMode(repeat)
	return p, true, nil
}

func savePreferences(ctx context.Context, sqlDB *sql.DB, p Preferences) error {
	return dbutil.WithTx(ctx, sqlDB, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO preferences (id, volume, shuffle, repeat_mode, last_query, updated_at)
			VALUES (1, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				volume = excluded.volume,
				shuffle = excluded.shuffle,
				repeat_mode = excluded.repeat_mode,
				last_query = excluded.last_query,
				updated_at = excluded.updated_at
		`, p.Volume, p.Shuffle, strings.ToLower(p.Repeat.String()), p.LastQuery, time.Now().Unix())
		return err
	})
}
