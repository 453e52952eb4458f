package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

const MainProfileKey = "main_user"

// DefaultProfileName labels a freshly created profile. MINDQUEST_PLAYER_NAME in
// the environment overrides it at creation time (handled by the caller).
const DefaultProfileName = "Jeremy"

const InitialXPToNextLevel = 100

type ProfileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) Get(ctx context.Context, key string) (*Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, name, level, xp, xp_to_next_level, completed_quests, badges
		FROM profile WHERE key = ?
	`, key)

	var p Profile
	var completedRaw, badgesRaw string
	if err := row.Scan(&p.Key, &p.Name, &p.Level, &p.XP, &p.XPToNextLevel, &completedRaw, &badgesRaw); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("profile get: %w", err)
	}
	if err := json.Unmarshal([]byte(completedRaw), &p.CompletedQuests); err != nil {
		return nil, fmt.Errorf("unmarshal completed quests: %w", err)
	}
	if err := json.Unmarshal([]byte(badgesRaw), &p.Badges); err != nil {
		return nil, fmt.Errorf("unmarshal badges: %w", err)
	}
	return &p, nil
}

func (r *ProfileRepo) GetOrCreateMain(ctx context.Context, name string) (*Profile, error) {
	p, err := r.Get(ctx, MainProfileKey)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	if name == "" {
		name = DefaultProfileName
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO profile (key, name, level, xp, xp_to_next_level)
		VALUES (?, ?, 1, 0, ?)
	`, MainProfileKey, name, InitialXPToNextLevel)
	if err != nil {
		return nil, fmt.Errorf("profile insert: %w", err)
	}
	return r.Get(ctx, MainProfileKey)
}

func (r *ProfileRepo) Update(ctx context.Context, p *Profile) error {
	completedRaw, err := json.Marshal(p.CompletedQuests)
	if err != nil {
		return fmt.Errorf("marshal completed quests: %w", err)
	}
	badgesRaw, err := json.Marshal(p.Badges)
	if err != nil {
		return fmt.Errorf("marshal badges: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE profile
		SET name = ?, level = ?, xp = ?, xp_to_next_level = ?, completed_quests = ?, badges = ?
		WHERE key = ?
	`, p.Name, p.Level, p.XP, p.XPToNextLevel, string(completedRaw), string(badgesRaw), p.Key)
	if err != nil {
		return fmt.Errorf("profile update: %w", err)
	}
	return nil
}
