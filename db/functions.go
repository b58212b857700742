package db

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/user/playsketch-cli/play"
)

// ErrNotFound is returned when no play has the requested name.
var ErrNotFound = errors.New("play not found in library")

// SavePlay stores p under its name, replacing any play with the same name.
// Returns the row ID.
func SavePlay(database *sql.DB, p *play.Play) (int64, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return 0, errors.New("play has no name")
	}

	var buf bytes.Buffer
	if err := play.Encode(&buf, p, play.JSON); err != nil {
		return 0, err
	}

	if _, err := database.Exec(UpsertPlaySQL, name, string(p.Court), p.Len(), buf.String()); err != nil {
		return 0, fmt.Errorf("upsert play: %w", err)
	}

	rec, err := SelectPlayByName(database, name)
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

// SelectPlays returns all saved plays, most recently updated first.
func SelectPlays(database *sql.DB) ([]PlayRecord, error) {
	rows, err := database.Query(SelectPlaysSQL)
	if err != nil {
		return nil, fmt.Errorf("select plays: %w", err)
	}
	defer rows.Close()

	var plays []PlayRecord
	for rows.Next() {
		var r PlayRecord
		if err := rows.Scan(&r.ID, &r.Name, &r.Court, &r.FrameCount, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		plays = append(plays, r)
	}
	return plays, rows.Err()
}

// SelectPlayByName returns a single saved play with its document.
func SelectPlayByName(database *sql.DB, name string) (*PlayRecord, error) {
	var r PlayRecord
	err := database.QueryRow(SelectPlayByNameSQL, strings.TrimSpace(name)).
		Scan(&r.ID, &r.Name, &r.Court, &r.FrameCount, &r.Document, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("select play: %w", err)
	}
	return &r, nil
}

// LoadPlay decodes the saved play with the given name.
func LoadPlay(database *sql.DB, name string) (*play.Play, error) {
	r, err := SelectPlayByName(database, name)
	if err != nil {
		return nil, err
	}
	return play.Decode(strings.NewReader(r.Document), play.JSON)
}

// DeletePlay removes a saved play by name.
func DeletePlay(database *sql.DB, name string) error {
	result, err := database.Exec(DeletePlaySQL, strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("delete play: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}
