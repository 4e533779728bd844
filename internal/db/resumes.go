package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveResume stores a completed analysis for a user and returns the record ID.
// The assessment document is marshaled to JSONB.
func (db *DB) SaveResume(ctx context.Context, userID uuid.UUID, fileName string, score int, assessment any) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(assessment)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal assessment: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, file_name, score, assessment)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, fileName, score, jsonBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves a stored analysis by ID, scoped to its owner.
// Returns (nil, nil) when no matching record exists.
func (db *DB) GetResume(ctx context.Context, id, userID uuid.UUID) (*ResumeRecord, error) {
	var rec ResumeRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, file_name, score, assessment, created_at
		 FROM resumes WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&rec.ID, &rec.UserID, &rec.FileName, &rec.Score, &rec.Assessment, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &rec, nil
}

// ListResumesByUser retrieves a user's stored analyses, newest first
func (db *DB) ListResumesByUser(ctx context.Context, userID uuid.UUID, limit int) ([]ResumeSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, file_name, score, created_at
		 FROM resumes WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var summaries []ResumeSummary
	for rows.Next() {
		var s ResumeSummary
		if err := rows.Scan(&s.ID, &s.FileName, &s.Score, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// DeleteResume deletes a stored analysis, scoped to its owner
func (db *DB) DeleteResume(ctx context.Context, id, userID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", id)
	}
	return nil
}
