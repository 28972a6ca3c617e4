package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateResume stores a new resume with its initial analysis and returns
// the stored record.
func (db *DB) CreateResume(ctx context.Context, fileName, mimeType, content string, analysis any, atsScore int) (*Resume, error) {
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	var r Resume
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (file_name, mime_type, content, analysis, ats_score)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, file_name, mime_type, content, analysis, ats_score, created_at, updated_at`,
		fileName, mimeType, content, analysisJSON, atsScore,
	).Scan(&r.ID, &r.FileName, &r.MimeType, &r.Content, &r.Analysis, &r.ATSScore, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return &r, nil
}

// GetResume retrieves a resume by ID. Returns nil without error when the
// resume does not exist.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*Resume, error) {
	var r Resume
	err := db.pool.QueryRow(ctx,
		`SELECT id, file_name, mime_type, content, analysis, ats_score, created_at, updated_at
		 FROM resumes WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.FileName, &r.MimeType, &r.Content, &r.Analysis, &r.ATSScore, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &r, nil
}

// ListResumes returns stored resumes, newest first, without content bodies.
func (db *DB) ListResumes(ctx context.Context, filters ResumeFilters) ([]Resume, error) {
	query := `SELECT id, file_name, mime_type, ats_score, created_at, updated_at
	          FROM resumes WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.FileName != "" {
		query += fmt.Sprintf(" AND file_name = $%d", argNum)
		args = append(args, filters.FileName)
		argNum++
	}
	query += " ORDER BY created_at DESC"
	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argNum)
		args = append(args, filters.Limit)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []Resume
	for rows.Next() {
		var r Resume
		if err := rows.Scan(&r.ID, &r.FileName, &r.MimeType, &r.ATSScore, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, r)
	}
	return resumes, rows.Err()
}

// DeleteResume deletes a resume and its suggestion history.
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", id)
	}
	return nil
}

// UpdateAnalysis stores a fresh analysis result and score for a resume.
func (db *DB) UpdateAnalysis(ctx context.Context, id uuid.UUID, analysis any, atsScore int) error {
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`UPDATE resumes SET analysis = $1, ats_score = $2, updated_at = NOW() WHERE id = $3`,
		analysisJSON, atsScore, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update analysis: %w", err)
	}
	return nil
}

// UpdateATSScore stores a recomputed score for a resume.
func (db *DB) UpdateATSScore(ctx context.Context, id uuid.UUID, atsScore int) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE resumes SET ats_score = $1, updated_at = NOW() WHERE id = $2`,
		atsScore, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update ats score: %w", err)
	}
	return nil
}

// SaveSuggestionSet appends one suggestion run to a resume's history.
func (db *DB) SaveSuggestionSet(ctx context.Context, resumeID uuid.UUID, category string, items any, jobDescription string) error {
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal suggestions: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO suggestion_sets (resume_id, category, items, job_description)
		 VALUES ($1, $2, $3, $4)`,
		resumeID, category, itemsJSON, jobDescription,
	)
	if err != nil {
		return fmt.Errorf("failed to save suggestion set: %w", err)
	}
	return nil
}

// ListSuggestionSets returns a resume's suggestion history, newest first.
func (db *DB) ListSuggestionSets(ctx context.Context, resumeID uuid.UUID) ([]SuggestionSet, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, resume_id, category, items, COALESCE(job_description, ''), created_at
		 FROM suggestion_sets WHERE resume_id = $1 ORDER BY created_at DESC`,
		resumeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestion sets: %w", err)
	}
	defer rows.Close()

	var sets []SuggestionSet
	for rows.Next() {
		var s SuggestionSet
		if err := rows.Scan(&s.ID, &s.ResumeID, &s.Category, &s.Items, &s.JobDescription, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan suggestion set: %w", err)
		}
		sets = append(sets, s)
	}
	return sets, rows.Err()
}
