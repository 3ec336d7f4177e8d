package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var ErrReportNotFound = errors.New("report not found")

type Report struct {
	ID          int64
	URI         string
	FeatureName string
	Document    string
	CreatedAt   time.Time
}

func SaveReport(sqlDB *sql.DB, uri, featureName string, document []byte) (int64, error) {
	res, err := sqlDB.Exec(
		`INSERT INTO reports (uri, feature_name, document) VALUES (?, ?, ?)`,
		uri, featureName, string(document),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting report for %s: %w", uri, err)
	}
	return res.LastInsertId()
}

// ListReports returns archived reports newest first, without documents.
// A non-empty uri restricts the list to that feature file.
func ListReports(sqlDB *sql.DB, uri string) ([]Report, error) {
	rows, err := sqlDB.Query(`
		SELECT id, uri, feature_name, created_at
		FROM reports
		WHERE ? = '' OR uri = ?
		ORDER BY id DESC
	`, uri, uri)
	if err != nil {
		return nil, fmt.Errorf("querying reports: %w", err)
	}
	defer rows.Close()

	var reports []Report
	for rows.Next() {
		var r Report
		var createdAt string
		if err := rows.Scan(&r.ID, &r.URI, &r.FeatureName, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning report row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reports: %w", err)
	}
	return reports, nil
}

func GetReport(sqlDB *sql.DB, id int64) (*Report, error) {
	var r Report
	var createdAt string
	err := sqlDB.QueryRow(`
		SELECT id, uri, feature_name, document, created_at
		FROM reports
		WHERE id = ?
	`, id).Scan(&r.ID, &r.URI, &r.FeatureName, &r.Document, &createdAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("report %d: %w", id, ErrReportNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying report %d: %w", id, err)
	}
	r.CreatedAt = parseTimestamp(createdAt)
	return &r, nil
}

// parseTimestamp accepts SQLite's datetime('now') text and the RFC 3339
// form the driver uses when it has already converted the column.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.DateTime, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
