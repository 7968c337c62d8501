package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/civicdesk/civicdesk-api/internal/core/domain"
	"github.com/civicdesk/civicdesk-api/internal/core/ports"
)

const (
	issueColumns = `id, reporter_user_id, COALESCE(type, ''), COALESCE(priority, ''), title,
		COALESCE(description, ''), COALESCE(address, ''), COALESCE(city, ''), COALESCE(landmark, ''),
		status, reported_date, COALESCE(contact, ''), upvotes, COALESCE(gps_location, ''), category_id`

	adminListLimit = 500
)

// IssueRepository implements ports.IssueRepository on PostgreSQL.
type IssueRepository struct {
	db *DB
}

func NewIssueRepository(db *DB) *IssueRepository {
	return &IssueRepository{db: db}
}

func (r *IssueRepository) Create(ctx context.Context, issue *domain.Issue) (*domain.Issue, error) {
	err := r.db.q(ctx).QueryRowContext(ctx,
		`INSERT INTO issues (reporter_user_id, type, priority, title, description,
			address, city, landmark, status, reported_date, contact, gps_location, category_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id, reported_date`,
		issue.ReporterUserID, issue.Type, issue.Priority, issue.Title, issue.Description,
		issue.Address, issue.City, issue.Landmark, issue.Status, issue.ReportedDate,
		issue.Contact, issue.GPSLocation, issue.CategoryID,
	).Scan(&issue.ID, &issue.ReportedDate)
	if err != nil {
		return nil, fmt.Errorf("insert issue: %w", err)
	}
	return issue, nil
}

func (r *IssueRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Issue, error) {
	rows, err := r.db.q(ctx).QueryContext(ctx,
		`SELECT `+issueColumns+` FROM issues ORDER BY reported_date DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	defer rows.Close()
	return collectIssues(rows)
}

func (r *IssueRepository) List(ctx context.Context, filter ports.IssueFilter) ([]*domain.Issue, error) {
	query := `SELECT ` + issueColumns + ` FROM issues`
	var (
		conds []string
		args  []any
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}
	if filter.CategoryID != 0 {
		args = append(args, filter.CategoryID)
		conds = append(conds, "category_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		p := strconv.Itoa(len(args))
		conds = append(conds, "(title ILIKE $"+p+" OR description ILIKE $"+p+" OR city ILIKE $"+p+")")
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}

	limit := filter.Limit
	if limit <= 0 || limit > adminListLimit {
		limit = adminListLimit
	}
	args = append(args, limit)
	query += " ORDER BY reported_date DESC LIMIT $" + strconv.Itoa(len(args))

	rows, err := r.db.q(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	defer rows.Close()
	return collectIssues(rows)
}

func (r *IssueRepository) Update(ctx context.Context, id int64, patch ports.IssuePatch) error {
	res, err := r.db.q(ctx).ExecContext(ctx,
		`UPDATE issues SET
			title       = COALESCE($1, title),
			description = COALESCE($2, description),
			status      = COALESCE($3, status),
			category_id = COALESCE($4, category_id),
			priority    = COALESCE($5, priority)
		 WHERE id = $6`,
		patch.Title, patch.Description, patch.Status, patch.CategoryID, patch.Priority, id)
	if err != nil {
		return fmt.Errorf("update issue: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrIssueNotFound
	}
	return nil
}

func (r *IssueRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.q(ctx).ExecContext(ctx, `DELETE FROM issues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete issue: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrIssueNotFound
	}
	return nil
}

func (r *IssueRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.q(ctx).QueryRowContext(ctx, `SELECT COUNT(*) FROM issues`).Scan(&n)
	return n, err
}

func (r *IssueRepository) CountByStatus(ctx context.Context, status domain.IssueStatus) (int64, error) {
	var n int64
	err := r.db.q(ctx).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM issues WHERE status = $1`, status).Scan(&n)
	return n, err
}

func collectIssues(rows *sql.Rows) ([]*domain.Issue, error) {
	var issues []*domain.Issue
	for rows.Next() {
		var (
			i        domain.Issue
			reporter sql.NullInt64
			category sql.NullInt64
		)
		err := rows.Scan(&i.ID, &reporter, &i.Type, &i.Priority, &i.Title,
			&i.Description, &i.Address, &i.City, &i.Landmark,
			&i.Status, &i.ReportedDate, &i.Contact, &i.Upvotes, &i.GPSLocation, &category)
		if err != nil {
			return nil, fmt.Errorf("scan issue: %w", err)
		}
		if reporter.Valid {
			i.ReporterUserID = &reporter.Int64
		}
		if category.Valid {
			i.CategoryID = &category.Int64
		}
		issues = append(issues, &i)
	}
	return issues, rows.Err()
}
