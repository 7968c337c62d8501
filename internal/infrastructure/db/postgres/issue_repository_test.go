package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/civicdesk/civicdesk-api/internal/core/domain"
	"github.com/civicdesk/civicdesk-api/internal/core/ports"
)

var issueRowColumns = []string{
	"id", "reporter_user_id", "type", "priority", "title",
	"description", "address", "city", "landmark",
	"status", "reported_date", "contact", "upvotes", "gps_location", "category_id",
}

func TestIssueRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIssueRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery(`(?s)INSERT INTO issues .+ RETURNING id, reported_date`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "reported_date"}).AddRow(int64(12), now))

	created, err := repo.Create(context.Background(), &domain.Issue{
		Title:        "Pothole on Main St",
		Status:       domain.IssueReported,
		ReportedDate: now,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != 12 {
		t.Fatalf("expected assigned id 12, got %d", created.ID)
	}
}

func TestIssueRepository_ListRecent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIssueRepository(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows(issueRowColumns).
		AddRow(int64(2), int64(5), "infrastructure", "high", "second",
			"", "", "Springfield", "", "reported", now, "", 0, "", int64(3)).
		AddRow(int64(1), nil, "", "", "first",
			"", "", "", "", "resolved", now.Add(-time.Hour), "", 4, "", nil)

	mock.ExpectQuery(`(?s)SELECT .+ FROM issues ORDER BY reported_date DESC LIMIT \$1`).
		WithArgs(200).
		WillReturnRows(rows)

	issues, err := repo.ListRecent(context.Background(), 200)
	if err != nil {
		t.Fatalf("ListRecent returned error: %v", err)
	}
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(issues))
	}
	if issues[0].ReporterUserID == nil || *issues[0].ReporterUserID != 5 {
		t.Fatalf("unexpected reporter: %v", issues[0].ReporterUserID)
	}
	if issues[1].ReporterUserID != nil || issues[1].CategoryID != nil {
		t.Fatalf("nullable refs must scan as nil: %+v", issues[1])
	}
	if issues[1].Upvotes != 4 {
		t.Fatalf("unexpected upvotes: %d", issues[1].Upvotes)
	}
}

func TestIssueRepository_List_AllFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIssueRepository(db)

	mock.ExpectQuery(`(?s)SELECT .+ FROM issues WHERE status = \$1 AND category_id = \$2 AND \(title ILIKE \$3 OR description ILIKE \$3 OR city ILIKE \$3\) ORDER BY reported_date DESC LIMIT \$4`).
		WithArgs("resolved", int64(3), "%pothole%", 500).
		WillReturnRows(sqlmock.NewRows(issueRowColumns))

	_, err := repo.List(context.Background(), ports.IssueFilter{
		Status:     "resolved",
		CategoryID: 3,
		Search:     "pothole",
	})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestIssueRepository_List_NoFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIssueRepository(db)

	mock.ExpectQuery(`(?s)SELECT .+ FROM issues ORDER BY reported_date DESC LIMIT \$1`).
		WithArgs(500).
		WillReturnRows(sqlmock.NewRows(issueRowColumns))

	if _, err := repo.List(context.Background(), ports.IssueFilter{}); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
}

func TestIssueRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIssueRepository(db)

	status := "resolved"
	mock.ExpectExec(`UPDATE issues SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Update(context.Background(), 404, ports.IssuePatch{Status: &status}); !errors.Is(err, domain.ErrIssueNotFound) {
		t.Fatalf("expected ErrIssueNotFound, got %v", err)
	}
}

func TestIssueRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIssueRepository(db)

	mock.ExpectExec(`DELETE FROM issues WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 9); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
}
