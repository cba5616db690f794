package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/ankitdas13/contentdesk/internal/models"
)

func TestCalendarCreateWithoutDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	id := uuid.New()
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO twitter_calendar (topic, scheduled_date, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`)).
		WithArgs("Go generics", nil, "Pending").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(id.String(), now, now))

	repo := NewCalendarRepository(db)
	item := &models.CalendarItem{Topic: "Go generics", Status: models.CalendarStatusPending}

	got, err := repo.Create(context.Background(), item)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got != id {
		t.Fatalf("expected id %s, got %s", id, got)
	}
}

func TestCalendarListDraftFilter(t *testing.T) {
	tests := []struct {
		name     string
		hasDraft *bool
		want     string
	}{
		{"all items", nil, `ORDER BY scheduled_date ASC NULLS LAST`},
		{"with draft", boolPtr(true), `WHERE draft IS NOT NULL AND draft <> ''`},
		{"without draft", boolPtr(false), `WHERE draft IS NULL OR draft = ''`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("sqlmock: %v", err)
			}
			defer db.Close()

			now := time.Now()
			rows := sqlmock.NewRows([]string{"id", "topic", "draft", "scheduled_date", "status", "created_at", "updated_at"}).
				AddRow(uuid.NewString(), "topic", nil, nil, "Pending", now, now)

			mock.ExpectQuery(regexp.QuoteMeta(tt.want)).WillReturnRows(rows)

			repo := NewCalendarRepository(db)
			items, err := repo.List(context.Background(), tt.hasDraft)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(items) != 1 {
				t.Fatalf("expected 1 item, got %d", len(items))
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestCalendarUpdateDraftSetsDraftedStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE twitter_calendar SET draft = $1, status = $2 WHERE id = $3`)).
		WithArgs("tweet text", models.CalendarStatusDrafted, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewCalendarRepository(db)
	if err := repo.UpdateDraft(context.Background(), id, "tweet text"); err != nil {
		t.Fatalf("update draft: %v", err)
	}
}

func TestCalendarUpdateScheduledDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	id := uuid.New()
	date := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE twitter_calendar SET scheduled_date = $1, status = $2 WHERE id = $3`)).
		WithArgs(date, models.CalendarStatusScheduled, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewCalendarRepository(db)
	if err := repo.UpdateScheduledDate(context.Background(), id, date); err != nil {
		t.Fatalf("update scheduled date: %v", err)
	}
}

func boolPtr(b bool) *bool { return &b }
