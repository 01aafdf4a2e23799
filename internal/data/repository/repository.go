package repository

import (
	"time"

	"listacrosseu/pkg/database"

	"go.uber.org/zap"
)

// timeLayout is RFC3339 with fixed millisecond precision so stored UTC
// timestamps sort lexicographically in chronological order.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

type Repository struct {
	Business BusinessRepository
	Review   ReviewRepository
	User     UserRepository
	Stats    StatsRepository
}

func NewRepository(db database.SQLIface, log *zap.Logger) *Repository {
	return &Repository{
		Business: NewBusinessRepository(db, log),
		Review:   NewReviewRepository(db, log),
		User:     NewUserRepository(db, log),
		Stats:    NewStatsRepository(db, log),
	}
}
