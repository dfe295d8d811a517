package postgres

import (
	"commandhotline/pkg/domain"
	"database/sql"
	"time"
)

// PgBirthday is the row shape of the birthdays table.
type PgBirthday struct {
	UserID int64 `db:"user_id"`
	ChatID int64 `db:"chat_id"`

	Year  sql.NullInt16 `db:"year"`
	Month int16         `db:"month"`
	Day   int16         `db:"day"`

	Enabled      bool         `db:"enabled"`
	LastNotified sql.NullTime `db:"last_notified"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgBirthday) ToDomain() domain.Birthday {
	var year *int
	if p.Year.Valid {
		y := int(p.Year.Int16)
		year = &y
	}

	return domain.Birthday{
		UserID:       domain.UserID(p.UserID),
		ChatID:       domain.ChatID(p.ChatID),
		Year:         year,
		Month:        time.Month(p.Month),
		Day:          int(p.Day),
		Enabled:      p.Enabled,
		LastNotified: p.LastNotified.Time,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

func (p *PgBirthday) FromDomain(b domain.Birthday) {
	var year sql.NullInt16
	if b.Year != nil {
		year = sql.NullInt16{Int16: int16(*b.Year), Valid: true} //nolint: gosec
	}

	*p = PgBirthday{
		UserID:  int64(b.UserID),
		ChatID:  int64(b.ChatID),
		Year:    year,
		Month:   int16(b.Month),
		Day:     int16(b.Day), //nolint: gosec
		Enabled: b.Enabled,
		LastNotified: sql.NullTime{
			Time:  b.LastNotified,
			Valid: !b.LastNotified.IsZero(),
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  b.UpdatedAt,
			Valid: !b.UpdatedAt.IsZero(),
		},
	}
}

func pgBirthdaysToDomain(rows []PgBirthday) []domain.Birthday {
	out := make([]domain.Birthday, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}
