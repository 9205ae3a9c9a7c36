package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// EventDB is read and written by both the bun and the gorm store, so column
// types must implement sql.Scanner and driver.Valuer.
type EventDB struct {
	bun.BaseModel `bun:"table:events,alias:e" gorm:"-"`

	ID        uuid.UUID    `bun:"id,pk,type:uuid,default:gen_random_uuid()" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title     string       `bun:"title,notnull" gorm:"column:title;not null" json:"title"`
	EventDate sql.NullTime `bun:"event_date,type:date" gorm:"column:event_date;type:date" json:"event_date"`
	CreatedAt time.Time    `bun:"created_at,notnull,default:current_timestamp" gorm:"column:created_at;not null;default:current_timestamp" json:"created_at"`
}

func (EventDB) TableName() string {
	return "events"
}

// Attribute exposes the event's columns to admin fields.
func (e *EventDB) Attribute(key string) (any, bool) {
	switch key {
	case "id":
		return e.ID, true
	case "title":
		return e.Title, true
	case "event_date":
		return e.EventDate, true
	case "created_at":
		return e.CreatedAt, true
	}
	return nil, false
}
