package sessionstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/fineai/miniapp-gateway/pkg/launch"
)

// LaunchSessionDao maps to the 'launch_sessions' table in PostgreSQL.
type LaunchSessionDao struct {
	bun.BaseModel `bun:"table:launch_sessions,alias:ls"`
	ID            string    `bun:"id,pk,type:uuid"`
	SessionKey    string    `bun:"session_key,unique,notnull,type:varchar(128)"`
	TelegramID    int64     `bun:"telegram_id,notnull"`
	StartParam    *string   `bun:"start_param,type:varchar(512)"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toSessionDao(s *launch.Session) *LaunchSessionDao {
	dao := &LaunchSessionDao{
		ID:         s.ID,
		SessionKey: s.Key,
		TelegramID: s.TelegramID,
		CreatedAt:  s.CreatedAt,
	}
	if s.StartParam != "" {
		dao.StartParam = &s.StartParam
	}
	return dao
}

func toSession(dao *LaunchSessionDao) *launch.Session {
	s := &launch.Session{
		ID:         dao.ID,
		Key:        dao.SessionKey,
		TelegramID: dao.TelegramID,
		CreatedAt:  dao.CreatedAt,
	}
	if dao.StartParam != nil {
		s.StartParam = *dao.StartParam
	}
	return s
}
