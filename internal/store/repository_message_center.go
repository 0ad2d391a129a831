package store

import (
	"context"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
)

type messageCenterRepository struct {
	sessions SessionSource
	logger   *logger.Logger
}

func NewMessageCenterRepository(sessions SessionSource, logger *logger.Logger) MessageCenterRepository {
	logger.Debug().Msg("creating message center repository")
	return &messageCenterRepository{
		sessions: sessions,
		logger:   logger,
	}
}

// CreateEntry stores one sale alert. It may be called concurrently on the
// same request session.
func (r *messageCenterRepository) CreateEntry(ctx context.Context, entry models.MessageCenterEntry) (models.ExecResult, error) {
	var id int64
	err := withSession(ctx, r.sessions, func(s Session) error {
		return s.NamedGetContext(ctx, &id, createMessageCenterEntry, entry)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*messageCenterRepository.CreateEntry").
			Str("subject", entry.Subject).
			Msg("error inserting message center entry")
		return models.ExecResult{}, err
	}

	return models.ExecResult{InsertID: id, AffectedRows: 1}, nil
}
