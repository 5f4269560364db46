package repository

import (
	"context"
	"errors"
	"luxefurnish/domain"
	"luxefurnish/utils"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// translateDBError maps storage errors onto domain error kinds. notFound is
// returned for gorm.ErrRecordNotFound.
func translateDBError(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case utils.IsUniqueViolation(err):
		return &domain.Error{Kind: domain.ErrConflict, Msg: utils.TranslateDBError(err)}
	}
	log.Error().Err(err).Msg("database error")
	return &domain.Error{Kind: domain.ErrUpstream, Msg: utils.TranslateDBError(err)}
}
