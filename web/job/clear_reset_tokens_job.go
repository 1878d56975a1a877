package job

import (
	"time"

	"tickpanel/database"
	"tickpanel/database/model"
	"tickpanel/logger"
)

// ClearResetTokensJob sweeps reset-token fields whose expiry has
// passed. Expired tokens are already unusable; this only keeps stale
// digests out of the users table.
type ClearResetTokensJob struct{}

func NewClearResetTokensJob() *ClearResetTokensJob {
	return new(ClearResetTokensJob)
}

// Here Run is an interface method of the cron Job interface
func (j *ClearResetTokensJob) Run() {
	db := database.GetDB()
	result := db.Model(model.User{}).
		Where("reset_token_expires_at IS NOT NULL AND reset_token_expires_at < ?", time.Now()).
		Updates(map[string]any{
			"reset_token_hash":       nil,
			"reset_token_expires_at": nil,
		})
	if result.Error != nil {
		logger.Warning("clear reset tokens job err:", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		logger.Debugf("cleared %d expired reset tokens", result.RowsAffected)
	}
}
