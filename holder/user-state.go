package holder

import (
	"LogoBot/lib/sl"
	"LogoBot/storage"
	"log/slog"
)

// UserState gives the dispatcher error-free access to per-user data.
// Storage failures are logged and read as "nothing stored".
type UserState struct {
	styles  storage.StyleStorage
	journal storage.JournalStorage
	log     *slog.Logger
}

func NewUserState(styles storage.StyleStorage, journal storage.JournalStorage, log *slog.Logger) *UserState {
	return &UserState{
		styles:  styles,
		journal: journal,
		log:     log.With(sl.Module("user-state")),
	}
}

func (us *UserState) Style(userId int64) string {
	style, err := us.styles.GetUserStyle(userId)
	if err != nil {
		us.log.With(slog.Int64("user", userId)).Error("getting user style", sl.Err(err))
		return ""
	}
	return style
}

func (us *UserState) SetStyle(userId int64, style string) {
	if err := us.styles.SetUserStyle(userId, style); err != nil {
		us.log.With(slog.Int64("user", userId)).Error("setting user style", sl.Err(err))
	}
}

func (us *UserState) Record(gen storage.Generation) {
	if err := us.journal.AddGeneration(gen); err != nil {
		us.log.With(slog.Int64("user", gen.UserId)).Error("recording generation", sl.Err(err))
	}
}

func (us *UserState) History(userId int64, limit int) []storage.Generation {
	history, err := us.journal.GetRecentGenerations(userId, limit)
	if err != nil {
		us.log.With(slog.Int64("user", userId)).Error("getting history", sl.Err(err))
		return nil
	}
	return history
}

func (us *UserState) Close() error {
	err := us.styles.Close()
	if jErr := us.journal.Close(); jErr != nil && err == nil {
		err = jErr
	}
	return err
}
