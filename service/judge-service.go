package service

import (
	"fmt"

	"demoday/app_error"
	"demoday/auth"
	"demoday/repository"
	"demoday/utils"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type JudgeService struct {
	db              *gorm.DB
	judgeRepository *repository.JudgeRepository
}

func NewJudgeService(db *gorm.DB) *JudgeService {
	return &JudgeService{
		db:              db,
		judgeRepository: repository.NewJudgeRepository(db),
	}
}

// RequireJudgeMembership resolves the caller's judge record for the event.
func (s *JudgeService) RequireJudgeMembership(caller *auth.Caller, eventId int) (*repository.Judge, error) {
	if caller == nil {
		return nil, app_error.ErrNotAJudge
	}
	judge, err := s.judgeRepository.GetJudgeForUser(eventId, caller.UserId)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: user %d, event %d", app_error.ErrNotAJudge, caller.UserId, eventId)
		}
		return nil, err
	}
	return judge, nil
}

// Register makes the caller a judge of the event. Registering twice returns
// the existing membership.
func (s *JudgeService) Register(caller *auth.Caller, eventId int) (*repository.Judge, error) {
	if caller == nil {
		return nil, app_error.ErrNotAuthorized
	}
	var judge *repository.Judge
	err := s.db.Transaction(func(tx *gorm.DB) error {
		event, err := getEvent(tx, eventId)
		if err != nil {
			return err
		}
		if err := requireJudgingMode(event); err != nil {
			return err
		}
		judges := repository.NewJudgeRepository(tx)
		if _, err := judges.EnsureJudges(eventId, []int{caller.UserId}); err != nil {
			return err
		}
		judge, err = judges.GetJudgeForUser(eventId, caller.UserId)
		return err
	})
	if err != nil {
		return nil, err
	}
	return judge, nil
}

// SeedJudges registers the given users as judges and returns how many
// memberships were newly created.
func (s *JudgeService) SeedJudges(caller *auth.Caller, eventId int, userIds []int) (int, error) {
	adminId, err := caller.RequireAdmin()
	if err != nil {
		return 0, err
	}
	created := 0
	err = s.db.Transaction(func(tx *gorm.DB) error {
		event, err := getEvent(tx, eventId)
		if err != nil {
			return err
		}
		if err := requireJudgingMode(event); err != nil {
			return err
		}
		created, err = repository.NewJudgeRepository(tx).EnsureJudges(eventId, utils.Uniques(userIds))
		return err
	})
	if err != nil {
		return 0, err
	}
	log.WithFields(log.Fields{"event_id": eventId, "user_id": adminId, "created": created}).Info("seeded judges")
	return created, nil
}
