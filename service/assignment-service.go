package service

import (
	"time"

	"demoday/client"
	"demoday/metrics"
	"demoday/repository"
	"demoday/utils"

	"gorm.io/gorm"
)

type AssignmentService struct {
	db       *gorm.DB
	notifier *Notifier
}

func NewAssignmentService(db *gorm.DB, notifier *Notifier) *AssignmentService {
	return &AssignmentService{db: db, notifier: notifier}
}

type assignmentChange struct {
	JudgeId int   `json:"judge_id"`
	Added   []int `json:"added,omitempty"`
	Removed []int `json:"removed,omitempty"`
}

// Assign records that the judge will score the team. Assigning an existing
// pair returns the stored assignment.
func (s *AssignmentService) Assign(eventId int, judgeId int, teamId int) (*repository.Assignment, error) {
	var assignment *repository.Assignment
	created := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		event, err := getEventForWrite(tx, eventId, false)
		if err != nil {
			return err
		}
		if _, err := getJudgeForEvent(tx, eventId, judgeId); err != nil {
			return err
		}
		if _, err := getTeamForEvent(tx, eventId, teamId); err != nil {
			return err
		}
		if err := requireUnlocked(event); err != nil {
			return err
		}
		assignments := repository.NewAssignmentRepository(tx)
		created, err = assignments.InsertIgnoringDuplicates([]*repository.Assignment{
			{EventId: eventId, JudgeId: judgeId, TeamId: teamId, CreatedAt: time.Now()},
		})
		if err != nil {
			return err
		}
		assignment, err = assignments.GetAssignment(judgeId, teamId)
		return err
	})
	if err != nil {
		return nil, err
	}
	if created > 0 {
		s.assignmentsChanged(eventId, judgeId, []int{teamId}, nil)
	}
	return assignment, nil
}

// AssignMany assigns every team of the event in teamIds to the judge. Teams
// outside the event are skipped; the result counts newly created pairs only.
func (s *AssignmentService) AssignMany(eventId int, judgeId int, teamIds []int) (int, error) {
	added := 0
	var addedTeamIds []int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		event, err := getEventForWrite(tx, eventId, false)
		if err != nil {
			return err
		}
		if _, err := getJudgeForEvent(tx, eventId, judgeId); err != nil {
			return err
		}
		if err := requireUnlocked(event); err != nil {
			return err
		}
		teams, err := repository.NewTeamRepository(tx).GetTeamsByIds(eventId, utils.Uniques(teamIds))
		if err != nil {
			return err
		}
		assignments := repository.NewAssignmentRepository(tx)
		existing, err := assignments.GetAssignedTeamIds(eventId, judgeId)
		if err != nil {
			return err
		}
		now := time.Now()
		toCreate := make([]*repository.Assignment, 0, len(teams))
		for _, team := range teams {
			if utils.Contains(existing, team.Id) {
				continue
			}
			toCreate = append(toCreate, &repository.Assignment{EventId: eventId, JudgeId: judgeId, TeamId: team.Id, CreatedAt: now})
			addedTeamIds = append(addedTeamIds, team.Id)
		}
		added, err = assignments.InsertIgnoringDuplicates(toCreate)
		return err
	})
	if err != nil {
		return 0, err
	}
	if added > 0 {
		s.assignmentsChanged(eventId, judgeId, addedTeamIds, nil)
	}
	return added, nil
}

// Unassign removes the assignment together with any score the judge already
// gave the team.
func (s *AssignmentService) Unassign(eventId int, judgeId int, teamId int) error {
	removed := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		event, err := getEventForWrite(tx, eventId, false)
		if err != nil {
			return err
		}
		if _, err := getJudgeForEvent(tx, eventId, judgeId); err != nil {
			return err
		}
		if _, err := getTeamForEvent(tx, eventId, teamId); err != nil {
			return err
		}
		if err := requireUnlocked(event); err != nil {
			return err
		}
		removed, err = repository.NewAssignmentRepository(tx).Delete(judgeId, teamId)
		if err != nil {
			return err
		}
		_, err = repository.NewScoreRepository(tx).Delete(judgeId, teamId)
		return err
	})
	if err != nil {
		return err
	}
	if removed > 0 {
		s.assignmentsChanged(eventId, judgeId, nil, []int{teamId})
	}
	return nil
}

// ListAssigned returns the team ids assigned to the user's judge membership,
// or an empty list when the user is not a judge of the event.
func (s *AssignmentService) ListAssigned(eventId int, userId int) ([]int, error) {
	judge, err := repository.NewJudgeRepository(s.db).GetJudgeForUser(eventId, userId)
	if err != nil {
		if isNotFound(err) {
			return []int{}, nil
		}
		return nil, err
	}
	return repository.NewAssignmentRepository(s.db).GetAssignedTeamIds(eventId, judge.Id)
}

func (s *AssignmentService) assignmentsChanged(eventId int, judgeId int, added []int, removed []int) {
	metrics.AssignmentsChangedCounter.WithLabelValues("added").Add(float64(len(added)))
	metrics.AssignmentsChangedCounter.WithLabelValues("removed").Add(float64(len(removed)))
	s.notifier.Publish(client.JudgingEvent{
		Type:    client.AssignmentsChanged,
		EventId: eventId,
		Payload: assignmentChange{JudgeId: judgeId, Added: added, Removed: removed},
	})
}
