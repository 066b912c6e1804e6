package service

import (
	"fmt"
	"log"
	"testing"
	"time"

	"demoday/auth"
	"demoday/config"
	"demoday/repository"

	"github.com/ory/dockertest/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

var (
	admin   = &auth.Caller{UserId: 1, Permissions: []string{auth.PermissionAdmin}}
	owner   = &auth.Caller{UserId: 2}
	visitor = &auth.Caller{UserId: 3}
	judgeA  = &auth.Caller{UserId: 10}
	judgeB  = &auth.Caller{UserId: 11}
)

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	err = pool.Client.Ping()
	if err != nil {
		log.Fatalf("Could not connect to Docker: %s", err)
	}

	resource, err := pool.Run("postgres", "17.2-alpine", []string{"POSTGRES_USER=postgres", "POSTGRES_PASSWORD=postgres", "DATABASE_NAME=postgres"})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(600)
	dsn := config.DSN("localhost", resource.GetPort("5432/tcp"), "postgres", "postgres", "postgres")

	if err := pool.Retry(func() error {
		var err error
		db, err = gorm.Open(postgres.Open(dsn), config.GormConfig())
		if err != nil {
			return err
		}
		if err := config.PrepareSchema(db); err != nil {
			return err
		}
		return repository.AutoMigrate(db)
	}); err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}

	defer func() {
		if err := pool.Purge(resource); err != nil {
			log.Fatalf("Could not purge resource: %s", err)
		}
	}()
	m.Run()
}

func TearDown() {
	for _, table := range []string{"prize_winners", "prize_submissions", "prizes", "scores", "assignments", "judges", "teams", "judging_categories", "events"} {
		db.Exec(fmt.Sprintf("DELETE FROM %s.%s", config.Schema, table))
	}
}

func weight(w float64) *float64 {
	return &w
}

func value(v float64) *float64 {
	return &v
}

// SetUp creates a standard judging event with three teams on two tracks,
// two categories and two registered judges.
func SetUp(t *testing.T) (*repository.Event, []*repository.Judge) {
	t.Helper()
	event := &repository.Event{
		Name:      "Spring Demo Day",
		StartTime: time.Now().Add(-time.Hour),
		EndTime:   time.Now().Add(time.Hour),
		Mode:      repository.EventModeStandardJudging,
		Tracks:    []string{"ai", "web"},
		Categories: []*repository.JudgingCategory{
			{Name: "Innovation", Weight: weight(2), Position: 0},
			{Name: "Design", Weight: weight(1), OptOutAllowed: true, Position: 1},
		},
		Teams: []*repository.Team{
			{Name: "Rocket", Track: "ai", OwnerId: owner.UserId, Members: []string{"ada"}},
			{Name: "Falcon", Track: "web", OwnerId: 4, Members: []string{"bob"}},
			{Name: "Comet", Track: "", OwnerId: 5, Members: []string{}},
		},
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("could not create event: %s", err)
	}
	judges := NewJudgeService(db)
	first, err := judges.Register(judgeA, event.Id)
	if err != nil {
		t.Fatalf("could not register judge: %s", err)
	}
	second, err := judges.Register(judgeB, event.Id)
	if err != nil {
		t.Fatalf("could not register judge: %s", err)
	}
	return event, []*repository.Judge{first, second}
}

func teamByName(event *repository.Event, name string) *repository.Team {
	for _, team := range event.Teams {
		if team.Name == name {
			return team
		}
	}
	return nil
}
