// Seed script for skills and their MCQ question banks.
//
// Each skill gets a first-attempt pool and a separate retry pool so a
// second attempt never repeats questions the candidate already saw.
// Safe to re-run: skills that already exist are skipped.
//
// Usage: go run scripts/seed_questions.go

package main

import (
	"errors"
	"log"
	"os"

	"github.com/Pooja123-meshram/talentsprout-project/internal/config"
	"github.com/Pooja123-meshram/talentsprout-project/internal/model"
	"github.com/Pooja123-meshram/talentsprout-project/pkg/database"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type seedQuestion struct {
	Text          string
	Options       string
	CorrectAnswer string
}

type seedSkill struct {
	Name        string
	Description string
	FirstPool   []seedQuestion
	RetryPool   []seedQuestion
}

var seedSkills = []seedSkill{
	{
		Name:        "Go",
		Description: "Core language, concurrency and the standard toolchain.",
		FirstPool: []seedQuestion{
			{
				Text:          "Which keyword starts a new goroutine?",
				Options:       `["go", "async", "spawn", "thread"]`,
				CorrectAnswer: "go",
			},
			{
				Text:          "What is the zero value of a pointer type?",
				Options:       `["nil", "0", "undefined", "empty"]`,
				CorrectAnswer: "nil",
			},
			{
				Text:          "Which builtin grows a slice?",
				Options:       `["append", "push", "add", "extend"]`,
				CorrectAnswer: "append",
			},
		},
		RetryPool: []seedQuestion{
			{
				Text:          "Which statement receives from a channel and reports closure?",
				Options:       `["v, ok := <-ch", "v := ch.recv()", "ch >> v", "v = read(ch)"]`,
				CorrectAnswer: "v, ok := <-ch",
			},
			{
				Text:          "What does defer guarantee about the deferred call?",
				Options:       `["runs when the surrounding function returns", "runs immediately", "runs in a new goroutine", "never runs on panic"]`,
				CorrectAnswer: "runs when the surrounding function returns",
			},
			{
				Text:          "Which type is safe for concurrent map access without extra locking?",
				Options:       `["sync.Map", "map[string]int", "[]int", "chan map"]`,
				CorrectAnswer: "sync.Map",
			},
		},
	},
	{
		Name:        "SQL",
		Description: "Relational modelling and query fundamentals.",
		FirstPool: []seedQuestion{
			{
				Text:          "Which clause filters grouped rows?",
				Options:       `["HAVING", "WHERE", "FILTER", "GROUP"]`,
				CorrectAnswer: "HAVING",
			},
			{
				Text:          "Which join keeps unmatched rows from the left table?",
				Options:       `["LEFT JOIN", "INNER JOIN", "CROSS JOIN", "FULL JOIN"]`,
				CorrectAnswer: "LEFT JOIN",
			},
			{
				Text:          "Which constraint enforces uniqueness?",
				Options:       `["UNIQUE", "CHECK", "DEFAULT", "INDEX"]`,
				CorrectAnswer: "UNIQUE",
			},
		},
		RetryPool: []seedQuestion{
			{
				Text:          "Which statement removes all rows but keeps the table?",
				Options:       `["TRUNCATE TABLE", "DROP TABLE", "DELETE TABLE", "CLEAR TABLE"]`,
				CorrectAnswer: "TRUNCATE TABLE",
			},
			{
				Text:          "What isolation level prevents dirty reads at minimum cost?",
				Options:       `["READ COMMITTED", "READ UNCOMMITTED", "SERIALIZABLE", "NONE"]`,
				CorrectAnswer: "READ COMMITTED",
			},
			{
				Text:          "Which keyword deduplicates result rows?",
				Options:       `["DISTINCT", "UNIQUE", "SINGLE", "ONLY"]`,
				CorrectAnswer: "DISTINCT",
			},
		},
	},
}

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("cannot read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("cannot parse config file: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("cannot connect to database: %v", err)
	}

	for _, seed := range seedSkills {
		if err := seedOne(db, seed); err != nil {
			log.Fatalf("seeding %s: %v", seed.Name, err)
		}
	}

	log.Println("Seeding complete")
}

func seedOne(db *gorm.DB, seed seedSkill) error {
	var existing model.Skill
	err := db.Where("name = ?", seed.Name).First(&existing).Error
	if err == nil {
		log.Printf("skill %q already exists, skipping", seed.Name)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	skill := model.Skill{Name: seed.Name, Description: seed.Description}
	if err := db.Create(&skill).Error; err != nil {
		return err
	}

	questions := make([]model.Question, 0, len(seed.FirstPool)+len(seed.RetryPool))
	for _, q := range seed.FirstPool {
		questions = append(questions, model.Question{
			SkillID:       skill.ID,
			Type:          model.QuestionTypeMCQ,
			Text:          q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	for _, q := range seed.RetryPool {
		questions = append(questions, model.Question{
			SkillID:         skill.ID,
			Type:            model.QuestionTypeMCQ,
			Text:            q.Text,
			Options:         q.Options,
			CorrectAnswer:   q.CorrectAnswer,
			IsSecondAttempt: true,
		})
	}
	if err := db.Create(&questions).Error; err != nil {
		return err
	}

	log.Printf("seeded skill %q with %d questions", seed.Name, len(questions))
	return nil
}
