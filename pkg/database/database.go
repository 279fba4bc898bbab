package database

import (
	"fmt"
	"log"

	"github.com/Pooja123-meshram/talentsprout-project/internal/config"
	"github.com/Pooja123-meshram/talentsprout-project/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	// TranslateError lets the attempt store detect lost open-attempt
	// races as gorm.ErrDuplicatedKey instead of raw MySQL 1062 errors.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.UserProfile{},
		&model.BankDetail{},
		&model.Education{},
		&model.SocialLink{},
		&model.Skill{},
		&model.Question{},
		&model.Attempt{},
		&model.AttemptQuestion{},
		&model.Answer{},
		&model.ExamRule{},
		&model.BlogPost{},
		&model.CandidatePreference{},
		&model.Project{},
		&model.Progress{},
		&model.ProjectDetails{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Default exam rules shown on the rules-and-regulations step.
	var ruleCount int64
	db.Model(&model.ExamRule{}).Count(&ruleCount)
	if ruleCount == 0 {
		defaultRules := []model.ExamRule{
			{Title: "One sitting", Description: "The exam must be completed in a single sitting. Leaving the exam page discards nothing, but timers keep running.", Order: 1},
			{Title: "All questions required", Description: "Every question must be answered before the exam can be submitted.", Order: 2},
			{Title: "Retry policy", Description: "A retry is allowed 5 days after a completed attempt. At most two attempts are permitted per skill.", Order: 3},
			{Title: "Scoring", Description: "Results are reviewed and scored after submission. A score of 60 or above is a pass.", Order: 4},
		}
		for _, r := range defaultRules {
			db.Create(&r)
		}
	}

	return db, nil
}
