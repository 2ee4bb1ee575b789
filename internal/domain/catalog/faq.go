package catalog

import (
	"fmt"
	"time"

	"github.com/sitedesk/sitedesk/internal/shared/biztime"
)

type FAQ struct {
	id           uint
	question     string
	answer       string
	displayOrder int
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewFAQ(question, answer string, displayOrder int) (*FAQ, error) {
	f := &FAQ{isActive: true}
	if err := f.Update(question, answer, displayOrder); err != nil {
		return nil, err
	}
	f.createdAt = f.updatedAt
	return f, nil
}

func ReconstructFAQ(id uint, question, answer string, displayOrder int, isActive bool, createdAt, updatedAt time.Time) *FAQ {
	return &FAQ{
		id:           id,
		question:     question,
		answer:       answer,
		displayOrder: displayOrder,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (f *FAQ) ID() uint             { return f.id }
func (f *FAQ) Question() string     { return f.question }
func (f *FAQ) Answer() string       { return f.answer }
func (f *FAQ) DisplayOrder() int    { return f.displayOrder }
func (f *FAQ) IsActive() bool       { return f.isActive }
func (f *FAQ) CreatedAt() time.Time { return f.createdAt }
func (f *FAQ) UpdatedAt() time.Time { return f.updatedAt }

func (f *FAQ) SetID(id uint) {
	f.id = id
}

func (f *FAQ) Update(question, answer string, displayOrder int) error {
	if question == "" {
		return fmt.Errorf("question is required")
	}
	if len([]rune(question)) > 500 {
		return fmt.Errorf("question exceeds maximum length of 500 characters")
	}
	if answer == "" {
		return fmt.Errorf("answer is required")
	}
	if len([]rune(answer)) > 10000 {
		return fmt.Errorf("answer exceeds maximum length of 10000 characters")
	}
	f.question = question
	f.answer = answer
	f.displayOrder = displayOrder
	f.updatedAt = biztime.NowUTC()
	return nil
}

func (f *FAQ) SetActive(active bool) {
	f.isActive = active
	f.updatedAt = biztime.NowUTC()
}
