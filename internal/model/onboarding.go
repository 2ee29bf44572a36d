package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StringList is stored as a jsonb column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("unsupported type %T for StringList", value)
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, l)
}

type Onboarding struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ClerkID      string     `gorm:"not null;uniqueIndex" json:"clerkId"`
	Name         string     `gorm:"not null" json:"name"`
	Email        string     `gorm:"not null" json:"email"`
	Phone        string     `json:"phone"`
	Skills       StringList `gorm:"type:jsonb" json:"skills"`
	City         string     `json:"city"`
	Industry     string     `json:"industry"`
	HasOnboarded bool       `gorm:"default:false" json:"hasOnboarded"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
