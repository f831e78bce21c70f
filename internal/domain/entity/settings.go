package entity

import "time"

// Settings is the singleton platform configuration row. Exactly one row
// exists; updates always target the first row.
type Settings struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:255" json:"name"`
	Email           string    `gorm:"size:255" json:"email"`
	Website         string    `gorm:"size:255" json:"website"`
	ThemeColor      string    `gorm:"size:50" json:"themeColor"`
	LogoURL         string    `gorm:"size:512" json:"logoUrl"`
	DefaultLanguage string    `gorm:"size:10" json:"defaultLanguage"`
	Timezone        string    `gorm:"size:100" json:"timezone"`
	FeaturesEnabled bool      `json:"featuresEnabled"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
