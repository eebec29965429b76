package models

// Config is a single key/value setting. The only key in use is
// "daily_goal".
type Config struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `json:"value"`
}

// TableName keeps the table name singular so the on-disk schema matches
// what other tools reading pomodoro.db expect.
func (Config) TableName() string {
	return "config"
}
