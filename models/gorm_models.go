// models/gorm_models.go
package models

import (
	"gorm.io/gorm"
)

// GormPlayer 玩家排行榜数据库行
type GormPlayer struct {
	gorm.Model
	Name          string `gorm:"uniqueIndex;not null"`
	Score         int    `gorm:"not null"`
	GamesPlayed   int    `gorm:"default:1"`
	BestScore     int    `gorm:"not null"`
	History       string `gorm:"type:text;not null"` // comma-joined score history
	CurrentStreak int    `gorm:"default:0"`
}
