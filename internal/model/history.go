package model

import "time"

// History 生成履历
// ToolName 为生成时点的快照，工具被改名或删除后履历仍可读
// Inputs 以 JSON 文本存储用户提交的字段值
type History struct {
	ID        string    `gorm:"primaryKey;size:36"`
	ToolID    string    `gorm:"index;size:36"`
	ToolName  string    `gorm:"size:255"`
	Inputs    string    `gorm:"type:text"`
	Output    string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (History) TableName() string {
	return "history"
}
