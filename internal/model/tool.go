package model

import (
	"fmt"
	"time"
)

// 输入字段类型（与前端约定的 wire 值）
const (
	InputTypeTextShort = "text_short"
	InputTypeTextLong  = "text_long"
	InputTypeSelect    = "select"
	InputTypeCheckbox  = "checkbox"
)

// InputField 工具的一个输入字段定义
// ID 同时作为模板占位符名称使用（模板中的 {{id}}）
type InputField struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	InputType   string   `json:"input_type"`
	Required    bool     `json:"required"`
	Placeholder string   `json:"placeholder,omitempty"`
	Description string   `json:"description,omitempty"`
	Options     []string `json:"options,omitempty"`
}

// ValidateInputFields 校验字段定义列表
// 约束：id 非空且唯一；input_type 合法；options 非空当且仅当类型为 select
func ValidateInputFields(fields []InputField) error {
	seen := make(map[string]bool, len(fields))
	for i, f := range fields {
		if f.ID == "" {
			return fmt.Errorf("input field #%d: id is required", i)
		}
		if seen[f.ID] {
			return fmt.Errorf("input field %q: duplicate id", f.ID)
		}
		seen[f.ID] = true

		switch f.InputType {
		case InputTypeTextShort, InputTypeTextLong, InputTypeSelect, InputTypeCheckbox:
		default:
			return fmt.Errorf("input field %q: unknown input_type %q", f.ID, f.InputType)
		}

		if f.InputType == InputTypeSelect && len(f.Options) == 0 {
			return fmt.Errorf("input field %q: select requires options", f.ID)
		}
		if f.InputType != InputTypeSelect && len(f.Options) > 0 {
			return fmt.Errorf("input field %q: options only allowed for select", f.ID)
		}
	}
	return nil
}

// Tool 工具定义
// InputFields 以 JSON 文本存储，service 层负责与 []InputField 互转
type Tool struct {
	ID                 string    `gorm:"primaryKey;size:36"`
	Name               string    `gorm:"size:255"`
	Description        string    `gorm:"type:text"`
	Category           string    `gorm:"size:50;index"`
	LLMModel           string    `gorm:"size:100"`
	SystemPrompt       string    `gorm:"type:text"`
	UserPromptTemplate string    `gorm:"type:text"`
	OutputFormat       string    `gorm:"type:text"`
	InputFields        string    `gorm:"type:text"`
	IsTemplate         bool      `gorm:"index"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

func (Tool) TableName() string {
	return "tools"
}
