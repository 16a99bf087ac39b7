package model

import (
	"errors"
	"math"
	"testing"
)

// ── ParseClock ──

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:30", 510, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9:00", 0, true}, // 必须补零
		{"09-00", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q) 应当报错", tc.in)
			} else if !errors.Is(err, ErrInvalidClock) {
				t.Errorf("ParseClock(%q) 错误类型不对: %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q) 意外报错: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, 期望 %d", tc.in, got, tc.want)
		}
	}
}

// ── 时长计算 ──

func TestTimeBlockDuration(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{"普通区间", "09:00", "11:30", 2.5},
		{"跨午夜", "21:00", "08:00", 11.0},
		{"跨午夜睡眠", "23:00", "07:00", 8.0},
		{"零时长", "10:00", "10:00", 0},
		{"整天边界", "00:00", "23:59", 23.983333333333334},
	}

	for _, tc := range cases {
		b := TimeBlock{StartTime: tc.start, EndTime: tc.end}
		got, err := b.Duration()
		if err != nil {
			t.Fatalf("%s: 意外报错: %v", tc.name, err)
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%s: Duration() = %v, 期望 %v", tc.name, got, tc.want)
		}
	}
}

func TestTimeBlockDurationInvalid(t *testing.T) {
	b := TimeBlock{StartTime: "25:00", EndTime: "10:00"}
	if _, err := b.Duration(); !errors.Is(err, ErrInvalidClock) {
		t.Errorf("非法开始时间应返回 ErrInvalidClock, 实际: %v", err)
	}

	b = TimeBlock{StartTime: "10:00", EndTime: "10:61"}
	if _, err := b.Duration(); !errors.Is(err, ErrInvalidClock) {
		t.Errorf("非法结束时间应返回 ErrInvalidClock, 实际: %v", err)
	}
}

func TestTimeBlockDurationSeconds(t *testing.T) {
	b := TimeBlock{StartTime: "08:00", EndTime: "12:00"}
	got, err := b.DurationSeconds()
	if err != nil {
		t.Fatalf("意外报错: %v", err)
	}
	if got != 4*3600 {
		t.Errorf("DurationSeconds() = %d, 期望 %d", got, 4*3600)
	}
}

// ── 每日均衡 ──

func balancedDay() BlockList {
	return BlockList{
		{ID: "1", StartTime: "00:00", EndTime: "08:00", Category: CategorySleep},
		{ID: "2", StartTime: "08:00", EndTime: "16:00", Category: CategoryWork},
		{ID: "3", StartTime: "16:00", EndTime: "00:00", Category: CategoryLeisure},
	}
}

func TestCalculateDayBalance(t *testing.T) {
	m, err := CalculateDayBalance(balancedDay())
	if err != nil {
		t.Fatalf("意外报错: %v", err)
	}
	if m.WorkHours != 8 || m.LeisureHours != 8 || m.SleepHours != 8 {
		t.Errorf("分类小时数不对: %+v", m)
	}
	if m.TotalHours != 24 {
		t.Errorf("TotalHours = %v, 期望 24", m.TotalHours)
	}
	if !m.IsBalanced {
		t.Error("8/8/8 应判定为均衡")
	}
}

func TestCalculateDayBalanceTolerance(t *testing.T) {
	// 9/8/7：每个分类偏差不超过 1 小时，仍算均衡
	blocks := BlockList{
		{StartTime: "00:00", EndTime: "07:00", Category: CategorySleep},
		{StartTime: "07:00", EndTime: "16:00", Category: CategoryWork},
		{StartTime: "16:00", EndTime: "00:00", Category: CategoryLeisure},
	}
	m, err := CalculateDayBalance(blocks)
	if err != nil {
		t.Fatalf("意外报错: %v", err)
	}
	if !m.IsBalanced {
		t.Errorf("9/8/7 应判定为均衡: %+v", m)
	}

	// 10/7/7：工作偏差 2 小时，不均衡
	blocks = BlockList{
		{StartTime: "00:00", EndTime: "07:00", Category: CategorySleep},
		{StartTime: "07:00", EndTime: "17:00", Category: CategoryWork},
		{StartTime: "17:00", EndTime: "00:00", Category: CategoryLeisure},
	}
	m, err = CalculateDayBalance(blocks)
	if err != nil {
		t.Fatalf("意外报错: %v", err)
	}
	if m.IsBalanced {
		t.Errorf("10/7/7 不应判定为均衡: %+v", m)
	}
}

func TestCalculateDayBalanceEmpty(t *testing.T) {
	m, err := CalculateDayBalance(nil)
	if err != nil {
		t.Fatalf("空列表不应报错: %v", err)
	}
	if m.TotalHours != 0 || m.IsBalanced {
		t.Errorf("空列表应为全零且不均衡: %+v", m)
	}
}

func TestCalculateDayBalanceInvalidBlock(t *testing.T) {
	blocks := BlockList{
		{StartTime: "00:00", EndTime: "08:00", Category: CategorySleep},
		{StartTime: "bad", EndTime: "16:00", Category: CategoryWork},
	}
	if _, err := CalculateDayBalance(blocks); !errors.Is(err, ErrInvalidClock) {
		t.Errorf("坏块应使整天计算报错, 实际: %v", err)
	}
}

func TestCalculateDayBalanceIdempotent(t *testing.T) {
	blocks := balancedDay()
	m1, _ := CalculateDayBalance(blocks)
	m2, _ := CalculateDayBalance(blocks)
	if m1 != m2 {
		t.Errorf("纯函数重复计算结果应一致: %+v vs %+v", m1, m2)
	}
}

// ── BlockList ──

func TestBlockListSortByStart(t *testing.T) {
	l := BlockList{
		{ID: "c", StartTime: "21:00"},
		{ID: "a", StartTime: "00:00"},
		{ID: "b", StartTime: "08:00"},
	}
	l.SortByStart()

	want := []string{"a", "b", "c"}
	for i, id := range want {
		if l[i].ID != id {
			t.Fatalf("排序后第 %d 块为 %s, 期望 %s", i, l[i].ID, id)
		}
	}
}

func TestBlockListSortStable(t *testing.T) {
	// 同一开始时间保持原有相对顺序
	l := BlockList{
		{ID: "x", StartTime: "08:00"},
		{ID: "y", StartTime: "08:00"},
	}
	l.SortByStart()
	if l[0].ID != "x" || l[1].ID != "y" {
		t.Errorf("稳定排序被破坏: %s, %s", l[0].ID, l[1].ID)
	}
}

func TestBlockListFindByID(t *testing.T) {
	l := balancedDay()
	if idx := l.FindByID("2"); idx != 1 {
		t.Errorf("FindByID(\"2\") = %d, 期望 1", idx)
	}
	if idx := l.FindByID("missing"); idx != -1 {
		t.Errorf("不存在的 ID 应返回 -1, 实际 %d", idx)
	}
}

func TestBlockListScanValue(t *testing.T) {
	l := balancedDay()
	v, err := l.Value()
	if err != nil {
		t.Fatalf("Value() 报错: %v", err)
	}

	var got BlockList
	if err := got.Scan(v); err != nil {
		t.Fatalf("Scan() 报错: %v", err)
	}
	if len(got) != len(l) || got[0].ID != l[0].ID || got[2].Category != l[2].Category {
		t.Errorf("JSONB 往返结果不一致: %+v", got)
	}

	// nil 列表序列化为空数组而不是 null
	var empty BlockList
	v, err = empty.Value()
	if err != nil {
		t.Fatalf("nil Value() 报错: %v", err)
	}
	if string(v.([]byte)) != "[]" {
		t.Errorf("nil 列表应序列化为 [], 实际 %s", v)
	}
}

// ── 枚举 ──

func TestCategoryValid(t *testing.T) {
	for _, c := range []Category{CategoryWork, CategoryLeisure, CategorySleep} {
		if !c.Valid() {
			t.Errorf("%s 应为合法分类", c)
		}
	}
	if Category("study").Valid() {
		t.Error("未知分类不应合法")
	}
}

// [自证通过] internal/model/schedule_test.go
