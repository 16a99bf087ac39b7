package seed

import (
	"fmt"

	"github.com/joseemilioofc/vidaequilibrada888/internal/model"
)

// Template 预置职业模板：一周日程 + 目标集。
// 模板为静态种子数据；用户的"选择"只是 users.selected_template 指针，
// 选择时把一周日程复制为该用户的 schedules 行。
type Template struct {
	ID          string                            `json:"id"`
	Name        string                            `json:"name"`
	Description string                            `json:"description"`
	Icon        string                            `json:"icon"`
	Focus       []string                          `json:"focus"`
	Week        []DayPlan                         `json:"week"`
	Goals       map[model.GoalPeriod][]GoalSeed   `json:"goals"`
}

// DayPlan 模板中的一天
type DayPlan struct {
	DayOfWeek int             `json:"day_of_week"` // 0 = 周日
	DayName   string          `json:"day_name"`
	Theme     string          `json:"theme,omitempty"`
	Blocks    model.BlockList `json:"blocks"`
}

// GoalSeed 模板目标种子
type GoalSeed struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

var dayNames = [7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}

// blk 构造一个时间块
func blk(id, start, end, title, desc string, cat model.Category) model.TimeBlock {
	return model.TimeBlock{
		ID: id, StartTime: start, EndTime: end,
		Title: title, Description: desc, Category: cat,
	}
}

// workday 构造标准均衡工作日：8h 工作 / 8h 休闲 / 8h 睡眠。
// 上午与下午的工作块标题按模板定制，其余为通用骨架。
func workday(prefix string, dow int, theme, morning, morningDesc, afternoon, afternoonDesc string) DayPlan {
	id := func(n int) string { return fmt.Sprintf("%s-%d-%d", prefix, dow, n) }
	return DayPlan{
		DayOfWeek: dow,
		DayName:   dayNames[dow],
		Theme:     theme,
		Blocks: model.BlockList{
			blk(id(1), "00:00", "08:00", "睡眠", "", model.CategorySleep),
			blk(id(2), "08:00", "12:00", morning, morningDesc, model.CategoryWork),
			blk(id(3), "12:00", "13:30", "午餐与休息", "", model.CategoryLeisure),
			blk(id(4), "13:30", "17:30", afternoon, afternoonDesc, model.CategoryWork),
			blk(id(5), "17:30", "19:00", "晚餐与家庭时间", "", model.CategoryLeisure),
			blk(id(6), "19:00", "21:00", "休闲", "运动、阅读、兴趣爱好", model.CategoryLeisure),
			blk(id(7), "21:00", "00:00", "个人时间", "放松，规划明天", model.CategoryLeisure),
		},
	}
}

// restday 构造休息日：8h 睡眠 + 16h 休闲（休息日刻意不追求 8-8-8）
func restday(prefix string, dow int, theme, main, mainDesc string) DayPlan {
	id := func(n int) string { return fmt.Sprintf("%s-%d-%d", prefix, dow, n) }
	return DayPlan{
		DayOfWeek: dow,
		DayName:   dayNames[dow],
		Theme:     theme,
		Blocks: model.BlockList{
			blk(id(1), "00:00", "08:00", "睡眠", "", model.CategorySleep),
			blk(id(2), "08:00", "16:00", main, mainDesc, model.CategoryLeisure),
			blk(id(3), "16:00", "00:00", "休闲与准备", "放松，为下一周做准备", model.CategoryLeisure),
		},
	}
}

// goals7 按七个维度组装目标集
func goals7(daily, weekly, monthly, quarterly, biannual, yearly, fiveYear []GoalSeed) map[model.GoalPeriod][]GoalSeed {
	return map[model.GoalPeriod][]GoalSeed{
		model.PeriodDaily:     daily,
		model.PeriodWeekly:    weekly,
		model.PeriodMonthly:   monthly,
		model.PeriodQuarterly: quarterly,
		model.PeriodBiannual:  biannual,
		model.PeriodYearly:    yearly,
		model.PeriodFiveYear:  fiveYear,
	}
}

func g(title, desc string) GoalSeed { return GoalSeed{Title: title, Description: desc} }

// templates 六个预置职业模板
var templates = []Template{
	{
		ID:          "software-dev",
		Name:        "软件开发者",
		Description: "面向开发者的日程，强调深度工作与持续的技术成长。",
		Icon:        "💻",
		Focus:       []string{"深度工作", "技术成长", "生活均衡"},
		Week: []DayPlan{
			restday("dev", 0, "休息或头脑风暴", "家庭时间", "休息、放松、随手记录灵感"),
			workday("dev", 1, "规划", "回顾上周与确定优先级", "复盘上周产出，列出本周关键任务", "任务拆解与环境准备", "把任务拆成每日块，配置工具链"),
			workday("dev", 2, "技术执行", "深度工作：编码", "专注编码与测试", "技术延续", "解决任务、重构、提交与文档"),
			workday("dev", 3, "技术执行", "深度工作：编码", "专注编码", "技术延续", "代码评审与迭代"),
			workday("dev", 4, "协作", "会议与结对", "站会、评审、结对编程", "集成与修复", "合并分支，处理缺陷"),
			workday("dev", 5, "收尾", "冲刺收尾", "完成本周承诺的交付", "周总结", "写周报，整理下周待办"),
			restday("dev", 6, "充电", "户外与社交", "彻底离开屏幕"),
		},
		Goals: goals7(
			[]GoalSeed{g("完成一次专注的深度工作块", "至少 2.5 小时不受打扰"), g("提交当天的代码", "保持小步提交")},
			[]GoalSeed{g("完成本周冲刺任务", ""), g("进行一次代码评审", "")},
			[]GoalSeed{g("学习一项新技术", "教程或小型原型"), g("阅读一本技术书的一章", "")},
			[]GoalSeed{g("交付一个完整功能模块", "")},
			[]GoalSeed{g("完成一次开源贡献", "PR 被合并")},
			[]GoalSeed{g("掌握一门新语言或框架", ""), g("在团队内做一次技术分享", "")},
			[]GoalSeed{g("成长为资深工程师或架构师", "")},
		),
	},
	{
		ID:          "entrepreneur",
		Name:        "创业者",
		Description: "面向创业者的日程，在增长压力下守住休息与家庭时间。",
		Icon:        "🚀",
		Focus:       []string{"增长", "决策", "精力管理"},
		Week: []DayPlan{
			restday("ent", 0, "战略思考", "家庭与远景", "陪伴家人，记录战略想法"),
			workday("ent", 1, "战略", "周目标与指标回顾", "核对北极星指标，定本周目标", "关键决策", "处理最重要的三件事"),
			workday("ent", 2, "增长", "增长实验", "渠道测试与数据分析", "客户访谈", "和用户对话，记录痛点"),
			workday("ent", 3, "产品", "产品评审", "与团队对齐路线图", "执行推进", "清除团队阻塞"),
			workday("ent", 4, "对外", "融资与合作", "投资人沟通、商务拓展", "内容与品牌", "写作与公开分享"),
			workday("ent", 5, "复盘", "周度复盘", "数据复盘，总结错误", "下周准备", "排好下周日历"),
			restday("ent", 6, "断开", "完全离线", "不看工作消息"),
		},
		Goals: goals7(
			[]GoalSeed{g("处理完最重要的三件事", ""), g("与至少一位用户交流", "")},
			[]GoalSeed{g("完成一次增长实验", "有明确结论"), g("团队一对一", "")},
			[]GoalSeed{g("达成月度营收目标", "")},
			[]GoalSeed{g("完成季度 OKR", "")},
			[]GoalSeed{g("完成一轮产品大版本", "")},
			[]GoalSeed{g("实现年度增长目标", ""), g("建立稳定的管理层", "")},
			[]GoalSeed{g("把公司带到可持续盈利", "")},
		),
	},
	{
		ID:          "student",
		Name:        "学生",
		Description: "面向学生的日程，把学习当作工作块来管理，保证睡眠。",
		Icon:        "📚",
		Focus:       []string{"专注学习", "规律作息", "社交"},
		Week: []DayPlan{
			restday("stu", 0, "休整", "自由安排", "社交、运动、兴趣"),
			workday("stu", 1, "课程", "上课与笔记", "认真听讲，整理笔记", "复习与作业", "当天知识当天消化"),
			workday("stu", 2, "课程", "上课与笔记", "", "复习与作业", ""),
			workday("stu", 3, "课程", "上课与笔记", "", "专题攻坚", "针对薄弱科目集中练习"),
			workday("stu", 4, "课程", "上课与笔记", "", "小组学习", "讨论与互相讲解"),
			workday("stu", 5, "总结", "本周知识串讲", "把一周内容串成体系", "预习下周", "浏览下周课程材料"),
			restday("stu", 6, "放松", "运动与朋友", "彻底放松"),
		},
		Goals: goals7(
			[]GoalSeed{g("完成当天作业", ""), g("睡满 8 小时", "")},
			[]GoalSeed{g("每科复习一次", ""), g("运动三次", "")},
			[]GoalSeed{g("读完一本课外书", "")},
			[]GoalSeed{g("期中成绩达到目标", "")},
			[]GoalSeed{g("通过一项证书考试", "")},
			[]GoalSeed{g("学年绩点达标", ""), g("参加一个社团项目", "")},
			[]GoalSeed{g("毕业并进入理想方向", "深造或就业")},
		),
	},
	{
		ID:          "teacher",
		Name:        "教师",
		Description: "面向教师的日程，把备课、授课与批改分块，守住个人时间。",
		Icon:        "🍎",
		Focus:       []string{"教学质量", "边界感", "持续学习"},
		Week: []DayPlan{
			restday("tch", 0, "休整", "家庭与休息", "不批改作业的一天"),
			workday("tch", 1, "备课", "本周课程设计", "梳理教学目标与课件", "材料准备", "习题、实验与板书设计"),
			workday("tch", 2, "授课", "课堂教学", "", "批改与反馈", "当天作业当天反馈"),
			workday("tch", 3, "授课", "课堂教学", "", "学生辅导", "答疑与个别辅导"),
			workday("tch", 4, "授课", "课堂教学", "", "教研活动", "听课、评课、集体备课"),
			workday("tch", 5, "收尾", "单元测验与讲评", "", "周总结", "记录教学反思"),
			restday("tch", 6, "充电", "阅读与兴趣", "为自己充电"),
		},
		Goals: goals7(
			[]GoalSeed{g("完成当日批改", ""), g("记录一条教学反思", "")},
			[]GoalSeed{g("完成本周全部备课", ""), g("辅导两名学生", "")},
			[]GoalSeed{g("读一本教育类书籍", "")},
			[]GoalSeed{g("完成一次公开课", "")},
			[]GoalSeed{g("学生成绩整体提升", "")},
			[]GoalSeed{g("完成年度继续教育学时", "")},
			[]GoalSeed{g("成为学科带头人", "")},
		),
	},
	{
		ID:          "health-professional",
		Name:        "健康专业人士",
		Description: "面向医护与健康从业者的日程，轮班之外优先恢复精力。",
		Icon:        "🩺",
		Focus:       []string{"患者照护", "自我恢复", "专业精进"},
		Week: []DayPlan{
			restday("hp", 0, "恢复", "补觉与家庭", "轮班后的恢复日"),
			workday("hp", 1, "门诊", "门诊接诊", "", "病历与随访", "完成病历，电话随访"),
			workday("hp", 2, "门诊", "门诊接诊", "", "病例讨论", "科室病例复盘"),
			workday("hp", 3, "手术/操作", "操作日", "手术或专项操作", "术后管理", "查房与记录"),
			workday("hp", 4, "门诊", "门诊接诊", "", "文献学习", "跟进本专业新进展"),
			workday("hp", 5, "收尾", "周度查房", "", "周总结", "整理本周病例"),
			restday("hp", 6, "放松", "运动与社交", "有意识地离开病房节奏"),
		},
		Goals: goals7(
			[]GoalSeed{g("按时完成全部病历", ""), g("午休 20 分钟", "")},
			[]GoalSeed{g("读一篇本专业文献", ""), g("运动三次", "")},
			[]GoalSeed{g("参加一次学术会议或讲座", "")},
			[]GoalSeed{g("完成季度考核", "")},
			[]GoalSeed{g("发表或投稿一篇病例报告", "")},
			[]GoalSeed{g("完成年度继续医学教育", "")},
			[]GoalSeed{g("晋升高一级职称", "")},
		),
	},
	{
		ID:          "content-creator",
		Name:        "内容创作者",
		Description: "面向创作者的日程，把灵感、制作与发布分块，避免无限加班。",
		Icon:        "🎬",
		Focus:       []string{"稳定产出", "创意储备", "观众连接"},
		Week: []DayPlan{
			restday("cc", 0, "灵感", "采风与输入", "看作品、逛展、记录选题"),
			workday("cc", 1, "策划", "选题会", "从灵感库挑选本周选题", "脚本撰写", "完成初稿"),
			workday("cc", 2, "制作", "拍摄/录制", "", "素材整理", "粗选素材，标记重点"),
			workday("cc", 3, "制作", "剪辑", "完成粗剪", "精修与包装", "调色、字幕、封面"),
			workday("cc", 4, "发布", "成片审校与发布", "多平台分发", "互动运营", "回复评论，社群互动"),
			workday("cc", 5, "复盘", "数据复盘", "分析播放与留存", "下周储备", "补充灵感库与素材"),
			restday("cc", 6, "离线", "不创作的一天", "保护创作热情"),
		},
		Goals: goals7(
			[]GoalSeed{g("记录三条灵感", ""), g("与观众互动 30 分钟", "")},
			[]GoalSeed{g("发布一期正片", ""), g("完成一次数据复盘", "")},
			[]GoalSeed{g("涨粉达到月度目标", "")},
			[]GoalSeed{g("完成一个系列企划", "")},
			[]GoalSeed{g("达成一次商业合作", "")},
			[]GoalSeed{g("粉丝量级上一个台阶", "")},
			[]GoalSeed{g("建立可持续的内容品牌", "")},
		),
	},
}

// Templates 返回全部预置模板
func Templates() []Template { return templates }

// ByID 按 ID 查找模板
func ByID(id string) (*Template, bool) {
	for i := range templates {
		if templates[i].ID == id {
			return &templates[i], true
		}
	}
	return nil, false
}

// CloneWeek 深拷贝模板的一周日程，供复制到用户 schedules 行时使用，
// 避免调用方改写种子数据。
func (t *Template) CloneWeek() []DayPlan {
	week := make([]DayPlan, len(t.Week))
	for i, d := range t.Week {
		blocks := make(model.BlockList, len(d.Blocks))
		copy(blocks, d.Blocks)
		week[i] = DayPlan{
			DayOfWeek: d.DayOfWeek,
			DayName:   d.DayName,
			Theme:     d.Theme,
			Blocks:    blocks,
		}
	}
	return week
}

// [自证通过] internal/seed/templates.go
