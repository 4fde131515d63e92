package view

import (
	"fmt"
	"strings"

	"todo-list/internal/errors"
	"todo-list/internal/validation"
)

// DefaultLocale is used when the configured locale has no catalog
const DefaultLocale = "en"

// Catalog holds the user-visible strings for one locale
type Catalog struct {
	Locale string

	Placeholder string
	counterOne  string
	counterMany string

	RangeBoth  string
	RangeFrom  string
	RangeUntil string
	AllDay     string

	EmptyText      string
	EndBeforeStart string

	TextPrompt  string
	StartPrompt string
	EndPrompt   string
	Help        string

	Title    string
	Done     string
	Open     string
	NotFound string
	Toggled  string
	Deleted  string
	Added    string
	Exported string
}

var catalogs = map[string]Catalog{
	"en": {
		Locale:         "en",
		Placeholder:    "No tasks yet — create one!",
		counterOne:     "%d task",
		counterMany:    "%d tasks",
		RangeBoth:      "%s - %s",
		RangeFrom:      "%s onward",
		RangeUntil:     "until %s",
		AllDay:         "all day",
		EmptyText:      "Task text cannot be empty",
		EndBeforeStart: "End time must be after start time",
		TextPrompt:     "What needs to be done?",
		StartPrompt:    "start HH:MM",
		EndPrompt:      "end HH:MM",
		Help:           "enter add • tab switch • space toggle • d delete • esc quit",
		Title:          "To-do list",
		Done:           "done",
		Open:           "open",
		NotFound:       "No task matches %q",
		Toggled:        "Toggled: %s",
		Deleted:        "Deleted: %s",
		Added:          "Added: %s",
		Exported:       "Exported %s to %s",
	},
	"zh": {
		Locale:         "zh",
		Placeholder:    "暂无任务，开始创建吧！",
		counterOne:     "%d 项",
		counterMany:    "%d 项",
		RangeBoth:      "%s - %s",
		RangeFrom:      "%s 开始",
		RangeUntil:     "截止 %s",
		AllDay:         "全天",
		EmptyText:      "任务内容不能为空",
		EndBeforeStart: "结束时间需晚于开始时间",
		TextPrompt:     "添加新任务",
		StartPrompt:    "开始 HH:MM",
		EndPrompt:      "结束 HH:MM",
		Help:           "回车 添加 • tab 切换 • 空格 完成 • d 删除 • esc 退出",
		Title:          "待办事项",
		Done:           "已完成",
		Open:           "未完成",
		NotFound:       "没有匹配 %q 的任务",
		Toggled:        "已切换：%s",
		Deleted:        "已删除：%s",
		Added:          "已添加：%s",
		Exported:       "已导出 %s 到 %s",
	},
}

// Lookup returns the catalog for locale. Region suffixes such as zh-CN
// match their language.
func Lookup(locale string) (Catalog, bool) {
	key := strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(key, "-_"); i > 0 {
		key = key[:i]
	}
	c, ok := catalogs[key]
	return c, ok
}

// CatalogFor returns the catalog for locale, falling back to English
func CatalogFor(locale string) Catalog {
	if c, ok := Lookup(locale); ok {
		return c
	}
	return catalogs[DefaultLocale]
}

// Locales lists the available catalog names
func Locales() []string {
	return []string{"en", "zh"}
}

// Counter formats the task count
func (c Catalog) Counter(n int) string {
	if n == 1 {
		return fmt.Sprintf(c.counterOne, n)
	}
	return fmt.Sprintf(c.counterMany, n)
}

// Message returns a localised message for err. Time-range and empty-text
// validation failures have their own strings; everything else falls back to
// the error's user message.
func (c Catalog) Message(err error) string {
	if err == nil {
		return ""
	}
	if ve, ok := validation.AsValidationError(err); ok {
		switch {
		case ve.HasFieldError(validation.FieldText) && ve.Errors[0].Type == validation.ErrorTypeRequired:
			return c.EmptyText
		case ve.HasFieldError(validation.FieldTimeRange):
			return c.EndBeforeStart
		default:
			return ve.GetUserFriendlyMessage()
		}
	}
	return errors.GetUserMessage(err)
}
