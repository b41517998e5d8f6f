package layout

// 该文件定义布局结果与组件状态快照，供 CLI 输出与调试 JSON 共用。

import (
	"github.com/ByLCY/zlabel/label"
)

// Result 保存一个描述文件中全部标签的布局结果。
type Result struct {
	Labels []*Compiled `json:"labels"`
}

// Compiled 是单个标签：画布尺寸（打印点）与按声明顺序排列的组件。
type Compiled struct {
	Name   string       `json:"name"`
	Width  int          `json:"width"`
	Height int          `json:"height"`
	DPI    int          `json:"dpi"`
	Label  *label.Label `json:"-"`
	// 组件最终状态，仅在 DebugOptions.States 打开时填充
	Components []ComponentState `json:"components,omitempty"`
}

// ComponentState 记录组件在生成指令时的全部可见状态。
type ComponentState struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Size        int    `json:"size"`
	Alignment   string `json:"alignment,omitempty"`
	LabelWidth  int    `json:"labelWidth"`
	LabelHeight int    `json:"labelHeight"`

	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
	Thickness    int    `json:"thickness,omitempty"`
	Color        string `json:"color,omitempty"`
	CornerRadius int    `json:"cornerRadius,omitempty"`
	Direction    string `json:"direction,omitempty"`

	Text     string `json:"text,omitempty"`
	FontSize int    `json:"fontSize,omitempty"`

	Data          string          `json:"data,omitempty"`
	Length        int             `json:"length,omitempty"`
	ModuleWidth   int             `json:"moduleWidth,omitempty"`
	Orientation   string          `json:"orientation,omitempty"`
	TextPlacement string          `json:"textPlacement,omitempty"`
	Background    *ComponentState `json:"background,omitempty"`

	Instruction string `json:"instruction"`
}
