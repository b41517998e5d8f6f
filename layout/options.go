package layout

import (
	"github.com/charmbracelet/log"

	"github.com/ByLCY/zlabel/config"
)

// BuildOptions 配置布局阶段所需的默认画布、日志与调试输出。
type BuildOptions struct {
	// Canvas 在标签未声明 width/height/dpi 时使用
	Canvas config.LabelConfig
	// Logger 接收绑定缺失等告警；为空时使用 zpl.Logger()
	Logger *log.Logger
	Debug  DebugOptions
}

// DebugOptions 控制调试相关输出。
type DebugOptions struct {
	States bool // 在结果中记录每个组件的最终状态
}
