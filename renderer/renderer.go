package renderer

import "github.com/ByLCY/zlabel/layout"

// Renderer 将布局结果输出为打印机可接收的数据。
// Render 返回生成的字节（例如完整的 ZPL 文档）以及可能的错误。
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
}
