package layout

import (
	"encoding/json"
	"os"

	"github.com/ByLCY/zlabel/zpl"
)

// WriteDebugJSON 将布局结果输出为 JSON，便于调试或可视化。
func WriteDebugJSON(res *Result, path string) error {
	if res == nil {
		return nil
	}
	for _, c := range res.Labels {
		if c.Components == nil && c.Label != nil {
			c.Components = Snapshot(c)
		}
	}
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Snapshot 生成指令并记录标签内每个组件的状态。
func Snapshot(c *Compiled) []ComponentState {
	if c == nil || c.Label == nil {
		return nil
	}
	components := c.Label.Components()
	out := make([]ComponentState, 0, len(components))
	for _, comp := range components {
		comp.GenerateInstruction()
		out = append(out, Describe(comp))
	}
	return out
}

// Describe 读取组件的当前状态；不会重新生成指令。
func Describe(c zpl.Component) ComponentState {
	st := ComponentState{
		ID:          c.ID(),
		X:           c.X(),
		Y:           c.Y(),
		Size:        c.Size(),
		Instruction: c.Instruction(),
	}
	switch v := c.(type) {
	case *zpl.Text:
		describeBase(&st, &v.Positionable)
		st.Text = v.Text()
		st.FontSize = v.FontSize()
	case *zpl.Barcode:
		describeBase(&st, &v.Positionable)
		st.Data = v.Data()
		st.Length = v.Length()
		st.Height = v.Height()
		st.ModuleWidth = v.ModuleWidth()
		st.Orientation = string(v.Orientation())
		st.TextPlacement = v.TextPlacement().String()
		if bg := v.Background(); bg != nil {
			b := Describe(bg)
			st.Background = &b
		}
	case *zpl.Rectangle:
		describeShape(&st, &v.Shape)
		st.CornerRadius = v.CornerRadius()
	case *zpl.Ellipse:
		describeShape(&st, &v.Shape)
	case *zpl.DiagonalLine:
		describeShape(&st, &v.Shape)
		st.Direction = string(v.Direction())
	case *zpl.Raw:
		describeBase(&st, &v.Positionable)
	}
	return st
}

func describeBase(st *ComponentState, p *zpl.Positionable) {
	st.Kind = p.Kind()
	st.Alignment = string(p.Alignment())
	st.LabelWidth = p.LabelWidth()
	st.LabelHeight = p.LabelHeight()
}

func describeShape(st *ComponentState, s *zpl.Shape) {
	describeBase(st, &s.Positionable)
	st.Width = s.Width()
	st.Height = s.Height()
	st.Thickness = s.Thickness()
	st.Color = string(s.Color())
}
