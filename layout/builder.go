package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ByLCY/zlabel/binding"
	"github.com/ByLCY/zlabel/config"
	"github.com/ByLCY/zlabel/dsl"
	"github.com/ByLCY/zlabel/label"
	"github.com/ByLCY/zlabel/zpl"
)

// 布局阶段的哨兵错误，可用 errors.Is 判断。
var (
	ErrUnknownComponent = errors.New("unknown component")
	ErrUnknownProperty  = errors.New("unknown property")
	ErrUnknownReference = errors.New("unknown reference")
	ErrDuplicateID      = errors.New("duplicate id")
	ErrInvalidValue     = errors.New("invalid value")
)

// Build 根据 DSL AST 为每个 label 段落生成组件并完成定位。
// 组件内的属性按书写顺序逐条调用对应的 setter。
func Build(doc *dsl.Document, data any, opts BuildOptions) (*Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("文档为空")
	}
	if len(doc.Labels) == 0 {
		return nil, fmt.Errorf("文档中缺少 label 段落")
	}
	if opts.Canvas == (config.LabelConfig{}) {
		opts.Canvas = config.Default().Label
	}
	logger := opts.Logger
	if logger == nil {
		logger = zpl.Logger()
	}

	res := &Result{}
	for _, section := range doc.Labels {
		compiled, err := buildLabel(section, data, opts.Canvas, logger)
		if err != nil {
			return nil, fmt.Errorf("label %s: %w", section.Name, err)
		}
		if opts.Debug.States {
			compiled.Components = Snapshot(compiled)
		}
		res.Labels = append(res.Labels, compiled)
	}
	return res, nil
}

// buildContext 保存单个标签构建过程中的共享状态。
type buildContext struct {
	width, height, dpi int
	data               any
	logger             *log.Logger
	label              *label.Label
	byID               map[string]zpl.Component
}

func buildLabel(section *dsl.LabelSection, data any, canvas config.LabelConfig, logger *log.Logger) (*Compiled, error) {
	width, height, dpi, err := resolveCanvas(section.Params, canvas)
	if err != nil {
		return nil, err
	}
	ctx := &buildContext{
		width:  width,
		height: height,
		dpi:    dpi,
		data:   data,
		logger: logger.With("label", section.Name),
		label:  label.NewDots(width, height, dpi),
		byID:   map[string]zpl.Component{},
	}
	ctx.label.Name = section.Name

	if section.Block == nil {
		return nil, fmt.Errorf("label 段落缺少内容")
	}
	for _, st := range section.Block.Statements {
		switch {
		case st.Command != nil:
			comp, err := ctx.handleComponent(st.Command)
			if err != nil {
				return nil, err
			}
			ctx.label.Add(comp)
		case st.Assignment != nil:
			return nil, fmt.Errorf("%s: label 层级不支持属性 %q: %w", st.Assignment.Pos, st.Assignment.Key, ErrUnknownProperty)
		case st.Text != nil:
			return nil, fmt.Errorf("label 层级不允许出现文本 %q", string(st.Text.Value))
		}
	}

	return &Compiled{
		Name:   section.Name,
		Width:  width,
		Height: height,
		DPI:    dpi,
		Label:  ctx.label,
	}, nil
}

// resolveCanvas 解析 `width 3in height 2in dpi 203` 形式的画布参数；
// 未声明的值取自默认配置（英寸）。dpmm 可代替 dpi。
func resolveCanvas(params []*dsl.Lexeme, canvas config.LabelConfig) (int, int, int, error) {
	_, attrs := parseArgs(params, false)
	dpi := canvas.DPI
	if v, ok := attrs["dpmm"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil || config.DotsPerMM[n] == 0 {
			return 0, 0, 0, fmt.Errorf("不支持的 dpmm %q: %w", v, ErrInvalidValue)
		}
		dpi = config.DotsPerMM[n]
	}
	if v, ok := attrs["dpi"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return 0, 0, 0, fmt.Errorf("dpi %q 必须为正整数: %w", v, ErrInvalidValue)
		}
		dpi = n
	}

	width := config.Dots(canvas.Width, dpi)
	height := config.Dots(canvas.Height, dpi)
	for key, dst := range map[string]*int{"width": &width, "height": &height} {
		v, ok := attrs[key]
		if !ok {
			continue
		}
		l, err := ParseLength(v)
		if err != nil || l.Unit == UnitPercent {
			return 0, 0, 0, fmt.Errorf("标签 %s %q 无效: %w", key, v, ErrInvalidValue)
		}
		*dst = l.Dots(dpi, 0)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, 0, fmt.Errorf("标签尺寸必须为正数: %dx%d: %w", width, height, ErrInvalidValue)
	}
	return width, height, dpi, nil
}

// handleComponent 创建组件、赋予 id 并按顺序应用块内语句。
func (ctx *buildContext) handleComponent(cmd *dsl.Command) (zpl.Component, error) {
	comp, err := newComponent(cmd.Name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cmd.Pos, err)
	}

	id, _ := parseArgs(cmd.Args, true)
	if id == "" {
		id = uuid.NewString()
	}
	if _, dup := ctx.byID[id]; dup {
		return nil, fmt.Errorf("%s: %s %q: %w", cmd.Pos, cmd.Name, id, ErrDuplicateID)
	}
	comp.(identified).SetID(id)
	comp.SetLabelSize(ctx.width, ctx.height)

	if cmd.Block != nil {
		for _, st := range cmd.Block.Statements {
			switch {
			case st.Text != nil:
				if err := ctx.applyContent(comp, string(st.Text.Value)); err != nil {
					return nil, fmt.Errorf("%s: %w", cmd.Pos, err)
				}
			case st.Assignment != nil:
				if err := ctx.applyProperty(comp, st.Assignment.Key, st.Assignment.Value); err != nil {
					return nil, fmt.Errorf("%s: %s %q: %w", st.Assignment.Pos, cmd.Name, id, err)
				}
			case st.Command != nil:
				return nil, fmt.Errorf("%s: 组件内不允许嵌套 %s", st.Command.Pos, st.Command.Name)
			}
		}
	}
	ctx.byID[id] = comp
	return comp, nil
}

type identified interface {
	SetID(id string)
}

func newComponent(name string) (zpl.Component, error) {
	switch strings.ToLower(name) {
	case "text":
		return zpl.NewText(), nil
	case "barcode", "code128":
		return zpl.NewBarcode(""), nil
	case "rect", "rectangle", "box":
		return zpl.NewRectangle(), nil
	case "ellipse", "circle":
		return zpl.NewEllipse(), nil
	case "line", "diagonal":
		return zpl.NewDiagonalLine(), nil
	case "raw":
		return zpl.NewRaw(""), nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownComponent)
	}
}

// applyContent 处理组件块内的文本字面量：文本内容、条码数据或原始指令。
func (ctx *buildContext) applyContent(comp zpl.Component, content string) error {
	content = ctx.interpolate(comp, content)
	switch c := comp.(type) {
	case *zpl.Text:
		c.SetText(content)
	case *zpl.Barcode:
		c.SetData(content)
	case *zpl.Raw:
		c.SetInstruction(content)
	default:
		return fmt.Errorf("%s 不接受文本内容", kindOf(comp))
	}
	return nil
}

func (ctx *buildContext) interpolate(comp zpl.Component, content string) string {
	if missing := binding.Missing(content, ctx.data); len(missing) > 0 {
		ctx.logger.Warn("绑定数据缺失", "component", comp.ID(), "paths", strings.Join(missing, ","))
	}
	return binding.Interpolate(content, ctx.data)
}

// applyProperty 将单条属性映射为一次 setter 调用。
func (ctx *buildContext) applyProperty(comp zpl.Component, key string, val *dsl.Value) error {
	key = strings.ToLower(key)
	handled, err := ctx.applyCommon(comp, key, val)
	if handled || err != nil {
		return err
	}
	switch c := comp.(type) {
	case *zpl.Text:
		handled, err = ctx.applyText(c, key, val)
	case *zpl.Barcode:
		handled, err = ctx.applyBarcode(c, key, val)
	case *zpl.Rectangle:
		handled, err = ctx.applyShape(c, key, val)
		if !handled && err == nil && (key == "radius" || key == "corner-radius") {
			var n int
			if n, err = ctx.integer(val); err == nil {
				c.SetCornerRadius(n)
			}
			handled = true
		}
	case *zpl.Ellipse:
		handled, err = ctx.applyShape(c, key, val)
	case *zpl.DiagonalLine:
		handled, err = ctx.applyShape(c, key, val)
		if !handled && err == nil && key == "direction" {
			c.SetDirection(zpl.DiagonalDirection(valueToString(val)))
			handled = true
		}
	}
	if err != nil {
		return err
	}
	if !handled {
		return fmt.Errorf("%s 不支持属性 %q: %w", kindOf(comp), key, ErrUnknownProperty)
	}
	return nil
}

type positioner interface {
	SetX(x int)
	SetY(y int)
}

// applyCommon 处理所有组件共有的定位属性。
func (ctx *buildContext) applyCommon(comp zpl.Component, key string, val *dsl.Value) (bool, error) {
	switch key {
	case "id":
		return true, fmt.Errorf("id 只能通过组件名声明: %w", ErrInvalidValue)
	case "x":
		n, err := ctx.length(val, ctx.width)
		if err == nil {
			comp.(positioner).SetX(n)
		}
		return true, err
	case "y":
		n, err := ctx.length(val, ctx.height)
		if err == nil {
			comp.(positioner).SetY(n)
		}
		return true, err
	case "align", "alignment":
		a, ok := zpl.ParseAlignment(valueToString(val))
		if !ok {
			ctx.logger.Warn("忽略未知对齐方式", "component", comp.ID(), "value", valueToString(val))
			return true, nil
		}
		comp.SetAlignment(a)
		return true, nil
	case "margin-left", "margin-right":
		n, err := ctx.length(val, ctx.width)
		if err == nil {
			if key == "margin-left" {
				comp.SetMarginLeft(n)
			} else {
				comp.SetMarginRight(n)
			}
		}
		return true, err
	case "margin-top", "margin-bottom":
		n, err := ctx.length(val, ctx.height)
		if err == nil {
			if key == "margin-top" {
				comp.SetMarginTop(n)
			} else {
				comp.SetMarginBottom(n)
			}
		}
		return true, err
	case "margin":
		n, err := ctx.length(val, ctx.width)
		if err == nil {
			comp.SetMargin(n)
		}
		return true, err
	case "margins":
		vals := valueToStringSlice(val)
		if len(vals) != 4 {
			return true, fmt.Errorf("margins 需要 4 个值 [left, top, right, bottom]: %w", ErrInvalidValue)
		}
		refs := []int{ctx.width, ctx.height, ctx.width, ctx.height}
		m := make([]int, 4)
		for i, v := range vals {
			n, err := ctx.lengthString(v, refs[i])
			if err != nil {
				return true, err
			}
			m[i] = n
		}
		comp.SetMargins(m[0], m[1], m[2], m[3])
		return true, nil
	case "below":
		ref := valueToString(val)
		other, ok := ctx.byID[ref]
		if !ok {
			return true, fmt.Errorf("below %q: %w", ref, ErrUnknownReference)
		}
		comp.BelowOf(other)
		return true, nil
	}
	return false, nil
}

type shaper interface {
	SetWidth(int)
	SetHeight(int)
	SetThickness(int)
	SetColor(zpl.Color)
	FillBackground()
}

func (ctx *buildContext) applyShape(s shaper, key string, val *dsl.Value) (bool, error) {
	switch key {
	case "width":
		n, err := ctx.length(val, ctx.width)
		if err == nil {
			s.SetWidth(n)
		}
		return true, err
	case "height":
		n, err := ctx.length(val, ctx.height)
		if err == nil {
			s.SetHeight(n)
		}
		return true, err
	case "thickness":
		n, err := ctx.length(val, ctx.width)
		if err == nil {
			s.SetThickness(n)
		}
		return true, err
	case "color":
		s.SetColor(zpl.Color(valueToString(val)))
		return true, nil
	case "fill":
		on, err := ctx.boolean(val)
		if err == nil && on {
			s.FillBackground()
		}
		return true, err
	}
	return false, nil
}

var fontPresets = map[string]int{
	"small":   zpl.FontSmall,
	"normal":  zpl.FontNormal,
	"large":   zpl.FontLarge,
	"xlarge":  zpl.FontXLarge,
	"xxlarge": zpl.FontXXLarge,
}

func (ctx *buildContext) applyText(t *zpl.Text, key string, val *dsl.Value) (bool, error) {
	switch key {
	case "text":
		t.SetText(ctx.interpolate(t, valueToString(val)))
		return true, nil
	case "size", "font-size":
		if n, ok := fontPresets[strings.ToLower(valueToString(val))]; ok {
			t.SetFontSize(n)
			return true, nil
		}
		n, err := ctx.length(val, ctx.height)
		if err == nil {
			t.SetFontSize(n)
		}
		return true, err
	case "special-chars", "special-characters":
		on, err := ctx.boolean(val)
		if err == nil {
			t.SetSpecialCharacterSupport(on)
		}
		return true, err
	}
	return false, nil
}

func (ctx *buildContext) applyBarcode(b *zpl.Barcode, key string, val *dsl.Value) (bool, error) {
	switch key {
	case "data":
		b.SetData(ctx.interpolate(b, valueToString(val)))
		return true, nil
	case "module", "module-width":
		n, err := ctx.integer(val)
		if err == nil {
			b.SetModuleWidth(n)
		}
		return true, err
	case "height":
		n, err := ctx.length(val, ctx.height)
		if err == nil {
			b.SetHeight(n)
		}
		return true, err
	case "text-placement", "interpretation":
		p, ok := zpl.ParseTextPlacement(valueToString(val))
		if !ok {
			return true, fmt.Errorf("text-placement %q: %w", valueToString(val), ErrInvalidValue)
		}
		b.SetTextPlacement(p)
		return true, nil
	case "check-digit":
		on, err := ctx.boolean(val)
		if err == nil {
			b.SetCheckDigit(on)
		}
		return true, err
	case "mode":
		b.SetMode(zpl.BarcodeMode(valueToString(val)))
		return true, nil
	case "orientation":
		o, ok := zpl.ParseOrientation(valueToString(val))
		if !ok {
			return true, fmt.Errorf("orientation %q: %w", valueToString(val), ErrInvalidValue)
		}
		b.SetOrientation(o)
		return true, nil
	case "background":
		// background: white | [white, paddingX, paddingY]
		vals := valueToStringSlice(val)
		if len(vals) == 0 || len(vals) > 3 {
			return true, fmt.Errorf("background 需要 [color, paddingX, paddingY]: %w", ErrInvalidValue)
		}
		pads := [2]int{}
		refs := [2]int{ctx.width, ctx.height}
		for i, v := range vals[1:] {
			n, err := ctx.lengthString(v, refs[i])
			if err != nil {
				return true, err
			}
			pads[i] = n
		}
		b.ApplyBackground(zpl.Color(vals[0]), pads[0], pads[1])
		return true, nil
	}
	return false, nil
}

func (ctx *buildContext) length(val *dsl.Value, reference int) (int, error) {
	return ctx.lengthString(valueToString(val), reference)
}

func (ctx *buildContext) lengthString(v string, reference int) (int, error) {
	l, err := ParseLength(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	return l.Dots(ctx.dpi, reference), nil
}

func (ctx *buildContext) integer(val *dsl.Value) (int, error) {
	n, err := strconv.Atoi(valueToString(val))
	if err != nil {
		return 0, fmt.Errorf("需要整数 %q: %w", valueToString(val), ErrInvalidValue)
	}
	return n, nil
}

func (ctx *buildContext) boolean(val *dsl.Value) (bool, error) {
	s := strings.ToLower(valueToString(val))
	switch s {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("需要布尔值 %q: %w", s, ErrInvalidValue)
	}
	return b, nil
}

func kindOf(comp zpl.Component) string {
	if k, ok := comp.(interface{ Kind() string }); ok {
		return k.Kind()
	}
	return fmt.Sprintf("%T", comp)
}

// parseArgs 读取命令参数：allowName 时首个 Ident 视为组件名，其余按 key value 成对解析。
func parseArgs(args []*dsl.Lexeme, allowName bool) (string, map[string]string) {
	result := map[string]string{}
	if len(args) == 0 {
		return "", result
	}

	cursor := 0
	var name string
	if allowName && (args[0].Type == "Ident" || args[0].Type == "String") {
		name = args[0].Value
		cursor = 1
	}

	for cursor < len(args)-1 {
		key := strings.ToLower(args[cursor].Value)
		val := args[cursor+1].Value
		result[key] = val
		cursor += 2
	}

	return name, result
}

func valueToString(val *dsl.Value) string {
	if val == nil {
		return ""
	}
	switch {
	case val.String != nil:
		return string(*val.String)
	case val.Number != nil:
		return *val.Number
	case val.Expr != nil:
		return joinLexemes(val.Expr.Parts)
	case val.Array != nil:
		return strings.Join(valueToStringSlice(val), ",")
	default:
		return ""
	}
}

// joinLexemes rebuilds a bare-word value. Tokens that were apart in the
// source are joined by one space.
func joinLexemes(parts []*dsl.Lexeme) string {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			prev := parts[i-1]
			if p.Pos.Offset > prev.Pos.Offset+len(prev.Raw) {
				b.WriteByte(' ')
			}
		}
		b.WriteString(p.Value)
	}
	return b.String()
}

func valueToStringSlice(val *dsl.Value) []string {
	if val == nil {
		return nil
	}
	if val.Array == nil {
		if s := valueToString(val); s != "" {
			return []string{s}
		}
		return nil
	}
	out := make([]string, 0, len(val.Array.Values))
	for _, v := range val.Array.Values {
		out = append(out, valueToString(v))
	}
	return out
}
