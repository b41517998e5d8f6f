package layout

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ByLCY/zlabel/dsl"
	"github.com/ByLCY/zlabel/zpl"
)

func mustBuild(t *testing.T, src string, data any, opts BuildOptions) *Result {
	t.Helper()
	doc, err := dsl.ParseString(src)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	res, err := Build(doc, data, opts)
	if err != nil {
		t.Fatalf("布局失败: %v", err)
	}
	return res
}

func buildErr(t *testing.T, src string) error {
	t.Helper()
	doc, err := dsl.ParseString(src)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	_, err = Build(doc, nil, BuildOptions{})
	if err == nil {
		t.Fatalf("期望布局失败")
	}
	return err
}

// TestBuildShapeAndText 校验属性按顺序应用以及 below 引用。
func TestBuildShapeAndText(t *testing.T) {
	src := `
label Demo width 400 height 300 dpi 203 {
  rect frame {
    width: 100
    height: 50
    thickness: 2
    align: center
  }
  text title {
    "Hello ${name}"
    below: frame
    align: center
  }
}
`
	res := mustBuild(t, src, map[string]any{"name": "Ada"}, BuildOptions{})
	if len(res.Labels) != 1 {
		t.Fatalf("标签数量错误: %d", len(res.Labels))
	}
	c := res.Labels[0]
	if c.Name != "Demo" || c.Width != 400 || c.Height != 300 || c.DPI != 203 {
		t.Fatalf("画布错误: %+v", c)
	}
	want := []string{
		"^FO150,0^GB100,50,2,B,0^FS",
		`^FO0,52^A0,30^FB400,1,0,C,0^FH_^FDHello Ada\&^FS`,
	}
	if diff := cmp.Diff(want, strings.Split(c.Label.Code(), "\n")); diff != "" {
		t.Fatalf("指令不一致 (-want +got):\n%s", diff)
	}
}

// TestBuildBarcodeBackground 覆盖英寸画布、数据绑定与条码背景。
func TestBuildBarcodeBackground(t *testing.T) {
	src := `
label Ship width 4in height 6in dpi 203 {
  barcode code {
    data: "${order.id}"
    module: 2
    text-placement: none
    align: center
    margin-top: 20
    background: [white, 10, 10]
  }
}
`
	data := map[string]any{"order": map[string]any{"id": "1234546789"}}
	res := mustBuild(t, src, data, BuildOptions{})
	c := res.Labels[0]
	if c.Width != 812 || c.Height != 1218 {
		t.Fatalf("画布换算错误: %dx%d", c.Width, c.Height)
	}
	want := "^FO252,10^GB308,80,40,W,0^FS\n^FO262,20^BY 2^BCN,60,N,N,N,N^FD1234546789^FS"
	if got := c.Label.Code(); got != want {
		t.Fatalf("条码指令错误:\n got=%q\nwant=%q", got, want)
	}
	comp, ok := c.Label.Find("code")
	if !ok {
		t.Fatalf("未找到组件 code")
	}
	bc := comp.(*zpl.Barcode)
	if bc.Background() == nil || bc.Background().ID() != "code-background" {
		t.Fatalf("背景未生成: %+v", bc.Background())
	}
}

func TestBuildPercentAndPresets(t *testing.T) {
	src := `
label P width 400 height 200 {
  text {
    "x"
    x: 50%
    y: 10%
    size: large
    special-chars: no
    align: right
  }
  line slash {
    width: 40
    height: 20
    direction: left
  }
  raw {
    "^FO0,0^GB10,10,10^FS"
  }
}
`
	res := mustBuild(t, src, nil, BuildOptions{})
	want := []string{
		`^FO200,20^A0,50^FB400,1,0,R,0^FDx\&^FS`,
		"^FO0,0^GD40,20,1,B,L^FS",
		"^FO0,0^GB10,10,10^FS",
	}
	if diff := cmp.Diff(want, strings.Split(res.Labels[0].Label.Code(), "\n")); diff != "" {
		t.Fatalf("指令不一致 (-want +got):\n%s", diff)
	}
	// 未命名组件会获得生成的 id
	if id := res.Labels[0].Label.Components()[0].ID(); id == "" {
		t.Fatalf("缺少自动生成的 id")
	}
}

// TestBuildBareWordKeepsSpaces 校验裸词值保留词间空格。
func TestBuildBareWordKeepsSpaces(t *testing.T) {
	src := `
label W width 400 height 300 {
  text t {
    text: Hello big world
    align: center
  }
  text u {
    text: a-b+c
  }
}
`
	res := mustBuild(t, src, nil, BuildOptions{})
	want := []string{
		`^FO0,0^A0,30^FB400,1,0,C,0^FH_^FDHello big world\&^FS`,
		`^FO0,0^A0,30^FB400,1,0,L,0^FH_^FDa-b+c\&^FS`,
	}
	if diff := cmp.Diff(want, strings.Split(res.Labels[0].Label.Code(), "\n")); diff != "" {
		t.Fatalf("指令不一致 (-want +got):\n%s", diff)
	}
}

// TestBuildOversizedMarginKeepsFootprint 校验过大的下边距不会让后续组件上移。
func TestBuildOversizedMarginKeepsFootprint(t *testing.T) {
	src := `
label M width 400 height 300 {
  rect r {
    height: 10; margin-bottom: 30
  }
  text u {
    "below"
    below: r
  }
}
`
	res := mustBuild(t, src, nil, BuildOptions{})
	want := []string{
		"^FO0,0^GB0,0,1,B,0^FS",
		`^FO0,1^A0,30^FB400,1,0,L,0^FH_^FDbelow\&^FS`,
	}
	if diff := cmp.Diff(want, strings.Split(res.Labels[0].Label.Code(), "\n")); diff != "" {
		t.Fatalf("指令不一致 (-want +got):\n%s", diff)
	}
}

func TestBuildDefaultsCanvas(t *testing.T) {
	res := mustBuild(t, "label D {\n}\n", nil, BuildOptions{})
	c := res.Labels[0]
	if c.Width != 812 || c.Height != 1218 || c.DPI != 203 {
		t.Fatalf("默认画布错误: %dx%d@%d", c.Width, c.Height, c.DPI)
	}

	res = mustBuild(t, "label M width 50mm height 25mm dpmm 12 {\n}\n", nil, BuildOptions{})
	c = res.Labels[0]
	if c.DPI != 305 || c.Width != 600 || c.Height != 300 {
		t.Fatalf("dpmm 画布错误: %dx%d@%d", c.Width, c.Height, c.DPI)
	}
}

func TestBuildMultipleLabels(t *testing.T) {
	src := "label A width 100 height 100 {\n}\nlabel B width 200 height 100 {\n}\n"
	res := mustBuild(t, src, nil, BuildOptions{Debug: DebugOptions{States: true}})
	if len(res.Labels) != 2 || res.Labels[1].Name != "B" || res.Labels[1].Width != 200 {
		t.Fatalf("多标签结果错误: %+v", res.Labels)
	}
}

func TestBuildDebugStates(t *testing.T) {
	src := `
label S width 300 height 300 {
  ellipse dot {
    width: 20
    height: 20
    fill: true
  }
}
`
	res := mustBuild(t, src, nil, BuildOptions{Debug: DebugOptions{States: true}})
	states := res.Labels[0].Components
	if len(states) != 1 {
		t.Fatalf("状态数量错误: %d", len(states))
	}
	s := states[0]
	if s.ID != "dot" || s.Kind != "ellipse" || s.Thickness != 10 || s.Instruction != "^FO0,0^GE20,20,10,B^FS" {
		t.Fatalf("状态错误: %+v", s)
	}
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"unknown component", "label X {\n  qrcode q {\n  }\n}\n", ErrUnknownComponent},
		{"unknown property", "label X {\n  text t {\n    rotation: 90\n  }\n}\n", ErrUnknownProperty},
		{"duplicate id", "label X {\n  text t {\n  }\n  rect t {\n  }\n}\n", ErrDuplicateID},
		{"unknown reference", "label X {\n  text t {\n    below: nothing\n  }\n}\n", ErrUnknownReference},
		{"invalid length", "label X {\n  rect r {\n    width: wide\n  }\n}\n", ErrInvalidValue},
		{"invalid canvas", "label X width 0 height 10 {\n}\n", ErrInvalidValue},
		{"margins arity", "label X {\n  rect r {\n    margins: [1, 2]\n  }\n}\n", ErrInvalidValue},
	}
	for _, c := range cases {
		err := buildErr(t, c.src)
		if !errors.Is(err, c.want) {
			t.Fatalf("%s: 错误类型不符: %v", c.name, err)
		}
	}
}

func TestBuildNilDocument(t *testing.T) {
	if _, err := Build(nil, nil, BuildOptions{}); err == nil {
		t.Fatalf("期望空文档报错")
	}
}
