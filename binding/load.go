package binding

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load 读取绑定数据文件，按扩展名选择 JSON、YAML 或 TOML 解码。
func Load(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取数据文件 %s 失败: %w", path, err)
	}
	data, err := Decode(filepath.Ext(path), raw)
	if err != nil {
		return nil, fmt.Errorf("解析数据文件 %s 失败: %w", path, err)
	}
	return data, nil
}

// Decode 按格式（扩展名，可带点）解码数据。
func Decode(format string, raw []byte) (any, error) {
	var data any
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "json":
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, err
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, err
		}
	case "toml":
		var m map[string]any
		if _, err := toml.Decode(string(raw), &m); err != nil {
			return nil, err
		}
		data = m
	default:
		return nil, fmt.Errorf("不支持的数据格式: %q", format)
	}
	return data, nil
}
