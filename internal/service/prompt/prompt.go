// Package prompt 实现提示词模板的占位符替换
// 纯函数，不依赖存储与网络
package prompt

import (
	"fmt"
	"strconv"
	"strings"
)

// 布尔值的文案（日本語 UI 固定文言）
const (
	BoolTrue  = "はい"
	BoolFalse = "いいえ"
)

// OutputFormatHeading 输出格式附加段的标题行
const OutputFormatHeading = "【出力形式】"

// Render 将 inputs 中每个 key 的 {{key}} 占位符替换为其字符串形式
// 模板中没有对应 key 的占位符原样保留；花括号不配对也不报错
func Render(template string, inputs map[string]interface{}) string {
	result := template
	for key, value := range inputs {
		placeholder := "{{" + key + "}}"
		result = strings.ReplaceAll(result, placeholder, FormatValue(value))
	}
	return result
}

// FormatValue 将字段值转为模板中的字符串形式
// bool 转为固定文言，序列以 ", " 连接，空值变为空串
func FormatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case bool:
		if v {
			return BoolTrue
		}
		return BoolFalse
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, FormatValue(item))
		}
		return strings.Join(parts, ", ")
	case float64:
		// JSON 数字统一解码为 float64
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}

// AppendOutputFormat 在渲染结果末尾追加输出格式指定段
// format 为空时原样返回
func AppendOutputFormat(rendered, format string) string {
	if format == "" {
		return rendered
	}
	return rendered + "\n\n" + OutputFormatHeading + "\n" + format
}
