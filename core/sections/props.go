package sections

import "github.com/mzinga/pageforge/core/layout"

// Prop bags come off the wire as generic JSON, so values need coercion:
// numbers arrive as float64, lists as []interface{}.

func strProp(p layout.Props, key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

func intProp(p layout.Props, key string, fallback int) int {
	switch v := p[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return fallback
}

func floatProp(p layout.Props, key string, fallback float64) float64 {
	switch v := p[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return fallback
}

func listProp(p layout.Props, key string) []layout.Props {
	switch vs := p[key].(type) {
	case []layout.Props:
		return vs
	case []interface{}:
		items := make([]layout.Props, 0, len(vs))
		for _, v := range vs {
			switch m := v.(type) {
			case map[string]interface{}:
				items = append(items, layout.Props(m))
			case layout.Props:
				items = append(items, m)
			}
		}
		return items
	}
	return nil
}
