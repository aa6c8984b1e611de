package catalog

import "strconv"

// Odoo encodes missing values as false and many2one fields as [id, "name"];
// these helpers read XML-RPC replies decoded into interface{}.

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func toString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func many2oneID(v interface{}) (int64, bool) {
	pair, ok := v.([]interface{})
	if !ok || len(pair) == 0 {
		return 0, false
	}
	return toInt64(pair[0])
}

func toRecords(reply interface{}) []map[string]interface{} {
	raw, ok := reply.([]interface{})
	if !ok {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(raw))
	for _, r := range raw {
		if m, ok := r.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}
