package monitoring

import (
	"strings"
)

// getSegmentName turns a runtime function name such as
// "github.com/org/repo/services.(*finance).GetRollup" into "services.finance.GetRollup".
func getSegmentName(fullFuncName string) string {
	name := fullFuncName
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}

	parts := strings.Split(name, ".")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSuffix(strings.TrimPrefix(p, "("), ")")
		p = strings.TrimPrefix(p, "*")
		if p != "" {
			result = append(result, p)
		}
	}
	if len(result) == 0 {
		return fullFuncName
	}

	return strings.Join(result, ".")
}
