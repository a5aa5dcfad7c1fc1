package metrics

import "strings"

var nameReplacer = strings.NewReplacer(" ", "_", ".", "_", "-", "_", "=", "_", "/", "_")

func FlattenName(name string) string {
	return nameReplacer.Replace(name)
}

func BuildFQName(names ...string) string {
	nonEmpty := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			nonEmpty = append(nonEmpty, n)
		}
	}
	return FlattenName(strings.Join(nonEmpty, "_"))
}
