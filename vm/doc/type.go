package luadoc

import (
	"fmt"
	"strings"
)

const (
	String = "string"
	Number = "number"
)

func TableLiteral(keysAndValues ...string) string {
	if len(keysAndValues)%2 != 0 {
		panic("keysAndValues must be even")
	}

	var pairs []string
	for i := 0; i < len(keysAndValues); i += 2 {
		key := keysAndValues[i]
		value := keysAndValues[i+1]
		pairs = append(pairs, fmt.Sprintf("%s: %s", key, value))
	}

	return "{" + strings.Join(pairs, ", ") + "}"
}
