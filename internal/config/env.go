package config

import (
	"os"
	"regexp"
)

// envVarPattern matches ${NAME} and ${NAME:-fallback} references.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-([^}]*))?\}`)

// substituteEnvVars expands environment references in raw config
// bytes. An unset variable without a :-fallback keeps the literal
// reference, so a missing required value surfaces under its own name
// instead of as an empty string.
func substituteEnvVars(data []byte) []byte {
	return envVarPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		groups := envVarPattern.FindSubmatch(match)

		if value, ok := os.LookupEnv(string(groups[1])); ok {
			return []byte(value)
		}

		if len(groups[2]) > 0 {
			return groups[3]
		}

		return match
	})
}
