package envutils

import (
	"log"
	"os"
	"strconv"
)

func Env(variableName, defaultValue string) string {
	if variable := os.Getenv(variableName); variable != "" {
		log.Printf("[%s]: %s", variableName, variable)
		return variable
	}
	log.Printf("[%s_DEFAULT]: %s", variableName, defaultValue)
	return defaultValue
}

// EnvSecret behaves like Env but never logs the resolved value.
func EnvSecret(variableName string) string {
	if variable := os.Getenv(variableName); variable != "" {
		log.Printf("[%s]: <set>", variableName)
		return variable
	}
	log.Printf("[%s]: <unset>", variableName)
	return ""
}

func EnvInt(variableName string, defaultValue int) int {
	variable := os.Getenv(variableName)
	if variable == "" {
		log.Printf("[%s_DEFAULT]: %d", variableName, defaultValue)
		return defaultValue
	}
	value, err := strconv.Atoi(variable)
	if err != nil {
		log.Printf("[%s_DEFAULT]: %d. Not a number: %s", variableName, defaultValue, variable)
		return defaultValue
	}
	log.Printf("[%s]: %d", variableName, value)
	return value
}
