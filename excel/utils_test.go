package excel

import (
	"os"
	"strconv"
	"testing"
)

func mustFloat(t *testing.T, value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func writeFile(path string, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
