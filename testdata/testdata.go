package testdata

import (
	"bufio"
	"os"
)

// LoadTestFile reads the fixture at path and returns its non-empty lines.
// The word fixtures are sorted in byte order and hold no duplicates, so
// tests can compare enumeration output against them directly.
func LoadTestFile(path string) []string {
	file, err := os.Open(path)
	if err != nil {
		panic("testdata: cannot open " + path)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
