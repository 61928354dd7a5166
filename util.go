package main

import (
	"io"
	"path/filepath"
	"sort"
	"strings"
)

func readAll(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}

func fileNameFromPath(path string) string {
	name := filepath.Base(path)
	if name != "." && name != string(filepath.Separator) && name != "" {
		return name
	}
	return path
}

// safeFileComponent replaces characters that are awkward in file names
func safeFileComponent(s string) string {
	s = strings.TrimSuffix(s, filepath.Ext(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, s)
}

func clamp(value, lower, upper int) int {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}

func visibleRange(start, window, length int) (int, int) {
	start = clamp(start, 0, length)
	end := min(start+window, length)
	return start, end
}

func copyMap(m map[string]int) map[string]int {
	result := make(map[string]int, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}

func sortedCountKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedFieldKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
