// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strconv"
	"strings"
	"unicode"
)

// isSeparator reports whether r separates words. Besides unicode.IsSpace it
// treats the ASCII file, group, record and unit separators as whitespace.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Fields splits s around runs of whitespace, see [isSeparator].
func Fields(s string) []string {
	return strings.FieldsFunc(s, isSeparator)
}

// CountWords decodes content as UTF-8, silently dropping invalid byte
// sequences, and returns the number of whitespace-separated tokens.
func CountWords(content []byte) int64 {
	text := strings.ToValidUTF8(string(content), "")

	var (
		count  int64
		inWord bool
	)
	for _, r := range text {
		if isSeparator(r) {
			inWord = false
			continue
		}
		if !inWord {
			count++
			inWord = true
		}
	}

	return count
}

// FormatWordCount renders a stored word count for display: "N/A" when the
// count is absent, "{n} words" otherwise.
func FormatWordCount(count *int64) string {
	if count == nil {
		return "N/A"
	}

	return strconv.FormatInt(*count, 10) + " words"
}
