// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultFileName replaces a file name that sanitizes to nothing.
const DefaultFileName = "file"

var unsafeFileNameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFileName turns a client supplied file name into one that is safe
// to use as the last segment of an object key.
//
// The name is NFKD-normalized and reduced to ASCII, path separators and
// whitespace runs become a single "_", every character outside
// [A-Za-z0-9_.-] is dropped and leading/trailing dots and underscores are
// trimmed. "../../etc/passwd" becomes "etc_passwd", "My résumé.txt" becomes
// "My_resume.txt".
//
// A name with nothing left after sanitizing yields [DefaultFileName].
func SanitizeFileName(name string) string {
	decomposed := norm.NFKD.String(name)

	var ascii strings.Builder
	ascii.Grow(len(decomposed))
	for _, r := range decomposed {
		if r >= 0x80 {
			continue
		}
		if r == '/' {
			r = ' '
		}
		ascii.WriteRune(r)
	}

	joined := strings.Join(Fields(ascii.String()), "_")
	cleaned := strings.Trim(unsafeFileNameChars.ReplaceAllString(joined, ""), "._")
	if cleaned == "" {
		return DefaultFileName
	}

	return cleaned
}
