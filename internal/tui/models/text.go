// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// DisplayName returns name, or a title-cased rendition of key when the
// service sent no name. "linkedList" and "linked_list" both read "Linked List".
func DisplayName(key, name string) string {
	if name != "" {
		return name
	}

	var words strings.Builder

	for i, r := range key {
		switch {
		case r == '_' || r == '-':
			words.WriteRune(' ')
		case unicode.IsUpper(r) && i > 0:
			words.WriteRune(' ')
			words.WriteRune(r)
		default:
			words.WriteRune(r)
		}
	}

	return titleCaser.String(strings.Join(strings.Fields(words.String()), " "))
}

// Truncate cuts s to width terminal cells.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}

	return runewidth.Truncate(s, width, "…")
}

// PadRight pads s with spaces to width terminal cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	return strconv.Itoa(n) + " " + noun + "s"
}
