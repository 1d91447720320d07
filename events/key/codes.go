// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key contains the physical key codes reported by
// keyboard events.
package key

import (
	"fmt"
	"strings"
)

// Codes are the physical key codes, independent of the
// keyboard layout and modifiers. The values follow the
// USB HID usage table, as in most windowing systems.
type Codes int32

const (
	CodeUnknown Codes = 0

	CodeA Codes = 4
	CodeB Codes = 5
	CodeC Codes = 6
	CodeD Codes = 7
	CodeE Codes = 8
	CodeF Codes = 9
	CodeG Codes = 10
	CodeH Codes = 11
	CodeI Codes = 12
	CodeJ Codes = 13
	CodeK Codes = 14
	CodeL Codes = 15
	CodeM Codes = 16
	CodeN Codes = 17
	CodeO Codes = 18
	CodeP Codes = 19
	CodeQ Codes = 20
	CodeR Codes = 21
	CodeS Codes = 22
	CodeT Codes = 23
	CodeU Codes = 24
	CodeV Codes = 25
	CodeW Codes = 26
	CodeX Codes = 27
	CodeY Codes = 28
	CodeZ Codes = 29

	Code1 Codes = 30
	Code2 Codes = 31
	Code3 Codes = 32
	Code4 Codes = 33
	Code5 Codes = 34
	Code6 Codes = 35
	Code7 Codes = 36
	Code8 Codes = 37
	Code9 Codes = 38
	Code0 Codes = 39

	CodeReturnEnter Codes = 40
	CodeEscape      Codes = 41
	CodeBackspace   Codes = 42
	CodeTab         Codes = 43
	CodeSpacebar    Codes = 44

	CodeRightArrow Codes = 79
	CodeLeftArrow  Codes = 80
	CodeDownArrow  Codes = 81
	CodeUpArrow    Codes = 82

	CodeLeftControl  Codes = 224
	CodeLeftShift    Codes = 225
	CodeLeftAlt      Codes = 226
	CodeLeftMeta     Codes = 227
	CodeRightControl Codes = 228
	CodeRightShift   Codes = 229
	CodeRightAlt     Codes = 230
	CodeRightMeta    Codes = 231
)

var codeNames = map[Codes]string{
	CodeUnknown: "Unknown",

	CodeReturnEnter: "ReturnEnter",
	CodeEscape:      "Escape",
	CodeBackspace:   "Backspace",
	CodeTab:         "Tab",
	CodeSpacebar:    "Spacebar",

	CodeRightArrow: "RightArrow",
	CodeLeftArrow:  "LeftArrow",
	CodeDownArrow:  "DownArrow",
	CodeUpArrow:    "UpArrow",

	CodeLeftControl:  "LeftControl",
	CodeLeftShift:    "LeftShift",
	CodeLeftAlt:      "LeftAlt",
	CodeLeftMeta:     "LeftMeta",
	CodeRightControl: "RightControl",
	CodeRightShift:   "RightShift",
	CodeRightAlt:     "RightAlt",
	CodeRightMeta:    "RightMeta",
}

var nameCodes = map[string]Codes{}

func init() {
	for c := CodeA; c <= CodeZ; c++ {
		codeNames[c] = string(rune('A' + (c - CodeA)))
	}
	for c := Code1; c <= Code9; c++ {
		codeNames[c] = string(rune('1' + (c - Code1)))
	}
	codeNames[Code0] = "0"
	for c, nm := range codeNames {
		nameCodes[strings.ToLower(nm)] = c
	}
}

// String returns the name of the key code.
func (c Codes) String() string {
	if nm, ok := codeNames[c]; ok {
		return nm
	}
	return fmt.Sprintf("Codes(%d)", int32(c))
}

// SetString sets the key code from its name, ignoring case.
func (c *Codes) SetString(s string) error {
	nc, ok := nameCodes[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return fmt.Errorf("key.Codes.SetString: %q is not a valid key code", s)
	}
	*c = nc
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (c Codes) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Codes) UnmarshalText(text []byte) error {
	return c.SetString(string(text))
}
