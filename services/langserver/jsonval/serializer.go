// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package jsonval

import (
	"fmt"
	"strconv"
	"strings"
)

// Serialize renders a value as compact JSON text. It is total: every value
// serializes. Output is not byte-identical to arbitrary input (whitespace is
// dropped, numeric formatting may differ) but re-parsing the output yields a
// structurally equal value.
func Serialize(v *Value) string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

func writeValue(b *strings.Builder, v *Value) {
	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		if v.b {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindNumber:
		b.WriteString(strconv.FormatFloat(v.num, 'g', -1, 64))
	case KindString:
		writeString(b, v.str)
	case KindArray:
		b.WriteByte('[')
		for i := range v.arr {
			if i > 0 {
				b.WriteByte(',')
			}
			writeValue(b, &v.arr[i])
		}
		b.WriteByte(']')
	case KindObject:
		b.WriteByte('{')
		entries := v.obj.Entries()
		for i := range entries {
			if i > 0 {
				b.WriteByte(',')
			}
			writeString(b, entries[i].Key)
			b.WriteByte(':')
			writeValue(b, &entries[i].Value)
		}
		b.WriteByte('}')
	}
}

// writeString re-escapes a code-unit string. The eight named escapes are
// emitted by name; printable ASCII passes through; every other code unit
// becomes \u followed by four hex digits, which keeps the output pure ASCII
// and guarantees the byte-oriented parser reads it back unchanged.
func writeString(b *strings.Builder, s Str) {
	b.WriteByte('"')
	for _, u := range s {
		switch u {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '/':
			b.WriteString(`\/`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if u >= 0x20 && u < 0x7f {
				b.WriteByte(byte(u))
			} else {
				fmt.Fprintf(b, `\u%04x`, u)
			}
		}
	}
	b.WriteByte('"')
}
