// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package jsonval implements the self-contained JSON value model used by the
// jaktls wire layer, together with a strict recursive-descent parser and a
// compact serializer.
//
// The model deliberately does not use encoding/json. The base protocol needs
// three properties the standard library cannot give us:
//
//   - Strings are sequences of 16-bit code units (the LSP wire model), not
//     UTF-8 byte strings. A \uXXXX escape is one code unit; surrogate halves
//     are stored as-is and never combined.
//   - Objects preserve insertion order and reject duplicate keys, and they
//     support destructive field removal so message validation can drain an
//     object while checking every field it recognizes.
//   - Parsing is all-or-nothing: the first grammar violation aborts the whole
//     parse with no partial tree and no diagnostics.
//
// # Components
//
//   - Value: closed tagged union over the JSON kinds, with kind predicates
//     and panic-on-mismatch accessors
//   - Object: insertion-ordered association list with Set/HasKey/Expect/Remove
//   - Parser: single-pass byte-cursor parser (ParseSingle for the common case)
//   - Serialize: total Value -> compact JSON text
//
// # Concurrency
//
// Nothing in this package blocks or shares state. Concurrent calls are safe
// as long as each call operates on its own source buffer or Value tree.
//
// # Example
//
//	v, err := jsonval.ParseSingle(`{"jsonrpc":"2.0","id":1,"method":"initialize"}`)
//	if err != nil {
//	    return err
//	}
//	obj := v.AsObject()
//	id, _ := obj.Remove(jsonval.NewStr("id"))
package jsonval
