// SPDX-License-Identifier: MPL-2.0

// Package paint normalizes the paint values a host attaches to layers.
//
// Hosts describe colors loosely: 7-character "#RRGGBB" strings, 9-character
// "#RRGGBBAA" strings, or any other opaque token. NormalizeColor turns each of
// them into a canonical Color (upper-case "#RRGGBB" plus an opacity rounded to
// two decimals). NormalizeGradient does the same for gradient specifications,
// normalizing every stop through NormalizeColor.
//
// Neither normalizer fails. Malformed input degrades to a best-effort value
// or reports "no contribution" through its boolean result, so a single bad
// paint never aborts a traversal of the surrounding layer tree.
package paint
