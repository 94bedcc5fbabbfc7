// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package formatter turns raw keystrokes into a card number ready for
// display: non-digits are dropped and a separator is inserted after every
// fourth digit.
//
// Format is a pure total function. It does not cap the length of its input;
// limiting how much the user may type is left to the presentation layer.
package formatter
