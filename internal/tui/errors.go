// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

// humanizeServiceDetail turns a health probe error into a short status
// line. Network failures collapse to one message.
func humanizeServiceDetail(detail string) string {
	s := strings.ToLower(detail)
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "network is down or the service is unreachable"
	}

	return detail
}
