// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trends

import "strings"

var resolutions = []string{"COUNTRY", "REGION", "CITY", "DMA"}

// FormatResolution returns s uppercased when it names a known geographic
// resolution, ignoring case, and "" otherwise.
func FormatResolution(s string) string {
	upper := strings.ToUpper(s)
	for _, r := range resolutions {
		if r == upper {
			return r
		}
	}
	return ""
}
