package srsform

import "strings"

// OtherOption is the checkbox/select value that switches a field into
// free-text mode. It is a mode flag and never a data value.
const OtherOption = "Other"

// CollectChecked returns the trimmed checked values of a group without blanks
// or the "Other" sentinel, followed by the trimmed free-text value when it is
// non-empty.
// Callers pass "" for other when the group has no companion input.
func CollectChecked(checked []string, other string) []string {
	out := make([]string, 0, len(checked)+1)
	for _, v := range checked {
		v = strings.TrimSpace(v)
		if v == "" || v == OtherOption {
			continue
		}
		out = append(out, v)
	}
	if custom := strings.TrimSpace(other); custom != "" {
		out = append(out, custom)
	}
	return out
}
