package models

import (
	"encoding/json"
	"strings"
)

// FlexibleStrings decodes a JSON value that should be an array of
// strings but, in records written by older form versions, may be a
// single string, null, or outright malformed. Anything unusable decodes
// to an empty list rather than failing the whole request.
type FlexibleStrings []string

func (f *FlexibleStrings) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*f = trimmed(list)
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*f = trimmed([]string{single})
		return nil
	}

	*f = FlexibleStrings{}
	return nil
}

func trimmed(list []string) FlexibleStrings {
	out := make(FlexibleStrings, 0, len(list))
	for _, v := range list {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
