//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "encoding/json"

// Status enums decode to their canonical form when the API sends a known
// value in another spelling ("under_review", "Scheduled"). Unknown values are
// kept verbatim so StatusDisplay can still humanise them.

func decodeEnumString(data []byte) (string, error) {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", err
	}
	return raw, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *ApplicationStatus) UnmarshalJSON(data []byte) error {
	raw, err := decodeEnumString(data)
	if err != nil {
		return err
	}
	if parsed, ok := ParseApplicationStatus(raw); ok {
		*s = parsed
		return nil
	}
	*s = ApplicationStatus(raw)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *InterviewStatus) UnmarshalJSON(data []byte) error {
	raw, err := decodeEnumString(data)
	if err != nil {
		return err
	}
	if parsed, ok := ParseInterviewStatus(raw); ok {
		*s = parsed
		return nil
	}
	*s = InterviewStatus(raw)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *VacancyStatus) UnmarshalJSON(data []byte) error {
	raw, err := decodeEnumString(data)
	if err != nil {
		return err
	}
	if parsed, ok := ParseVacancyStatus(raw); ok {
		*s = parsed
		return nil
	}
	*s = VacancyStatus(raw)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DecisionOutcome) UnmarshalJSON(data []byte) error {
	raw, err := decodeEnumString(data)
	if err != nil {
		return err
	}
	if parsed, ok := ParseDecisionOutcome(raw); ok {
		*d = parsed
		return nil
	}
	*d = DecisionOutcome(raw)
	return nil
}

// canonicalStatusCounts folds by-status keys to their canonical spelling,
// summing counts that collapse onto the same status.
func canonicalStatusCounts(byStatus map[string]int) map[string]int {
	out := make(map[string]int, len(byStatus))
	for raw, n := range byStatus {
		key := raw
		if s, ok := ParseApplicationStatus(raw); ok {
			key = string(s)
		}
		out[key] += n
	}
	return out
}
