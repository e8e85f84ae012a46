package homework

import (
	"fmt"
	"strings"
)

// Record is a single homework entry exactly as the review API returned it.
// The payload is untrusted, so required fields are looked up defensively
// instead of being decoded into a typed struct.
type Record map[string]any

// MissingFieldError reports that a homework record lacks required fields.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("homework record is missing fields: %s", strings.Join(e.Fields, ", "))
}

// UnknownStatusError reports a status value outside the known verdict table.
type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown homework status: %q", e.Status)
}

// FormatStatusMessage builds the notification text for a single homework
// record. A field that is absent or not a string counts as missing, and all
// missing fields are reported together.
func FormatStatusMessage(rec Record) (string, error) {
	name, nameOK := rec["homework_name"].(string)
	status, statusOK := rec["status"].(string)

	var missing []string
	if !nameOK {
		missing = append(missing, "homework_name")
	}
	if !statusOK {
		missing = append(missing, "status")
	}
	if len(missing) > 0 {
		return "", &MissingFieldError{Fields: missing}
	}

	verdict, ok := Verdict(Status(status))
	if !ok {
		return "", &UnknownStatusError{Status: status}
	}

	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", name, verdict), nil
}
