package homework

import "fmt"

// Response is the validated shape of a review-API reply.
type Response struct {
	Homeworks []Record
	Cursor    int64 // server timestamp from current_date, meaningful only when HasCursor
	HasCursor bool
}

// ShapeError reports that the API reply does not match the documented shape.
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected API response shape: %s", e.Reason)
}

// CheckResponse validates a decoded API reply and extracts the homework list
// and the server cursor. The reply is untrusted: every level of the expected
// structure is verified before use, and records are passed through untouched,
// in the order the API returned them.
func CheckResponse(raw any) (*Response, error) {
	body, ok := raw.(map[string]any)
	if !ok {
		return nil, &ShapeError{Reason: fmt.Sprintf("response is %T, not an object", raw)}
	}

	list, ok := body["homeworks"]
	if !ok {
		return nil, &ShapeError{Reason: "response has no \"homeworks\" key"}
	}
	items, ok := list.([]any)
	if !ok {
		return nil, &ShapeError{Reason: fmt.Sprintf("\"homeworks\" is %T, not a list", list)}
	}

	resp := &Response{Homeworks: make([]Record, 0, len(items))}
	for i, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			return nil, &ShapeError{Reason: fmt.Sprintf("homeworks[%d] is %T, not an object", i, item)}
		}
		resp.Homeworks = append(resp.Homeworks, Record(rec))
	}

	// current_date is optional. JSON numbers decode as float64; anything else
	// in the field leaves the cursor unset and the caller keeps its own.
	if ts, ok := body["current_date"].(float64); ok {
		resp.Cursor = int64(ts)
		resp.HasCursor = true
	}

	return resp, nil
}
