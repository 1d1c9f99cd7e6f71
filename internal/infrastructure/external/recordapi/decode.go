package recordapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/johnquangdev/meeting-planner/internal/adapter/dto/record"
	"github.com/johnquangdev/meeting-planner/internal/domain/scheduling"
)

// decodeRoster accepts either a bare list or a {"userDetails": [...]} wrapper
func decodeRoster(body []byte) ([]scheduling.Participant, error) {
	var wire []record.Participant
	switch firstByte(body) {
	case '[':
		if err := json.Unmarshal(body, &wire); err != nil {
			return nil, fmt.Errorf("decode roster: %w", err)
		}
	case '{':
		var wrapped record.RosterResponse
		if err := json.Unmarshal(body, &wrapped); err != nil {
			return nil, fmt.Errorf("decode roster: %w", err)
		}
		wire = wrapped.UserDetails
	default:
		return nil, fmt.Errorf("decode roster: unexpected payload")
	}

	out := make([]scheduling.Participant, 0, len(wire))
	for _, p := range wire {
		out = append(out, p.ToScheduling())
	}
	return out, nil
}

// decodeMeetings accepts either a {"meetings": [...]} wrapper or a bare list
func decodeMeetings(body []byte) ([]scheduling.Meeting, error) {
	var wire []record.Meeting
	switch firstByte(body) {
	case '[':
		if err := json.Unmarshal(body, &wire); err != nil {
			return nil, fmt.Errorf("decode meetings: %w", err)
		}
	case '{':
		var wrapped record.MeetingsResponse
		if err := json.Unmarshal(body, &wrapped); err != nil {
			return nil, fmt.Errorf("decode meetings: %w", err)
		}
		wire = wrapped.Meetings
	default:
		return nil, fmt.Errorf("decode meetings: unexpected payload")
	}

	out := make([]scheduling.Meeting, 0, len(wire))
	for _, m := range wire {
		out = append(out, m.ToScheduling())
	}
	return out, nil
}

func firstByte(body []byte) byte {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}
