package http

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/fodmaplab/reintro/pkg/domain"
)

// decodeState converts a JSON-decoded map into a typed snapshot. Datetime
// strings on the wire become time.Time values; everything else maps by the
// domain's JSON field names.
func decodeState(raw map[string]any) (*domain.ProtocolState, error) {
	if raw == nil {
		return nil, fmt.Errorf("state is required")
	}

	var state domain.ProtocolState
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeHookFunc(time.RFC3339),
		Result:     &state,
		TagName:    "json",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, err
	}
	return &state, nil
}
