package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	var req EquipmentCreateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"lastMaintenance":"2024-01-31"}`), &req))
	require.NotNil(t, req.LastMaintenance)
	assert.Equal(t, time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC), req.LastMaintenance.Time)

	require.NoError(t, json.Unmarshal([]byte(`{"lastMaintenance":"2024-01-31T10:00:00Z"}`), &req))
	assert.Equal(t, 10, req.LastMaintenance.Hour())

	assert.Error(t, json.Unmarshal([]byte(`{"lastMaintenance":"31.01.2024"}`), &req))
}

func TestDate_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(EquipmentResponse{NextMaintenance: NewDate(time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC))})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"nextMaintenance":"2024-03-02"`)
}
