package check_availability

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabworks/FabLab-BookingService/internal/schedule"
	checkAvailability "github.com/fabworks/FabLab-BookingService/internal/usecase/check_availability"
	"github.com/fabworks/FabLab-BookingService/pkg/types"
)

func TestCheckAvailabilityRequest_DecodesTimeField(t *testing.T) {
	body := `{"equipmentId":1,"date":"2026-09-15","time":"10:30","durationMinutes":30}`

	var req CheckAvailabilityRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	ucReq, err := req.ToUseCaseRequest()
	require.NoError(t, err)

	assert.Equal(t, int64(1), ucReq.EquipmentID)
	assert.Equal(t, types.TimeString("10:30"), ucReq.StartTime)
	assert.Equal(t, 30, ucReq.DurationMinutes)
}

func TestFromUseCaseResponse_SuggestionsUseTimeField(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	resp := FromUseCaseResponse(&checkAvailability.Response{
		Available:      false,
		SuggestedSlots: []schedule.Slot{{Date: date, Time: "11:00"}},
	})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"available":false,"suggestedSlots":[{"date":"2026-09-15","time":"11:00"}]}`,
		string(raw))
}
