package create_booking

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabworks/FabLab-BookingService/internal/schedule"
	"github.com/fabworks/FabLab-BookingService/pkg/types"
)

func TestCreateBookingRequest_DecodesTimeField(t *testing.T) {
	body := `{"equipmentId":1,"date":"2026-09-15","time":"10:30","durationMinutes":90,"purpose":"laser cut"}`

	var req CreateBookingRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	ucReq, err := req.ToUseCaseRequest(7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), ucReq.UserID)
	assert.Equal(t, types.TimeString("10:30"), ucReq.StartTime)
	assert.Equal(t, "laser cut", ucReq.Purpose)
}

func TestFromSuggestedSlots_UsesTimeField(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	slots := FromSuggestedSlots([]schedule.Slot{
		{Date: date, Time: "11:00"},
		{Date: date.AddDate(0, 0, 1), Time: "00:15"},
	})

	raw, err := json.Marshal(slots)
	require.NoError(t, err)

	assert.JSONEq(t,
		`[{"date":"2026-09-15","time":"11:00"},{"date":"2026-09-16","time":"00:15"}]`,
		string(raw))
}
