package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Color(t *testing.T) {
	assert.Equal(t, 0x57F287, StatusSuccess.Color())
	assert.Equal(t, 0xFEE75C, StatusWarning.Color())
	assert.Equal(t, 0xED4245, StatusError.Color())
	assert.Equal(t, 0x5865F2, StatusInfo.Color())
}

func TestStatus_UnknownFallsBackToInfo(t *testing.T) {
	assert.Equal(t, StatusInfo.Color(), Status("bogus").Color())
}

func TestStatus_IsValid(t *testing.T) {
	for _, status := range []Status{StatusSuccess, StatusWarning, StatusError, StatusInfo} {
		assert.True(t, status.IsValid(), "status %s", status)
	}
	assert.False(t, Status("").IsValid())
	assert.False(t, Status("ok").IsValid())
}
