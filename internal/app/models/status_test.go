package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseApplicationStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ApplicationStatus
		wantErr bool
	}{
		{name: "pending code", input: "PENDING", want: StatusPending},
		{name: "approved code", input: "APPROVED", want: StatusApproved},
		{name: "cancel code", input: "CANCEL", want: StatusCancel},
		{name: "display label fallback", input: "Đã duyệt", want: StatusApproved},
		{name: "unknown value", input: "REJECTED", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseApplicationStatus(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplicationStatusLabels(t *testing.T) {
	assert.Equal(t, "Chờ duyệt", StatusPending.Label())
	assert.Equal(t, "Đã duyệt", StatusApproved.Label())
	assert.Equal(t, "Từ chối", StatusCancel.Label())

	// Unknown values render as their raw code instead of an empty string.
	assert.Equal(t, "LEGACY", ApplicationStatus("LEGACY").Label())
	assert.False(t, ApplicationStatus("LEGACY").IsValid())
}
