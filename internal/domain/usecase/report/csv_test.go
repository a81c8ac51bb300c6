package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/omid-sharifi/timetrack/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCSV(t *testing.T) {
	ctx := context.Background()
	admin := entity.Actor{ID: 99, Role: entity.RoleAdmin}

	service, repo := newServiceWithMocks(t)
	repo.EXPECT().FindByFilter(ctx, entity.TimeLogFilter{}).Return(sampleLogs(), nil).Once()

	rep, err := service.GenerateReport(ctx, entity.TimeLogFilter{}, admin)
	require.NoError(t, err)

	data, err := service.RenderCSV(rep)
	require.NoError(t, err)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, []string{"Date", "User", "Project", "Hours", "Description", "Status"}, records[0])
	assert.Equal(t, []string{"March 10, 2025", "Jane Smith", "Website Redesign", "5.5", "API integration", entity.StatusLabelUnlocked}, records[1])
	assert.Equal(t, []string{"March 11, 2025", "Jane Smith", "Website Redesign", "6.5", "Frontend work", entity.StatusLabelLocked}, records[2])
	assert.Equal(t, []string{"Total Hours", "12"}, records[3])
}
