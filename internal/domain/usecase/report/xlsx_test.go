package report

import (
	"bytes"
	"context"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/omid-sharifi/timetrack/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderXLSX(t *testing.T) {
	ctx := context.Background()
	admin := entity.Actor{ID: 99, Role: entity.RoleAdmin}

	service, repo := newServiceWithMocks(t)
	repo.EXPECT().FindByFilter(ctx, entity.TimeLogFilter{}).Return(sampleLogs(), nil).Once()

	rep, err := service.GenerateReport(ctx, entity.TimeLogFilter{}, admin)
	require.NoError(t, err)

	data, err := service.RenderXLSX(rep)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"Date", "User", "Project", "Hours", "Description", "Status"}, rows[0])

	assert.Equal(t, "March 10, 2025", rows[1][0])
	assert.Equal(t, "Jane Smith", rows[1][1])
	assert.Equal(t, "5.5", rows[1][3])
	assert.Equal(t, "March 11, 2025", rows[2][0])
	assert.Equal(t, "6.5", rows[2][3])

	assert.Equal(t, "Total Hours", rows[3][0])
	assert.Equal(t, "12", rows[3][3])
}
