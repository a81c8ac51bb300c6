package report

import (
	"testing"
	"time"

	"github.com/omid-sharifi/timetrack/internal/domain/entity"
	errs "github.com/omid-sharifi/timetrack/internal/domain/error"
	coremocks "github.com/omid-sharifi/timetrack/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generatedAt = time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

func sampleLogs() []entity.TimeLog {
	return []entity.TimeLog{
		{
			ID:           2,
			Date:         time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
			UserID:       7,
			UserName:     "Jane Smith",
			ProjectID:    3,
			ProjectTitle: "Website Redesign",
			Hours:        6.5,
			Description:  "Frontend work",
			Locked:       true,
		},
		{
			ID:           1,
			Date:         time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			UserID:       7,
			UserName:     "Jane Smith",
			ProjectID:    3,
			ProjectTitle: "Website Redesign",
			Hours:        5.5,
			Description:  "API integration",
		},
	}
}

func newGeneratorWithTime(t *testing.T) *Generator {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(generatedAt).Maybe()
	return NewGenerator(mockTime)
}

func TestBuild(t *testing.T) {
	t.Run("Rows are ordered by date then id with an exact total", func(t *testing.T) {
		gen := newGeneratorWithTime(t)

		rep, err := gen.Build(entity.TimeLogFilter{}, sampleLogs())

		require.NoError(t, err)
		require.Len(t, rep.Rows, 2)
		assert.Equal(t, uint64(1), rep.Rows[0].LogID)
		assert.Equal(t, uint64(2), rep.Rows[1].LogID)
		assert.Equal(t, "March 10, 2025", rep.Rows[0].Date)
		assert.Equal(t, "March 11, 2025", rep.Rows[1].Date)
		assert.Equal(t, 12.0, rep.TotalHours)
	})

	t.Run("Id breaks ties within the same day", func(t *testing.T) {
		gen := newGeneratorWithTime(t)
		day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		logs := []entity.TimeLog{
			{ID: 9, Date: day, Hours: 1},
			{ID: 4, Date: day, Hours: 1},
			{ID: 7, Date: day, Hours: 1},
		}

		rep, err := gen.Build(entity.TimeLogFilter{}, logs)

		require.NoError(t, err)
		assert.Equal(t, uint64(4), rep.Rows[0].LogID)
		assert.Equal(t, uint64(7), rep.Rows[1].LogID)
		assert.Equal(t, uint64(9), rep.Rows[2].LogID)
	})

	t.Run("Status column follows the lock flag", func(t *testing.T) {
		gen := newGeneratorWithTime(t)

		rep, err := gen.Build(entity.TimeLogFilter{}, sampleLogs())

		require.NoError(t, err)
		assert.Equal(t, entity.StatusLabelUnlocked, rep.Rows[0].StatusLabel)
		assert.Equal(t, entity.StatusLabelLocked, rep.Rows[1].StatusLabel)
	})

	t.Run("Empty input is rejected", func(t *testing.T) {
		gen := newGeneratorWithTime(t)

		rep, err := gen.Build(entity.TimeLogFilter{}, nil)

		assert.Nil(t, rep)
		assert.ErrorIs(t, err, errs.ErrEmptyReport)
	})

	t.Run("Input slice is not reordered", func(t *testing.T) {
		gen := newGeneratorWithTime(t)
		logs := sampleLogs()

		_, err := gen.Build(entity.TimeLogFilter{}, logs)

		require.NoError(t, err)
		assert.Equal(t, uint64(2), logs[0].ID)
		assert.Equal(t, uint64(1), logs[1].ID)
	})

	t.Run("Metadata echoes the filter constraints", func(t *testing.T) {
		gen := newGeneratorWithTime(t)
		userID := uint64(7)
		projectID := uint64(3)
		start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
		filter := entity.TimeLogFilter{
			UserID:    &userID,
			ProjectID: &projectID,
			StartDate: &start,
			EndDate:   &end,
		}

		rep, err := gen.Build(filter, sampleLogs())

		require.NoError(t, err)
		assert.NotEmpty(t, rep.Metadata.ReportID)
		assert.Equal(t, generatedAt, rep.Metadata.GeneratedAt)
		assert.Equal(t, "2025-03-01", rep.Metadata.Period.Start)
		assert.Equal(t, "2025-03-31", rep.Metadata.Period.End)
		assert.Equal(t, "7", rep.Metadata.Filters.UserID)
		assert.Equal(t, "3", rep.Metadata.Filters.ProjectID)
	})

	t.Run("Unconstrained axes read as all", func(t *testing.T) {
		gen := newGeneratorWithTime(t)

		rep, err := gen.Build(entity.TimeLogFilter{}, sampleLogs())

		require.NoError(t, err)
		assert.Equal(t, "all", rep.Metadata.Filters.UserID)
		assert.Equal(t, "all", rep.Metadata.Filters.ProjectID)
		assert.Empty(t, rep.Metadata.Period.Start)
		assert.Empty(t, rep.Metadata.Period.End)
	})

	t.Run("Each report gets its own id", func(t *testing.T) {
		gen := newGeneratorWithTime(t)

		first, err := gen.Build(entity.TimeLogFilter{}, sampleLogs())
		require.NoError(t, err)
		second, err := gen.Build(entity.TimeLogFilter{}, sampleLogs())
		require.NoError(t, err)

		assert.NotEqual(t, first.Metadata.ReportID, second.Metadata.ReportID)
	})
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "12", formatHours(12))
	assert.Equal(t, "5.5", formatHours(5.5))
	assert.Equal(t, "0.25", formatHours(0.25))
}
