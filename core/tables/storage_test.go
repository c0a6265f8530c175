package tables

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"hub-sync/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStorageLister_ListRecords(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "roster").Return(true, nil)
	body := `{"records":[{"id":"recH1","fields":{"Group ID":"S0AGRP","Coordinators":["rec1","rec2"]}}]}`
	client.On("GetObject", mock.Anything, "roster", "tables/Hubs.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(body)), nil)

	lister := NewStorageLister(client, "roster", "tables")
	records, err := lister.ListRecords(context.Background(), "Hubs")
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "recH1", records[0].ID)
	assert.Equal(t, "S0AGRP", records[0].Fields["Group ID"])
	assert.Equal(t, []any{"rec1", "rec2"}, records[0].Fields["Coordinators"])
	client.AssertExpectations(t)
}

func TestStorageLister_Errors(t *testing.T) {
	t.Run("MissingBucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "roster").Return(false, nil)

		_, err := NewStorageLister(client, "roster", "").ListRecords(context.Background(), "Hubs")
		assert.ErrorContains(t, err, "does not exist")
	})

	t.Run("GetObjectFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "roster").Return(true, nil)
		client.On("GetObject", mock.Anything, "roster", "Hubs.json", mock.Anything).
			Return(nil, errors.New("access denied"))

		_, err := NewStorageLister(client, "roster", "").ListRecords(context.Background(), "Hubs")
		assert.ErrorContains(t, err, "access denied")
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "roster").Return(true, nil)
		client.On("GetObject", mock.Anything, "roster", "Hubs.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader("[")), nil)

		_, err := NewStorageLister(client, "roster", "").ListRecords(context.Background(), "Hubs")
		assert.ErrorContains(t, err, "failed to decode")
	})
}

func TestConfig_IsValidDriver(t *testing.T) {
	tests := []struct {
		driver string
		want   bool
	}{
		{DriverAirtable, true},
		{DriverDatabase, true},
		{DriverStorage, true},
		{"sheets", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{Driver: tt.driver}.IsValidDriver())
		})
	}
}
