package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/propledger/go-fp-rollup/internal/common"
	"github.com/propledger/go-fp-rollup/internal/models"

	"github.com/stretchr/testify/assert"
)

func Test_checkDatabaseError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		key       []string
		wantIs    error
		wantCode  string
		wantNotIs error
	}{
		{
			name:     "not found keeps the sentinel",
			err:      fmt.Errorf("property p-1: %w", common.ErrDataNotFound),
			wantIs:   common.ErrDataNotFound,
			wantCode: models.GetErrMap(models.ErrKeyDataNotFound).Code,
		},
		{
			name:     "not found with a specific key",
			err:      common.ErrDataNotFound,
			key:      []string{models.ErrKeyMonthlyLogNotFound},
			wantIs:   common.ErrDataNotFound,
			wantCode: models.GetErrMap(models.ErrKeyMonthlyLogNotFound).Code,
		},
		{
			name:      "anything else is internal",
			err:       errors.New("conn reset"),
			wantIs:    common.ErrInternalServerError,
			wantCode:  models.GetErrMap(models.ErrKeyDatabaseError).Code,
			wantNotIs: common.ErrDataNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkDatabaseError(tt.err, tt.key...)
			assert.ErrorIs(t, err, tt.wantIs)
			if tt.wantNotIs != nil {
				assert.NotErrorIs(t, err, tt.wantNotIs)
			}

			var detail models.ErrorDetail
			if assert.ErrorAs(t, err, &detail) {
				assert.Equal(t, tt.wantCode, detail.Code)
			}
		})
	}
}

func Test_dayBefore(t *testing.T) {
	assert.Equal(t, day("2024-02-29"), dayBefore(day("2024-03-01")))
}
