package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/chainsafe/wifi-whitelist/pkg/app/errors"
	"github.com/chainsafe/wifi-whitelist/pkg/whitelist"
	"github.com/chainsafe/wifi-whitelist/pkg/whitelist/service/mocks"
)

func TestMetricsService_PassesThrough(t *testing.T) {
	ctx := context.Background()
	req := &whitelist.RegisterRequest{SSID: "home"}
	entry := &whitelist.Entry{}
	rejection := apperrors.BadRequestError(whitelist.ErrInvalidSSID, whitelist.ErrInvalidSSID.Error())

	svcMock := mocks.NewService(t)
	svcMock.EXPECT().Register(ctx, req).Return(entry, nil).Once()
	svcMock.EXPECT().Register(ctx, req).Return(nil, rejection).Once()
	svcMock.EXPECT().List(ctx).Return([]*whitelist.Entry{entry}, nil).Once()

	svc := NewMetrics(svcMock, "test")

	got, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Same(t, entry, got)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, whitelist.ErrInvalidSSID)

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
