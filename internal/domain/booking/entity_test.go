//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.ItemID, actual.ItemID())
		assert.Equal(t, b.BookerID, actual.BookerID())
		assert.Equal(t, booking.StatusWaiting, actual.Status())
		assert.Equal(t, b.Start, actual.Period().Start())
		assert.Equal(t, b.End, actual.Period().End())
		assert.Equal(t, b.Now, actual.CreatedAt())
	})

	t.Run("rental period validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "start in the past",
				mutate: func(b *builder.BookingBuilder) {
					b.Start = b.Now.Add(-time.Hour)
				},
				errIs: booking.ErrInvalidRentalPeriod,
			},
			{
				name: "start equals end",
				mutate: func(b *builder.BookingBuilder) {
					b.End = b.Start
				},
				errIs: booking.ErrInvalidRentalPeriod,
			},
			{
				name: "start after end",
				mutate: func(b *builder.BookingBuilder) {
					b.Start, b.End = b.End, b.Start
				},
				errIs: booking.ErrInvalidRentalPeriod,
			},
			{
				name: "start exactly now is still valid",
				mutate: func(b *builder.BookingBuilder) {
					b.Start = b.Now
					b.End = b.Now.Add(time.Hour)
				},
			},
			{
				name:   "future window",
				mutate: func(b *builder.BookingBuilder) {},
			},
		})
	})
}

func TestBookingResolve(t *testing.T) {
	cases := []struct {
		name       string
		from       booking.Status
		approve    bool
		wantStatus booking.Status
		wantErr    error
	}{
		{name: "approve waiting", from: booking.StatusWaiting, approve: true, wantStatus: booking.StatusApproved},
		{name: "reject waiting", from: booking.StatusWaiting, approve: false, wantStatus: booking.StatusRejected},
		{name: "approve already approved", from: booking.StatusApproved, approve: true, wantErr: booking.ErrNotAwaitingApproval},
		{name: "reject already approved", from: booking.StatusApproved, approve: false, wantErr: booking.ErrNotAwaitingApproval},
		{name: "approve already rejected", from: booking.StatusRejected, approve: true, wantErr: booking.ErrNotAwaitingApproval},
		{name: "approve canceled", from: booking.StatusCanceled, approve: true, wantErr: booking.ErrNotAwaitingApproval},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder().
				With(func(b *builder.BookingBuilder) { b.Status = tc.from.String() }).
				BuildReconstructed()

			err := b.Resolve(tc.approve)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, tc.from, b.Status(), "status must not change on failed transition")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, b.Status())
		})
	}
}

func TestPeriodClassification(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	p := booking.ReconstructPeriod(now.Add(-time.Hour), now.Add(time.Hour))

	assert.True(t, p.Includes(now))
	assert.True(t, p.Includes(p.Start()), "boundary instants count as current")
	assert.True(t, p.Includes(p.End()))
	assert.False(t, p.EndedBefore(now))
	assert.True(t, p.EndedBefore(now.Add(2*time.Hour)))
	assert.False(t, p.StartsAfter(now))
	assert.True(t, p.StartsAfter(now.Add(-2*time.Hour)))
	assert.Equal(t, 2*time.Hour, p.Duration())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder()
			tc.mutate(b)

			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
