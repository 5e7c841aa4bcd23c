package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBidStatus(t *testing.T) {
	for _, s := range []string{BidPending, BidAccepted, BidRejected, BidConfirmed, BidAbandoned, BidWithdrawn, BidCompleted} {
		parsed, err := ParseBidStatus(s)
		require.NoError(t, err)
		require.Equal(t, s, parsed)
	}

	for _, s := range []string{"", "PENDING", "cancelled", "expired"} {
		_, err := ParseBidStatus(s)
		require.Error(t, err)
	}
}

func TestIsTerminalBidStatus(t *testing.T) {
	require.True(t, IsTerminalBidStatus(BidRejected))
	require.True(t, IsTerminalBidStatus(BidAbandoned))
	require.True(t, IsTerminalBidStatus(BidWithdrawn))
	require.True(t, IsTerminalBidStatus(BidCompleted))

	require.False(t, IsTerminalBidStatus(BidPending))
	require.False(t, IsTerminalBidStatus(BidAccepted))
	require.False(t, IsTerminalBidStatus(BidConfirmed))
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{RoleBuyer, RoleSeller, RoleAdmin} {
		parsed, err := ParseRole(s)
		require.NoError(t, err)
		require.Equal(t, s, parsed)
	}

	_, err := ParseRole("moderator")
	require.Error(t, err)
}

func TestParsePenaltyResolution(t *testing.T) {
	for _, s := range []string{PenaltyPaid, PenaltyWaived} {
		parsed, err := ParsePenaltyResolution(s)
		require.NoError(t, err)
		require.Equal(t, s, parsed)
	}

	// Active is the initial state, not a resolution.
	_, err := ParsePenaltyResolution(PenaltyActive)
	require.Error(t, err)
}

func TestParsePenaltyType(t *testing.T) {
	for _, s := range []string{PenaltyDealRefusal, PenaltyFakeListing, PenaltyQualityIssue} {
		parsed, err := ParsePenaltyType(s)
		require.NoError(t, err)
		require.Equal(t, s, parsed)
	}

	_, err := ParsePenaltyType("late_delivery")
	require.Error(t, err)
}
