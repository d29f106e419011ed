package pgsql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
	"github.com/inkwellhq/inkwell_backend/internal/models"
)

func TestToDomainJournal(t *testing.T) {
	created := time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC)
	m := models.Journal{
		JournalID:   "j-1",
		AuthorID:    "u-1",
		Title:       "Morning pages",
		Content:     "Up early for once.",
		JournalDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Visibility:  "close-circle",
		IsAnonymous: true,
		LikesCount:  3,
		ReadsCount:  7,
		CreatedAt:   created,
		UpdatedAt:   created,
	}

	j := toDomainJournal(m)

	assert.Equal(t, "2025-06-02", j.JournalDate)
	assert.Equal(t, domain.VisibilityCloseCircle, j.Visibility)
	assert.True(t, j.IsAnonymous)
	assert.Equal(t, 3, j.LikesCount)
	assert.Equal(t, created, j.CreatedAt)
	// A row with no images still yields a non-nil slice.
	assert.NotNil(t, j.Images)
	assert.Empty(t, j.Images)
}

func TestToDomainFriendRequest(t *testing.T) {
	now := time.Now()
	m := models.FriendRequest{
		RequestID: "fr-1",
		FromID:    "u-1",
		ToID:      "u-2",
		Status:    "pending",
		CreatedAt: now,
		UpdatedAt: now,
	}

	fr := toDomainFriendRequest(m)

	assert.Equal(t, domain.FriendRequestPending, fr.Status)
	assert.Equal(t, "u-1", fr.FromID)
	assert.Equal(t, "u-2", fr.ToID)
	assert.Equal(t, now, fr.UpdatedAt)
}

func TestToDomainReaction(t *testing.T) {
	now := time.Now()
	m := models.Reaction{
		ReactionID: "re-1",
		JournalID:  "j-1",
		UserID:     "u-2",
		Type:       "like",
		CreatedAt:  now,
	}

	re := toDomainReaction(m)

	assert.Equal(t, domain.ReactionLike, re.Type)
	assert.Equal(t, "j-1", re.JournalID)
	assert.Equal(t, "u-2", re.UserID)
	assert.Equal(t, now, re.CreatedAt)
}
