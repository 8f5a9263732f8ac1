package services

import (
	"testing"
	"time"

	"blogapp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatList_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Chat{ID: 1, Content: "first", CreatedAt: base}).Error)
	require.NoError(t, db.Create(&models.Chat{ID: 2, Content: "second", CreatedAt: base.Add(time.Hour)}).Error)

	svc := NewChatService(db)

	chats, err := svc.List()
	require.NoError(t, err)
	require.Len(t, chats, 2)
	assert.Equal(t, "second", chats[0].Content)
	assert.Equal(t, "first", chats[1].Content)
}
