package services

import (
	"testing"
	"time"

	"blogapp/models"
	"blogapp/pkg/cache"
	"blogapp/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCommentService(t *testing.T) (*CommentService, *gorm.DB, *cache.MemoryCache, *session.MemoryStore) {
	t.Helper()
	db := newTestDB(t)
	mem := cache.NewMemoryCache()
	sessions := session.NewMemoryStore()
	return NewCommentService(db, mem, sessions, nil, "comment.events"), db, mem, sessions
}

func TestCommentStore_Roundtrip(t *testing.T) {
	svc, db, _, _ := newCommentService(t)
	require.NoError(t, db.Create(&models.Article{ID: 7, Title: "post"}).Error)

	rootID, err := svc.Store(CommentInput{Content: "first", ArticleID: 7}, 0)
	require.NoError(t, err)

	childID, err := svc.Store(CommentInput{Content: "reply", ArticleID: 7, PID: &rootID}, 0)
	require.NoError(t, err)

	thread, err := svc.GetThread(7)
	require.NoError(t, err)
	require.Len(t, thread, 1)
	assert.Equal(t, rootID, thread[0].ID)
	require.Len(t, thread[0].Children, 1)
	assert.Equal(t, childID, thread[0].Children[0].ID)
	assert.Empty(t, thread[0].Children[0].Children)
}

func TestCommentStore_Validation(t *testing.T) {
	svc, db, _, _ := newCommentService(t)
	require.NoError(t, db.Create(&models.Article{ID: 1, Title: "post"}).Error)

	_, err := svc.Store(CommentInput{Content: "", ArticleID: 1}, 0)
	assert.ErrorIs(t, err, ErrContentRequired)

	_, err = svc.Store(CommentInput{Content: "hi"}, 0)
	assert.ErrorIs(t, err, ErrArticleRequired)

	_, err = svc.Store(CommentInput{Content: "hi", ArticleID: 42}, 0)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCommentStore_ParentMustMatchArticle(t *testing.T) {
	svc, db, _, _ := newCommentService(t)
	require.NoError(t, db.Create(&models.Article{ID: 1, Title: "a"}).Error)
	require.NoError(t, db.Create(&models.Article{ID: 2, Title: "b"}).Error)

	parentID, err := svc.Store(CommentInput{Content: "on a", ArticleID: 1}, 0)
	require.NoError(t, err)

	_, err = svc.Store(CommentInput{Content: "on b", ArticleID: 2, PID: &parentID}, 0)
	assert.ErrorIs(t, err, ErrParentMismatch)

	missing := uint(999)
	_, err = svc.Store(CommentInput{Content: "on a", ArticleID: 1, PID: &missing}, 0)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCommentStore_EmailWriteback(t *testing.T) {
	svc, db, _, sessions := newCommentService(t)
	require.NoError(t, db.Create(&models.Article{ID: 1, Title: "post"}).Error)
	require.NoError(t, db.Create(&models.OauthUser{ID: 3, Name: "visitor"}).Error)

	_, err := svc.Store(CommentInput{Content: "hi", ArticleID: 1, Email: "v@example.com"}, 3)
	require.NoError(t, err)

	var user models.OauthUser
	require.NoError(t, db.First(&user, 3).Error)
	require.NotNil(t, user.Email)
	assert.Equal(t, "v@example.com", *user.Email)

	email, err := sessions.Get(3, "email")
	require.NoError(t, err)
	assert.Equal(t, "v@example.com", email)
}

func TestCommentStore_InvalidEmailIgnored(t *testing.T) {
	svc, db, _, _ := newCommentService(t)
	require.NoError(t, db.Create(&models.Article{ID: 1, Title: "post"}).Error)
	require.NoError(t, db.Create(&models.OauthUser{ID: 3, Name: "visitor"}).Error)

	_, err := svc.Store(CommentInput{Content: "hi", ArticleID: 1, Email: "not-an-email"}, 3)
	require.NoError(t, err)

	var user models.OauthUser
	require.NoError(t, db.First(&user, 3).Error)
	assert.Nil(t, user.Email)
}

func TestCommentStore_InvalidatesNewCommentCache(t *testing.T) {
	svc, db, mem, _ := newCommentService(t)
	require.NoError(t, db.Create(&models.Article{ID: 1, Title: "post"}).Error)
	require.NoError(t, mem.Set("common:newComment", "cached", 0))

	_, err := svc.Store(CommentInput{Content: "hi", ArticleID: 1}, 0)
	require.NoError(t, err)

	ok, err := mem.Has("common:newComment")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetThread_MirrorsPidEdges(t *testing.T) {
	svc, db, _, _ := newCommentService(t)
	require.NoError(t, db.Create(&models.Article{ID: 7, Title: "post"}).Error)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	a := models.Comment{ID: 1, ArticleID: 7, Content: "A", CreatedAt: base}
	b := models.Comment{ID: 2, ArticleID: 7, Content: "B", CreatedAt: base.Add(time.Minute)}
	aID := a.ID
	c := models.Comment{ID: 3, ArticleID: 7, PID: &aID, Content: "C", CreatedAt: base.Add(2 * time.Minute)}
	d := models.Comment{ID: 4, ArticleID: 7, PID: &aID, Content: "D", CreatedAt: base.Add(3 * time.Minute)}
	cID := c.ID
	e := models.Comment{ID: 5, ArticleID: 7, PID: &cID, Content: "E", CreatedAt: base.Add(4 * time.Minute)}
	other := models.Comment{ID: 6, ArticleID: 8, Content: "elsewhere", CreatedAt: base}
	for _, cm := range []models.Comment{a, b, c, d, e, other} {
		require.NoError(t, db.Create(&cm).Error)
	}

	thread, err := svc.GetThread(7)
	require.NoError(t, err)

	require.Len(t, thread, 2)
	assert.Equal(t, "A", thread[0].Content)
	assert.Equal(t, "B", thread[1].Content)

	require.Len(t, thread[0].Children, 2)
	assert.Equal(t, "C", thread[0].Children[0].Content)
	assert.Equal(t, "D", thread[0].Children[1].Content)

	require.Len(t, thread[0].Children[0].Children, 1)
	assert.Equal(t, "E", thread[0].Children[0].Children[0].Content)
}

func TestGetThread_EmptyArticle(t *testing.T) {
	svc, _, _, _ := newCommentService(t)

	thread, err := svc.GetThread(1)
	require.NoError(t, err)
	assert.Empty(t, thread)
}
