package dao

import (
	"context"
	"testing"

	"SnackShop/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func productTestDAO(t *testing.T) *Product {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Review{}))
	return NewProduct(db)
}

func seedProduct(t *testing.T, dao *Product, name string) int {
	t.Helper()
	p := &models.Product{Name: name, CategoryID: "snacks", Price: 25000, IsActive: true}
	require.NoError(t, dao.Create(context.Background(), p))
	return p.ID
}

func addReview(t *testing.T, dao *Product, productID, userID, rating int) {
	t.Helper()
	uid := userID
	err := dao.Db.Create(&models.Review{
		ProductID: productID,
		UserID:    &uid,
		UserName:  "U",
		Rating:    rating,
		Comment:   "ok",
	}).Error
	require.NoError(t, err)
}

func ratingOf(t *testing.T, dao *Product, id int) (float64, int) {
	t.Helper()
	p, err := dao.FindByID(context.Background(), id)
	require.NoError(t, err)
	return p.Rating, p.Reviews
}

func TestRefreshRatingStats(t *testing.T) {
	dao := productTestDAO(t)
	ctx := context.Background()
	id := seedProduct(t, dao, "Bánh tráng trộn")

	// (5+4+3)/3 = 4.0
	addReview(t, dao, id, 1, 5)
	addReview(t, dao, id, 2, 4)
	addReview(t, dao, id, 3, 3)
	require.NoError(t, dao.RefreshRatingStats(ctx, id))

	rating, count := ratingOf(t, dao, id)
	assert.InDelta(t, 4.0, rating, 0.001)
	assert.Equal(t, 3, count)

	// 再来一条 2 星，(5+4+3+2)/4 = 3.5
	addReview(t, dao, id, 4, 2)
	require.NoError(t, dao.RefreshRatingStats(ctx, id))

	rating, count = ratingOf(t, dao, id)
	assert.InDelta(t, 3.5, rating, 0.001)
	assert.Equal(t, 4, count)
}

func TestRefreshRatingStats_Rounding(t *testing.T) {
	dao := productTestDAO(t)
	ctx := context.Background()
	id := seedProduct(t, dao, "Trà sữa")

	// (5+4+4)/3 = 4.333... 保留一位 4.3
	addReview(t, dao, id, 1, 5)
	addReview(t, dao, id, 2, 4)
	addReview(t, dao, id, 3, 4)
	require.NoError(t, dao.RefreshRatingStats(ctx, id))

	rating, count := ratingOf(t, dao, id)
	assert.InDelta(t, 4.3, rating, 0.001)
	assert.Equal(t, 3, count)
}

func TestRefreshRatingStats_ScopedToProduct(t *testing.T) {
	dao := productTestDAO(t)
	ctx := context.Background()
	rated := seedProduct(t, dao, "Khô gà")
	other := seedProduct(t, dao, "Hạt điều")

	addReview(t, dao, rated, 1, 5)
	require.NoError(t, dao.RefreshRatingStats(ctx, rated))
	require.NoError(t, dao.RefreshRatingStats(ctx, other))

	rating, count := ratingOf(t, dao, rated)
	assert.InDelta(t, 5.0, rating, 0.001)
	assert.Equal(t, 1, count)

	// 没有评价的商品经 COALESCE 落回 0
	rating, count = ratingOf(t, dao, other)
	assert.InDelta(t, 0.0, rating, 0.001)
	assert.Equal(t, 0, count)
}
