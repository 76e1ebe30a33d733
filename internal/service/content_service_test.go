package service

import (
	"context"
	"testing"

	"stratigo-site/internal/entity"
	"stratigo-site/internal/pkg/logger"
	"stratigo-site/internal/repository/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentServiceNotFound(t *testing.T) {
	svc := NewContentService(&fakeContent{}, nil, logger.NewNopLogger())

	_, err := svc.BlogPost(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrContentNotFound)
	assert.ErrorIs(t, err, contract.ErrNotFound)

	_, err = svc.BlogPost(context.Background(), "")
	assert.ErrorIs(t, err, ErrContentNotFound)

	_, err = svc.Hero(context.Background())
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestContentServiceFeaturedLimit(t *testing.T) {
	posts := make([]entity.BlogPost, 5)
	svc := NewContentService(&fakeContent{posts: posts}, nil, logger.NewNopLogger())

	featured, err := svc.FeaturedBlogPosts(context.Background())
	require.NoError(t, err)
	assert.Len(t, featured, FeaturedPostLimit)
}

func TestContentServiceRevalidate(t *testing.T) {
	purger := &fakePurger{}
	svc := NewContentService(&fakeContent{}, purger, logger.NewNopLogger())

	require.NoError(t, svc.Revalidate(context.Background()))
	assert.Equal(t, 1, purger.calls)

	assert.NoError(t, NewContentService(&fakeContent{}, nil, logger.NewNopLogger()).Revalidate(context.Background()))
}
