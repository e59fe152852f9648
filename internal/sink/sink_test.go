package sink

import (
	"context"
	"testing"

	"github.com/future-architect/ngram"
	"github.com/rs/xid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "gocloud.dev/docstore/memdocstore"
	"gocloud.dev/gcerrors"
)

func openSink(t *testing.T) *Sink {
	s, err := Open(context.Background(), "mem://"+xid.New().String()+"/id")
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.Nil(t, s.Close())
	})
	return s
}

func TestSink_PutGet(t *testing.T) {
	s := openSink(t)
	ctx := context.Background()

	id, err := s.Put(ctx, ngram.Result{Line: 1, ID: "es1", Ngrams: []string{"buen", "uena"}, Label: 1})
	assert.Nil(t, err)
	assert.Equal(t, "es1", id)

	result, err := s.Get(ctx, "es1")
	assert.Nil(t, err)
	assert.Equal(t, ngram.Result{Line: 1, ID: "es1", Ngrams: []string{"buen", "uena"}, Label: 1}, result)
}

func TestSink_PutGeneratesID(t *testing.T) {
	s := openSink(t)
	ctx := context.Background()

	id, err := s.Put(ctx, ngram.Result{Line: 3, Ngrams: []string{"abc"}})
	assert.Nil(t, err)
	_, err = xid.FromString(id)
	assert.Nil(t, err)

	result, err := s.Get(ctx, id)
	assert.Nil(t, err)
	assert.Equal(t, 3, result.Line)
}

func TestSink_PutAll(t *testing.T) {
	s := openSink(t)
	ctx := context.Background()

	err := s.PutAll(ctx, []ngram.Result{
		{Line: 1, ID: "a", Ngrams: []string{"x"}},
		{Line: 2, ID: "b", Ngrams: []string{"y"}, Label: 1},
	})
	assert.Nil(t, err)
	result, err := s.Get(ctx, "b")
	assert.Nil(t, err)
	assert.Equal(t, 1, result.Label)

	assert.Nil(t, s.PutAll(ctx, nil))
}

func TestSink_GetNotFound(t *testing.T) {
	s := openSink(t)
	_, err := s.Get(context.Background(), "missing")
	assert.Error(t, err)
	assert.Equal(t, gcerrors.NotFound, gcerrors.Code(err))
}

func TestOpen_UnknownScheme(t *testing.T) {
	_, err := Open(context.Background(), "unknown://records/id")
	assert.Error(t, err)
}
