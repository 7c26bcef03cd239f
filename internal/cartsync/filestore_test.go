package cartsync

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	s := NewFileStore(path)
	assert.Equal(t, path, s.Path())
	lines, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, lines)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(filepath.Join(t.TempDir(), "nested", "cart.json"))

	require.NoError(t, s.Save(ctx, []Line{{Product: p1, Quantity: 2}, {Product: p2, Quantity: 1}}))
	require.NoError(t, s.Save(ctx, []Line{{Product: p3, Quantity: 1}}))

	lines, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Line{{Product: p3, Quantity: 1}}, lines)
}

func TestFileStore_EmptyCartIsNotAbsent(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(filepath.Join(t.TempDir(), "cart.json"))

	require.NoError(t, s.Save(ctx, nil))
	lines, err := s.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestFileStore_Malformed(t *testing.T) {
	for name, body := range map[string]string{
		"not json":    "{{{",
		"wrong shape": `{"items": 3}`,
		"null":        "null",
		"missing id":  `[{"product": {"name": "x"}, "quantity": 1}]`,
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cart.json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

			_, err := NewFileStore(path).Load(context.Background())
			assert.ErrorIs(t, err, ErrMalformedLocalCart)
		})
	}
}

func TestFileStore_ConcurrentSavesLeaveAValidFile(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(filepath.Join(t.TempDir(), "cart.json"))

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(q int) {
			defer wg.Done()
			_ = s.Save(ctx, []Line{{Product: p1, Quantity: q}})
		}(i)
	}
	wg.Wait()

	lines, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].Product.ID)
}
